// Package stac models the subset of the SpatioTemporal Asset Catalog object
// model that extension tooling operates on: Items, Collections and their
// Assets. Decoding keeps every field a document carries; keys outside the
// typed model land in ExtraFields and survive a marshal round trip, so
// extension property bags can be read and edited in place without losing
// unrelated metadata.
package stac

// Version is the STAC spec version stamped on newly created objects.
const Version = "1.0.0"

// ObjectKind discriminates the STAC object kinds. Values follow the wire
// form of the "type" field where one exists.
type ObjectKind string

const (
	KindItem       ObjectKind = "Feature"
	KindCollection ObjectKind = "Collection"
	KindAsset      ObjectKind = "Asset"
)

// Object is implemented by the document kinds this package models.
type Object interface {
	Kind() ObjectKind
}

// Link is a STAC link object.
type Link struct {
	Rel   string `json:"rel"`
	Href  string `json:"href"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`
}

// Relation types used by this module.
const (
	RelSelf        = "self"
	RelRoot        = "root"
	RelParent      = "parent"
	RelCollection  = "collection"
	RelDerivedFrom = "derived_from"
)

func hasString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func addString(list []string, v string) []string {
	if hasString(list, v) {
		return list
	}
	return append(list, v)
}

func removeString(list []string, v string) []string {
	out := list[:0]
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
