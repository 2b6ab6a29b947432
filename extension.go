package stacube

import (
	"errors"
	"fmt"

	"github.com/stacmeta/stacube/props"
	"github.com/stacmeta/stacube/stac"
)

func init() {
	stac.RegisterExtension(stac.ExtensionHooks{
		SchemaURI: SchemaURI,
		PrevIDs:   []string{"datacube"},
		Kinds:     []stac.ObjectKind{stac.KindCollection, stac.KindItem, stac.KindAsset},
	})
}

// ErrAssetWithoutOwner is returned when AddIfMissing is requested for an
// asset that has no owning item to declare the extension on.
var ErrAssetWithoutOwner = errors.New("stacube: cannot declare the extension for an asset with no owner")

// Option configures Ext.
type Option func(*extOptions)

type extOptions struct {
	addIfMissing bool
}

// AddIfMissing makes Ext declare the datacube schema URI on the host's
// stac_extensions list instead of failing when it is not already there. For
// assets the declaration lands on the owning item.
func AddIfMissing() Option {
	return func(o *extOptions) { o.addIfMissing = true }
}

// Extension is the datacube view over one STAC host object. Reads and
// writes go to the host's own property bag; asset views additionally fall
// back to the owning item's properties on reads, so item-level dimensions
// apply to every asset that does not override them.
type Extension struct {
	kind stac.ObjectKind
	id   string
	bag  map[string]any
	read []map[string]any
}

// extensionHosts is the union of object kinds Ext accepts, for error text.
type extensionHosts interface {
	HasExtension(uri string) bool
	AddExtension(uri string)
}

// Ext returns the datacube view over obj, which must be a *stac.Collection,
// *stac.Item or *stac.Asset. Items and collections must already declare the
// extension's schema URI unless AddIfMissing is given; assets are gated
// through their owning item, and a detached asset is never gated at all.
func Ext(obj any, opts ...Option) (*Extension, error) {
	var o extOptions
	for _, opt := range opts {
		opt(&o)
	}

	switch h := obj.(type) {
	case *stac.Collection:
		if err := ensureDeclared(h, h.ID, o.addIfMissing); err != nil {
			return nil, err
		}
		if h.ExtraFields == nil {
			h.ExtraFields = map[string]any{}
		}
		return &Extension{
			kind: stac.KindCollection,
			id:   h.ID,
			bag:  h.ExtraFields,
			read: []map[string]any{h.ExtraFields},
		}, nil
	case *stac.Item:
		if err := ensureDeclared(h, h.ID, o.addIfMissing); err != nil {
			return nil, err
		}
		if h.Properties == nil {
			h.Properties = map[string]any{}
		}
		return &Extension{
			kind: stac.KindItem,
			id:   h.ID,
			bag:  h.Properties,
			read: []map[string]any{h.Properties},
		}, nil
	case *stac.Asset:
		if h.ExtraFields == nil {
			h.ExtraFields = map[string]any{}
		}
		ext := &Extension{
			kind: stac.KindAsset,
			id:   h.Href,
			bag:  h.ExtraFields,
			read: []map[string]any{h.ExtraFields},
		}
		owner := h.Owner()
		if owner == nil {
			if o.addIfMissing {
				return nil, ErrAssetWithoutOwner
			}
			return ext, nil
		}
		if err := ensureDeclared(owner, owner.ID, o.addIfMissing); err != nil {
			return nil, err
		}
		ext.read = append(ext.read, owner.Properties)
		return ext, nil
	default:
		return nil, &stac.ExtensionTypeError{Extension: "datacube", Type: fmt.Sprintf("%T", obj)}
	}
}

func ensureDeclared(host extensionHosts, id string, add bool) error {
	if host.HasExtension(SchemaURI) {
		return nil
	}
	if add {
		host.AddExtension(SchemaURI)
		return nil
	}
	return &stac.ExtensionNotImplementedError{SchemaURI: SchemaURI, Object: id}
}

// Kind reports which host kind the view wraps.
func (e *Extension) Kind() stac.ObjectKind { return e.kind }

// String identifies the view in error contexts.
func (e *Extension) String() string {
	switch e.kind {
	case stac.KindCollection:
		return fmt.Sprintf("CollectionDatacube(id=%s)", e.id)
	case stac.KindItem:
		return fmt.Sprintf("ItemDatacube(id=%s)", e.id)
	default:
		return fmt.Sprintf("AssetDatacube(href=%s)", e.id)
	}
}

// getProperty walks the read chain and returns the first non-null value for
// key. An explicit null in the host's own bag falls through to inherited
// bags, same as an absent key.
func (e *Extension) getProperty(key string) (any, bool) {
	for _, m := range e.read {
		if v, ok := m[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Dimensions returns the cube's dimensions, classified per entry, keyed by
// dimension name. The field is required; a host without it reads as a
// *props.RequiredPropertyError.
func (e *Extension) Dimensions() (map[string]Dimension, error) {
	raw, ok := e.getProperty(DimensionsProp)
	if !ok {
		return nil, &props.RequiredPropertyError{Context: e.String(), Property: DimensionsProp}
	}
	entries, ok := raw.(map[string]any)
	if !ok {
		return nil, &props.InvalidTypeError{Context: e.String(), Property: DimensionsProp, Value: raw}
	}
	out := make(map[string]Dimension, len(entries))
	for name, rv := range entries {
		m, ok := rv.(map[string]any)
		if !ok {
			return nil, &props.InvalidTypeError{Context: e.String(), Property: DimensionsProp + "/" + name, Value: rv}
		}
		d, err := DimensionFrom(m)
		if err != nil {
			return nil, fmt.Errorf("dimension %q: %w", name, err)
		}
		out[name] = d
	}
	return out, nil
}

// SetDimensions stores the given dimensions on the host's own bag, replacing
// the whole mapping. A nil map removes the key.
func (e *Extension) SetDimensions(dims map[string]Dimension) {
	if dims == nil {
		props.Clear(e.bag, DimensionsProp)
		return
	}
	raw := make(map[string]any, len(dims))
	for name, d := range dims {
		raw[name] = d.Properties()
	}
	e.bag[DimensionsProp] = raw
}

// Variables returns the cube's variables keyed by name. The field is
// required, same as Dimensions.
func (e *Extension) Variables() (map[string]*Variable, error) {
	raw, ok := e.getProperty(VariablesProp)
	if !ok {
		return nil, &props.RequiredPropertyError{Context: e.String(), Property: VariablesProp}
	}
	entries, ok := raw.(map[string]any)
	if !ok {
		return nil, &props.InvalidTypeError{Context: e.String(), Property: VariablesProp, Value: raw}
	}
	out := make(map[string]*Variable, len(entries))
	for name, rv := range entries {
		m, ok := rv.(map[string]any)
		if !ok {
			return nil, &props.InvalidTypeError{Context: e.String(), Property: VariablesProp + "/" + name, Value: rv}
		}
		out[name] = VariableFrom(m)
	}
	return out, nil
}

// SetVariables stores the given variables on the host's own bag, replacing
// the whole mapping. A nil map removes the key.
func (e *Extension) SetVariables(vars map[string]*Variable) {
	if vars == nil {
		props.Clear(e.bag, VariablesProp)
		return
	}
	raw := make(map[string]any, len(vars))
	for name, v := range vars {
		raw[name] = v.Properties()
	}
	e.bag[VariablesProp] = raw
}
