package stac

import json "github.com/goccy/go-json"

// Asset points at data associated with an Item. Extension properties set on
// the asset itself live in ExtraFields.
type Asset struct {
	Href        string   `json:"href"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type,omitempty"`
	Roles       []string `json:"roles,omitempty"`

	ExtraFields map[string]any `json:"-"`

	owner *Item
}

var assetFields = []string{"href", "title", "description", "type", "roles"}

// Media types for assets this module commonly produces.
const (
	MediaTypeJSON    = "application/json"
	MediaTypeNetCDF  = "application/x-netcdf"
	MediaTypeGeoTIFF = "image/tiff; application=geotiff"
)

// NewAsset returns an asset for href with an empty property bag.
func NewAsset(href string) *Asset {
	return &Asset{Href: href, ExtraFields: map[string]any{}}
}

func (a *Asset) Kind() ObjectKind { return KindAsset }

// Owner returns the item the asset belongs to, or nil for a detached asset.
func (a *Asset) Owner() *Item { return a.owner }

// SetOwner records the item the asset belongs to.
func (a *Asset) SetOwner(i *Item) { a.owner = i }

// Clone returns a detached copy of the asset. The property bag is copied one
// level deep and the owner is dropped, so the clone reads only its own
// fields.
func (a *Asset) Clone() *Asset {
	out := &Asset{
		Href:        a.Href,
		Title:       a.Title,
		Description: a.Description,
		Type:        a.Type,
	}
	if a.Roles != nil {
		out.Roles = append([]string(nil), a.Roles...)
	}
	out.ExtraFields = make(map[string]any, len(a.ExtraFields))
	for k, v := range a.ExtraFields {
		out.ExtraFields[k] = v
	}
	return out
}

func (a *Asset) UnmarshalJSON(data []byte) error {
	type alias Asset
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range assetFields {
		delete(all, k)
	}
	tmp.ExtraFields = all
	*a = Asset(tmp)
	return nil
}

func (a *Asset) MarshalJSON() ([]byte, error) {
	type alias Asset
	return marshalWithExtras(alias(*a), a.ExtraFields)
}
