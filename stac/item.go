package stac

import (
	"context"

	json "github.com/goccy/go-json"
)

// Item is a STAC Item, a GeoJSON Feature carrying metadata properties.
// Geometry is kept opaque; this module never interprets it.
type Item struct {
	Type           string            `json:"type"`
	StacVersion    string            `json:"stac_version"`
	StacExtensions []string          `json:"stac_extensions,omitempty"`
	ID             string            `json:"id"`
	Geometry       json.RawMessage   `json:"geometry,omitempty"`
	BBox           []float64         `json:"bbox,omitempty"`
	Properties     map[string]any    `json:"properties"`
	Links          []Link            `json:"links,omitempty"`
	Assets         map[string]*Asset `json:"assets,omitempty"`
	Collection     string            `json:"collection,omitempty"`

	// ExtraFields holds top-level keys outside the typed model.
	ExtraFields map[string]any `json:"-"`
}

var itemFields = []string{
	"type", "stac_version", "stac_extensions", "id", "geometry",
	"bbox", "properties", "links", "assets", "collection",
}

// NewItem returns a minimal item with a null datetime, ready for properties
// to be filled in.
func NewItem(id string) *Item {
	return &Item{
		Type:        string(KindItem),
		StacVersion: Version,
		ID:          id,
		Properties:  map[string]any{"datetime": nil},
		Assets:      map[string]*Asset{},
		ExtraFields: map[string]any{},
	}
}

func (i *Item) Kind() ObjectKind { return KindItem }

// HasExtension reports whether uri is declared in stac_extensions.
func (i *Item) HasExtension(uri string) bool { return hasString(i.StacExtensions, uri) }

// AddExtension declares uri in stac_extensions, once.
func (i *Item) AddExtension(uri string) { i.StacExtensions = addString(i.StacExtensions, uri) }

// RemoveExtension removes uri from stac_extensions.
func (i *Item) RemoveExtension(uri string) { i.StacExtensions = removeString(i.StacExtensions, uri) }

// AddAsset stores a under key and records the item as its owner.
func (i *Item) AddAsset(key string, a *Asset) {
	if i.Assets == nil {
		i.Assets = map[string]*Asset{}
	}
	a.SetOwner(i)
	i.Assets[key] = a
}

// AddLink appends l to the item's links.
func (i *Item) AddLink(l Link) { i.Links = append(i.Links, l) }

// Validate runs the registered Validator against the item's document form.
// It returns ErrNoValidator when none is registered.
func (i *Item) Validate(ctx context.Context) error {
	return validateObject(ctx, i, KindItem, i.StacExtensions)
}

func (i *Item) normalize() {
	if i.Properties == nil {
		i.Properties = map[string]any{}
	}
	if i.ExtraFields == nil {
		i.ExtraFields = map[string]any{}
	}
	i.StacExtensions = MigrateExtensionURIs(i.StacExtensions)
	for _, a := range i.Assets {
		if a != nil {
			a.SetOwner(i)
		}
	}
}

func (i *Item) UnmarshalJSON(data []byte) error {
	type alias Item
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range itemFields {
		delete(all, k)
	}
	a.ExtraFields = all
	*i = Item(a)
	i.normalize()
	return nil
}

func (i *Item) MarshalJSON() ([]byte, error) {
	type alias Item
	return marshalWithExtras(alias(*i), i.ExtraFields)
}
