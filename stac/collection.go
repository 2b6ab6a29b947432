package stac

import (
	"context"

	json "github.com/goccy/go-json"
)

// Extent describes the spatial and temporal coverage of a Collection.
type Extent struct {
	Spatial  SpatialExtent  `json:"spatial"`
	Temporal TemporalExtent `json:"temporal"`
}

// SpatialExtent lists bounding boxes, the first being the union of the rest.
type SpatialExtent struct {
	BBox [][]float64 `json:"bbox"`
}

// TemporalExtent lists time intervals as RFC 3339 pairs; null endpoints mark
// open intervals.
type TemporalExtent struct {
	Interval [][]*string `json:"interval"`
}

// Collection is a STAC Collection. Summaries and extension properties live
// in ExtraFields.
type Collection struct {
	Type           string            `json:"type"`
	StacVersion    string            `json:"stac_version"`
	StacExtensions []string          `json:"stac_extensions,omitempty"`
	ID             string            `json:"id"`
	Title          string            `json:"title,omitempty"`
	Description    string            `json:"description"`
	License        string            `json:"license"`
	Extent         Extent            `json:"extent"`
	Links          []Link            `json:"links,omitempty"`
	Assets         map[string]*Asset `json:"assets,omitempty"`

	ExtraFields map[string]any `json:"-"`
}

var collectionFields = []string{
	"type", "stac_version", "stac_extensions", "id", "title",
	"description", "license", "extent", "links", "assets",
}

// NewCollection returns a minimal collection with open extents.
func NewCollection(id, description string) *Collection {
	return &Collection{
		Type:        string(KindCollection),
		StacVersion: Version,
		ID:          id,
		Description: description,
		License:     "proprietary",
		Extent: Extent{
			Spatial:  SpatialExtent{BBox: [][]float64{{-180, -90, 180, 90}}},
			Temporal: TemporalExtent{Interval: [][]*string{{nil, nil}}},
		},
		ExtraFields: map[string]any{},
	}
}

func (c *Collection) Kind() ObjectKind { return KindCollection }

// HasExtension reports whether uri is declared in stac_extensions.
func (c *Collection) HasExtension(uri string) bool { return hasString(c.StacExtensions, uri) }

// AddExtension declares uri in stac_extensions, once.
func (c *Collection) AddExtension(uri string) { c.StacExtensions = addString(c.StacExtensions, uri) }

// RemoveExtension removes uri from stac_extensions.
func (c *Collection) RemoveExtension(uri string) { c.StacExtensions = removeString(c.StacExtensions, uri) }

// Validate runs the registered Validator against the collection's document
// form. It returns ErrNoValidator when none is registered.
func (c *Collection) Validate(ctx context.Context) error {
	return validateObject(ctx, c, KindCollection, c.StacExtensions)
}

func (c *Collection) normalize() {
	if c.ExtraFields == nil {
		c.ExtraFields = map[string]any{}
	}
	c.StacExtensions = MigrateExtensionURIs(c.StacExtensions)
}

func (c *Collection) UnmarshalJSON(data []byte) error {
	type alias Collection
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range collectionFields {
		delete(all, k)
	}
	a.ExtraFields = all
	*c = Collection(a)
	c.normalize()
	return nil
}

func (c *Collection) MarshalJSON() ([]byte, error) {
	type alias Collection
	return marshalWithExtras(alias(*c), c.ExtraFields)
}
