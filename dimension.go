package stacube

import (
	"github.com/stacmeta/stacube/props"
)

// SchemaURI identifies the datacube extension version this package targets.
const SchemaURI = "https://stac-extensions.github.io/datacube/v1.0.0/schema.json"

// Top-level property keys the extension reserves on its hosts.
const (
	DimensionsProp = "cube:dimensions"
	VariablesProp  = "cube:variables"
)

// Keys used inside a dimension's property bag.
const (
	dimTypeProp   = "type"
	dimDescProp   = "description"
	dimAxisProp   = "axis"
	dimExtentProp = "extent"
	dimValuesProp = "values"
	dimStepProp   = "step"
	dimRefSysProp = "reference_system"
	dimUnitProp   = "unit"
)

// dimensionContext names dimension bags in required-property errors.
const dimensionContext = "cube:dimension"

// Dimension type discriminants defined by the extension.
const (
	DimensionTypeSpatial  = "spatial"
	DimensionTypeTemporal = "temporal"
)

// Spatial axis values.
const (
	AxisX = "x"
	AxisY = "y"
	AxisZ = "z"
)

// DimensionKind tags the variant DimensionFrom produced.
type DimensionKind string

const (
	KindHorizontalSpatial DimensionKind = "horizontal-spatial"
	KindVerticalSpatial   DimensionKind = "vertical-spatial"
	KindTemporal          DimensionKind = "temporal"
	KindAdditional        DimensionKind = "additional"
)

// Dimension is the read/write view over one named entry of cube:dimensions.
// Views wrap the live property bag of their host document; they never copy
// it, so edits through a view are edits of the document. The concrete types
// behind this interface carry the fields specific to each variant.
type Dimension interface {
	// Kind reports which variant the dimension classified as.
	Kind() DimensionKind
	// Type returns the dimension's type discriminant.
	Type() (string, error)
	SetType(t string)
	Description() (string, bool)
	// SetDescription stores the description; nil removes it.
	SetDescription(desc *string)
	// Properties exposes the underlying bag.
	Properties() map[string]any
}

// dimension carries the fields every variant shares.
type dimension struct {
	bag map[string]any
}

func (d *dimension) Type() (string, error) {
	return props.Required[string](d.bag, dimensionContext, dimTypeProp)
}

func (d *dimension) SetType(t string) {
	props.Set(d.bag, dimTypeProp, t)
}

func (d *dimension) Description() (string, bool) {
	return props.Optional[string](d.bag, dimDescProp)
}

func (d *dimension) SetDescription(desc *string) {
	props.Set(d.bag, dimDescProp, desc)
}

func (d *dimension) Properties() map[string]any {
	return d.bag
}

func (d *dimension) axis() (string, error) {
	return props.Required[string](d.bag, dimensionContext, dimAxisProp)
}

func (d *dimension) setAxis(axis string) {
	props.Set(d.bag, dimAxisProp, axis)
}

func (d *dimension) referenceSystem() (any, bool) {
	return props.Optional[any](d.bag, dimRefSysProp)
}

func (d *dimension) setReferenceSystem(v any) {
	props.Set(d.bag, dimRefSysProp, v)
}

func (d *dimension) unit() (string, bool) {
	return props.Optional[string](d.bag, dimUnitProp)
}

func (d *dimension) setUnit(unit *string) {
	props.Set(d.bag, dimUnitProp, unit)
}

// HorizontalSpatialDimension is a spatial dimension along the x or y axis,
// measured in coordinates of its reference system.
type HorizontalSpatialDimension struct {
	dimension
}

func (d *HorizontalSpatialDimension) Kind() DimensionKind { return KindHorizontalSpatial }

// Axis returns the dimension's axis, "x" or "y".
func (d *HorizontalSpatialDimension) Axis() (string, error) { return d.axis() }

func (d *HorizontalSpatialDimension) SetAxis(axis string) { d.setAxis(axis) }

// Extent returns the [min, max] bounds of the dimension.
func (d *HorizontalSpatialDimension) Extent() ([]float64, error) {
	return props.Required[[]float64](d.bag, dimensionContext, dimExtentProp)
}

// SetExtent stores the bounds. The field is required, so a nil slice stores
// an explicit null rather than removing the key.
func (d *HorizontalSpatialDimension) SetExtent(extent []float64) {
	props.SetNullable(d.bag, dimExtentProp, extent)
}

func (d *HorizontalSpatialDimension) Values() ([]float64, bool) {
	return props.Optional[[]float64](d.bag, dimValuesProp)
}

// SetValues stores the coordinate values; nil removes them.
func (d *HorizontalSpatialDimension) SetValues(values []float64) {
	props.Set(d.bag, dimValuesProp, values)
}

// Step reports the spacing between coordinate values. A Null presence means
// the dimension is explicitly irregular; Absent means spacing is simply not
// recorded.
func (d *HorizontalSpatialDimension) Step() (float64, props.Presence) {
	return props.Lookup[float64](d.bag, dimStepProp)
}

// SetStep records the spacing. A nil value stores an explicit null, marking
// the spacing irregular; use ClearStep to remove the key instead.
func (d *HorizontalSpatialDimension) SetStep(step *float64) {
	props.SetNullable(d.bag, dimStepProp, step)
}

// ClearStep removes the step key entirely.
func (d *HorizontalSpatialDimension) ClearStep() {
	props.Clear(d.bag, dimStepProp)
}

// ReferenceSystem returns the coordinate reference system as the document
// carries it: an EPSG code number, a WKT2 string, or a PROJJSON object.
func (d *HorizontalSpatialDimension) ReferenceSystem() (any, bool) { return d.referenceSystem() }

// SetReferenceSystem stores the reference system; nil removes it.
func (d *HorizontalSpatialDimension) SetReferenceSystem(v any) { d.setReferenceSystem(v) }

// VerticalSpatialDimension is a spatial dimension along the z axis. Its
// extent is optional and may carry null endpoints for open bounds.
type VerticalSpatialDimension struct {
	dimension
}

func (d *VerticalSpatialDimension) Kind() DimensionKind { return KindVerticalSpatial }

// Axis returns the dimension's axis, always "z" for documents classified
// into this variant.
func (d *VerticalSpatialDimension) Axis() (string, error) { return d.axis() }

func (d *VerticalSpatialDimension) SetAxis(axis string) { d.setAxis(axis) }

func (d *VerticalSpatialDimension) Extent() ([]*float64, bool) {
	return props.Optional[[]*float64](d.bag, dimExtentProp)
}

// SetExtent stores the bounds; nil removes them.
func (d *VerticalSpatialDimension) SetExtent(extent []*float64) {
	props.Set(d.bag, dimExtentProp, extent)
}

// Values returns the explicit coordinate values. Vertical dimensions may
// enumerate numbers or named levels, so elements stay untyped.
func (d *VerticalSpatialDimension) Values() ([]any, bool) {
	return props.Optional[[]any](d.bag, dimValuesProp)
}

func (d *VerticalSpatialDimension) SetValues(values []any) {
	props.Set(d.bag, dimValuesProp, values)
}

// Step reports the spacing between values; see HorizontalSpatialDimension.Step.
func (d *VerticalSpatialDimension) Step() (float64, props.Presence) {
	return props.Lookup[float64](d.bag, dimStepProp)
}

func (d *VerticalSpatialDimension) SetStep(step *float64) {
	props.SetNullable(d.bag, dimStepProp, step)
}

func (d *VerticalSpatialDimension) ClearStep() {
	props.Clear(d.bag, dimStepProp)
}

// Unit returns the unit of measurement, ideally compatible with UDUNITS-2.
func (d *VerticalSpatialDimension) Unit() (string, bool) { return d.unit() }

// SetUnit stores the unit; nil removes it.
func (d *VerticalSpatialDimension) SetUnit(unit *string) { d.setUnit(unit) }

func (d *VerticalSpatialDimension) ReferenceSystem() (any, bool) { return d.referenceSystem() }

func (d *VerticalSpatialDimension) SetReferenceSystem(v any) { d.setReferenceSystem(v) }

// TemporalDimension is a dimension of datetime values.
type TemporalDimension struct {
	dimension
}

func (d *TemporalDimension) Kind() DimensionKind { return KindTemporal }

// Extent returns the [start, end] interval as RFC 3339 strings. A null
// endpoint leaves that side of the interval open.
func (d *TemporalDimension) Extent() ([]*string, bool) {
	return props.Optional[[]*string](d.bag, dimExtentProp)
}

// SetExtent stores the interval; nil removes it.
func (d *TemporalDimension) SetExtent(extent []*string) {
	props.Set(d.bag, dimExtentProp, extent)
}

func (d *TemporalDimension) Values() ([]string, bool) {
	return props.Optional[[]string](d.bag, dimValuesProp)
}

func (d *TemporalDimension) SetValues(values []string) {
	props.Set(d.bag, dimValuesProp, values)
}

// Step reports the interval between values as an ISO 8601 duration. A Null
// presence means the spacing is explicitly irregular.
func (d *TemporalDimension) Step() (string, props.Presence) {
	return props.Lookup[string](d.bag, dimStepProp)
}

// SetStep records the duration; nil stores an explicit null. Use ClearStep
// to remove the key.
func (d *TemporalDimension) SetStep(step *string) {
	props.SetNullable(d.bag, dimStepProp, step)
}

func (d *TemporalDimension) ClearStep() {
	props.Clear(d.bag, dimStepProp)
}

// AdditionalDimension is any dimension beyond the spatial and temporal ones,
// a spectral band for example.
type AdditionalDimension struct {
	dimension
}

func (d *AdditionalDimension) Kind() DimensionKind { return KindAdditional }

func (d *AdditionalDimension) Extent() ([]*float64, bool) {
	return props.Optional[[]*float64](d.bag, dimExtentProp)
}

// SetExtent stores the bounds; nil removes them.
func (d *AdditionalDimension) SetExtent(extent []*float64) {
	props.Set(d.bag, dimExtentProp, extent)
}

func (d *AdditionalDimension) Values() ([]any, bool) {
	return props.Optional[[]any](d.bag, dimValuesProp)
}

func (d *AdditionalDimension) SetValues(values []any) {
	props.Set(d.bag, dimValuesProp, values)
}

func (d *AdditionalDimension) Step() (float64, props.Presence) {
	return props.Lookup[float64](d.bag, dimStepProp)
}

func (d *AdditionalDimension) SetStep(step *float64) {
	props.SetNullable(d.bag, dimStepProp, step)
}

func (d *AdditionalDimension) ClearStep() {
	props.Clear(d.bag, dimStepProp)
}

func (d *AdditionalDimension) Unit() (string, bool) { return d.unit() }

func (d *AdditionalDimension) SetUnit(unit *string) { d.setUnit(unit) }

func (d *AdditionalDimension) ReferenceSystem() (any, bool) { return d.referenceSystem() }

func (d *AdditionalDimension) SetReferenceSystem(v any) { d.setReferenceSystem(v) }

// DimensionFrom classifies m into one of the four variants using its "type"
// discriminant and, for spatial dimensions, its "axis". The returned view
// wraps m itself. Classification happens once, here: mutating a discriminant
// through a view does not reclassify it, so run DimensionFrom again after
// such an edit to obtain a view of the new variant.
//
// A "temporal" type always classifies as TemporalDimension, even though the
// upstream extension also permits additional dimensions of that type;
// nothing in the document distinguishes the two.
func DimensionFrom(m map[string]any) (Dimension, error) {
	typ, pr := props.Lookup[string](m, dimTypeProp)
	if pr != props.Present {
		return nil, &props.RequiredPropertyError{Context: dimensionContext, Property: dimTypeProp}
	}
	switch typ {
	case DimensionTypeSpatial:
		axis, pr := props.Lookup[string](m, dimAxisProp)
		if pr != props.Present {
			return nil, &props.RequiredPropertyError{Context: dimensionContext, Property: dimAxisProp}
		}
		if axis == AxisZ {
			return &VerticalSpatialDimension{dimension{bag: m}}, nil
		}
		return &HorizontalSpatialDimension{dimension{bag: m}}, nil
	case DimensionTypeTemporal:
		return &TemporalDimension{dimension{bag: m}}, nil
	default:
		return &AdditionalDimension{dimension{bag: m}}, nil
	}
}
