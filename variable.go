package stacube

import (
	"github.com/stacmeta/stacube/props"
)

// Keys used inside a variable's property bag.
const (
	varTypeProp   = "type"
	varDescProp   = "description"
	varDimsProp   = "dimensions"
	varExtentProp = "extent"
	varValuesProp = "values"
	varStepProp   = "step"
	varUnitProp   = "unit"
	varShapeProp  = "shape"
	varChunksProp = "chunks"
	varAttrsProp  = "attrs"
)

// variablesContext names variable bags in required-property errors.
const variablesContext = "cube:variables"

// Variable type values defined by the extension.
const (
	VariableTypeData      = "data"
	VariableTypeAuxiliary = "auxiliary"
)

// Variable is the read/write view over one named entry of cube:variables.
// Like dimensions, a variable wraps the live property bag of its host
// document and never copies it.
type Variable struct {
	bag map[string]any
}

// VariableFrom wraps m in a Variable view.
func VariableFrom(m map[string]any) *Variable {
	return &Variable{bag: m}
}

// Type returns the variable's type, "data" or "auxiliary".
func (v *Variable) Type() (string, error) {
	return props.Required[string](v.bag, variablesContext, varTypeProp)
}

func (v *Variable) SetType(t string) {
	props.Set(v.bag, varTypeProp, t)
}

// Dimensions lists the dimension names the variable is defined over. The
// list may be empty for a variable with no dimensions, but the key itself is
// required.
func (v *Variable) Dimensions() ([]string, error) {
	return props.Required[[]string](v.bag, variablesContext, varDimsProp)
}

// SetDimensions stores the dimension names. The field is required, so a nil
// slice stores an explicit null rather than removing the key; reads then
// fail until real names are stored.
func (v *Variable) SetDimensions(names []string) {
	props.SetNullable(v.bag, varDimsProp, names)
}

func (v *Variable) Description() (string, bool) {
	return props.Optional[string](v.bag, varDescProp)
}

// SetDescription stores the description; nil removes it.
func (v *Variable) SetDescription(desc *string) {
	props.Set(v.bag, varDescProp, desc)
}

// Extent returns the [min, max] bounds of the variable's values. Endpoints
// may be numbers or datetime strings, so elements stay untyped.
func (v *Variable) Extent() ([]any, bool) {
	return props.Optional[[]any](v.bag, varExtentProp)
}

// SetExtent stores the bounds; nil removes them.
func (v *Variable) SetExtent(extent []any) {
	props.Set(v.bag, varExtentProp, extent)
}

func (v *Variable) Values() ([]any, bool) {
	return props.Optional[[]any](v.bag, varValuesProp)
}

// SetValues stores the enumerated values; nil removes them.
func (v *Variable) SetValues(values []any) {
	props.Set(v.bag, varValuesProp, values)
}

// Step reports the regular spacing between the variable's values.
func (v *Variable) Step() (float64, bool) {
	return props.Optional[float64](v.bag, varStepProp)
}

// SetStep stores the spacing; nil removes it.
func (v *Variable) SetStep(step *float64) {
	props.Set(v.bag, varStepProp, step)
}

// Unit returns the unit of measurement, ideally compatible with UDUNITS-2.
func (v *Variable) Unit() (string, bool) {
	return props.Optional[string](v.bag, varUnitProp)
}

// SetUnit stores the unit; nil removes it.
func (v *Variable) SetUnit(unit *string) {
	props.Set(v.bag, varUnitProp, unit)
}

// Shape returns the length of each of the variable's dimensions, in the
// order Dimensions lists them.
func (v *Variable) Shape() ([]int, bool) {
	return props.Optional[[]int](v.bag, varShapeProp)
}

// SetShape stores the per-dimension lengths; nil removes them.
func (v *Variable) SetShape(shape []int) {
	props.Set(v.bag, varShapeProp, shape)
}

// Chunks returns the chunk size along each dimension for chunked storage
// formats.
func (v *Variable) Chunks() ([]int, bool) {
	return props.Optional[[]int](v.bag, varChunksProp)
}

// SetChunks stores the chunk sizes; nil removes them.
func (v *Variable) SetChunks(chunks []int) {
	props.Set(v.bag, varChunksProp, chunks)
}

// Attrs returns additional format-specific attributes of the variable, such
// as NetCDF or Zarr attribute maps.
func (v *Variable) Attrs() (map[string]any, bool) {
	return props.Optional[map[string]any](v.bag, varAttrsProp)
}

// SetAttrs stores the attribute map; nil removes it.
func (v *Variable) SetAttrs(attrs map[string]any) {
	props.Set(v.bag, varAttrsProp, attrs)
}

// Properties exposes the underlying bag.
func (v *Variable) Properties() map[string]any {
	return v.bag
}
