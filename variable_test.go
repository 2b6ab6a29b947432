package stacube_test

import (
	"errors"
	"testing"

	stacube "github.com/stacmeta/stacube"
	"github.com/stacmeta/stacube/props"
)

func TestVariable_Scenario(t *testing.T) {
	bag := map[string]any{
		"type":       "data",
		"dimensions": []any{"time", "y", "x"},
		"unit":       "degrees C",
		"extent":     []any{float64(0), float64(100)},
	}
	v := stacube.VariableFrom(bag)

	typ, err := v.Type()
	if err != nil || typ != stacube.VariableTypeData {
		t.Fatalf("type: got (%q, %v)", typ, err)
	}
	dims, err := v.Dimensions()
	if err != nil || len(dims) != 3 || dims[0] != "time" || dims[2] != "x" {
		t.Fatalf("dimensions: got (%v, %v)", dims, err)
	}
	if unit, ok := v.Unit(); !ok || unit != "degrees C" {
		t.Fatalf("unit: got (%q, %v)", unit, ok)
	}
	ext, ok := v.Extent()
	if !ok || len(ext) != 2 || ext[1] != float64(100) {
		t.Fatalf("extent: got (%v, %v)", ext, ok)
	}
	if _, ok := v.Values(); ok {
		t.Fatalf("expected no values")
	}
}

func TestVariable_NullDimensionsKeepsKey(t *testing.T) {
	bag := map[string]any{"type": "data", "dimensions": []any{"x"}}
	v := stacube.VariableFrom(bag)

	v.SetDimensions(nil)
	raw, ok := bag["dimensions"]
	if !ok || raw != nil {
		t.Fatalf("expected explicit null, got (%v, %v)", raw, ok)
	}

	_, err := v.Dimensions()
	var rpe *props.RequiredPropertyError
	if !errors.As(err, &rpe) {
		t.Fatalf("expected RequiredPropertyError, got %v", err)
	}
	if rpe.Context != "cube:variables" || rpe.Property != "dimensions" {
		t.Fatalf("unexpected fields %+v", rpe)
	}

	// An empty list is a real value: auxiliary variables may have no
	// dimensions at all.
	v.SetDimensions([]string{})
	dims, err := v.Dimensions()
	if err != nil || len(dims) != 0 {
		t.Fatalf("expected empty list, got (%v, %v)", dims, err)
	}
}

func TestVariable_OptionalFieldsDeleteOnNil(t *testing.T) {
	bag := map[string]any{"type": "auxiliary", "dimensions": []any{}}
	v := stacube.VariableFrom(bag)

	v.SetDescription(props.Ptr("land/sea mask"))
	v.SetShape([]int{180, 360})
	v.SetChunks([]int{90, 90})
	v.SetStep(props.Ptr(0.25))
	v.SetAttrs(map[string]any{"grid_mapping": "crs"})

	if shape, ok := v.Shape(); !ok || shape[0] != 180 {
		t.Fatalf("shape: got (%v, %v)", shape, ok)
	}
	if chunks, ok := v.Chunks(); !ok || chunks[1] != 90 {
		t.Fatalf("chunks: got (%v, %v)", chunks, ok)
	}
	if step, ok := v.Step(); !ok || step != 0.25 {
		t.Fatalf("step: got (%v, %v)", step, ok)
	}
	if attrs, ok := v.Attrs(); !ok || attrs["grid_mapping"] != "crs" {
		t.Fatalf("attrs: got (%v, %v)", attrs, ok)
	}

	v.SetDescription(nil)
	v.SetShape(nil)
	v.SetChunks(nil)
	v.SetStep(nil)
	v.SetAttrs(nil)
	for _, key := range []string{"description", "shape", "chunks", "step", "attrs"} {
		if _, ok := bag[key]; ok {
			t.Fatalf("expected %q removed on nil write", key)
		}
	}
}

func TestVariable_ShapeCoercesJSONNumbers(t *testing.T) {
	// Decoded JSON carries numbers as float64; shape still reads as ints.
	bag := map[string]any{
		"type":       "data",
		"dimensions": []any{"time"},
		"shape":      []any{float64(365)},
	}
	v := stacube.VariableFrom(bag)
	shape, ok := v.Shape()
	if !ok || len(shape) != 1 || shape[0] != 365 {
		t.Fatalf("shape: got (%v, %v)", shape, ok)
	}
}
