package props_test

import (
	"errors"
	"testing"

	"github.com/stacmeta/stacube/props"
)

func TestLookup_TriState(t *testing.T) {
	m := map[string]any{
		"step": float64(100),
		"irr":  nil,
	}

	if v, pr := props.Lookup[float64](m, "step"); pr != props.Present || v != 100 {
		t.Fatalf("expected (100, Present), got (%v, %v)", v, pr)
	}
	if v, pr := props.Lookup[float64](m, "irr"); pr != props.Null || v != 0 {
		t.Fatalf("expected (0, Null), got (%v, %v)", v, pr)
	}
	if _, pr := props.Lookup[float64](m, "missing"); pr != props.Absent {
		t.Fatalf("expected Absent, got %v", pr)
	}
}

func TestLookup_WrongTypeStillPresent(t *testing.T) {
	m := map[string]any{"step": "P1D"}
	v, pr := props.Lookup[float64](m, "step")
	if pr != props.Present {
		t.Fatalf("presence describes the document: expected Present, got %v", pr)
	}
	if v != 0 {
		t.Fatalf("expected zero value for uncoercible entry, got %v", v)
	}
}

func TestOptional_Coercions(t *testing.T) {
	m := map[string]any{
		"unit":   "meters",
		"count":  float64(3),
		"extent": []any{float64(0), float64(100)},
		"names":  []any{"time", "y", "x"},
		"shape":  []any{float64(365), float64(180)},
	}

	if v, ok := props.Optional[string](m, "unit"); !ok || v != "meters" {
		t.Fatalf("unit: got (%q, %v)", v, ok)
	}
	if v, ok := props.Optional[int](m, "count"); !ok || v != 3 {
		t.Fatalf("count: got (%d, %v)", v, ok)
	}
	if v, ok := props.Optional[[]float64](m, "extent"); !ok || len(v) != 2 || v[1] != 100 {
		t.Fatalf("extent: got (%v, %v)", v, ok)
	}
	if v, ok := props.Optional[[]string](m, "names"); !ok || len(v) != 3 || v[0] != "time" {
		t.Fatalf("names: got (%v, %v)", v, ok)
	}
	if v, ok := props.Optional[[]int](m, "shape"); !ok || v[0] != 365 {
		t.Fatalf("shape: got (%v, %v)", v, ok)
	}
}

func TestOptional_AbsentNullAndWrongType(t *testing.T) {
	m := map[string]any{
		"null":  nil,
		"mixed": []any{"a", float64(1)},
		"num":   float64(42),
	}

	if _, ok := props.Optional[string](m, "missing"); ok {
		t.Fatalf("absent key should not be ok")
	}
	if _, ok := props.Optional[string](m, "null"); ok {
		t.Fatalf("null key should not be ok")
	}
	if _, ok := props.Optional[[]string](m, "mixed"); ok {
		t.Fatalf("mixed-element slice should not coerce to []string")
	}
	// Numbers never coerce into strings; that would mask schema errors.
	if _, ok := props.Optional[string](m, "num"); ok {
		t.Fatalf("number should not coerce to string")
	}
}

func TestRequired_MissingAndNull(t *testing.T) {
	m := map[string]any{"null": nil}

	for _, key := range []string{"missing", "null"} {
		_, err := props.Required[string](m, "cube:dimension", key)
		var rpe *props.RequiredPropertyError
		if !errors.As(err, &rpe) {
			t.Fatalf("key %q: expected RequiredPropertyError, got %v", key, err)
		}
		if rpe.Context != "cube:dimension" || rpe.Property != key {
			t.Fatalf("key %q: unexpected fields %+v", key, rpe)
		}
	}
}

func TestRequired_WrongType(t *testing.T) {
	m := map[string]any{"extent": "wide"}
	_, err := props.Required[[]float64](m, "cube:dimension", "extent")
	var ite *props.InvalidTypeError
	if !errors.As(err, &ite) {
		t.Fatalf("expected InvalidTypeError, got %v", err)
	}
	if ite.Property != "extent" {
		t.Fatalf("unexpected property %q", ite.Property)
	}
}

func TestSet_DeleteOnNil(t *testing.T) {
	m := map[string]any{"description": "old", "values": []any{float64(1)}}

	props.Set(m, "description", (*string)(nil))
	if _, ok := m["description"]; ok {
		t.Fatalf("nil pointer should remove the key")
	}
	props.Set(m, "values", []float64(nil))
	if _, ok := m["values"]; ok {
		t.Fatalf("nil slice should remove the key")
	}
	props.Set(m, "attrs", map[string]any(nil))
	if _, ok := m["attrs"]; ok {
		t.Fatalf("nil map should not create the key")
	}
}

func TestSet_DereferencesPointers(t *testing.T) {
	m := map[string]any{}
	props.Set(m, "unit", props.Ptr("degrees C"))
	if m["unit"] != "degrees C" {
		t.Fatalf("expected plain string in bag, got %#v", m["unit"])
	}
}

func TestSetNullable_StoresExplicitNull(t *testing.T) {
	m := map[string]any{}
	props.SetNullable(m, "step", (*float64)(nil))
	v, ok := m["step"]
	if !ok || v != nil {
		t.Fatalf("expected key present with null, got (%v, %v)", v, ok)
	}

	props.SetNullable(m, "step", props.Ptr(float64(100)))
	if m["step"] != float64(100) {
		t.Fatalf("expected 100, got %#v", m["step"])
	}
}

func TestClear_RemovesKey(t *testing.T) {
	m := map[string]any{"step": nil}
	props.Clear(m, "step")
	if _, ok := m["step"]; ok {
		t.Fatalf("expected key removed")
	}
}

func TestAs_NullableSlices(t *testing.T) {
	ext, ok := props.As[[]*float64]([]any{nil, float64(100)})
	if !ok || len(ext) != 2 {
		t.Fatalf("unexpected result (%v, %v)", ext, ok)
	}
	if ext[0] != nil || ext[1] == nil || *ext[1] != 100 {
		t.Fatalf("expected [nil, 100], got %v", ext)
	}

	iv, ok := props.As[[]*string]([]any{"2020-01-01T00:00:00Z", nil})
	if !ok || iv[0] == nil || iv[1] != nil {
		t.Fatalf("unexpected interval %v (ok=%v)", iv, ok)
	}

	if _, ok := props.As[[]*float64]([]any{"not a number"}); ok {
		t.Fatalf("expected failure for non-numeric element")
	}
}

func TestAs_PassthroughAndMaps(t *testing.T) {
	raw := map[string]any{"k": "v"}
	m, ok := props.As[map[string]any](raw)
	if !ok || m["k"] != "v" {
		t.Fatalf("map passthrough failed")
	}
	if _, ok := props.As[map[string]any]("nope"); ok {
		t.Fatalf("string should not coerce to map")
	}

	v, ok := props.As[any]([]any{1.0})
	if !ok {
		t.Fatalf("any should accept everything")
	}
	if _, isSlice := v.([]any); !isSlice {
		t.Fatalf("any coercion should keep the raw value, got %T", v)
	}
}
