package stacube_test

import (
	"errors"
	"math"
	"testing"
	"time"

	stacube "github.com/stacmeta/stacube"
	"github.com/stacmeta/stacube/props"
)

func TestSpatialBounds_SpansHorizontalExtents(t *testing.T) {
	dc := extForProps(t, map[string]any{
		"cube:dimensions": map[string]any{
			"x": map[string]any{"type": "spatial", "axis": "x", "extent": []any{0.0, 10.0}},
			"y": map[string]any{"type": "spatial", "axis": "y", "extent": []any{-5.0, 5.0}},
			"z": map[string]any{"type": "spatial", "axis": "z"},
		},
	})
	b, err := dc.SpatialBounds()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Min.X != 0 || b.Min.Y != -5 || b.Max.X != 10 || b.Max.Y != 5 {
		t.Fatalf("unexpected bounds %+v", b)
	}
}

func TestSpatialBounds_NoHorizontalDims(t *testing.T) {
	dc := extForProps(t, map[string]any{
		"cube:dimensions": map[string]any{
			"time": map[string]any{"type": "temporal"},
		},
	})
	_, err := dc.SpatialBounds()
	if !errors.Is(err, stacube.ErrNoSpatialDimensions) {
		t.Fatalf("expected ErrNoSpatialDimensions, got %v", err)
	}
}

func TestTemporalInterval_ParsesEndpoints(t *testing.T) {
	dc := extForProps(t, map[string]any{
		"cube:dimensions": map[string]any{
			"time": map[string]any{
				"type":   "temporal",
				"extent": []any{"2020-01-01T00:00:00Z", nil},
			},
		},
	})
	start, end, err := dc.TemporalInterval()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start == nil || !start.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", start)
	}
	if end != nil {
		t.Fatalf("expected open end, got %v", end)
	}
}

func TestTemporalInterval_Errors(t *testing.T) {
	dc := extForProps(t, map[string]any{
		"cube:dimensions": map[string]any{
			"x": map[string]any{"type": "spatial", "axis": "x", "extent": []any{0.0, 1.0}},
		},
	})
	if _, _, err := dc.TemporalInterval(); !errors.Is(err, stacube.ErrNoTemporalDimension) {
		t.Fatalf("expected ErrNoTemporalDimension, got %v", err)
	}

	dc = extForProps(t, map[string]any{
		"cube:dimensions": map[string]any{
			"time": map[string]any{"type": "temporal", "extent": []any{"yesterday"}},
		},
	})
	if _, _, err := dc.TemporalInterval(); err == nil {
		t.Fatalf("expected parse error for non-RFC3339 endpoint")
	}
}

func TestCoordinates_PrefersExplicitValues(t *testing.T) {
	bag := map[string]any{
		"type": "spatial", "axis": "x",
		"extent": []any{0.0, 100.0},
		"step":   10.0,
		"values": []any{1.0, 2.0, 3.0},
	}
	d, _ := stacube.DimensionFrom(bag)
	h := d.(*stacube.HorizontalSpatialDimension)
	got, ok := h.Coordinates()
	if !ok || len(got) != 3 || got[2] != 3.0 {
		t.Fatalf("expected explicit values, got (%v, %v)", got, ok)
	}
}

func TestCoordinates_MaterializesFromExtentAndStep(t *testing.T) {
	bag := map[string]any{
		"type": "spatial", "axis": "y",
		"extent": []any{0.0, 1.0},
		"step":   0.25,
	}
	d, _ := stacube.DimensionFrom(bag)
	h := d.(*stacube.HorizontalSpatialDimension)
	got, ok := h.Coordinates()
	if !ok || len(got) != 5 {
		t.Fatalf("expected 5 coordinates, got (%v, %v)", got, ok)
	}
	if math.Abs(got[1]-0.25) > 1e-12 || got[4] != 1.0 {
		t.Fatalf("unexpected grid %v", got)
	}
}

func TestCoordinates_IrregularSpacingHasNoGrid(t *testing.T) {
	bag := map[string]any{
		"type": "spatial", "axis": "x",
		"extent": []any{0.0, 1.0},
		"step":   nil,
	}
	d, _ := stacube.DimensionFrom(bag)
	h := d.(*stacube.HorizontalSpatialDimension)
	if _, ok := h.Coordinates(); ok {
		t.Fatalf("explicitly irregular spacing cannot materialize a grid")
	}
	if _, pr := h.Step(); pr != props.Null {
		t.Fatalf("precondition failed: step should read as Null")
	}
}
