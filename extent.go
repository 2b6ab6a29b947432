package stacube

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"

	"github.com/stacmeta/stacube/props"
)

// ErrNoSpatialDimensions is returned by SpatialBounds when the cube declares
// no horizontal x and y extents to derive bounds from.
var ErrNoSpatialDimensions = errors.New("stacube: no horizontal spatial x/y extents")

// ErrNoTemporalDimension is returned by TemporalInterval when the cube
// declares no temporal dimension.
var ErrNoTemporalDimension = errors.New("stacube: no temporal dimension")

// SpatialBounds derives the rectangle spanned by the cube's horizontal
// spatial extents. When several dimensions share an axis the bounds cover
// all of them. Dimensions without a usable extent are skipped.
func (e *Extension) SpatialBounds() (*geom.Bounds, error) {
	dims, err := e.Dimensions()
	if err != nil {
		return nil, err
	}
	var xs, ys []float64
	for _, d := range dims {
		h, ok := d.(*HorizontalSpatialDimension)
		if !ok {
			continue
		}
		axis, err := h.Axis()
		if err != nil {
			continue
		}
		ext, err := h.Extent()
		if err != nil || len(ext) == 0 {
			continue
		}
		switch axis {
		case AxisX:
			xs = append(xs, ext...)
		case AxisY:
			ys = append(ys, ext...)
		}
	}
	if len(xs) == 0 || len(ys) == 0 {
		return nil, ErrNoSpatialDimensions
	}
	return &geom.Bounds{
		Min: geom.Point{X: floats.Min(xs), Y: floats.Min(ys)},
		Max: geom.Point{X: floats.Max(xs), Y: floats.Max(ys)},
	}, nil
}

// TemporalInterval returns the start and end of the cube's temporal extent
// as parsed RFC 3339 instants. A nil endpoint leaves that side open; a
// temporal dimension without a recorded extent returns both sides open.
// When several temporal dimensions exist, the first by name wins.
func (e *Extension) TemporalInterval() (start, end *time.Time, err error) {
	dims, err := e.Dimensions()
	if err != nil {
		return nil, nil, err
	}
	names := make([]string, 0, len(dims))
	for name := range dims {
		names = append(names, name)
	}
	sort.Strings(names)

	var td *TemporalDimension
	for _, name := range names {
		if t, ok := dims[name].(*TemporalDimension); ok {
			td = t
			break
		}
	}
	if td == nil {
		return nil, nil, ErrNoTemporalDimension
	}
	ext, ok := td.Extent()
	if !ok {
		return nil, nil, nil
	}
	parse := func(s *string) (*time.Time, error) {
		if s == nil {
			return nil, nil
		}
		t, err := time.Parse(time.RFC3339, *s)
		if err != nil {
			return nil, fmt.Errorf("stacube: parse temporal extent: %w", err)
		}
		return &t, nil
	}
	if len(ext) > 0 {
		if start, err = parse(ext[0]); err != nil {
			return nil, nil, err
		}
	}
	if len(ext) > 1 {
		if end, err = parse(ext[len(ext)-1]); err != nil {
			return nil, nil, err
		}
	}
	return start, end, nil
}

// Coordinates returns the dimension's cell coordinates: the explicit values
// when the document enumerates them, otherwise a grid materialized from the
// extent and a positive step. It reports false when neither source is
// usable.
func (d *HorizontalSpatialDimension) Coordinates() ([]float64, bool) {
	if vs, ok := d.Values(); ok && len(vs) > 0 {
		return vs, true
	}
	ext, err := d.Extent()
	if err != nil || len(ext) < 2 {
		return nil, false
	}
	lo, hi := ext[0], ext[len(ext)-1]
	step, pr := d.Step()
	if pr != props.Present || step <= 0 || hi < lo {
		return nil, false
	}
	n := int(math.Round((hi-lo)/step)) + 1
	if n < 2 {
		return []float64{lo}, true
	}
	dst := make([]float64, n)
	floats.Span(dst, lo, hi)
	return dst, true
}
