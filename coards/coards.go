// Package coards derives STAC datacube metadata from COARDS-convention
// NetCDF files (NetCDF 4 and greater not supported). Coordinate variables
// become cube:dimensions entries with extents, steps and units read from the
// file; the remaining variables become cube:variables entries. Information
// on the COARDS conventions is available at
// https://ferret.pmel.noaa.gov/Ferret/documentation/coards-netcdf-conventions.
package coards

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/ctessum/cdf"
	"gonum.org/v1/gonum/floats"

	stacube "github.com/stacmeta/stacube"
)

// Cube holds the datacube metadata extracted from one dataset.
type Cube struct {
	Dimensions map[string]stacube.Dimension
	Variables  map[string]*stacube.Variable
}

// ApplyTo writes the cube's dimensions and variables onto a datacube view,
// replacing whatever the host carried before.
func (c *Cube) ApplyTo(e *stacube.Extension) {
	e.SetDimensions(c.Dimensions)
	e.SetVariables(c.Variables)
}

// FromFile reads the COARDS NetCDF file at path.
func FromFile(path string) (*Cube, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("coards: opening %s: %w", path, err)
	}
	defer f.Close()
	c, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("coards: reading %s: %w", path, err)
	}
	return c, nil
}

// FromReader reads a COARDS NetCDF dataset from r.
func FromReader(r cdf.ReaderWriterAt) (*Cube, error) {
	nc, err := cdf.Open(r)
	if err != nil {
		return nil, err
	}
	return fromFile(nc)
}

func fromFile(nc *cdf.File) (*Cube, error) {
	cube := &Cube{
		Dimensions: map[string]stacube.Dimension{},
		Variables:  map[string]*stacube.Variable{},
	}

	// A coordinate variable is a variable whose single dimension carries its
	// own name. Everything else describes data.
	coord := map[string]bool{}
	for _, v := range nc.Header.Variables() {
		dims := nc.Header.Dimensions(v)
		if len(dims) == 1 && dims[0] == v {
			coord[v] = true
		}
	}

	referenced := map[string]bool{}
	for _, v := range nc.Header.Variables() {
		if coord[v] {
			bag, err := dimensionBag(nc, v)
			if err != nil {
				return nil, fmt.Errorf("coards: reading coordinate %s: %w", v, err)
			}
			d, err := stacube.DimensionFrom(bag)
			if err != nil {
				return nil, fmt.Errorf("coards: classifying coordinate %s: %w", v, err)
			}
			cube.Dimensions[v] = d
			continue
		}
		dims := nc.Header.Dimensions(v)
		for _, d := range dims {
			referenced[d] = true
		}
		cube.Variables[v] = variableFor(nc, v, dims)
	}

	// Dimensions used by data variables but lacking a coordinate variable
	// still need an entry, or the cube would reference dimensions it never
	// declares. Without coordinate data there is nothing to classify them
	// by, so they become bare additional dimensions.
	for name := range referenced {
		if _, ok := cube.Dimensions[name]; ok {
			continue
		}
		d, err := stacube.DimensionFrom(map[string]any{"type": "other"})
		if err != nil {
			return nil, err
		}
		cube.Dimensions[name] = d
	}
	return cube, nil
}

// dimensionBag builds the property bag for the coordinate variable name.
func dimensionBag(nc *cdf.File, name string) (map[string]any, error) {
	data, err := readFloats(nc, name)
	if err != nil {
		return nil, err
	}
	units := attrString(nc, name, "units")

	bag := map[string]any{}
	if desc := attrString(nc, name, "long_name"); desc != "" {
		bag["description"] = desc
	}

	switch axis := classify(name, nc); axis {
	case "x", "y":
		bag["type"] = stacube.DimensionTypeSpatial
		bag["axis"] = axis
		fillNumeric(bag, data)
		if _, ok := bag["extent"]; !ok {
			// Horizontal dimensions require an extent; record the gap
			// explicitly rather than dropping the key.
			bag["extent"] = nil
		}
		if strings.HasPrefix(units, "degrees") {
			bag["reference_system"] = float64(4326)
		}
	case "z":
		bag["type"] = stacube.DimensionTypeSpatial
		bag["axis"] = "z"
		fillNumeric(bag, data)
		if units != "" {
			bag["unit"] = units
		}
	case "t":
		bag["type"] = stacube.DimensionTypeTemporal
		fillTemporal(bag, data, units)
	default:
		bag["type"] = "other"
		fillNumeric(bag, data)
		if units != "" {
			bag["unit"] = units
		}
	}
	return bag, nil
}

// classify maps a coordinate name onto an axis letter: "x", "y", "z", "t" or
// "" for everything else. Names follow COARDS usage; unit and attribute
// conventions break ties for unfamiliar names.
func classify(name string, nc *cdf.File) string {
	units := attrString(nc, name, "units")
	switch strings.ToLower(name) {
	case "lon", "longitude", "x":
		return "x"
	case "lat", "latitude", "y":
		return "y"
	case "lev", "level", "height", "depth", "pressure", "plev", "z":
		return "z"
	case "time", "t":
		return "t"
	}
	switch {
	case units == "degrees_east":
		return "x"
	case units == "degrees_north":
		return "y"
	case strings.Contains(units, " since "):
		return "t"
	case attrString(nc, name, "positive") != "":
		// COARDS marks vertical coordinates with a "positive" attribute.
		return "z"
	}
	return ""
}

// fillNumeric records extent plus either a regular step or the explicit
// values of a numeric coordinate.
func fillNumeric(bag map[string]any, data []float64) {
	finite := finiteValues(data)
	if len(finite) == 0 {
		return
	}
	bag["extent"] = []any{floats.Min(finite), floats.Max(finite)}
	if step, ok := regularStep(finite); ok {
		bag["step"] = step
		return
	}
	if len(finite) > 1 {
		values := make([]any, len(finite))
		for i, v := range finite {
			values[i] = v
		}
		bag["values"] = values
		bag["step"] = nil
	}
}

// fillTemporal records the extent and spacing of a time coordinate whose
// units follow the "<unit> since <epoch>" form. Unparseable units leave the
// interval open on both sides.
func fillTemporal(bag map[string]any, data []float64, units string) {
	base, unitDur, ok := parseTimeUnits(units)
	finite := finiteValues(data)
	if !ok || len(finite) == 0 {
		bag["extent"] = []any{nil, nil}
		return
	}
	at := func(v float64) string {
		d := time.Duration(v * float64(unitDur))
		return base.Add(d).UTC().Format(time.RFC3339)
	}
	bag["extent"] = []any{at(floats.Min(finite)), at(floats.Max(finite))}
	if step, ok := regularStep(finite); ok {
		bag["step"] = isoDuration(time.Duration(step * float64(unitDur)))
		return
	}
	if len(finite) > 1 {
		values := make([]any, len(finite))
		for i, v := range finite {
			values[i] = at(v)
		}
		bag["values"] = values
		bag["step"] = nil
	}
}

// variableFor builds the cube:variables view for a non-coordinate variable.
func variableFor(nc *cdf.File, name string, dims []string) *stacube.Variable {
	bag := map[string]any{}
	typ := stacube.VariableTypeData
	if len(dims) == 0 {
		// Dimensionless variables, grid mappings for example, carry
		// metadata rather than data.
		typ = stacube.VariableTypeAuxiliary
	}
	bag["type"] = typ

	names := make([]any, len(dims))
	for i, d := range dims {
		names[i] = d
	}
	bag["dimensions"] = names

	if lengths := nc.Header.Lengths(name); len(lengths) > 0 {
		shape := make([]any, len(lengths))
		for i, n := range lengths {
			shape[i] = float64(n)
		}
		bag["shape"] = shape
	}
	if units := attrString(nc, name, "units"); units != "" {
		bag["unit"] = units
	}
	if desc := attrString(nc, name, "long_name"); desc != "" {
		bag["description"] = desc
	}
	return stacube.VariableFrom(bag)
}

// readFloats reads a floating point variable, returning nil when the
// variable holds another type. Fill values become NaN.
func readFloats(nc *cdf.File, v string) ([]float64, error) {
	r := nc.Reader(v, nil, nil)
	dataI := r.Zero(-1)
	switch dataI.(type) {
	case []float32, []float64:
	default:
		return nil, nil
	}
	if _, err := r.Read(dataI); err != nil {
		return nil, err
	}
	var data []float64
	switch d := dataI.(type) {
	case []float64:
		data = d
	case []float32:
		data = make([]float64, len(d))
		for i, v := range d {
			data[i] = float64(v)
		}
	}

	fillI := nc.Header.GetAttribute(v, "_FillValue")
	if fillI != nil {
		var fill float64
		switch f := fillI.(type) {
		case []float32:
			fill = float64(f[0])
		case []float64:
			fill = f[0]
		default:
			return nil, fmt.Errorf("invalid type for _FillValue: %T", fillI)
		}
		for i, d := range data {
			if d == fill {
				data[i] = math.NaN()
			}
		}
	}
	return data, nil
}

func attrString(nc *cdf.File, v, attr string) string {
	a := nc.Header.GetAttribute(v, attr)
	if a == nil {
		return ""
	}
	s, _ := a.(string)
	return strings.TrimSpace(s)
}

func finiteValues(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// regularStep reports the common spacing of data when its values are evenly
// spaced within a small relative tolerance.
func regularStep(data []float64) (float64, bool) {
	if len(data) < 2 {
		return 0, false
	}
	step := data[1] - data[0]
	if step == 0 {
		return 0, false
	}
	tol := 1e-6 * math.Max(1, math.Abs(step))
	for i := 2; i < len(data); i++ {
		if math.Abs(data[i]-data[i-1]-step) > tol {
			return 0, false
		}
	}
	return step, true
}

// parseTimeUnits interprets COARDS time units such as
// "days since 1990-01-01 00:00:00".
func parseTimeUnits(units string) (base time.Time, unitDur time.Duration, ok bool) {
	fields := strings.Fields(units)
	if len(fields) < 3 || !strings.EqualFold(fields[1], "since") {
		return time.Time{}, 0, false
	}
	switch strings.TrimSuffix(strings.ToLower(fields[0]), "s") {
	case "day":
		unitDur = 24 * time.Hour
	case "hour", "hr":
		unitDur = time.Hour
	case "minute", "min":
		unitDur = time.Minute
	case "second", "sec":
		unitDur = time.Second
	default:
		return time.Time{}, 0, false
	}
	rest := strings.Join(fields[2:], " ")
	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02",
		"2006-1-2 15:4:5",
		"2006-1-2",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, rest); err == nil {
			return t.UTC(), unitDur, true
		}
	}
	return time.Time{}, 0, false
}

// isoDuration renders d as an ISO 8601 duration, preferring the coarsest
// clean unit.
func isoDuration(d time.Duration) string {
	day := 24 * time.Hour
	switch {
	case d >= day && d%day == 0:
		return fmt.Sprintf("P%dD", int64(d/day))
	case d >= time.Hour && d%time.Hour == 0:
		return fmt.Sprintf("PT%dH", int64(d/time.Hour))
	case d >= time.Minute && d%time.Minute == 0:
		return fmt.Sprintf("PT%dM", int64(d/time.Minute))
	default:
		return fmt.Sprintf("PT%dS", int64(d/time.Second))
	}
}
