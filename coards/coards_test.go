package coards_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ctessum/cdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stacube "github.com/stacmeta/stacube"
	"github.com/stacmeta/stacube/coards"
	"github.com/stacmeta/stacube/props"
	"github.com/stacmeta/stacube/stac"
)

// writeFixture creates a small COARDS file: regular lon/lat/time/level
// coordinates, an irregular wavelength coordinate, a temperature data
// variable and a bounds variable referencing a dimension with no coordinate
// variable.
func writeFixture(t *testing.T) string {
	t.Helper()

	h := cdf.NewHeader(
		[]string{"time", "lat", "lon", "level", "wavelength", "nv"},
		[]int{3, 3, 4, 2, 3, 2},
	)
	h.AddVariable("time", []string{"time"}, []float64{0})
	h.AddAttribute("time", "units", "days since 2020-01-01")
	h.AddVariable("lat", []string{"lat"}, []float64{0})
	h.AddAttribute("lat", "units", "degrees_north")
	h.AddVariable("lon", []string{"lon"}, []float64{0})
	h.AddAttribute("lon", "units", "degrees_east")
	h.AddVariable("level", []string{"level"}, []float64{0})
	h.AddAttribute("level", "units", "hPa")
	h.AddVariable("wavelength", []string{"wavelength"}, []float64{0})
	h.AddAttribute("wavelength", "units", "nm")
	h.AddVariable("temp", []string{"time", "lat", "lon"}, []float32{0})
	h.AddAttribute("temp", "units", "K")
	h.AddAttribute("temp", "long_name", "air temperature")
	h.AddVariable("time_bnds", []string{"time", "nv"}, []float64{0})
	h.Define()
	for _, err := range h.Check() {
		t.Fatalf("invalid fixture header: %v", err)
	}

	path := filepath.Join(t.TempDir(), "fixture.nc")
	ff, err := os.Create(path)
	require.NoError(t, err)
	defer ff.Close()
	f, err := cdf.Create(ff, h)
	require.NoError(t, err)

	write := func(name string, data any, n int) {
		w := f.Writer(name, []int{0}, []int{n})
		_, err := w.Write(data)
		require.NoError(t, err, "writing %s", name)
	}
	write("time", []float64{0, 1, 2}, 3)
	write("lat", []float64{10, 20, 30}, 3)
	write("lon", []float64{0, 1, 2, 3}, 4)
	write("level", []float64{500, 850}, 2)
	write("wavelength", []float64{450, 550, 700}, 3)

	temp := make([]float32, 3*3*4)
	for i := range temp {
		temp[i] = float32(270 + i)
	}
	w := f.Writer("temp", []int{0, 0, 0}, []int{3, 3, 4})
	_, err = w.Write(temp)
	require.NoError(t, err)
	w = f.Writer("time_bnds", []int{0, 0}, []int{3, 2})
	_, err = w.Write([]float64{0, 1, 1, 2, 2, 3})
	require.NoError(t, err)

	return path
}

func TestFromFile_ClassifiesCoordinates(t *testing.T) {
	cube, err := coards.FromFile(writeFixture(t))
	require.NoError(t, err)
	require.Len(t, cube.Dimensions, 6)

	lon, ok := cube.Dimensions["lon"].(*stacube.HorizontalSpatialDimension)
	require.True(t, ok, "lon should be horizontal, got %T", cube.Dimensions["lon"])
	axis, err := lon.Axis()
	require.NoError(t, err)
	assert.Equal(t, "x", axis)
	ext, err := lon.Extent()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3}, ext)
	step, pr := lon.Step()
	require.Equal(t, props.Present, pr)
	assert.Equal(t, 1.0, step)
	refsys, ok := lon.ReferenceSystem()
	require.True(t, ok)
	assert.Equal(t, 4326.0, refsys)

	lat, ok := cube.Dimensions["lat"].(*stacube.HorizontalSpatialDimension)
	require.True(t, ok)
	axis, err = lat.Axis()
	require.NoError(t, err)
	assert.Equal(t, "y", axis)

	level, ok := cube.Dimensions["level"].(*stacube.VerticalSpatialDimension)
	require.True(t, ok, "level should be vertical, got %T", cube.Dimensions["level"])
	unit, ok := level.Unit()
	require.True(t, ok)
	assert.Equal(t, "hPa", unit)
	vext, ok := level.Extent()
	require.True(t, ok)
	require.Len(t, vext, 2)
	assert.Equal(t, 500.0, *vext[0])
	assert.Equal(t, 850.0, *vext[1])
}

func TestFromFile_TemporalFromTimeUnits(t *testing.T) {
	cube, err := coards.FromFile(writeFixture(t))
	require.NoError(t, err)

	td, ok := cube.Dimensions["time"].(*stacube.TemporalDimension)
	require.True(t, ok, "time should be temporal, got %T", cube.Dimensions["time"])
	ext, ok := td.Extent()
	require.True(t, ok)
	require.Len(t, ext, 2)
	assert.Equal(t, "2020-01-01T00:00:00Z", *ext[0])
	assert.Equal(t, "2020-01-03T00:00:00Z", *ext[1])
	step, pr := td.Step()
	require.Equal(t, props.Present, pr)
	assert.Equal(t, "P1D", step)
}

func TestFromFile_IrregularCoordinateKeepsValues(t *testing.T) {
	cube, err := coards.FromFile(writeFixture(t))
	require.NoError(t, err)

	wl, ok := cube.Dimensions["wavelength"].(*stacube.AdditionalDimension)
	require.True(t, ok, "wavelength should be additional, got %T", cube.Dimensions["wavelength"])
	unit, ok := wl.Unit()
	require.True(t, ok)
	assert.Equal(t, "nm", unit)

	// Uneven spacing: explicit values plus a null step.
	values, ok := wl.Values()
	require.True(t, ok)
	assert.Len(t, values, 3)
	_, pr := wl.Step()
	assert.Equal(t, props.Null, pr)
}

func TestFromFile_VariablesAndBareDimensions(t *testing.T) {
	cube, err := coards.FromFile(writeFixture(t))
	require.NoError(t, err)
	require.Len(t, cube.Variables, 2)

	temp := cube.Variables["temp"]
	require.NotNil(t, temp)
	typ, err := temp.Type()
	require.NoError(t, err)
	assert.Equal(t, stacube.VariableTypeData, typ)
	dims, err := temp.Dimensions()
	require.NoError(t, err)
	assert.Equal(t, []string{"time", "lat", "lon"}, dims)
	shape, ok := temp.Shape()
	require.True(t, ok)
	assert.Equal(t, []int{3, 3, 4}, shape)
	unit, ok := temp.Unit()
	require.True(t, ok)
	assert.Equal(t, "K", unit)
	desc, ok := temp.Description()
	require.True(t, ok)
	assert.Equal(t, "air temperature", desc)

	// time_bnds references nv, which has no coordinate variable; the cube
	// still declares it so the mapping stays self-consistent.
	nv, ok := cube.Dimensions["nv"].(*stacube.AdditionalDimension)
	require.True(t, ok, "nv should be a bare additional dimension")
	_, ok = nv.Extent()
	assert.False(t, ok)
}

func TestApplyTo_ProducesCheckableHost(t *testing.T) {
	cube, err := coards.FromFile(writeFixture(t))
	require.NoError(t, err)

	it := stac.NewItem("imported")
	dc, err := stacube.Ext(it, stacube.AddIfMissing())
	require.NoError(t, err)
	cube.ApplyTo(dc)

	require.Contains(t, it.Properties, "cube:dimensions")
	require.Contains(t, it.Properties, "cube:variables")
	assert.Empty(t, stacube.Check(dc), "an imported cube should lint clean")

	b, err := dc.SpatialBounds()
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.Min.X)
	assert.Equal(t, 30.0, b.Max.Y)

	start, end, err := dc.TemporalInterval()
	require.NoError(t, err)
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.True(t, end.After(*start))
}
