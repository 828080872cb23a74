package transect

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/batchatco/go-native-netcdf/netcdf/cdf"
	"github.com/batchatco/go-native-netcdf/netcdf/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cube(rows [][]float64) [][][]float64 {
	o := make([][][]float64, len(rows))
	for i, r := range rows {
		o[i] = [][]float64{r}
	}
	return o
}

func intCube(rows [][]float64) [][][]int32 {
	o := make([][][]int32, len(rows))
	for i, r := range rows {
		row := make([]int32, len(r))
		for j, v := range r {
			row[j] = int32(v)
		}
		o[i] = [][]int32{row}
	}
	return o
}

func units(t *testing.T, u string) api.AttributeMap {
	t.Helper()
	a, err := util.NewOrderedMap([]string{"units"}, map[string]interface{}{"units": u})
	require.NoError(t, err)
	return a
}

func writeNC(t *testing.T, fp string, vars map[string]api.Variable, order ...string) {
	t.Helper()
	cw, err := cdf.OpenWriter(fp)
	require.NoError(t, err)
	for _, nm := range order {
		require.NoError(t, cw.AddVar(nm, vars[nm]), nm)
	}
	require.NoError(t, cw.Close())
}

func TestLoadNetCDF(t *testing.T) {
	f := newFixture()
	dir := t.TempDir()

	writeNC(t, filepath.Join(dir, "eta.nc"), map[string]api.Variable{
		"time": {Values: f.t, Dimensions: []string{"time"}, Attributes: units(t, "s")},
		"x":    {Values: f.x, Dimensions: []string{"x"}, Attributes: units(t, "m")},
		"h":    {Values: f.h, Dimensions: []string{"x"}, Attributes: units(t, "m")},
		"eta":  {Values: cube(f.eta), Dimensions: []string{"time", "y", "x"}, Attributes: units(t, "m")},
	}, "time", "x", "h", "eta")
	writeNC(t, filepath.Join(dir, "u.nc"), map[string]api.Variable{
		"u": {Values: f.u, Dimensions: []string{"time", "x"}, Attributes: units(t, "m/s")},
	}, "u")
	writeNC(t, filepath.Join(dir, "mask.nc"), map[string]api.Variable{
		"mask":  {Values: intCube(f.wet), Dimensions: []string{"time", "y", "x"}, Attributes: units(t, "1")},
		"nubrk": {Values: cube(f.nu), Dimensions: []string{"time", "y", "x"}, Attributes: units(t, "m2/s")},
	}, "mask", "nubrk")

	d := binData(dir)
	d.Files.Surface, d.Files.Velocity, d.Files.Boundary = "eta.nc", "u.nc", "mask.nc"
	d.XOffset = 2

	s, err := Load(d)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4, 5}, s.X)
	assert.Equal(t, f.t, s.T)
	for i := 0; i < fxN; i++ {
		assert.Equal(t, f.eta[i], s.Eta.Row(i))
		assert.Equal(t, f.u[i], s.U.Row(i))
		assert.Equal(t, f.wet[i], s.Wet.Row(i))
	}

	vs, err := Inspect(filepath.Join(dir, "mask.nc"))
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, "mask", vs[0].Name)
	assert.Equal(t, []int{fxN, 1, fxM}, vs[0].Shape)
}

func TestLoadNetCDFMissingField(t *testing.T) {
	f := newFixture()
	dir := t.TempDir()
	d := f.writeBin(t, dir)
	writeNC(t, filepath.Join(dir, "u.nc"), map[string]api.Variable{
		"v": {Values: f.u, Dimensions: []string{"time", "x"}, Attributes: units(t, "m/s")},
	}, "v")
	d.Files.Velocity = filepath.Join(dir, "u.nc")

	_, err := Load(d)
	var dfe *DataFormatError
	require.ErrorAs(t, err, &dfe)
	assert.Equal(t, "u", dfe.Field)
}

func attrs(t *testing.T, kv map[string]interface{}) api.AttributeMap {
	t.Helper()
	var keys []string
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	a, err := util.NewOrderedMap(keys, kv)
	require.NoError(t, err)
	return a
}

func TestLoadNetCDFFillValue(t *testing.T) {
	f := newFixture()
	dir := t.TempDir()
	d := f.writeBin(t, dir)

	eta := cube(f.eta)
	eta[2][0][1] = -9999 // wet sample
	u := cube(f.u)
	u[0][0][2] = 1e20
	writeNC(t, filepath.Join(dir, "eta.nc"), map[string]api.Variable{
		"time": {Values: f.t, Dimensions: []string{"time"}, Attributes: units(t, "s")},
		"x":    {Values: f.x, Dimensions: []string{"x"}, Attributes: units(t, "m")},
		"h":    {Values: f.h, Dimensions: []string{"x"}, Attributes: units(t, "m")},
		"eta": {Values: eta, Dimensions: []string{"time", "y", "x"},
			Attributes: attrs(t, map[string]interface{}{"units": "m", "_FillValue": -9999.})},
	}, "time", "x", "h", "eta")
	writeNC(t, filepath.Join(dir, "u.nc"), map[string]api.Variable{
		"u": {Values: u, Dimensions: []string{"time", "y", "x"},
			Attributes: attrs(t, map[string]interface{}{"units": "m/s", "missing_value": 1e20})},
	}, "u")
	d.Files.Surface, d.Files.Velocity = filepath.Join(dir, "eta.nc"), filepath.Join(dir, "u.nc")

	s, err := Load(d)
	require.NoError(t, err)
	require.Equal(t, 0., s.Wet.At(2, 1))
	ms, err := Mask(s, fxDry)
	require.NoError(t, err)
	assert.True(t, IsNoData(ms.Eta.At(2, 1)), "fill value is no data")
	assert.True(t, IsNoData(ms.U.At(0, 2)), "missing value is no data")
	assert.Equal(t, f.eta[2][0], ms.Eta.At(2, 0))
	assert.Equal(t, f.u[0][1], ms.U.At(0, 1))

	vs, err := Inspect(d.Files.Surface)
	require.NoError(t, err)
	for _, v := range vs {
		if v.Name == "eta" {
			assert.True(t, IsNoData(v.Values[2*fxM+1]))
		}
	}
}

func TestLoadNetCDFSquareLayout(t *testing.T) {
	const n = 3
	dir := t.TempDir()
	tt, x, h := []float64{0, 1, 2}, []float64{0, 10, 20}, []float64{.5, .4, .3}
	rows := func(v func(i, j int) float64) [][]float64 {
		o := make([][]float64, n)
		for i := range o {
			o[i] = make([]float64, n)
			for j := range o[i] {
				o[i][j] = v(i, j)
			}
		}
		return o
	}
	eta := rows(func(i, j int) float64 { return float64(10*i + j) })
	u := rows(func(i, j int) float64 { return float64(i - 2*j) })

	writeNC(t, filepath.Join(dir, "eta.nc"), map[string]api.Variable{
		"time": {Values: tt, Dimensions: []string{"time"}, Attributes: units(t, "s")},
		"x":    {Values: x, Dimensions: []string{"x"}, Attributes: units(t, "m")},
		"h":    {Values: h, Dimensions: []string{"x"}, Attributes: units(t, "m")},
		"eta":  {Values: eta, Dimensions: []string{"time", "x"}, Attributes: units(t, "m")},
	}, "time", "x", "h", "eta")
	writeNC(t, filepath.Join(dir, "u.nc"), map[string]api.Variable{
		"u": {Values: transpose(u), Dimensions: []string{"x", "time"}, Attributes: units(t, "m/s")},
	}, "u")
	writeNC(t, filepath.Join(dir, "mask.nc"), map[string]api.Variable{
		"mask":  {Values: rows(func(i, j int) float64 { return 0 }), Dimensions: []string{"time", "x"}, Attributes: units(t, "1")},
		"nubrk": {Values: rows(func(i, j int) float64 { return .5 }), Dimensions: []string{"time", "x"}, Attributes: units(t, "m2/s")},
	}, "mask", "nubrk")

	d := binData(dir)
	d.Files.Surface, d.Files.Velocity, d.Files.Boundary = "eta.nc", "u.nc", "mask.nc"
	s, err := Load(d)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		assert.Equal(t, eta[i], s.Eta.Row(i))
		assert.Equal(t, u[i], s.U.Row(i), "x-major layout recognised from the dimension names")
	}
}
