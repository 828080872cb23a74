package transect

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/giboul/tsunami-benchmarks/control"
)

const (
	fxN   = 5
	fxM   = 4
	fxDry = 99.
)

// fixture is a small transect whose values are exact in float32.
type fixture struct {
	t, x, h         []float64
	eta, u, wet, nu [][]float64
}

func newFixture() fixture {
	var f fixture
	for i := 0; i < fxN; i++ {
		f.t = append(f.t, .5*float64(i))
	}
	for j := 0; j < fxM; j++ {
		f.x = append(f.x, float64(j))
		f.h = append(f.h, .5-.125*float64(j))
	}
	for i := 0; i < fxN; i++ {
		var e, u, w, n []float64
		for j := 0; j < fxM; j++ {
			e = append(e, .0625*float64(i-j))
			u = append(u, .25*float64(i*j))
			if j == fxM-1 && i%2 == 1 {
				w = append(w, fxDry)
			} else {
				w = append(w, 0)
			}
			n = append(n, .125*float64(j))
		}
		f.eta, f.u, f.wet, f.nu = append(f.eta, e), append(f.u, u), append(f.wet, w), append(f.nu, n)
	}
	return f
}

func flat(rows [][]float64) []float64 {
	var o []float64
	for _, r := range rows {
		o = append(o, r...)
	}
	return o
}

func transpose(rows [][]float64) [][]float64 {
	o := make([][]float64, len(rows[0]))
	for j := range o {
		o[j] = make([]float64, len(rows))
		for i := range rows {
			o[j][i] = rows[i][j]
		}
	}
	return o
}

// writeBin saves the fixture as three .bin files in dir and returns matching settings.
// Elevation and the boundary fields carry the singleton spatial dimension of solver output.
func (f fixture) writeBin(t *testing.T, dir string) control.Data {
	t.Helper()
	d := binData(dir)
	require.NoError(t, WriteBin(d.Path(d.Files.Surface), []Var{
		{Name: "time", Shape: []int{fxN}, Values: f.t},
		{Name: "x", Shape: []int{fxM}, Values: f.x},
		{Name: "h", Shape: []int{1, fxM}, Values: f.h},
		{Name: "eta", Shape: []int{fxN, 1, fxM}, Values: flat(f.eta)},
	}))
	require.NoError(t, WriteBin(d.Path(d.Files.Velocity), []Var{
		{Name: "u", Shape: []int{fxM, fxN}, Values: flat(transpose(f.u))},
	}))
	require.NoError(t, WriteBin(d.Path(d.Files.Boundary), []Var{
		{Name: "mask", Shape: []int{fxN, 1, fxM}, Values: flat(f.wet)},
		{Name: "nubrk", Shape: []int{fxN, 1, fxM}, Values: flat(f.nu)},
	}))
	return d
}

func binData(dir string) control.Data {
	d := control.Default().Data
	d.Dir = dir
	d.Files = control.Files{
		Surface:  filepath.Join(dir, "eta.bin"),
		Velocity: filepath.Join(dir, "u.bin"),
		Boundary: filepath.Join(dir, "mask.bin"),
	}
	return d
}
