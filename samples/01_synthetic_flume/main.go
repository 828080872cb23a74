package main

/*
	Synthetic flume

	this example writes a solitary wave travelling up a 1:40 beach in the .bin layout,
	then animates it the same way a solver run is animated. Samples shoreward of the
	instantaneous shoreline are flagged dry.
*/

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	tsunami "github.com/giboul/tsunami-benchmarks"
	"github.com/giboul/tsunami-benchmarks/control"
	"github.com/giboul/tsunami-benchmarks/transect"
)

const (
	outdir = "synthetic/"
	nt, nx = 400, 221
	a0     = .12 // wave amplitude [m]
	h0     = .75 // offshore depth [m]
	g      = 9.80665
)

func main() {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		log.Fatalln(err)
	}
	write()

	cfg := control.Default()
	cfg.Data.Dir = outdir
	cfg.Data.Files = control.Files{Surface: "eta.bin", Velocity: "u.bin", Boundary: "mask.bin"}
	cfg.Render.Stride = 10
	cfg.Out = filepath.Join(outdir, "animation.html")

	a, err := tsunami.Animate(cfg, os.Stdout)
	if err != nil {
		log.Fatalln(err)
	}
	if err := a.WritePage(cfg.Out, "synthetic flume"); err != nil {
		log.Fatalln(err)
	}
	fmt.Printf(" %d frames written to %s\n", a.Len(), cfg.Out)
}

func write() {
	t, x, h := make([]float64, nt), make([]float64, nx), make([]float64, nx)
	eta, u, wet, nu := make([]float64, nt*nx), make([]float64, nt*nx), make([]float64, nt*nx), make([]float64, nt*nx)
	for j := range x {
		x[j] = 44. * float64(j) / float64(nx-1)
		h[j] = math.Min(h0, h0-(x[j]-10.)/40.) // flat, then 1:40 beach
	}
	k := math.Sqrt(3.*a0/4./h0/h0/h0)
	c := math.Sqrt(g * (h0 + a0))
	for i := range t {
		t[i] = .05 * float64(i)
		xc := c*t[i] - 5.
		for j := range x {
			ij := i*nx + j
			e := a0 / math.Pow(math.Cosh(k*(x[j]-xc)), 2)
			d := h[j] + e
			if d <= .001 {
				wet[ij] = 99
				continue
			}
			eta[ij] = e
			u[ij] = c * e / d
			nu[ij] = .02 * e / a0
		}
	}

	check := func(err error) {
		if err != nil {
			log.Fatalln(err)
		}
	}
	check(transect.WriteBin(outdir+"eta.bin", []transect.Var{
		{Name: "time", Shape: []int{nt}, Values: t},
		{Name: "x", Shape: []int{nx}, Values: x},
		{Name: "h", Shape: []int{1, nx}, Values: h},
		{Name: "eta", Shape: []int{nt, 1, nx}, Values: eta},
	}))
	check(transect.WriteBin(outdir+"u.bin", []transect.Var{
		{Name: "u", Shape: []int{nt, 1, nx}, Values: u},
	}))
	check(transect.WriteBin(outdir+"mask.bin", []transect.Var{
		{Name: "mask", Shape: []int{nt, 1, nx}, Values: wet},
		{Name: "nubrk", Shape: []int{nt, 1, nx}, Values: nu},
	}))
}
