package render

import (
	"fmt"

	"gonum.org/v1/plot/plotter"

	"github.com/giboul/tsunami-benchmarks/transect"
)

// Segments splits y(x) into runs of consecutive valid samples. No-data samples end a
// run and are never part of one, so a line drawn per run shows a gap where data is
// missing. A single valid sample between gaps forms a run of one point.
func Segments(x, y []float64) []plotter.XYs {
	var (
		segs []plotter.XYs
		cur  plotter.XYs
	)
	for j := range y {
		if transect.IsNoData(y[j]) || transect.IsNoData(x[j]) {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: x[j], Y: y[j]})
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

// Indices returns the time steps selected for rendering: 0, stride, 2·stride, … below n.
// There are ceil(n/stride) of them.
func Indices(n, stride int) ([]int, error) {
	if stride <= 0 {
		return nil, fmt.Errorf("render.Indices: stride must be positive, got %d", stride)
	}
	if n < 0 {
		return nil, fmt.Errorf("render.Indices: negative length %d", n)
	}
	ii := make([]int, 0, (n+stride-1)/stride)
	for i := 0; i < n; i += stride {
		ii = append(ii, i)
	}
	return ii, nil
}
