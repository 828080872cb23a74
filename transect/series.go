// Package transect loads cross-shore transect output of a benchmark solver and masks
// samples that fall outside the water-covered domain.
package transect

import (
	"fmt"
	"io"
	"math"
)

// Series is the full time history along one transect. T has N entries, X and Depth have M,
// and every field is N×M.
type Series struct {
	T     []float64 // [s]
	X     []float64 // [m]
	Depth []float64 // still-water depth, positive downward [m]
	Eta   *Field    // surface elevation [m]
	U     *Field    // cross-shore velocity [m/s]
	Wet   *Field    // wet/dry indicator
	Nu    *Field    // breaking eddy viscosity [m²/s]
}

func (s *Series) N() int { return len(s.T) }
func (s *Series) M() int { return len(s.X) }

// Validate checks that all arrays share N and M and that time strictly increases.
func (s *Series) Validate() error {
	n, m := s.N(), s.M()
	if n == 0 || m == 0 {
		return fmt.Errorf("empty series (%d times, %d positions)", n, m)
	}
	if len(s.Depth) != m {
		return fmt.Errorf("depth has %d positions, grid has %d", len(s.Depth), m)
	}
	for _, f := range []struct {
		name string
		f    *Field
	}{{"eta", s.Eta}, {"u", s.U}, {"wet", s.Wet}, {"nu", s.Nu}} {
		if !f.f.sized(n, m) {
			if f.f == nil {
				return fmt.Errorf("%s is missing", f.name)
			}
			return fmt.Errorf("%s is %dx%d, expecting %dx%d", f.name, f.f.N, f.f.M, n, m)
		}
	}
	for i := 1; i < n; i++ {
		if !(s.T[i] > s.T[i-1]) {
			return fmt.Errorf("time not strictly increasing at step %d (%g after %g)", i, s.T[i], s.T[i-1])
		}
	}
	return nil
}

// DryCount returns the number of samples flagged dry.
func (s *Series) DryCount(dry float64) int {
	c := 0
	for _, w := range s.Wet.V {
		if w == dry {
			c++
		}
	}
	return c
}

// Summarize prints a short description of the series.
func (s *Series) Summarize(w io.Writer, dry float64) {
	n, m := s.N(), s.M()
	fmt.Fprintf(w, " transect summary:\n")
	fmt.Fprintf(w, "  %d time steps, t = %.3f to %.3f s\n", n, s.T[0], s.T[n-1])
	fmt.Fprintf(w, "  %d grid positions, x = %.3f to %.3f m\n", m, s.X[0], s.X[m-1])
	mn, mx := math.Inf(1), math.Inf(-1)
	for _, d := range s.Depth {
		mn, mx = math.Min(mn, d), math.Max(mx, d)
	}
	fmt.Fprintf(w, "  depth %.3f to %.3f m\n", mn, mx)
	nd := s.DryCount(dry)
	fmt.Fprintf(w, "  %d of %d samples dry (%.1f%%)\n", nd, n*m, 100.*float64(nd)/float64(n*m))
}
