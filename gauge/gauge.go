// Package gauge samples the transect at a fixed position and compares the result with
// laboratory gauge records.
package gauge

import (
	"fmt"
	"math"
	"sort"

	"github.com/giboul/tsunami-benchmarks/transect"
)

// Gauge is the time series of the masked fields at one grid position.
type Gauge struct {
	X     float64 // grid position actually sampled
	Index int
	T     []float64
	Eta   []float64
	U     []float64
}

// Extract returns the series at the grid position nearest x. NoData samples are kept.
func Extract(s *transect.Series, x float64) (*Gauge, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("gauge.Extract: %w", err)
	}
	if math.IsNaN(x) {
		return nil, fmt.Errorf("gauge.Extract: position is NaN")
	}
	j, d := 0, math.Inf(1)
	for k, xk := range s.X {
		if dd := math.Abs(xk - x); dd < d {
			j, d = k, dd
		}
	}
	g := Gauge{
		X:     s.X[j],
		Index: j,
		T:     append([]float64(nil), s.T...),
		Eta:   make([]float64, s.N()),
		U:     make([]float64, s.N()),
	}
	for i := 0; i < s.N(); i++ {
		g.Eta[i] = s.Eta.At(i, j)
		g.U[i] = s.U.At(i, j)
	}
	return &g, nil
}

// Values returns the series for quantity "eta" or "u".
func (g *Gauge) Values(quantity string) ([]float64, error) {
	switch quantity {
	case "eta":
		return g.Eta, nil
	case "u":
		return g.U, nil
	}
	return nil, fmt.Errorf("gauge: unknown quantity %q", quantity)
}

// At interpolates the series linearly at time t. ok is false outside the record or when
// a neighbouring sample is NoData.
func (g *Gauge) At(v []float64, t float64) (float64, bool) {
	n := len(g.T)
	if n == 0 || t < g.T[0] || t > g.T[n-1] {
		return 0., false
	}
	i := sort.SearchFloat64s(g.T, t)
	if g.T[i] == t {
		return v[i], !transect.IsNoData(v[i])
	}
	v0, v1 := v[i-1], v[i]
	if transect.IsNoData(v0) || transect.IsNoData(v1) {
		return 0., false
	}
	w := (t - g.T[i-1]) / (g.T[i] - g.T[i-1])
	return v0 + w*(v1-v0), true
}

// RMSE is the root-mean-square difference between observations and the simulated
// quantity, over the observations that fall within the simulated record. n is the
// number of samples compared.
func (g *Gauge) RMSE(obs *Observed, quantity string) (rmse float64, n int, err error) {
	v, err := g.Values(quantity)
	if err != nil {
		return 0., 0, err
	}
	ss := 0.
	for k, t := range obs.T {
		s, ok := g.At(v, t)
		if !ok || math.IsNaN(obs.V[k]) {
			continue
		}
		ss += (s - obs.V[k]) * (s - obs.V[k])
		n++
	}
	if n == 0 {
		return math.NaN(), 0, nil
	}
	return math.Sqrt(ss / float64(n)), n, nil
}
