package transect

import (
	"fmt"
	"math"
	"slices"
)

// NoData marks a sample with no valid physical value. Test with IsNoData, never with ==.
var NoData = math.NaN()

// IsNoData reports whether v is the no-data marker.
func IsNoData(v float64) bool { return math.IsNaN(v) }

// Field is an N×M array of samples stored row-major: one row per time step, one column
// per grid position.
type Field struct {
	N, M int
	V    []float64
}

// NewField returns an N×M field of zeros.
func NewField(n, m int) *Field {
	return &Field{N: n, M: m, V: make([]float64, n*m)}
}

// FieldOf builds a field from rows; all rows must share one length.
func FieldOf(rows [][]float64) (*Field, error) {
	if len(rows) == 0 {
		return &Field{}, nil
	}
	f := NewField(len(rows), len(rows[0]))
	for t, r := range rows {
		if len(r) != f.M {
			return nil, fmt.Errorf("FieldOf: row %d has %d samples, expecting %d", t, len(r), f.M)
		}
		copy(f.V[t*f.M:], r)
	}
	return f, nil
}

func (f *Field) At(t, x int) float64     { return f.V[t*f.M+x] }
func (f *Field) Set(t, x int, v float64) { f.V[t*f.M+x] = v }

// Row returns the samples of time step t. The slice aliases the field.
func (f *Field) Row(t int) []float64 { return f.V[t*f.M : (t+1)*f.M] }

// Clone returns a deep copy.
func (f *Field) Clone() *Field {
	return &Field{N: f.N, M: f.M, V: slices.Clone(f.V)}
}

func (f *Field) sized(n, m int) bool {
	return f != nil && f.N == n && f.M == m && len(f.V) == n*m
}
