package transect

import (
	"fmt"
	"slices"
)

// Mask returns a copy of s in which elevation, velocity and eddy viscosity hold NoData
// wherever the wet/dry indicator equals dry. Wet samples are copied unchanged and s
// itself is not modified.
func Mask(s *Series, dry float64) (*Series, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("transect.Mask: %w", err)
	}
	o := &Series{
		T:     slices.Clone(s.T),
		X:     slices.Clone(s.X),
		Depth: slices.Clone(s.Depth),
		Eta:   s.Eta.Clone(),
		U:     s.U.Clone(),
		Wet:   s.Wet.Clone(),
		Nu:    s.Nu.Clone(),
	}
	for k, w := range s.Wet.V {
		if w == dry {
			o.Eta.V[k] = NoData
			o.U.V[k] = NoData
			o.Nu.V[k] = NoData
		}
	}
	return o, nil
}
