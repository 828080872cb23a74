package gauge

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/giboul/tsunami-benchmarks/render"
)

var (
	observedColor  = color.RGBA{B: 255, A: 255}
	simulatedColor = color.RGBA{R: 255, A: 255}
)

var ylabels = map[string]string{
	"eta": "η (m)",
	"u":   "u (m/s)",
}

// Plot builds the observed vs simulated figure. obs may be nil.
func Plot(g *Gauge, obs *Observed, quantity string) (*plot.Plot, error) {
	v, err := g.Values(quantity)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Gauge at x = %.2f", g.X)
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = ylabels[quantity]
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	if obs != nil {
		xy := make(plotter.XYs, 0, len(obs.T))
		for k := range obs.T {
			xy = append(xy, plotter.XY{X: obs.T[k], Y: obs.V[k]})
		}
		l, err := plotter.NewLine(xy)
		if err != nil {
			return nil, fmt.Errorf("gauge.Plot: observed: %w", err)
		}
		l.Color = observedColor
		p.Add(l)
		p.Legend.Add("Experiment", l)
	}

	for k, seg := range render.Segments(g.T, v) {
		l, err := plotter.NewLine(seg)
		if err != nil {
			return nil, fmt.Errorf("gauge.Plot: simulated: %w", err)
		}
		l.Color = simulatedColor
		p.Add(l)
		if k == 0 {
			p.Legend.Add("Simulated", l)
		}
	}
	return p, nil
}

// Compare saves the observed vs simulated figure to fp; the image format follows the
// file extension (.png, .svg, .pdf).
func Compare(fp string, g *Gauge, obs *Observed, quantity string) error {
	p, err := Plot(g, obs, quantity)
	if err != nil {
		return err
	}
	if err := p.Save(9*vg.Inch, 4*vg.Inch, fp); err != nil {
		return fmt.Errorf("gauge.Compare failed: %v", err)
	}
	return nil
}
