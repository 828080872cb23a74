// Package render draws one animation frame of a masked transect: the bottom profile with
// the water surface above it, and the cross-shore velocity with the scaled breaking eddy
// viscosity below.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/giboul/tsunami-benchmarks/control"
	"github.com/giboul/tsunami-benchmarks/transect"
)

var (
	bottomColor  = color.RGBA{R: 153, G: 102, B: 51, A: 255}
	bottomFill   = color.RGBA{R: 222, G: 200, B: 160, A: 255}
	surfaceColor = color.RGBA{B: 204, A: 255}
	uColor       = color.RGBA{B: 204, A: 255}
	nuColor      = color.RGBA{R: 204, A: 255}
)

// Options set the fixed layout shared by every frame.
type Options struct {
	Surface  control.Limits
	Velocity control.Limits
	NuScale  float64
	Width    vg.Length
	Height   vg.Length
	DPI      int
	Format   string // png or svg
}

// OptionsFrom converts control settings.
func OptionsFrom(r control.Render) Options {
	return Options{
		Surface:  r.Surface,
		Velocity: r.Velocity,
		NuScale:  r.NuScale,
		Width:    vg.Length(r.Width) * vg.Inch,
		Height:   vg.Length(r.Height) * vg.Inch,
		DPI:      r.DPI,
		Format:   r.Format,
	}
}

// Frame is one rendered snapshot of the transect.
type Frame struct {
	Index  int     // time step
	Time   float64 // [s]
	Title  string
	Format string
	Data   []byte // encoded image
}

// Renderer draws frames of a masked series.
type Renderer struct {
	s   *transect.Series
	opt Options
}

// New returns a renderer over s, which should already be masked.
func New(s *transect.Series, opt Options) (*Renderer, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("render.New: %w", err)
	}
	switch opt.Format {
	case "png", "svg":
	default:
		return nil, fmt.Errorf("render.New: unknown format %q", opt.Format)
	}
	if opt.Width <= 0 || opt.Height <= 0 || opt.DPI <= 0 {
		return nil, fmt.Errorf("render.New: figure size must be positive")
	}
	return &Renderer{s: s, opt: opt}, nil
}

// Len returns the number of time steps available.
func (r *Renderer) Len() int { return r.s.N() }

// TimeLabel formats a time for frame titles.
func TimeLabel(t float64) string { return fmt.Sprintf("%.3f seconds", t) }

// Figure builds the two panels of time step i.
func (r *Renderer) Figure(i int) (*Figure, error) {
	if i < 0 || i >= r.s.N() {
		return nil, fmt.Errorf("render: time step %d out of range [0,%d)", i, r.s.N())
	}
	s, o := r.s, r.opt
	f := &Figure{Index: i, Time: s.T[i], Title: "Surface at t = " + TimeLabel(s.T[i])}

	bottom := make([]float64, len(s.Depth))
	for j, d := range s.Depth {
		bottom[j] = -d
	}
	nu := make([]float64, s.M())
	for j, v := range s.Nu.Row(i) {
		nu[j] = o.NuScale * v // NoData stays NoData
	}

	var err error
	f.Surface = plot.New()
	f.Surface.Title.Text = f.Title
	f.Surface.X.Label.Text = "x (m)"
	f.Surface.Y.Label.Text = "elevation (m)"
	if f.Bottom, err = addLines(f.Surface, s.X, bottom, "bottom", bottomColor, bottomFill); err != nil {
		return nil, err
	}
	if f.Eta, err = addLines(f.Surface, s.X, s.Eta.Row(i), "surface", surfaceColor, nil); err != nil {
		return nil, err
	}
	setLimits(f.Surface, o.Surface)

	f.Velocity = plot.New()
	f.Velocity.X.Label.Text = "x (m)"
	f.Velocity.Y.Label.Text = "u (m/s), ν (m²/s)"
	if f.U, err = addLines(f.Velocity, s.X, s.U.Row(i), "u", uColor, nil); err != nil {
		return nil, err
	}
	if f.Nu, err = addLines(f.Velocity, s.X, nu, fmt.Sprintf("%g × ν", o.NuScale), nuColor, nil); err != nil {
		return nil, err
	}
	setLimits(f.Velocity, o.Velocity)
	return f, nil
}

// Render draws and encodes time step i. The figure is dropped once encoded.
func (r *Renderer) Render(i int) (*Frame, error) {
	f, err := r.Figure(i)
	if err != nil {
		return nil, err
	}
	b, err := f.Encode(r.opt.Format, r.opt.Width, r.opt.Height, r.opt.DPI)
	if err != nil {
		return nil, fmt.Errorf("render: time step %d: %w", i, err)
	}
	return &Frame{Index: i, Time: f.Time, Title: f.Title, Format: r.opt.Format, Data: b}, nil
}

// addLines draws y against x as one line per run of valid samples and registers the
// first run in the legend.
func addLines(p *plot.Plot, x, y []float64, label string, c color.Color, fill color.Color) ([]*plotter.Line, error) {
	var ls []*plotter.Line
	for _, seg := range Segments(x, y) {
		l, err := plotter.NewLine(seg)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", label, err)
		}
		l.Color = c
		l.Width = vg.Points(1.5)
		l.FillColor = fill
		p.Add(l)
		ls = append(ls, l)
	}
	if len(ls) > 0 {
		p.Legend.Add(label, ls[0])
	}
	return ls, nil
}

// setLimits fixes the axis ranges; it must follow p.Add, which widens them to the data.
func setLimits(p *plot.Plot, l control.Limits) {
	p.X.Min, p.X.Max = l.XMin, l.XMax
	p.Y.Min, p.Y.Max = l.YMin, l.YMax
	p.Legend.Top = true
}
