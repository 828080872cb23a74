package render

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Figure is the drawing of one time step: two stacked panels sharing the x axis.
// It is owned by whoever asked for it; nothing keeps a reference once it is encoded.
type Figure struct {
	Index    int
	Time     float64
	Title    string
	Surface  *plot.Plot
	Velocity *plot.Plot

	// lines drawn, one per run of valid samples
	Bottom, Eta, U, Nu []*plotter.Line
}

// Draw lays the panels out vertically on c.
func (f *Figure) Draw(c draw.Canvas) {
	ps := [][]*plot.Plot{{f.Surface}, {f.Velocity}}
	t := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
	}
	cs := plot.Align(ps, t, c)
	for j := range ps {
		ps[j][0].Draw(cs[j][0])
	}
}

// Encode draws the figure on a new canvas of w×h and returns the image bytes.
func (f *Figure) Encode(format string, w, h vg.Length, dpi int) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "png":
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
		f.Draw(draw.New(c))
		if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
			return nil, err
		}
	case "svg":
		c := vgsvg.New(w, h)
		f.Draw(draw.New(c))
		if _, err := c.WriteTo(&buf); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return buf.Bytes(), nil
}
