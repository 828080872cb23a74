package anim

import (
	"bytes"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
)

// GIF encodes the animation as an animated GIF. Only PNG frames can be converted.
// Frames are decoded one at a time.
func (a *Animation) GIF(w io.Writer) error {
	if len(a.Frames) == 0 {
		return fmt.Errorf("anim: no frames")
	}
	delay := int(a.Interval.Milliseconds() / 10) // 100ths of a second
	if delay < 1 {
		delay = 1
	}
	g := &gif.GIF{LoopCount: -1}
	if a.Loop {
		g.LoopCount = 0
	}
	for i, f := range a.Frames {
		if f.Format != "png" {
			return fmt.Errorf("anim: frame %d is %s, GIF needs png frames", i, f.Format)
		}
		img, err := png.Decode(bytes.NewReader(f.Data))
		if err != nil {
			return fmt.Errorf("anim: frame %d: %w", i, err)
		}
		b := img.Bounds()
		pm := image.NewPaletted(b, palette.Plan9)
		draw.FloydSteinberg.Draw(pm, b, img, b.Min)
		g.Image = append(g.Image, pm)
		g.Delay = append(g.Delay, delay)
	}
	return gif.EncodeAll(w, g)
}

// WriteGIF saves the animated GIF to fp.
func (a *Animation) WriteGIF(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf("anim.WriteGIF: %w", err)
	}
	if err := a.GIF(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
