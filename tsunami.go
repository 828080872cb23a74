// Package tsunami turns the solver output of a one-dimensional tsunami transect into an
// animation of the free surface and the velocity field.
//
// The pipeline is strictly sequential: the fields are loaded once, masked once, and
// frames are drawn one figure at a time in ascending time-step order.
package tsunami

import (
	"fmt"
	"io"

	"github.com/gosuri/uiprogress"

	"github.com/giboul/tsunami-benchmarks/anim"
	"github.com/giboul/tsunami-benchmarks/control"
	"github.com/giboul/tsunami-benchmarks/gauge"
	"github.com/giboul/tsunami-benchmarks/render"
	"github.com/giboul/tsunami-benchmarks/transect"
)

// Prepare loads and masks the transect described by cfg, printing a summary to w.
func Prepare(cfg control.Config, w io.Writer) (*transect.Series, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tt := newTimer(w)
	fmt.Fprintf(w, " loading %s\n", cfg.Data.Dir)
	s, err := transect.Load(cfg.Data)
	if err != nil {
		return nil, err
	}
	s.Summarize(w, cfg.Dry)
	ms, err := transect.Mask(s, cfg.Dry)
	if err != nil {
		return nil, err
	}
	tt.Lap(" transect loaded and masked")
	return ms, nil
}

// Animate renders every stride-th time step of the configured transect and assembles
// the frames in ascending time-step order.
func Animate(cfg control.Config, w io.Writer) (*anim.Animation, error) {
	s, err := Prepare(cfg, w)
	if err != nil {
		return nil, err
	}
	return Frames(s, cfg, w)
}

// Frames renders the selected time steps of an already masked series.
func Frames(s *transect.Series, cfg control.Config, w io.Writer) (*anim.Animation, error) {
	r, err := render.New(s, render.OptionsFrom(cfg.Render))
	if err != nil {
		return nil, err
	}
	ii, err := render.Indices(r.Len(), cfg.Render.Stride)
	if err != nil {
		return nil, err
	}

	tt := newTimer(w)
	fmt.Fprintf(w, " rendering %d of %d time steps..\n", len(ii), r.Len())
	var bar *uiprogress.Bar
	if cfg.Progress {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(ii)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			if k := b.Current(); k < len(ii) {
				return "t = " + render.TimeLabel(s.T[ii[k]])
			}
			return "done"
		})
		defer uiprogress.Stop()
	}

	a := anim.New(cfg.Anim.Interval, cfg.Anim.Loop)
	for _, i := range ii {
		f, err := r.Render(i)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		a.Add(f)
		if bar != nil {
			bar.Incr()
		}
	}
	tt.Lap(fmt.Sprintf(" %d frames rendered", a.Len()))
	return a, nil
}

// Gauge extracts the series nearest x from the configured transect, compares it with the
// observed record obs (skipped when empty) and saves the figure to fp.
func Gauge(cfg control.Config, x float64, quantity, obs string, toffset float64, fp string, w io.Writer) (*gauge.Gauge, error) {
	s, err := Prepare(cfg, w)
	if err != nil {
		return nil, err
	}
	g, err := gauge.Extract(s, x)
	if err != nil {
		return nil, err
	}
	var o *gauge.Observed
	if obs != "" {
		if o, err = gauge.ReadObserved(obs, toffset); err != nil {
			return nil, err
		}
		rmse, n, err := g.RMSE(o, quantity)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(w, " gauge x = %.2f: RMSE %.4f over %d observations\n", g.X, rmse, n)
	}
	if err := gauge.Compare(fp, g, o, quantity); err != nil {
		return nil, err
	}
	return g, nil
}
