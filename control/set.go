package control

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Set applies a single "key=value" override, with keys written the way they appear in
// a control file (e.g. "render.stride=50", "dry=99", "render.surface.ymax=0.6").
func (c *Config) Set(kv string) error {
	k, v, ok := strings.Cut(kv, "=")
	if !ok {
		return fmt.Errorf("control.Set: expected key=value, got %q", kv)
	}
	k, v = strings.ToLower(strings.TrimSpace(k)), strings.TrimSpace(v)

	str := func(p *string) error { *p = v; return nil }
	flt := func(p *float64) error {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return err
		}
		*p = f
		return nil
	}
	num := func(p *int) error {
		i, err := cast.ToIntE(v)
		if err != nil {
			return err
		}
		*p = i
		return nil
	}
	bln := func(p *bool) error {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return err
		}
		*p = b
		return nil
	}
	lim := func(l *Limits, sub string) error {
		switch sub {
		case "xmin":
			return flt(&l.XMin)
		case "xmax":
			return flt(&l.XMax)
		case "ymin":
			return flt(&l.YMin)
		case "ymax":
			return flt(&l.YMax)
		}
		return fmt.Errorf("unknown limit %q", sub)
	}

	var err error
	switch k {
	case "data.dir":
		err = str(&c.Data.Dir)
	case "data.files.surface":
		err = str(&c.Data.Files.Surface)
	case "data.files.velocity":
		err = str(&c.Data.Files.Velocity)
	case "data.files.boundary":
		err = str(&c.Data.Files.Boundary)
	case "data.vars.time":
		err = str(&c.Data.Vars.Time)
	case "data.vars.x":
		err = str(&c.Data.Vars.X)
	case "data.vars.depth":
		err = str(&c.Data.Vars.Depth)
	case "data.vars.eta":
		err = str(&c.Data.Vars.Eta)
	case "data.vars.u":
		err = str(&c.Data.Vars.U)
	case "data.vars.wet":
		err = str(&c.Data.Vars.Wet)
	case "data.vars.nu":
		err = str(&c.Data.Vars.Nu)
	case "data.xoffset":
		err = flt(&c.Data.XOffset)
	case "data.toffset":
		err = flt(&c.Data.TOffset)
	case "data.cache":
		err = bln(&c.Data.Cache)
	case "dry":
		err = flt(&c.Dry)
	case "render.stride":
		err = num(&c.Render.Stride)
	case "render.width":
		err = flt(&c.Render.Width)
	case "render.height":
		err = flt(&c.Render.Height)
	case "render.dpi":
		err = num(&c.Render.DPI)
	case "render.format":
		err = str(&c.Render.Format)
	case "render.nuscale":
		err = flt(&c.Render.NuScale)
	case "anim.interval":
		d, derr := cast.ToDurationE(v)
		if derr == nil {
			c.Anim.Interval = d
		}
		err = derr
	case "anim.loop":
		err = bln(&c.Anim.Loop)
	case "out":
		err = str(&c.Out)
	case "progress":
		err = bln(&c.Progress)
	default:
		switch {
		case strings.HasPrefix(k, "render.surface."):
			err = lim(&c.Render.Surface, strings.TrimPrefix(k, "render.surface."))
		case strings.HasPrefix(k, "render.velocity."):
			err = lim(&c.Render.Velocity, strings.TrimPrefix(k, "render.velocity."))
		default:
			return fmt.Errorf("control.Set: unknown key %q", k)
		}
	}
	if err != nil {
		return fmt.Errorf("control.Set %s: %w", k, err)
	}
	return nil
}
