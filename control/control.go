// Package control holds the settings of an animation run: where the solver output
// lives, how it is named, and how frames are drawn and assembled.
package control

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Files names the three solver output files of a transect run.
type Files struct {
	Surface  string `yaml:"surface"`  // time, grid, depth and elevation
	Velocity string `yaml:"velocity"` // cross-shore velocity
	Boundary string `yaml:"boundary"` // wet/dry indicator and eddy viscosity
}

// Vars names the fields inside the files.
type Vars struct {
	Time  string `yaml:"time"`
	X     string `yaml:"x"`
	Depth string `yaml:"depth"`
	Eta   string `yaml:"eta"`
	U     string `yaml:"u"`
	Wet   string `yaml:"wet"`
	Nu    string `yaml:"nu"`
}

// Data locates the solver output and the coordinate corrections applied on load.
type Data struct {
	Dir     string  `yaml:"dir"`
	Files   Files   `yaml:"files"`
	Vars    Vars    `yaml:"vars"`
	XOffset float64 `yaml:"xoffset"` // added to every grid position [m]
	TOffset float64 `yaml:"toffset"` // added to every time [s]
	Cache   bool    `yaml:"cache"`   // keep a decoded .gob copy next to the inputs
}

// Limits are fixed axis bounds of one panel.
type Limits struct {
	XMin float64 `yaml:"xmin"`
	XMax float64 `yaml:"xmax"`
	YMin float64 `yaml:"ymin"`
	YMax float64 `yaml:"ymax"`
}

// Render controls frame selection and figure layout.
type Render struct {
	Stride   int     `yaml:"stride"`
	Width    float64 `yaml:"width"`  // [in]
	Height   float64 `yaml:"height"` // [in]
	DPI      int     `yaml:"dpi"`
	Format   string  `yaml:"format"` // png or svg
	NuScale  float64 `yaml:"nuscale"`
	Surface  Limits  `yaml:"surface"`
	Velocity Limits  `yaml:"velocity"`
}

// Anim controls playback of the assembled animation.
type Anim struct {
	Interval time.Duration `yaml:"interval"`
	Loop     bool          `yaml:"loop"`
}

// Config is the complete set of run settings.
type Config struct {
	Data     Data    `yaml:"data"`
	Dry      float64 `yaml:"dry"` // reserved wet/dry indicator value marking a dry sample
	Render   Render  `yaml:"render"`
	Anim     Anim    `yaml:"anim"`
	Out      string  `yaml:"out"`
	Progress bool    `yaml:"progress"`
}

// Default returns the settings of the debris-flow flume benchmark.
func Default() Config {
	return Config{
		Data: Data{
			Dir:   ".",
			Files: Files{Surface: "eta.nc", Velocity: "u.nc", Boundary: "mask.nc"},
			Vars: Vars{
				Time:  "time",
				X:     "x",
				Depth: "h",
				Eta:   "eta",
				U:     "u",
				Wet:   "mask",
				Nu:    "nubrk",
			},
		},
		Dry: 99,
		Render: Render{
			Stride:   100,
			Width:    8,
			Height:   7,
			DPI:      96,
			Format:   "png",
			NuScale:  3,
			Surface:  Limits{XMin: 0, XMax: 44, YMin: -1, YMax: .5},
			Velocity: Limits{XMin: 0, XMax: 44, YMin: -2, YMax: 2},
		},
		Anim: Anim{Interval: 200 * time.Millisecond, Loop: true},
		Out:  "animation.html",
	}
}

// Load reads a YAML control file over the defaults. Keys absent from the file keep
// their default value.
func Load(fp string) (Config, error) {
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(fp)); ext {
	case ".yaml", ".yml":
		b, err := os.ReadFile(fp)
		if err != nil {
			return cfg, fmt.Errorf("control.Load: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("control.Load %s: %w", fp, err)
		}
	default:
		return cfg, fmt.Errorf("control.Load: unsupported control file type %q", ext)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("control.Load %s: %w", fp, err)
	}
	return cfg, nil
}

// Validate rejects settings no run could use.
func (c Config) Validate() error {
	if c.Render.Stride <= 0 {
		return fmt.Errorf("stride must be positive, got %d", c.Render.Stride)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 || c.Render.DPI <= 0 {
		return fmt.Errorf("figure size must be positive (%gx%gin at %d dpi)", c.Render.Width, c.Render.Height, c.Render.DPI)
	}
	switch c.Render.Format {
	case "png", "svg":
	default:
		return fmt.Errorf("unknown frame format %q", c.Render.Format)
	}
	for name, l := range map[string]Limits{"surface": c.Render.Surface, "velocity": c.Render.Velocity} {
		if l.XMin >= l.XMax || l.YMin >= l.YMax {
			return fmt.Errorf("%s limits are empty: [%g,%g]x[%g,%g]", name, l.XMin, l.XMax, l.YMin, l.YMax)
		}
	}
	if c.Anim.Interval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", c.Anim.Interval)
	}
	return nil
}

// Path joins a file name onto the data directory.
func (d Data) Path(fn string) string {
	if filepath.IsAbs(fn) {
		return fn
	}
	return filepath.Join(d.Dir, fn)
}
