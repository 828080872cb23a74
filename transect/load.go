package transect

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/giboul/tsunami-benchmarks/control"
)

// Coordinate corrections between the simulated and the physical flume, used when a
// control file does not give its own.
const (
	DefaultXOffset = 0. // [m]
	DefaultTOffset = 0. // [s]
)

const cacheName = "transect.gob"

// Load reads the three solver output files described by d, applies the grid and time
// offsets and checks that every array agrees on N and M. Problems with the input are
// reported as *DataFormatError.
func Load(d control.Data) (*Series, error) {
	if !d.Cache {
		return load(d)
	}
	fp, key := d.Path(cacheName), cacheKey(d)
	if s, err := loadGob(fp, key); err == nil {
		return s, nil
	}
	s, err := load(d)
	if err != nil {
		return nil, err
	}
	if err := s.saveGob(fp, key); err != nil {
		log.Printf(" transect: cache not written, continuing: %v", err)
	}
	return s, nil
}

func load(d control.Data) (*Series, error) {
	v := d.Vars
	sfp, vfp, bfp := d.Path(d.Files.Surface), d.Path(d.Files.Velocity), d.Path(d.Files.Boundary)
	sf, err := readFields(sfp, v.Time, v.X, v.Depth, v.Eta)
	if err != nil {
		return nil, err
	}
	vf, err := readFields(vfp, v.U)
	if err != nil {
		return nil, err
	}
	bf, err := readFields(bfp, v.Wet, v.Nu)
	if err != nil {
		return nil, err
	}

	var s Series
	if s.T, err = sf[v.Time].vector(); err != nil {
		return nil, &DataFormatError{File: sfp, Field: v.Time, Reason: "bad time axis", Err: err}
	}
	if s.X, err = sf[v.X].vector(); err != nil {
		return nil, &DataFormatError{File: sfp, Field: v.X, Reason: "bad grid", Err: err}
	}
	n, m := len(s.T), len(s.X)
	if n == 0 || m == 0 {
		return nil, formatErr(sfp, "", "empty time axis or grid (%d times, %d positions)", n, m)
	}
	if s.Depth, err = sf[v.Depth].sized(m); err != nil {
		return nil, &DataFormatError{File: sfp, Field: v.Depth, Reason: "dimension mismatch", Err: err}
	}
	for _, f := range []struct {
		fp, name string
		a        array
		dst      **Field
	}{
		{sfp, v.Eta, sf[v.Eta], &s.Eta},
		{vfp, v.U, vf[v.U], &s.U},
		{bfp, v.Wet, bf[v.Wet], &s.Wet},
		{bfp, v.Nu, bf[v.Nu], &s.Nu},
	} {
		if *f.dst, err = f.a.field(n, m, v.Time); err != nil {
			return nil, &DataFormatError{File: f.fp, Field: f.name, Reason: "dimension mismatch", Err: err}
		}
	}

	// the same variable may back several vectors
	s.T, s.X, s.Depth = slices.Clone(s.T), slices.Clone(s.X), slices.Clone(s.Depth)
	for i := range s.X {
		s.X[i] += d.XOffset
	}
	for i := range s.T {
		s.T[i] += d.TOffset
	}
	if err := s.Validate(); err != nil {
		return nil, &DataFormatError{File: sfp, Reason: "inconsistent series", Err: err}
	}
	return &s, nil
}

// readFields returns the named variables of a .nc or .bin file.
func readFields(fp string, names ...string) (map[string]array, error) {
	if _, err := os.Stat(fp); err != nil {
		return nil, &DataFormatError{File: fp, Reason: "file not found", Err: err}
	}
	switch ext := strings.ToLower(filepath.Ext(fp)); ext {
	case ".nc", ".nc4", ".cdf":
		return readNC(fp, names)
	case ".bin":
		all, err := readBin(fp)
		if err != nil {
			return nil, err
		}
		out := make(map[string]array, len(names))
		for _, nm := range names {
			a, ok := all[nm]
			if !ok {
				return nil, formatErr(fp, nm, "field not found")
			}
			out[nm] = a
		}
		return out, nil
	default:
		return nil, formatErr(fp, "", "unsupported file type %q", ext)
	}
}

// Inspect lists the variables of a solver output file, sorted by name.
func Inspect(fp string) ([]Var, error) {
	if _, err := os.Stat(fp); err != nil {
		return nil, &DataFormatError{File: fp, Reason: "file not found", Err: err}
	}
	var (
		vs  []Var
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(fp)); ext {
	case ".nc", ".nc4", ".cdf":
		vs, err = listNC(fp)
	case ".bin":
		vs, err = listBin(fp)
	default:
		return nil, formatErr(fp, "", "unsupported file type %q", ext)
	}
	if err != nil {
		return nil, err
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].Name < vs[j].Name })
	return vs, nil
}

// IsDataFormat reports whether err is, or wraps, a *DataFormatError.
func IsDataFormat(err error) bool {
	var dfe *DataFormatError
	return errors.As(err, &dfe)
}

// cacheKey identifies the decoded series: file names, field names, offsets, and the size
// and modification time of every input, so a re-written input invalidates the cache.
func cacheKey(d control.Data) string {
	k := fmt.Sprintf("%+v|%+v|%g|%g", d.Files, d.Vars, d.XOffset, d.TOffset)
	for _, fn := range []string{d.Files.Surface, d.Files.Velocity, d.Files.Boundary} {
		fi, err := os.Stat(d.Path(fn))
		if err != nil {
			k += "|missing"
			continue
		}
		k += fmt.Sprintf("|%d@%d", fi.Size(), fi.ModTime().UnixNano())
	}
	return k
}
