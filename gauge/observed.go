package gauge

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cast"
)

// Observed is a measured record.
type Observed struct {
	Name string
	T, V []float64
}

// ReadObserved reads a two-column text record (time, value) separated by whitespace or
// commas. Lines starting with # are skipped. toffset is added to every time.
func ReadObserved(fp string, toffset float64) (*Observed, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("gauge.ReadObserved: %w", err)
	}
	defer f.Close()

	o := Observed{Name: fp}
	sc := bufio.NewScanner(f)
	ln := 0
	for sc.Scan() {
		ln++
		l := strings.TrimSpace(sc.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		sp := strings.FieldsFunc(l, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
		if len(sp) < 2 {
			return nil, fmt.Errorf("gauge.ReadObserved: %s line %d: expecting 2 columns, found %d", fp, ln, len(sp))
		}
		t, err := cast.ToFloat64E(sp[0])
		if err != nil {
			return nil, fmt.Errorf("gauge.ReadObserved: %s line %d: %w", fp, ln, err)
		}
		v, err := cast.ToFloat64E(sp[1])
		if err != nil {
			return nil, fmt.Errorf("gauge.ReadObserved: %s line %d: %w", fp, ln, err)
		}
		o.T = append(o.T, t+toffset)
		o.V = append(o.V, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gauge.ReadObserved: %w", err)
	}
	if len(o.T) == 0 {
		return nil, fmt.Errorf("gauge.ReadObserved: %s: no records", fp)
	}
	return &o, nil
}
