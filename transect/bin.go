package transect

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Var is a named variable of a solver output file.
type Var struct {
	Name   string
	Shape  []int
	Values []float64
}

// .bin layout, little endian:
//
//	int32 nvar
//	nvar × { int32 len, name [len]byte, int32 ndim, dims [ndim]int32, values [prod(dims)]float32 }
const (
	maxNameLen = 1 << 10
	maxDims    = 8
)

func readBin(fp string) (map[string]array, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, &DataFormatError{File: fp, Reason: "cannot read", Err: err}
	}
	buf := bytes.NewReader(b)
	bad := func(field, reason string, err error) error {
		return &DataFormatError{File: fp, Field: field, Reason: reason, Err: err}
	}

	var nvar int32
	if err := binary.Read(buf, binary.LittleEndian, &nvar); err != nil {
		return nil, bad("", "missing header", err)
	}
	if nvar < 0 {
		return nil, bad("", fmt.Sprintf("negative variable count %d", nvar), nil)
	}
	out := make(map[string]array, nvar)
	for i := int32(0); i < nvar; i++ {
		var nlen int32
		if err := binary.Read(buf, binary.LittleEndian, &nlen); err != nil {
			return nil, bad("", fmt.Sprintf("variable %d: truncated", i), err)
		}
		if nlen <= 0 || nlen > maxNameLen {
			return nil, bad("", fmt.Sprintf("variable %d: bad name length %d", i, nlen), nil)
		}
		nm := make([]byte, nlen)
		if _, err := io.ReadFull(buf, nm); err != nil {
			return nil, bad("", fmt.Sprintf("variable %d: truncated name", i), err)
		}
		name := string(nm)

		var ndim int32
		if err := binary.Read(buf, binary.LittleEndian, &ndim); err != nil {
			return nil, bad(name, "truncated", err)
		}
		if ndim < 0 || ndim > maxDims {
			return nil, bad(name, fmt.Sprintf("bad dimension count %d", ndim), nil)
		}
		dims := make([]int32, ndim)
		if err := binary.Read(buf, binary.LittleEndian, dims); err != nil {
			return nil, bad(name, "truncated dimensions", err)
		}
		a := array{shape: make([]int, ndim)}
		cnt := 1
		for k, d := range dims {
			if d < 0 {
				return nil, bad(name, fmt.Sprintf("negative dimension %d", d), nil)
			}
			a.shape[k] = int(d)
			cnt *= int(d)
		}
		if cnt*4 > buf.Len() {
			return nil, bad(name, fmt.Sprintf("%d values declared, %d bytes left", cnt, buf.Len()), nil)
		}
		f32 := make([]float32, cnt)
		if err := binary.Read(buf, binary.LittleEndian, f32); err != nil {
			return nil, bad(name, "truncated values", err)
		}
		a.v = make([]float64, cnt)
		for k, v := range f32 {
			a.v[k] = float64(v)
		}
		out[name] = a
	}
	return out, nil
}

func listBin(fp string) ([]Var, error) {
	m, err := readBin(fp)
	if err != nil {
		return nil, err
	}
	vs := make([]Var, 0, len(m))
	for nm, a := range m {
		vs = append(vs, Var{Name: nm, Shape: a.shape, Values: a.v})
	}
	return vs, nil
}

// WriteBin saves variables in the .bin layout. Values are stored as float32.
func WriteBin(fp string, vars []Var) error {
	buf := new(bytes.Buffer)
	put := func(v interface{}) {
		binary.Write(buf, binary.LittleEndian, v) // writes to a bytes.Buffer do not fail
	}
	put(int32(len(vars)))
	for _, v := range vars {
		cnt := 1
		for _, d := range v.Shape {
			cnt *= d
		}
		if cnt != len(v.Values) {
			return fmt.Errorf("WriteBin %s: shape %v does not hold %d values", v.Name, v.Shape, len(v.Values))
		}
		put(int32(len(v.Name)))
		buf.WriteString(v.Name)
		put(int32(len(v.Shape)))
		dims := make([]int32, len(v.Shape))
		for i, d := range v.Shape {
			dims[i] = int32(d)
		}
		put(dims)
		f32 := make([]float32, len(v.Values))
		for i, x := range v.Values {
			f32[i] = float32(x)
		}
		put(f32)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("WriteBin failed: %v", err)
	}
	return nil
}
