package transect

import (
	"fmt"
	"reflect"
)

// array is a decoded variable: its shape and its values, row-major, widened to float64.
type array struct {
	shape []int
	dims  []string // dimension names, when the file has them
	v     []float64
}

// flatten walks nested slices of any numeric element type.
func flatten(val interface{}) (array, error) {
	var a array
	rv := reflect.ValueOf(val)
	if !rv.IsValid() {
		return a, fmt.Errorf("no values")
	}
	for t := rv; t.Kind() == reflect.Slice || t.Kind() == reflect.Array; {
		a.shape = append(a.shape, t.Len())
		if t.Len() == 0 {
			break
		}
		t = t.Index(0)
	}
	var walk func(v reflect.Value, d int) error
	walk = func(v reflect.Value, d int) error {
		switch v.Kind() {
		case reflect.Slice, reflect.Array:
			if d >= len(a.shape) || v.Len() != a.shape[d] {
				return fmt.Errorf("ragged array at dimension %d", d)
			}
			for i := 0; i < v.Len(); i++ {
				if err := walk(v.Index(i), d+1); err != nil {
					return err
				}
			}
			return nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			a.v = append(a.v, float64(v.Int()))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			a.v = append(a.v, float64(v.Uint()))
		case reflect.Float32, reflect.Float64:
			a.v = append(a.v, v.Float())
		default:
			return fmt.Errorf("unsupported element type %s", v.Type())
		}
		if d != len(a.shape) {
			return fmt.Errorf("ragged array at dimension %d", d)
		}
		return nil
	}
	if err := walk(rv, 0); err != nil {
		return array{}, err
	}
	return a, nil
}

// squeezed returns the shape without its singleton dimensions.
func (a array) squeezed() []int {
	var s []int
	for _, d := range a.shape {
		if d != 1 {
			s = append(s, d)
		}
	}
	return s
}

// squeezedDims returns the names of the non-singleton dimensions, nil when unnamed.
func (a array) squeezedDims() []string {
	if len(a.dims) != len(a.shape) {
		return nil
	}
	var s []string
	for k, d := range a.shape {
		if d != 1 {
			s = append(s, a.dims[k])
		}
	}
	return s
}

// setMissing replaces every sample equal to one of the fill values with NoData.
func (a array) setMissing(fill []float64) {
	if len(fill) == 0 {
		return
	}
	for k, v := range a.v {
		for _, f := range fill {
			if v == f {
				a.v[k] = NoData
				break
			}
		}
	}
}

// vector returns the values of a 1-D variable, allowing singleton dimensions.
func (a array) vector() ([]float64, error) {
	if sq := a.squeezed(); len(sq) > 1 {
		return nil, fmt.Errorf("expecting a 1-D array, got shape %v", a.shape)
	}
	return a.v, nil
}

// sized is vector with a required length.
func (a array) sized(n int) ([]float64, error) {
	v, err := a.vector()
	if err != nil {
		return nil, err
	}
	if len(v) != n {
		return nil, fmt.Errorf("expecting %d values, got %d", n, len(v))
	}
	return v, nil
}

// field arranges the values as an n×m field. The singleton spatial dimension of solver
// output is dropped, a transposed (m×n) layout is turned around and a flat array of
// n·m values is taken as row-major. When the dimensions are named, the position of the
// time dimension decides the layout, which also settles the n == m case.
func (a array) field(n, m int, time string) (*Field, error) {
	if len(a.v) != n*m {
		return nil, fmt.Errorf("shape %v does not hold %dx%d samples", a.shape, n, m)
	}
	f := &Field{N: n, M: m, V: a.v}
	sq := a.squeezed()
	if len(sq) < 2 || n == 1 || m == 1 {
		return f, nil
	}
	if len(sq) != 2 {
		return nil, fmt.Errorf("shape %v is not %dx%d", a.shape, n, m)
	}
	if dn := a.squeezedDims(); dn != nil && time != "" {
		switch {
		case dn[0] == time && sq[0] == n && sq[1] == m:
			return f, nil
		case dn[1] == time && sq[0] == m && sq[1] == n:
			return a.transposed(n, m), nil
		case dn[0] == time || dn[1] == time:
			return nil, fmt.Errorf("shape %v %v is not %dx%d", a.shape, a.dims, n, m)
		}
	}
	switch {
	case sq[0] == n && sq[1] == m:
		return f, nil
	case sq[0] == m && sq[1] == n:
		return a.transposed(n, m), nil
	}
	return nil, fmt.Errorf("shape %v is not %dx%d", a.shape, n, m)
}

// transposed reads values stored m×n into an n×m field.
func (a array) transposed(n, m int) *Field {
	t := NewField(n, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			t.V[j*m+i] = a.v[i*n+j]
		}
	}
	return t
}
