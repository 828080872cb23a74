package transect

import (
	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// attributes marking stored samples as missing
var fillAttributes = []string{"_FillValue", "missing_value"}

// readNC reads the named variables of a NetCDF file (classic CDF or NetCDF-4).
func readNC(fp string, names []string) (map[string]array, error) {
	nc, err := netcdf.Open(fp)
	if err != nil {
		return nil, &DataFormatError{File: fp, Reason: "cannot open NetCDF file", Err: err}
	}
	defer nc.Close()

	out := make(map[string]array, len(names))
	for _, nm := range names {
		vr, err := nc.GetVariable(nm)
		if err != nil {
			return nil, &DataFormatError{File: fp, Field: nm, Reason: "field not found", Err: err}
		}
		a, err := decode(vr)
		if err != nil {
			return nil, &DataFormatError{File: fp, Field: nm, Reason: "unreadable values", Err: err}
		}
		out[nm] = a
	}
	return out, nil
}

// listNC decodes every variable of a NetCDF file.
func listNC(fp string) ([]Var, error) {
	nc, err := netcdf.Open(fp)
	if err != nil {
		return nil, &DataFormatError{File: fp, Reason: "cannot open NetCDF file", Err: err}
	}
	defer nc.Close()

	var vs []Var
	for _, nm := range nc.ListVariables() {
		vr, err := nc.GetVariable(nm)
		if err != nil {
			return nil, &DataFormatError{File: fp, Field: nm, Reason: "unreadable variable", Err: err}
		}
		a, err := decode(vr)
		if err != nil {
			continue // non-numeric (e.g. string) variables have no place in a transect
		}
		vs = append(vs, Var{Name: nm, Shape: a.shape, Values: a.v})
	}
	return vs, nil
}

// decode flattens a variable, keeps its dimension names and turns fill samples into NoData.
func decode(vr *api.Variable) (array, error) {
	a, err := flatten(vr.Values)
	if err != nil {
		return a, err
	}
	a.dims = vr.Dimensions
	a.setMissing(fillValues(vr.Attributes))
	return a, nil
}

// fillValues returns the _FillValue and missing_value of a variable, scalar or list.
func fillValues(at api.AttributeMap) []float64 {
	if at == nil {
		return nil
	}
	var fv []float64
	for _, k := range fillAttributes {
		v, ok := at.Get(k)
		if !ok {
			continue
		}
		if a, err := flatten(v); err == nil {
			fv = append(fv, a.v...)
		}
	}
	return fv
}
