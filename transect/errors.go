package transect

import "fmt"

// DataFormatError reports solver output that is missing, malformed or inconsistent.
// It is always fatal to a run.
type DataFormatError struct {
	File   string
	Field  string
	Reason string
	Err    error
}

func (e *DataFormatError) Error() string {
	s := "transect: " + e.File
	if e.Field != "" {
		s += fmt.Sprintf(" [%s]", e.Field)
	}
	s += ": " + e.Reason
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *DataFormatError) Unwrap() error { return e.Err }

func formatErr(file, field, format string, a ...interface{}) *DataFormatError {
	return &DataFormatError{File: file, Field: field, Reason: fmt.Sprintf(format, a...)}
}
