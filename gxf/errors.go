package gxf

import (
	"errors"
	"fmt"
)

// ErrComment marks lines beginning with '#'. Callers iterating a file
// should skip these silently rather than report them as failures.
var ErrComment = errors.New("gxf: comment line")

// FormatError reports a structural violation in an annotation line:
// too few columns, or a coordinate, score or phase field that does not
// parse.
type FormatError struct {
	LineNumber int
	Field      string
	Value      string
	Reason     string
}

func (e *FormatError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("gxf: line %d: %s", e.LineNumber, e.Reason)
	}
	return fmt.Sprintf("gxf: line %d: %s field %q: %s", e.LineNumber, e.Field, e.Value, e.Reason)
}

// CoordinateError reports start > stop under strict coordinate checking.
// Both original values are carried for diagnostics.
type CoordinateError struct {
	LineNumber int
	Start      int
	Stop       int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("gxf: line %d: start %d is greater than stop %d", e.LineNumber, e.Start, e.Stop)
}
