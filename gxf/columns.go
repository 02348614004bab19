package gxf

import (
	"fmt"
	"strconv"
	"strings"
)

// Canonical GFF3/GTF column order.
// http://www.sequenceontology.org/gff3.shtml
const (
	colSeqid = iota
	colSource
	colType
	colStart
	colStop
	colScore
	colStrand
	colPhase
	colAttributes
	numColumns
)

// splitColumns splits a raw annotation line on tabs into the nine
// canonical fields. Extra trailing fields beyond the ninth are ignored,
// as are trailing whitespace-derived empty fields.
func splitColumns(raw string, lineNumber int) ([]string, error) {
	if strings.HasPrefix(raw, "#") {
		return nil, ErrComment
	}
	cols := strings.Split(strings.TrimSpace(raw), "\t")
	if len(cols) < numColumns {
		return nil, &FormatError{
			LineNumber: lineNumber,
			Reason:     fmt.Sprintf("expected %d tab-separated columns, found %d", numColumns, len(cols)),
		}
	}
	return cols[:numColumns], nil
}

// parseCoordinates parses columns 4 and 5. Reversed coordinates are
// swapped by default; under strict checking they fail instead.
func parseCoordinates(startField, stopField string, lineNumber int, strict bool) (int, int, error) {
	start, err := strconv.Atoi(startField)
	if err != nil {
		return 0, 0, &FormatError{LineNumber: lineNumber, Field: "start", Value: startField, Reason: "not an integer"}
	}
	stop, err := strconv.Atoi(stopField)
	if err != nil {
		return 0, 0, &FormatError{LineNumber: lineNumber, Field: "stop", Value: stopField, Reason: "not an integer"}
	}
	if start > stop {
		if strict {
			return 0, 0, &CoordinateError{LineNumber: lineNumber, Start: start, Stop: stop}
		}
		start, stop = stop, start
	}
	return start, stop, nil
}

// normalizeStrand maps '+' to 1 and '-' to -1. Every other symbol,
// including '.', counts as unstranded.
func normalizeStrand(field string) int {
	switch field {
	case "+":
		return 1
	case "-":
		return -1
	}
	return 0
}

func parseScore(field string, lineNumber int) (*float64, error) {
	if field == "." || field == "" {
		return nil, nil
	}
	s, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return nil, &FormatError{LineNumber: lineNumber, Field: "score", Value: field, Reason: "not a number"}
	}
	return &s, nil
}

func parsePhase(field string, lineNumber int) (*int, error) {
	switch field {
	case ".", "":
		return nil, nil
	case "0", "1", "2":
		p := int(field[0] - '0')
		return &p, nil
	}
	return nil, &FormatError{LineNumber: lineNumber, Field: "phase", Value: field, Reason: "must be 0, 1 or 2"}
}
