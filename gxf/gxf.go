// Package gxf parses single GFF3/GTF annotation lines into structured
// features. Each line is parsed independently: a call is a pure function
// of the line, the 1-based line number and the Options, with no state
// shared between calls, so parsing from any number of goroutines is safe.
//
// The parser is deliberately tolerant of the format variance found in
// real annotation files: GFF3 key=value and GTF key "value" attribute
// styles may mix, attribute keys match case-insensitively by default,
// reversed coordinates are swapped, and malformed attribute segments are
// dropped rather than failing the whole line. The Options switches opt in
// to stricter, GFF3-conformant behavior.
package gxf

import "strings"

// Options control optional strictness. The zero value gives the tolerant
// defaults.
type Options struct {
	// URLDecode percent-decodes attribute values (e.g. %3B -> ';')
	// after splitting.
	URLDecode bool
	// CaseSensitive restricts attribute key lookups to exact casing.
	CaseSensitive bool
	// StrictCoordinates rejects start > stop instead of swapping.
	StrictCoordinates bool
}

// Feature is one parsed annotation line. Fields are set once by Parse and
// never mutated afterwards. Absent optional columns are nil, never
// placeholder values.
type Feature struct {
	Region      string // column 1, the reference sequence
	Source      string // column 2
	FeatType    string // column 3, lower-cased
	RawFeatType string // column 3 as written
	Start       int    // columns 4-5; Start <= Stop
	Stop        int
	Score       *float64 // column 6, nil when '.'
	Strand      int      // 1 forward, -1 reverse, 0 unknown or unstranded
	RawStrand   string   // column 7 as written
	Phase       *int     // column 8, nil when '.' or empty
	Attributes  *Attributes
	Name        *string   // ID attribute value, nil when absent
	Parent      []*string // all Parent values; [nil] when none
	Grandparent *string   // gene-level ID for exon/cds features
	LineNumber  int
	RawLine     string // original line, newline stripped

	infostring string
}

// Seqid is the GFF3 name for Region.
func (f *Feature) Seqid() string { return f.Region }

// Length returns the 1-based closed-interval span of the feature.
func (f *Feature) Length() int { return f.Stop - f.Start + 1 }

// Parse parses one annotation line with default Options. lineNumber is
// 1-based and only used for diagnostics.
func Parse(line string, lineNumber int) (*Feature, error) {
	return ParseWith(line, lineNumber, Options{})
}

// ParseWith parses one annotation line. Comment lines return ErrComment,
// structural problems return *FormatError, and reversed coordinates
// return *CoordinateError when opts.StrictCoordinates is set. On error no
// partial Feature is returned.
func ParseWith(line string, lineNumber int, opts Options) (*Feature, error) {
	if lineNumber < 1 {
		return nil, &FormatError{LineNumber: lineNumber, Reason: "line number must be >= 1"}
	}
	raw := strings.TrimRight(line, "\r\n")
	cols, err := splitColumns(raw, lineNumber)
	if err != nil {
		return nil, err
	}
	start, stop, err := parseCoordinates(cols[colStart], cols[colStop], lineNumber, opts.StrictCoordinates)
	if err != nil {
		return nil, err
	}
	score, err := parseScore(cols[colScore], lineNumber)
	if err != nil {
		return nil, err
	}
	phase, err := parsePhase(cols[colPhase], lineNumber)
	if err != nil {
		return nil, err
	}

	f := &Feature{
		Region:      cols[colSeqid],
		Source:      cols[colSource],
		FeatType:    strings.ToLower(cols[colType]),
		RawFeatType: cols[colType],
		Start:       start,
		Stop:        stop,
		Score:       score,
		Strand:      normalizeStrand(cols[colStrand]),
		RawStrand:   cols[colStrand],
		Phase:       phase,
		Attributes:  parseAttributes(cols[colAttributes], opts),
		LineNumber:  lineNumber,
		RawLine:     raw,
		infostring:  cols[colAttributes],
	}
	f.Name = f.deriveName()
	f.Parent = f.deriveParents()
	f.Grandparent = f.deriveGrandparent()
	return f, nil
}

func (f *Feature) deriveName() *string {
	if id, ok := f.Attributes.Get("ID"); ok {
		return &id
	}
	return nil
}

// deriveParents gathers every Parent value in input order. A feature with
// no Parent attribute still yields one nil slot, so callers always have
// at least one element to check.
func (f *Feature) deriveParents() []*string {
	vals := f.Attributes.Values("Parent")
	if len(vals) == 0 {
		return []*string{nil}
	}
	parents := make([]*string, len(vals))
	for i := range vals {
		v := vals[i]
		parents[i] = &v
	}
	return parents
}

func (f *Feature) deriveGrandparent() *string {
	if f.FeatType != "exon" && f.FeatType != "cds" {
		return nil
	}
	if v, ok := f.firstTagValue(geneTags); ok {
		return &v
	}
	return nil
}
