// Package fasta streams FASTA records from plain or gzip-compressed
// sources, invoking a handler for each record so that arbitrarily large
// files never need to be held in memory.
package fasta

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"biogl_go/common"
)

// Record is one FASTA entry.
type Record struct {
	Header   string
	Sequence string
}

// Handler receives one record at a time during a scan. Returning an error
// stops the scan and propagates the error to the caller.
type Handler func(rec Record) error

// ScanOptions adjust record parsing.
type ScanOptions struct {
	// TrimHeader keeps only the header up to the first whitespace.
	TrimHeader bool
}

// allow very long single-line sequences
const maxLineBytes = 64 * 1024 * 1024

// Scan streams records from r. '#' comment lines and blank lines are
// skipped, matching the loose FASTA found in the wild.
func Scan(r io.Reader, opts ScanOptions, fn Handler) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	var (
		header string
		seen   bool
		seq    strings.Builder
	)
	flush := func() error {
		if !seen {
			return nil
		}
		return fn(Record{Header: header, Sequence: seq.String()})
	}
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, ">"):
			if err := flush(); err != nil {
				return err
			}
			header = strings.TrimSpace(line[1:])
			if opts.TrimHeader {
				if i := strings.IndexFunc(header, unicode.IsSpace); i >= 0 {
					header = header[:i]
				}
			}
			seen = true
			seq.Reset()
		case strings.HasPrefix(line, "#"):
			continue
		default:
			seq.WriteString(strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return flush()
}

// ScanFile opens path (plain or gzipped, "-" for stdin) and streams its
// records.
func ScanFile(path string, opts ScanOptions, fn Handler) error {
	rc, err := common.FlexOpen(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return Scan(rc, opts, fn)
}

// ReadAll collects every record from r.
func ReadAll(r io.Reader, opts ScanOptions) ([]Record, error) {
	var records []Record
	err := Scan(r, opts, func(rec Record) error {
		records = append(records, rec)
		return nil
	})
	return records, err
}
