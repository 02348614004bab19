// Package gxf_scan iterates a GFF3/GTF annotation file line by line,
// parsing each with the gxf package and reporting per-type counts and
// length statistics. Skip policy lives here, not in the parser: comments
// are skipped silently, unparseable lines are counted and sampled for
// diagnostics, and the scan always runs to the end of the file.
package gxf_scan

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"

	"biogl_go/common"
	"biogl_go/config"
	"biogl_go/gxf"
)

// Summary accumulates the outcome of scanning one annotation source.
type Summary struct {
	Lines      int
	Features   int
	Comments   int
	Skipped    int
	MissingID  int
	TypeCounts map[string]int
	Lengths    []float64
	Errors     []string // first few skip reasons
}

const maxRecordedErrors = 5

// ScanReader parses every line from r with the given options.
func ScanReader(r io.Reader, opts gxf.Options) (*Summary, error) {
	sum := &Summary{TypeCounts: make(map[string]int)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		sum.Lines++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		f, err := gxf.ParseWith(line, lineNumber, opts)
		if errors.Is(err, gxf.ErrComment) {
			sum.Comments++
			continue
		}
		if err != nil {
			sum.Skipped++
			if len(sum.Errors) < maxRecordedErrors {
				sum.Errors = append(sum.Errors, err.Error())
			}
			continue
		}
		sum.Features++
		sum.TypeCounts[f.FeatType]++
		sum.Lengths = append(sum.Lengths, float64(f.Length()))
		if f.Name == nil {
			sum.MissingID++
		}
	}
	return sum, scanner.Err()
}

// ScanFile opens path (plain or gzipped, "-" for stdin) and scans it.
func ScanFile(path string, opts gxf.Options) (*Summary, error) {
	rc, err := common.FlexOpen(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ScanReader(rc, opts)
}

var (
	okTag   = color.New(color.FgGreen).SprintFunc()
	warnTag = color.New(color.FgYellow).SprintFunc()
	failTag = color.New(color.FgRed).SprintFunc()
)

func info(format string, a ...any) {
	fmt.Printf("%s %s\n", okTag("[ok]"), fmt.Sprintf(format, a...))
}

func warn(format string, a ...any) {
	fmt.Printf("%s %s\n", warnTag("[* ]"), fmt.Sprintf(format, a...))
}

func abort(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", failTag("[!!]"), err)
	os.Exit(1)
}

// Run is the CLI entry point for the gxf_scan tool.
func Run(args []string) {
	fs := flag.NewFlagSet("gxf_scan", flag.ExitOnError)
	in := fs.String("in", "", "GFF3/GTF annotation file (plain or gzipped, '-' for stdin)")
	urlDecode := fs.Bool("url_decode", false, "Percent-decode attribute values")
	caseSensitive := fs.Bool("case_sensitive", false, "Exact-case attribute key lookups")
	strict := fs.Bool("strict", false, "Reject start > stop instead of swapping")
	plotOut := fs.String("plot", "", "Write an SVG length histogram to this file")
	fs.Parse(args)

	path := *in
	if path == "" {
		if cfg, err := config.Load(); err == nil {
			path = cfg.Gxf
		}
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "No annotation file: pass -in or set gxf in biogl.json")
		fs.Usage()
		os.Exit(1)
	}
	path, err := homedir.Expand(path)
	if err != nil {
		abort(err)
	}

	opts := gxf.Options{
		URLDecode:         *urlDecode,
		CaseSensitive:     *caseSensitive,
		StrictCoordinates: *strict,
	}
	info("reading %s", path)
	sum, err := ScanFile(path, opts)
	if err != nil {
		abort(err)
	}
	report(sum)

	if *plotOut != "" {
		target, err := homedir.Expand(*plotOut)
		if err != nil {
			abort(err)
		}
		if err := WriteLengthHistogram(sum.Lengths, target); err != nil {
			abort(err)
		}
		info("wrote length histogram to %s", target)
	}
}

func report(sum *Summary) {
	info("scanned %d lines: %d features, %d comment lines", sum.Lines, sum.Features, sum.Comments)
	if sum.Skipped > 0 {
		warn("skipped %d unparseable lines", sum.Skipped)
		for _, e := range sum.Errors {
			warn("  %s", e)
		}
	}
	if sum.MissingID > 0 {
		warn("%d features lack an ID attribute", sum.MissingID)
	}

	types := make([]string, 0, len(sum.TypeCounts))
	for t := range sum.TypeCounts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if sum.TypeCounts[types[i]] != sum.TypeCounts[types[j]] {
			return sum.TypeCounts[types[i]] > sum.TypeCounts[types[j]]
		}
		return types[i] < types[j]
	})
	for _, t := range types {
		fmt.Printf("\t%-24s %d\n", t, sum.TypeCounts[t])
	}

	if len(sum.Lengths) > 0 {
		ls := NewLengthStats(sum.Lengths)
		info("feature length (bp): mean %.1f, stddev %.1f, median %.0f, range %.0f-%.0f",
			ls.Mean, ls.StdDev, ls.Median, ls.Min, ls.Max)
	}
}
