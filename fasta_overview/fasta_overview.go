// Package fasta_overview prints summary statistics for a FASTA file.
package fasta_overview

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gonum.org/v1/gonum/stat"

	"biogl_go/config"
	"biogl_go/fasta"
)

// Overview summarizes a set of FASTA records.
type Overview struct {
	Records    int
	TotalBases int
	MeanLength float64
	MinLength  int
	MaxLength  int
	N50        int
	GCFraction float64
}

// Summarize computes an Overview over recs.
func Summarize(recs []fasta.Record) Overview {
	ov := Overview{Records: len(recs)}
	if len(recs) == 0 {
		return ov
	}
	lengths := make([]float64, len(recs))
	gc := 0
	ov.MinLength = len(recs[0].Sequence)
	for i, rec := range recs {
		n := len(rec.Sequence)
		lengths[i] = float64(n)
		ov.TotalBases += n
		if n < ov.MinLength {
			ov.MinLength = n
		}
		if n > ov.MaxLength {
			ov.MaxLength = n
		}
		upper := strings.ToUpper(rec.Sequence)
		gc += strings.Count(upper, "G") + strings.Count(upper, "C")
	}
	ov.MeanLength = stat.Mean(lengths, nil)
	if ov.TotalBases > 0 {
		ov.GCFraction = float64(gc) / float64(ov.TotalBases)
	}
	ov.N50 = n50(lengths, ov.TotalBases)
	return ov
}

// n50 is the length of the shortest record covering half the total bases
// when records are taken longest-first.
func n50(lengths []float64, totalBases int) int {
	sorted := append([]float64(nil), lengths...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	half := float64(totalBases) / 2
	running := 0.0
	for _, l := range sorted {
		running += l
		if running >= half {
			return int(l)
		}
	}
	return 0
}

// Run is the CLI entry point for the fasta_overview tool.
func Run(args []string) {
	fs := flag.NewFlagSet("fasta_overview", flag.ExitOnError)
	in := fs.String("in", "", "FASTA file (plain or gzipped, '-' for stdin)")
	trim := fs.Bool("trim_header", true, "Trim headers at the first whitespace")
	fs.Parse(args)

	path := *in
	if path == "" {
		if cfg, err := config.Load(); err == nil {
			path = cfg.Fasta
		}
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "No FASTA file: pass -in or set fasta in biogl.json")
		fs.Usage()
		os.Exit(1)
	}
	path, err := homedir.Expand(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var recs []fasta.Record
	err = fasta.ScanFile(path, fasta.ScanOptions{TrimHeader: *trim}, func(rec fasta.Record) error {
		recs = append(recs, rec)
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ov := Summarize(recs)
	fmt.Printf("Records:      %d\n", ov.Records)
	fmt.Printf("Total bases:  %d\n", ov.TotalBases)
	fmt.Printf("Mean length:  %.1f\n", ov.MeanLength)
	fmt.Printf("Min/Max:      %d / %d\n", ov.MinLength, ov.MaxLength)
	fmt.Printf("N50:          %d\n", ov.N50)
	fmt.Printf("GC fraction:  %.3f\n", ov.GCFraction)
}
