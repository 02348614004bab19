// Package ran_seq generates random nucleotide (or arbitrary-alphabet)
// sequences and writes them as FASTA.
package ran_seq

import (
	"compress/gzip"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"
)

// RandSeq returns a random sequence of length n drawn uniformly from
// alphabet.
func RandSeq(rng *rand.Rand, n int, alphabet string) string {
	if n <= 0 || alphabet == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}

// RandDNA returns a random DNA sequence of length n with the given GC
// fraction (0.0-1.0).
func RandDNA(rng *rand.Rand, n int, gcBias float64) string {
	if gcBias < 0 || gcBias > 1 {
		return ""
	}
	gWeight := gcBias / 2
	cWeight := gcBias / 2
	aWeight := (1 - gcBias) / 2

	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		r := rng.Float64()
		switch {
		case r < gWeight:
			b.WriteByte('G')
		case r < gWeight+cWeight:
			b.WriteByte('C')
		case r < gWeight+cWeight+aWeight:
			b.WriteByte('A')
		default:
			b.WriteByte('T')
		}
	}
	return b.String()
}

// WrapFasta wraps a sequence every width characters.
func WrapFasta(seq string, width int) string {
	var out strings.Builder
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[i:end])
		out.WriteByte('\n')
	}
	return out.String()
}

// Run is the CLI entry point for the ran_seq tool.
func Run(args []string) {
	fs := flag.NewFlagSet("ran_seq", flag.ExitOnError)

	length := fs.Int("length", 100, "Length of generated sequence")
	gc := fs.Float64("gc_bias", 0.5, "GC bias (0.0-1.0), DNA alphabet only")
	alphabet := fs.String("alphabet", "", "Draw uniformly from this character set instead of ACGT")
	seed := fs.Int64("seed", 0, "Seed for RNG (0 = time-based)")
	outFile := fs.String("out_file", "", "Output FASTA file")
	name := fs.String("name", "random_seq", "Sequence name (FASTA header)")
	gzipOut := fs.Bool("gzip", false, "Compress output using gzip (.gz)")

	fs.Parse(args)

	if *gc < 0.0 || *gc > 1.0 {
		fmt.Fprintln(os.Stderr, "GC bias must be between 0.0 and 1.0")
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	var sequence string
	if *alphabet != "" {
		sequence = RandSeq(rng, *length, *alphabet)
	} else {
		sequence = RandDNA(rng, *length, *gc)
	}
	record := fmt.Sprintf(">%s\n%s", *name, WrapFasta(sequence, 60))

	if *outFile == "" {
		if *gzipOut {
			fmt.Fprintln(os.Stderr, "Cannot gzip to stdout directly. Please specify an output file.")
			os.Exit(1)
		}
		fmt.Print(record)
		return
	}

	outputPath := *outFile
	if *gzipOut {
		outputPath += ".gz"
		file, err := os.Create(outputPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error creating gzip file:", err)
			os.Exit(1)
		}
		defer file.Close()

		writer := gzip.NewWriter(file)
		defer writer.Close()

		if _, err := writer.Write([]byte(record)); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing compressed data:", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote compressed sequence to %s\n", outputPath)
		return
	}

	if err := os.WriteFile(outputPath, []byte(record), 0644); err != nil {
		fmt.Fprintln(os.Stderr, "Error writing to file:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote sequence to %s\n", outputPath)
}
