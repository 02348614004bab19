package fasta_overview

import (
	"testing"

	"biogl_go/fasta"
)

func TestSummarize(t *testing.T) {
	recs := []fasta.Record{
		{Header: "a", Sequence: "GGCC"},       // 4 bases, all GC
		{Header: "b", Sequence: "ATATATAT"},   // 8 bases, no GC
		{Header: "c", Sequence: "GCGCATATAT"}, // 10 bases, 4 GC
	}
	ov := Summarize(recs)

	if ov.Records != 3 {
		t.Fatalf("Records = %d", ov.Records)
	}
	if ov.TotalBases != 22 {
		t.Fatalf("TotalBases = %d", ov.TotalBases)
	}
	if ov.MinLength != 4 || ov.MaxLength != 10 {
		t.Fatalf("Min/Max = %d/%d", ov.MinLength, ov.MaxLength)
	}
	// Longest-first: 10 >= 11? no; 10+8=18 >= 11 -> N50 is 8.
	if ov.N50 != 8 {
		t.Fatalf("N50 = %d", ov.N50)
	}
	wantGC := 8.0 / 22.0
	if diff := ov.GCFraction - wantGC; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("GCFraction = %f, want %f", ov.GCFraction, wantGC)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	ov := Summarize(nil)
	if ov.Records != 0 || ov.TotalBases != 0 || ov.N50 != 0 {
		t.Fatalf("unexpected overview: %+v", ov)
	}
}
