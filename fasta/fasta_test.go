package fasta

import (
	"errors"
	"strings"
	"testing"
)

func TestReadAllSimple(t *testing.T) {
	input := ">seq1\nATGC\n>seq2 desc\nGGTT\nAACC\n"
	recs, err := ReadAll(strings.NewReader(input), ScanOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Header != "seq1" || recs[0].Sequence != "ATGC" {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Header != "seq2 desc" || recs[1].Sequence != "GGTTAACC" {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
}

func TestTrimHeader(t *testing.T) {
	input := ">seq2 some description\nGGTT\n"
	recs, err := ReadAll(strings.NewReader(input), ScanOptions{TrimHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Header != "seq2" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestCommentAndBlankLinesSkipped(t *testing.T) {
	input := "# preamble\n>s\nAT\n\nGC\n# interleaved\nTT\n"
	recs, err := ReadAll(strings.NewReader(input), ScanOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Sequence != "ATGCTT" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestHandlerErrorStopsScan(t *testing.T) {
	input := ">a\nAT\n>b\nGC\n"
	boom := errors.New("boom")
	calls := 0
	err := Scan(strings.NewReader(input), ScanOptions{}, func(Record) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected handler error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected scan to stop after first record, got %d calls", calls)
	}
}

func TestEmptyInput(t *testing.T) {
	recs, err := ReadAll(strings.NewReader(""), ScanOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %+v", recs)
	}
}
