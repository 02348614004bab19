package ran_seq

import (
	"math/rand"
	"strings"
	"testing"
)

func TestRandSeqAlphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seq := RandSeq(rng, 500, "ACGU")
	if len(seq) != 500 {
		t.Fatalf("expected length 500, got %d", len(seq))
	}
	for _, c := range seq {
		if !strings.ContainsRune("ACGU", c) {
			t.Fatalf("unexpected character %q", c)
		}
	}
	if RandSeq(rng, 10, "") != "" {
		t.Fatal("empty alphabet should yield empty sequence")
	}
}

func TestRandDNABias(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seq := RandDNA(rng, 10000, 1.0)
	if len(seq) != 10000 {
		t.Fatalf("expected length 10000, got %d", len(seq))
	}
	gc := strings.Count(seq, "G") + strings.Count(seq, "C")
	if gc != len(seq) {
		t.Fatalf("gc_bias=1.0 should yield only G/C, got %d of %d", gc, len(seq))
	}
	at := strings.Count(RandDNA(rng, 10000, 0.0), "G") + strings.Count(RandDNA(rng, 10000, 0.0), "C")
	if at != 0 {
		t.Fatalf("gc_bias=0.0 should yield no G/C, got %d", at)
	}
}

func TestWrapFasta(t *testing.T) {
	got := WrapFasta("ACGTACGTAC", 4)
	if got != "ACGT\nACGT\nAC\n" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}
