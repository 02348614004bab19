package gxf_scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biogl_go/gxf"
)

const annotation = `##gff-version 3
# generated for tests
chr1	Ensembl	gene	1000	2000	.	+	.	ID=gene1;Name=TEST
chr1	Ensembl	transcript	1000	2000	100.5	+	.	ID=tx1;Parent=gene1
chr1	Ensembl	exon	1000	1500	.	+	.	Parent=tx1
chr1	Ensembl	exon	1600	2000	.	+	.	Parent=tx1
chr1	Ensembl	gene	9000	8000	.	-	.	ID=gene2
not	a	valid	line
`

func TestScanReader(t *testing.T) {
	sum, err := ScanReader(strings.NewReader(annotation), gxf.Options{})
	require.NoError(t, err)

	assert.Equal(t, 8, sum.Lines)
	assert.Equal(t, 2, sum.Comments)
	assert.Equal(t, 5, sum.Features)
	assert.Equal(t, 1, sum.Skipped)
	assert.Equal(t, 2, sum.MissingID)
	assert.Equal(t, map[string]int{"gene": 2, "transcript": 1, "exon": 2}, sum.TypeCounts)
	assert.Len(t, sum.Lengths, 5)
	require.Len(t, sum.Errors, 1)
	assert.Contains(t, sum.Errors[0], "line 8")
}

func TestScanReaderStrictCountsReversed(t *testing.T) {
	sum, err := ScanReader(strings.NewReader(annotation), gxf.Options{StrictCoordinates: true})
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Features)
	assert.Equal(t, 2, sum.Skipped)
}

func TestLengthStats(t *testing.T) {
	ls := NewLengthStats([]float64{100, 200, 300})
	assert.InDelta(t, 200, ls.Mean, 1e-9)
	assert.InDelta(t, 200, ls.Median, 1e-9)
	assert.Equal(t, 100.0, ls.Min)
	assert.Equal(t, 300.0, ls.Max)

	assert.Equal(t, LengthStats{}, NewLengthStats(nil))
}
