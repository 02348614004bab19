package gxf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferTypeMRNA(t *testing.T) {
	f, err := Parse(mrnaLine, 1)
	require.NoError(t, err)
	assert.Equal(t, "mrna", f.FeatType)
	assert.Equal(t, "mRNA", f.RawFeatType)
	assert.Equal(t, "transcript", f.InferType())
}

func TestInferTypeFromAttributes(t *testing.T) {
	// pseudogene carries a gene_id tag, so it classifies as a gene.
	f, err := Parse(gff3Gene, 1)
	require.NoError(t, err)
	assert.Equal(t, "gene", f.InferType())

	// lnc_RNA has an ID mentioning "transcript".
	f, err = Parse(gff3Transcript, 2)
	require.NoError(t, err)
	assert.Equal(t, "transcript", f.InferType())
}

func TestInferTypeKeepsUTRSubtypes(t *testing.T) {
	f, err := Parse("chr7\tEnsembl\tfive_prime_utr\t14000\t14100\t.\t+\t.\tParent=tx1", 4)
	require.NoError(t, err)
	assert.Equal(t, "five_prime_utr", f.InferType())

	f, err = Parse("chr7\tEnsembl\tstart_codon\t14000\t14002\t.\t+\t0\tParent=tx1", 5)
	require.NoError(t, err)
	assert.Equal(t, "start_codon", f.InferType())
}

func TestInferTypeTranscriptBeforeGene(t *testing.T) {
	// A transcript may carry a gene_id; the transcript_id must win.
	f, err := Parse("chr2\tEnsembl\tmisc_RNA\t1\t100\t.\t+\t.\tgene_id \"G1\"; transcript_id \"T1\"", 1)
	require.NoError(t, err)
	assert.Equal(t, "transcript", f.InferType())
}

func TestInferIDUsesNameFirst(t *testing.T) {
	f, err := Parse(gff3Gene, 1)
	require.NoError(t, err)
	id, ok := f.InferID()
	assert.True(t, ok)
	assert.Equal(t, "gene:ENSG00000282458", id)
}

func TestInferIDGTFGene(t *testing.T) {
	f, err := Parse(gtfGene, 4)
	require.NoError(t, err)
	assert.Nil(t, f.Name)
	id, ok := f.InferID()
	assert.True(t, ok)
	assert.Equal(t, "ENSG001", id)
}

func TestInferIDPrefixesChildFeatures(t *testing.T) {
	f, err := Parse(gtfExon, 6)
	require.NoError(t, err)
	id, ok := f.InferID()
	assert.True(t, ok)
	assert.Equal(t, "exon_ENST001", id)
}

func TestInferIDAbsent(t *testing.T) {
	f, err := Parse(gff3ExonNoID, 3)
	require.NoError(t, err)
	id, ok := f.InferID()
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestInferParentsPrefersParentAttribute(t *testing.T) {
	f, err := Parse(gff3Transcript, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"gene:ENSG00000282458"}, f.InferParents())
}

func TestInferParentsGTFFallback(t *testing.T) {
	// Exon: falls back to transcript_id.
	f, err := Parse(gtfExon, 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"ENST001"}, f.InferParents())

	// Transcript: falls back to gene_id.
	f, err = Parse("chr2\tEnsembl\ttranscript\t5000\t6000\t.\t-\t.\tgene_id \"ENSG001\"; transcript_id \"ENST001\"", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"ENSG001"}, f.InferParents())

	// Gene: no fallback.
	f, err = Parse(gtfGene, 4)
	require.NoError(t, err)
	assert.Nil(t, f.InferParents())
}
