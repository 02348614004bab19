package gxf

import "strings"

// Heuristic classification and identifier recovery for annotation sources
// that do not follow GFF3 conventions. None of these affect the parsed
// fields themselves: FeatType stays the lower-cased third column and Name
// stays the ID attribute. The Infer methods layer guesswork on top for
// callers that want it.

var (
	geneTags       = []string{"gene_id", "geneId", "geneID"}
	transcriptTags = []string{"transcript_id", "transcriptId", "transcript_ID"}
	proteinTags    = []string{"protein_id", "proteinId", "protein_ID"}
)

func (f *Feature) firstTagValue(tags []string) (string, bool) {
	for _, tag := range tags {
		if v, ok := f.Attributes.Get(tag); ok {
			return v, true
		}
	}
	return "", false
}

func (f *Feature) firstTagValues(tags []string) []string {
	for _, tag := range tags {
		if vals := f.Attributes.Values(tag); len(vals) > 0 {
			return vals
		}
	}
	return nil
}

// InferType classifies the feature as gene, transcript, exon or cds where
// possible. mRNA folds into transcript, and UTR / start_codon /
// stop_codon subtypes pass through unchanged. Anything else is inferred
// from the attributes: transcripts are checked before genes because
// transcripts often carry gene IDs while genes should not carry
// transcript IDs.
func (f *Feature) InferType() string {
	t := f.FeatType
	if t == "mrna" {
		t = "transcript"
	}
	switch t {
	case "gene", "transcript", "exon", "cds":
		return t
	}
	for _, kw := range []string{"utr", "start", "stop"} {
		if strings.Contains(t, kw) {
			return t
		}
	}
	if id, ok := f.Attributes.Get("ID"); ok {
		low := strings.ToLower(id)
		if strings.Contains(low, "transcript") || strings.Contains(low, "mrna") {
			return "transcript"
		}
	}
	if _, ok := f.firstTagValue(transcriptTags); ok {
		return "transcript"
	}
	if _, ok := f.firstTagValue(geneTags); ok {
		return "gene"
	}
	return t
}

// InferID recovers an identifier for features without an ID attribute.
// Genes and transcripts fall back to their own gene_id / transcript_id
// tags; other feature types take any available ID, prefixed with the
// feature type so sibling features of one transcript stay distinct. As a
// last resort a near-empty info string (common for GTF parent features)
// is used whole.
func (f *Feature) InferID() (string, bool) {
	if f.Name != nil {
		return *f.Name, true
	}
	prefix := ""
	var tags []string
	switch f.InferType() {
	case "gene":
		tags = geneTags
	case "transcript":
		tags = transcriptTags
	default:
		prefix = f.FeatType
		tags = append(append([]string{}, transcriptTags...), geneTags...)
	}
	match, ok := f.firstTagValue(tags)
	if !ok {
		info := strings.TrimSpace(f.infostring)
		if info != "" && strings.Count(info, ";") < 2 {
			if seg := strings.TrimSpace(strings.SplitN(info, ";", 2)[0]); seg != "" {
				match, ok = seg, true
			}
		}
	}
	if !ok {
		return "", false
	}
	if prefix != "" {
		match = prefix + "_" + match
	}
	return match, true
}

// InferParents returns the Parent attribute values when present, falling
// back to the tag conventions of GTF-style producers: child features look
// for transcript or protein IDs, transcripts look for gene IDs. Genes
// have no fallback. A nil return means no parent information was found.
func (f *Feature) InferParents() []string {
	if vals := f.Attributes.Values("Parent"); len(vals) > 0 {
		return append([]string(nil), vals...)
	}
	t := f.InferType()
	if t == "cds" {
		t = "exon"
	}
	childTags := append(append([]string{}, transcriptTags...), proteinTags...)
	var tags []string
	switch t {
	case "gene":
		return nil
	case "transcript":
		tags = geneTags
	case "exon":
		tags = childTags
	default:
		tags = append(childTags, geneTags...)
	}
	vals := f.firstTagValues(tags)
	if len(vals) == 0 {
		return nil
	}
	return append([]string(nil), vals...)
}
