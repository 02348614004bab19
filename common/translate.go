package common

import "strings"

// Verbosity selects the residue naming used by TranslateNamed.
type Verbosity int

const (
	Single Verbosity = iota // one-letter codes
	Short                   // three-letter codes
	Long                    // full residue names
)

type residue struct {
	single string
	short  string
	long   string
}

const stopChar = "*"

// Standard genetic code.
var codonTable = map[string]residue{
	"TTT": {"F", "Phe", "Phenylalanine"}, "TTC": {"F", "Phe", "Phenylalanine"},
	"TTA": {"L", "Leu", "Leucine"}, "TTG": {"L", "Leu", "Leucine"},
	"CTT": {"L", "Leu", "Leucine"}, "CTC": {"L", "Leu", "Leucine"},
	"CTA": {"L", "Leu", "Leucine"}, "CTG": {"L", "Leu", "Leucine"},
	"ATT": {"I", "Ile", "Isoleucine"}, "ATC": {"I", "Ile", "Isoleucine"},
	"ATA": {"I", "Ile", "Isoleucine"}, "ATG": {"M", "Met", "Methionine"},
	"GTT": {"V", "Val", "Valine"}, "GTC": {"V", "Val", "Valine"},
	"GTA": {"V", "Val", "Valine"}, "GTG": {"V", "Val", "Valine"},
	"TCT": {"S", "Ser", "Serine"}, "TCC": {"S", "Ser", "Serine"},
	"TCA": {"S", "Ser", "Serine"}, "TCG": {"S", "Ser", "Serine"},
	"AGT": {"S", "Ser", "Serine"}, "AGC": {"S", "Ser", "Serine"},
	"CCT": {"P", "Pro", "Proline"}, "CCC": {"P", "Pro", "Proline"},
	"CCA": {"P", "Pro", "Proline"}, "CCG": {"P", "Pro", "Proline"},
	"ACT": {"T", "Thr", "Threonine"}, "ACC": {"T", "Thr", "Threonine"},
	"ACA": {"T", "Thr", "Threonine"}, "ACG": {"T", "Thr", "Threonine"},
	"GCT": {"A", "Ala", "Alanine"}, "GCC": {"A", "Ala", "Alanine"},
	"GCA": {"A", "Ala", "Alanine"}, "GCG": {"A", "Ala", "Alanine"},
	"TAT": {"Y", "Tyr", "Tyrosine"}, "TAC": {"Y", "Tyr", "Tyrosine"},
	"CAT": {"H", "His", "Histidine"}, "CAC": {"H", "His", "Histidine"},
	"CAA": {"Q", "Gln", "Glutamine"}, "CAG": {"Q", "Gln", "Glutamine"},
	"AAT": {"N", "Asn", "Asparagine"}, "AAC": {"N", "Asn", "Asparagine"},
	"AAA": {"K", "Lys", "Lysine"}, "AAG": {"K", "Lys", "Lysine"},
	"GAT": {"D", "Asp", "Aspartate"}, "GAC": {"D", "Asp", "Aspartate"},
	"GAA": {"E", "Glu", "Glutamate"}, "GAG": {"E", "Glu", "Glutamate"},
	"TGT": {"C", "Cys", "Cysteine"}, "TGC": {"C", "Cys", "Cysteine"},
	"TGG": {"W", "Trp", "Tryptophan"},
	"CGT": {"R", "Arg", "Arginine"}, "CGC": {"R", "Arg", "Arginine"},
	"CGA": {"R", "Arg", "Arginine"}, "CGG": {"R", "Arg", "Arginine"},
	"AGA": {"R", "Arg", "Arginine"}, "AGG": {"R", "Arg", "Arginine"},
	"GGT": {"G", "Gly", "Glycine"}, "GGC": {"G", "Gly", "Glycine"},
	"GGA": {"G", "Gly", "Glycine"}, "GGG": {"G", "Gly", "Glycine"},
	"TAA": {stopChar, stopChar, "Stop"},
	"TAG": {stopChar, stopChar, "Stop"},
	"TGA": {stopChar, stopChar, "Stop"},
}

// Translate translates a nucleotide sequence into one-letter residue
// codes, starting at the given phase offset (0-2). Stop codons become
// '*', codons containing characters outside ACGT become 'X', and a
// trailing partial codon is dropped. U is accepted as T.
func Translate(seq string, phase int) string {
	return strings.Join(translate(seq, Single, phase), "")
}

// TranslateNamed renders the translation with three-letter codes (Short)
// or full residue names (Long), joined by '-'.
func TranslateNamed(seq string, v Verbosity, phase int) string {
	return strings.Join(translate(seq, v, phase), "-")
}

func translate(seq string, v Verbosity, phase int) []string {
	if phase < 0 || phase > 2 || phase >= len(seq) {
		return nil
	}
	seq = strings.ReplaceAll(strings.ToUpper(seq), "U", "T")
	var out []string
	for i := phase; i+3 <= len(seq); i += 3 {
		res, ok := codonTable[seq[i:i+3]]
		if !ok {
			out = append(out, "X")
			continue
		}
		switch v {
		case Short:
			out = append(out, res.short)
		case Long:
			out = append(out, res.long)
		default:
			out = append(out, res.single)
		}
	}
	return out
}
