package lexicon

import "strings"

// POS is a wordnet part of speech.
type POS string

// Wordnet part-of-speech values. UnknownPOS marks tags with no wordnet
// counterpart.
const (
	Noun       POS = "n"
	Verb       POS = "v"
	Adjective  POS = "a"
	Adverb     POS = "r"
	UnknownPOS POS = "x"
)

// String implements fmt.Stringer.
func (p POS) String() string { return string(p) }

// spacyPOS maps Universal POS tags (as emitted by spaCy) to wordnet.
var spacyPOS = map[string]POS{
	"VERB": Verb,
	"NOUN": Noun,
	"ADV":  Adverb,
	"ADJ":  Adjective,
}

// treebankPrefixes is checked in order against Penn Treebank tags.
var treebankPrefixes = []struct {
	prefix string
	pos    POS
}{
	{"NN", Noun},
	{"VB", Verb},
	{"JJ", Adjective},
	{"RB", Adverb},
}

// SpacyToWordnetPOS maps a Universal POS tag ("NOUN") to wordnet.
func SpacyToWordnetPOS(pos string) POS {
	if p, ok := spacyPOS[pos]; ok {
		return p
	}
	return UnknownPOS
}

// WordnetPOS maps a Penn Treebank tag ("NNS", "VBD", "JJR", "RBS") to
// wordnet by its two-letter prefix.
func WordnetPOS(tag string) POS {
	for _, m := range treebankPrefixes {
		if strings.HasPrefix(tag, m.prefix) {
			return m.pos
		}
	}
	return UnknownPOS
}
