package nausea

import (
	"strings"

	"academic_nausea/internal/lexicon"
)

type Word struct {
	// Stem is the aggregation key.
	Stem string
	// Original is the lowercased token before transliteration.
	Original string
	Fraud    bool
}

// Normalize lowercases token and stems it. Mixed-alphabet tokens are
// transliterated to Cyrillic before stemming: in the corpora this was tuned
// on, nearly all of them are Russian words with Latin look-alikes mixed in.
func Normalize(lex *lexicon.Lexicon, token string) Word {
	original := strings.ToLower(token)
	w := Word{Original: original, Fraud: IsFraud(original)}

	word := original
	if w.Fraud {
		word = lex.Transliterate(word)
	}
	w.Stem = lex.Stem(word)
	return w
}
