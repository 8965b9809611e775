// Package lexicon holds the language resources shared by every analyzer:
// the stemmer, the stemmed stopword set and the transliteration table.
// A Lexicon is built once at start-up and never mutated afterwards, so a
// single value can be read from any number of goroutines.
package lexicon

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/kljensen/snowball/russian"
)

//go:embed stopwords_ru.txt
var russianStopwords []byte

type Stemmer interface {
	Stem(word string) string
}

type StemmerFunc func(word string) string

func (f StemmerFunc) Stem(word string) string { return f(word) }

// RussianStemmer is the Snowball Russian stemmer. Stopwords are stemmed too
// so that they can be compared against stemmed document words.
var RussianStemmer Stemmer = StemmerFunc(func(word string) string {
	return russian.Stem(word, true)
})

type Lexicon struct {
	stemmer   Stemmer
	stopwords map[string]struct{}
}

// New builds a Lexicon. Stopwords are stored in stemmed form.
func New(stemmer Stemmer, stopwords []string) *Lexicon {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		w = strings.TrimSpace(strings.ToLower(w))
		if w == "" {
			continue
		}
		set[stemmer.Stem(w)] = struct{}{}
	}
	return &Lexicon{stemmer: stemmer, stopwords: set}
}

// NewRussian returns the Lexicon for Russian text with the bundled stopword
// list.
func NewRussian() (*Lexicon, error) {
	words, err := readWordList(russianStopwords)
	if err != nil {
		return nil, fmt.Errorf("load russian stopwords: %w", err)
	}
	return New(RussianStemmer, words), nil
}

func (l *Lexicon) Stem(word string) string {
	return l.stemmer.Stem(word)
}

// IsStopword reports whether an already stemmed word is a stopword.
func (l *Lexicon) IsStopword(stemmed string) bool {
	_, ok := l.stopwords[stemmed]
	return ok
}

func (l *Lexicon) Transliterate(word string) string {
	return ToCyrillic(word)
}

func (l *Lexicon) StopwordCount() int {
	return len(l.stopwords)
}

func readWordList(raw []byte) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
