package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCyrillic(t *testing.T) {
	cases := map[string]string{
		"нaш":     "наш",
		"низkим":  "низким",
		"ценaм":   "ценам",
		"cегодня": "цегодня",
		"cejchas": "цейчас",
		"bоsch":   "бощ",
		"тexникa": "теxника",
		"shapka":  "шапка",
		"ZHuk":    "ЗХук",
		"привет":  "привет",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToCyrillic(in), "input %q", in)
	}
}

func TestNewRussianStopwords(t *testing.T) {
	lex, err := NewRussian()
	require.NoError(t, err)
	assert.Positive(t, lex.StopwordCount())

	for _, w := range []string{"и", "только", "сейчас", "между"} {
		assert.True(t, lex.IsStopword(lex.Stem(w)), "expected %q to be a stopword", w)
	}
	for _, w := range []string{"машина", "паровоз", "сегодня"} {
		assert.False(t, lex.IsStopword(lex.Stem(w)), "did not expect %q to be a stopword", w)
	}
}

func TestRussianStemmerMergesInflections(t *testing.T) {
	lex, err := NewRussian()
	require.NoError(t, err)
	assert.Equal(t, lex.Stem("машина"), lex.Stem("машины"))
	assert.NotEqual(t, lex.Stem("машина"), lex.Stem("паровоз"))
}

func TestNewStemsStopwords(t *testing.T) {
	upper := StemmerFunc(strings.ToUpper)
	lex := New(upper, []string{" The ", "", "and"})
	assert.Equal(t, 2, lex.StopwordCount())
	assert.True(t, lex.IsStopword("THE"))
	assert.False(t, lex.IsStopword("the"))
}
