package nausea

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

const maxTokenSize = 1 << 20

var ErrInvalidEncoding = errors.New("invalid utf-8 in document text")

func isLatin(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isCyrillic(r rune) bool {
	return (r >= 'А' && r <= 'я') || r == 'Ё' || r == 'ё'
}

func isWordRune(r rune) bool {
	return isLatin(r) || isCyrillic(r)
}

// NewScanner returns a scanner yielding the Latin/Cyrillic letter runs of r.
// Like any bufio.Scanner it reads forward only; tokenizing the same text
// again needs a fresh reader.
func NewScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(ScanLetterRuns)
	return sc
}

// ScanLetterRuns is a bufio.SplitFunc that returns each maximal run of
// Latin or Cyrillic letters. Every other character is a separator.
func ScanLetterRuns(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		if !atEOF && !utf8.FullRune(data[start:]) {
			return start, nil, nil
		}
		r, size := utf8.DecodeRune(data[start:])
		if r == utf8.RuneError && size == 1 {
			return 0, nil, ErrInvalidEncoding
		}
		if isWordRune(r) {
			break
		}
		start += size
	}

	for i := start; i < len(data); {
		if !atEOF && !utf8.FullRune(data[i:]) {
			return start, nil, nil
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return 0, nil, ErrInvalidEncoding
		}
		if !isWordRune(r) {
			return i + size, data[start:i], nil
		}
		i += size
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// Tokenize collects every token of text. Intended for short inputs.
func Tokenize(text string) []string {
	var out []string
	sc := NewScanner(strings.NewReader(text))
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out
}
