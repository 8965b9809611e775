// Package nausea computes the nausea rate of a document: the share of its
// significant word occurrences taken by the five most frequent stems. It
// also collects mixed-alphabet words found along the way.
package nausea

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"academic_nausea/internal/lexicon"
)

// TopWords is how many of the most frequent stems make up the rate.
const TopWords = 5

type Result struct {
	DocumentName string
	// Rate is a percentage in [0, 100]. It is 0 for a document without
	// significant words as well; check Words to tell the two apart.
	Rate       float64
	Words      int
	FraudWords []string
}

// Empty reports whether the rate was computed over no words at all.
func (r Result) Empty() bool {
	return r.Words == 0
}

type Analyzer struct {
	lex *lexicon.Lexicon
}

func NewAnalyzer(lex *lexicon.Lexicon) *Analyzer {
	return &Analyzer{lex: lex}
}

func (a *Analyzer) Analyze(r io.Reader) (Result, error) {
	return a.AnalyzeScanner(NewScanner(r))
}

// AnalyzeScanner consumes sc to the end. DocumentName is left empty.
func (a *Analyzer) AnalyzeScanner(sc *bufio.Scanner) (Result, error) {
	counts := map[string]int{}
	var order []string
	fraud := map[string]struct{}{}

	for sc.Scan() {
		w := Normalize(a.lex, sc.Text())
		if w.Fraud {
			fraud[w.Original] = struct{}{}
		}
		if a.lex.IsStopword(w.Stem) {
			continue
		}
		if _, seen := counts[w.Stem]; !seen {
			order = append(order, w.Stem)
		}
		counts[w.Stem]++
	}
	if err := sc.Err(); err != nil {
		return Result{}, fmt.Errorf("tokenize: %w", err)
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	res := Result{Words: total, FraudWords: sortedKeys(fraud)}
	if total > 0 {
		res.Rate = 100 * float64(topCount(order, counts, TopWords)) / float64(total)
	}
	return res, nil
}

// topCount sums the counts of the n most frequent words. order lists words
// by first appearance and decides ties.
func topCount(order []string, counts map[string]int, n int) int {
	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	sum := 0
	for _, w := range ranked {
		sum += counts[w]
	}
	return sum
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
