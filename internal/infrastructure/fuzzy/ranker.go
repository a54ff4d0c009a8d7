// Package fuzzy scores historical queries against launcher input.
package fuzzy

import (
	"unicode"

	"github.com/sahilm/fuzzy"

	"github.com/doeshing/ha-assist/internal/ports"
)

// Ranker is a smart-case subsequence matcher. Queries without uppercase runes
// match case-insensitively; an uppercase rune in the query only matches the
// same rune in the candidate.
type Ranker struct{}

// NewRanker returns a Ranker. It holds no state.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Score returns the similarity of query to candidate. Higher is better and a
// match always scores at least 1, however long the candidate is; ok is false
// only when query is not a subsequence of candidate.
func (r *Ranker) Score(candidate, query string) (int, bool) {
	if query == "" || candidate == "" {
		return 0, false
	}
	matches := fuzzy.Find(query, []string{candidate})
	if len(matches) == 0 {
		return 0, false
	}
	if hasUpper(query) && !smartCaseSubsequence(candidate, query) {
		return 0, false
	}
	// fuzzy charges one point per unmatched candidate byte, which pushes short
	// queries inside long history entries to zero or below.
	m := matches[0]
	score := m.Score + len(candidate) - len(m.MatchedIndexes)
	return max(score, 1), true
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// smartCaseSubsequence reports whether query occurs in candidate in order,
// comparing uppercase query runes exactly and lowercase ones case-insensitively.
func smartCaseSubsequence(candidate, query string) bool {
	want := []rune(query)
	i := 0
	for _, c := range candidate {
		if i == len(want) {
			break
		}
		if runeMatches(c, want[i]) {
			i++
		}
	}
	return i == len(want)
}

func runeMatches(c, q rune) bool {
	if unicode.IsUpper(q) {
		return c == q
	}
	return unicode.ToLower(c) == unicode.ToLower(q)
}

var _ ports.Ranker = (*Ranker)(nil)
