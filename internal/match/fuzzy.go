// Package match implements the free-form text interpretation used by the
// dialogue engine: substring-then-fuzzy option matching, person-name
// extraction, and normalization of spoken or typed phone numbers.
package match

import (
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/NishaManivannan/Bakery-chatbot/pkg/ports"
)

// defaultCutoff is the minimum similarity ratio for a fuzzy hit. It mirrors
// the catalogue's short option names: low enough to absorb common typos
// ("margarita" scores 0.8 against "Margherita"), high enough to reject
// unrelated words.
const defaultCutoff = 0.4

// Compile-time interface assertion.
var _ ports.FuzzyMatcher = (*Levenshtein)(nil)

// Levenshtein implements ports.FuzzyMatcher using edit distance normalized to
// a similarity ratio: 1 - distance/maxLen. It is read-only after construction
// and safe for concurrent use.
type Levenshtein struct {
	cutoff float64
}

// LevenshteinOption is a functional option for configuring a Levenshtein matcher.
type LevenshteinOption func(*Levenshtein)

// WithCutoff sets the minimum similarity ratio required for a match.
// Default: 0.4.
func WithCutoff(cutoff float64) LevenshteinOption {
	return func(l *Levenshtein) {
		l.cutoff = cutoff
	}
}

// NewLevenshtein returns a Levenshtein matcher configured with the supplied
// options.
func NewLevenshtein(opts ...LevenshteinOption) *Levenshtein {
	l := &Levenshtein{cutoff: defaultCutoff}
	for _, o := range opts {
		o(l)
	}
	return l
}

// BestMatch returns the candidate most similar to input, provided its ratio
// reaches the cutoff. Comparison is case-insensitive; the winning candidate
// is returned with its original casing.
func (l *Levenshtein) BestMatch(input string, candidates []string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return "", false
	}

	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		score := similarity(in, strings.ToLower(c))
		if score > bestScore {
			best = c
			bestScore = score
		}
	}
	if bestScore < l.cutoff {
		return "", false
	}
	return best, true
}

func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 0
	}
	dist := matchr.Levenshtein(a, b)
	return 1 - float64(dist)/float64(longest)
}
