package match

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NishaManivannan/Bakery-chatbot/pkg/ports"
)

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)i am (.+)`),
	regexp.MustCompile(`(?i)i'm (.+)`),
	regexp.MustCompile(`(?i)my name is (.+)`),
}

var (
	phonePunct = regexp.MustCompile(`[.\-(),]`)
	nonDigits  = regexp.MustCompile(`\D`)
)

// digitWords maps spoken digits to their numeric values.
var digitWords = map[string]string{
	"zero": "0", "one": "1", "two": "2", "three": "3", "four": "4",
	"five": "5", "six": "6", "seven": "7", "eight": "8", "nine": "9",
}

var titleCaser = cases.Title(language.English)

// Matcher interprets free-form user input. Zero-configuration: New returns a
// Matcher backed by the default Levenshtein fuzzy matcher. All methods are
// safe for concurrent use.
type Matcher struct {
	fuzzy ports.FuzzyMatcher
}

// Option is a functional option for configuring a Matcher.
type Option func(*Matcher)

// WithFuzzy swaps the fuzzy-similarity fallback implementation.
func WithFuzzy(f ports.FuzzyMatcher) Option {
	return func(m *Matcher) {
		m.fuzzy = f
	}
}

// New returns a Matcher configured with the supplied options.
func New(opts ...Option) *Matcher {
	m := &Matcher{fuzzy: NewLevenshtein()}
	for _, o := range opts {
		o(m)
	}
	return m
}

// MatchOption resolves input against an ordered option list. Options are
// first checked, in list order, for a case-insensitive substring hit inside
// the input; only when none is contained does matching fall back to fuzzy
// similarity over the full set. A substring hit is never overridden by a
// closer fuzzy match to a different option.
func (m *Matcher) MatchOption(input string, options []string) (string, bool) {
	in := strings.ToLower(input)
	for _, opt := range options {
		if strings.Contains(in, strings.ToLower(opt)) {
			return opt, true
		}
	}
	return m.fuzzy.BestMatch(input, options)
}

// ExtractName pulls a person name out of a sentence. It searches for
// "i am X", "i'm X" and "my name is X" (case-insensitive, anywhere in the
// message); when no pattern matches, the whole trimmed message is used.
// The result is title-cased.
func (m *Matcher) ExtractName(message string) string {
	for _, pat := range namePatterns {
		if sub := pat.FindStringSubmatch(message); sub != nil {
			return titleCaser.String(strings.TrimSpace(sub[1]))
		}
	}
	return titleCaser.String(strings.TrimSpace(message))
}

// NormalizePhone reduces a spoken or typed phone number to a digit string.
// Punctuation is stripped first; if every remaining whitespace token is a
// spoken digit word (zero through nine) their values are concatenated,
// otherwise all non-digit characters are removed from the raw input.
// Callers validate the result with ValidPhone before accepting it.
func (m *Matcher) NormalizePhone(raw string) string {
	stripped := phonePunct.ReplaceAllString(raw, "")
	words := strings.Fields(strings.ToLower(strings.TrimSpace(stripped)))
	if len(words) > 0 && allDigitWords(words) {
		var b strings.Builder
		for _, w := range words {
			b.WriteString(digitWords[w])
		}
		return b.String()
	}
	return nonDigits.ReplaceAllString(raw, "")
}

// ValidPhone reports whether s is exactly ten digits.
func ValidPhone(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func allDigitWords(words []string) bool {
	for _, w := range words {
		if _, ok := digitWords[w]; !ok {
			return false
		}
	}
	return true
}
