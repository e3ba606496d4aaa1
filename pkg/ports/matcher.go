package ports

// FuzzyMatcher selects the closest candidate to free-form input by
// approximate string similarity. It is pluggable so the similarity algorithm
// can be swapped or stubbed independently of the dialogue logic.
//
// BestMatch returns the single best candidate above the implementation's
// similarity threshold, or ok=false when nothing is close enough. Matching is
// case-insensitive; the returned candidate keeps its original casing.
type FuzzyMatcher interface {
	BestMatch(input string, candidates []string) (candidate string, ok bool)
}
