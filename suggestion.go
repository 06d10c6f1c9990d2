package symspell

import (
	"sort"
	"strings"
)

// SuggestItem is a single ranked candidate returned from a Lookup. Natural
// order is ascending distance, then descending count; equality is by term.
type SuggestItem struct {
	Term     string
	Distance int
	Count    uint64
}

// SuggestionList is a slice of SuggestItem with small convenience helpers.
type SuggestionList []SuggestItem

// GetWords returns the terms of every suggestion, in order.
func (s SuggestionList) GetWords() []string {
	words := make([]string, 0, len(s))
	for _, item := range s {
		words = append(words, item.Term)
	}
	return words
}

func (s SuggestionList) String() string {
	return "[" + strings.Join(s.GetWords(), ", ") + "]"
}

// sortNatural orders items by ascending distance, then descending count,
// then ascending term, so equal-scoring output is reproducible.
func sortNatural(items SuggestionList) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Term < b.Term
	})
}
