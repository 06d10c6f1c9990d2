package wordstore

import "sort"

// SortEntries sorts entries ascending by term, keeping the last count seen
// for any duplicate term. Exported so callers that need the final
// word ordinals (e.g. to build a deletes index against them) can compute the
// same order Build will write.
func SortEntries(entries []Entry) []Entry {
	byTerm := make(map[string]uint64, len(entries))
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, exists := byTerm[e.Term]; !exists {
			order = append(order, e.Term)
		}
		byTerm[e.Term] = e.Count
	}

	sort.Strings(order)

	out := make([]Entry, len(order))
	for i, term := range order {
		out[i] = Entry{Term: term, Count: byTerm[term]}
	}
	return out
}
