package symspell

import (
	"strings"

	"symspell/internal/distance"
)

// lookupParams is the flat record a LookupOption mutates.
type lookupParams struct {
	verbosity       Verbosity
	maxEditDistance int
	overrideSet     bool
	includeUnknown  bool
	transferCasing  bool
	previousWord    string
	hasPreviousWord bool
}

// LookupOption configures a single Lookup call.
type LookupOption func(*lookupParams)

// WithVerbosity selects how many/which suggestions are returned.
func WithVerbosity(v Verbosity) LookupOption {
	return func(p *lookupParams) { p.verbosity = v }
}

// WithMaxEditDistance overrides the engine's configured max edit distance
// for this call; it is clamped down to the engine's instance max.
func WithMaxEditDistance(n int) LookupOption {
	return func(p *lookupParams) {
		p.maxEditDistance = n
		p.overrideSet = true
	}
}

// WithIncludeUnknown causes an unrecognized word to be reported back with
// distance = max+1, count = 0 rather than an empty result.
func WithIncludeUnknown() LookupOption {
	return func(p *lookupParams) { p.includeUnknown = true }
}

// WithTransferCasing lowercases the phrase for internal matching and maps
// the casing of the original phrase back onto each survivor's term.
func WithTransferCasing() LookupOption {
	return func(p *lookupParams) { p.transferCasing = true }
}

// WithPreviousWord enables bigram-aware ranking: lookup collects candidates
// as though verbosity were All, then the scorer uses the bigram
// previousWord+candidate to influence the final order.
func WithPreviousWord(previousWord string) LookupOption {
	return func(p *lookupParams) {
		p.previousWord = previousWord
		p.hasPreviousWord = true
	}
}

func (e *Engine) defaultLookupParams() *lookupParams {
	return &lookupParams{
		verbosity:       Top,
		maxEditDistance: e.Config.MaxEditDistance,
	}
}

// Lookup returns ranked spelling suggestions for a single token.
func (e *Engine) Lookup(phrase string, opts ...LookupOption) (SuggestionList, error) {
	p := e.defaultLookupParams()
	for _, opt := range opts {
		opt(p)
	}

	if p.overrideSet && p.maxEditDistance > e.Config.MaxEditDistance {
		p.maxEditDistance = e.Config.MaxEditDistance
	}
	if p.maxEditDistance < 0 {
		p.maxEditDistance = 0
	}

	if phrase == "" {
		return SuggestionList{}, nil
	}

	query := phrase
	if p.transferCasing {
		query = strings.ToLower(phrase)
	}
	if query == "" {
		return SuggestionList{}, nil
	}

	results := SuggestionList{}

	if count := e.words.Get(query); count > 0 {
		results = append(results, SuggestItem{Term: query, Distance: 0, Count: count})
		if p.verbosity != All && !p.hasPreviousWord {
			return e.finalizeLookup(phrase, query, p, results), nil
		}
	}

	candidateMax := p.maxEditDistance
	if len(results) > 0 && p.hasPreviousWord {
		if candidateMax > 1 {
			candidateMax = 1
		}
	}

	if candidateMax == 0 {
		if len(results) == 0 && p.includeUnknown {
			results = append(results, SuggestItem{Term: query, Distance: p.maxEditDistance + 1, Count: 0})
		}
		return e.finalizeLookup(phrase, query, p, results), nil
	}

	e.collectCandidates(query, candidateMax, p, &results)

	if len(results) == 0 && p.includeUnknown {
		results = append(results, SuggestItem{Term: query, Distance: p.maxEditDistance + 1, Count: 0})
	}

	ranked := rank(results, e, p.previousWord, p.hasPreviousWord)
	if p.hasPreviousWord && p.verbosity == Top && len(ranked) > 1 {
		ranked = ranked[:1]
	}
	return e.finalizeLookup(phrase, query, p, ranked), nil
}

// collectCandidates walks a FIFO candidate pool seeded from the query's
// prefix, resolving delete-closure hits and filtering them by edit distance.
func (e *Engine) collectCandidates(query string, maxEditDistance int, p *lookupParams, results *SuggestionList) {
	queryRunes := []rune(query)
	queryLen := len(queryRunes)
	prefixLength := e.Config.PrefixLength

	consideredDeletes := make(map[string]bool)
	consideredSuggestions := make(map[string]bool)
	consideredSuggestions[query] = true
	for _, item := range *results {
		consideredSuggestions[item.Term] = true
	}

	queryPrefixLen := queryLen
	if prefixLength < queryPrefixLen {
		queryPrefixLen = prefixLength
	}

	candidates := []string{runeSlice(queryRunes, 0, queryPrefixLen)}

	currentMax := maxEditDistance

	// Bigram-aware override: collect as though verbosity were All so the
	// scorer has every in-range candidate to rank.
	collectionVerbosity := p.verbosity
	if p.hasPreviousWord {
		collectionVerbosity = All
	}

	for i := 0; i < len(candidates); i++ {
		candidate := candidates[i]
		candidateRunes := []rune(candidate)
		candidateLen := len(candidateRunes)
		lengthDiff := queryPrefixLen - candidateLen

		if lengthDiff > currentMax {
			if collectionVerbosity == All {
				continue
			}
			break
		}

		for _, idx := range e.deletes.Get(candidate) {
			word, count, ok := e.words.At(idx)
			if !ok {
				continue // OutOfRangeIndex: silently dropped
			}

			wordRunes := []rune(word)
			suggestionLen := len(wordRunes)

			if word == query {
				continue
			}
			if absInt(suggestionLen-queryLen) > currentMax {
				continue
			}
			if suggestionLen < candidateLen {
				continue
			}
			if suggestionLen == candidateLen && word != candidate {
				continue
			}
			if consideredSuggestions[word] {
				continue
			}
			consideredSuggestions[word] = true

			var dist int
			switch {
			case candidateLen == 0:
				dist = maxInt(queryLen, suggestionLen)
				if dist > currentMax {
					continue
				}
			case suggestionLen == 1:
				if strings.Contains(query, word) {
					dist = queryLen - 1
				} else {
					dist = queryLen
				}
				if dist > currentMax {
					continue
				}
			default:
				dist = e.distanceBetween(query, word, currentMax)
				if dist < 0 {
					continue
				}
			}

			if dist > currentMax {
				continue
			}

			currentMax = e.applySurvivor(results, collectionVerbosity, word, dist, count, currentMax)
		}

		if lengthDiff < currentMax && candidateLen <= prefixLength {
			for i := 0; i < candidateLen; i++ {
				deleted := removeRuneAt(candidateRunes, i)
				if !consideredDeletes[deleted] {
					consideredDeletes[deleted] = true
					candidates = append(candidates, deleted)
				}
			}
		}
	}
}

// applySurvivor records a surviving suggestion according to the active
// verbosity and returns the (possibly tightened) distance bound.
func (e *Engine) applySurvivor(results *SuggestionList, verbosity Verbosity, word string, dist int, count uint64, currentMax int) int {
	if len(*results) > 0 {
		switch verbosity {
		case Closest:
			if dist < currentMax {
				*results = (*results)[:0]
			}
		case Top:
			cur := (*results)[0]
			if dist < cur.Distance || count > cur.Count {
				(*results)[0] = SuggestItem{Term: word, Distance: dist, Count: count}
				return dist
			}
			return currentMax
		}
	}

	if verbosity != All {
		currentMax = dist
	}
	*results = append(*results, SuggestItem{Term: word, Distance: dist, Count: count})
	return currentMax
}

func (e *Engine) distanceBetween(a, b string, max int) int {
	if e.kbd != nil {
		return distance.WeightedDistance(a, b, max, e.kbd)
	}
	return distance.Distance(a, b, max)
}

// finalizeLookup applies the natural sort order (when no bigram ranking
// already ordered results) and casing transfer, then returns the result.
func (e *Engine) finalizeLookup(original, query string, p *lookupParams, results SuggestionList) SuggestionList {
	if !p.hasPreviousWord {
		sortNatural(results)
	}

	if p.transferCasing {
		for i := range results {
			results[i].Term = transferCase(original, results[i].Term)
		}
	}

	return results
}

// PrefixLookup returns dictionary words beginning with prefix, ranked by
// frequency, using an adaptive minimum-frequency floor by prefix length.
func (e *Engine) PrefixLookup(prefix string, limit int, minFrequency int64) SuggestionList {
	if limit <= 0 {
		limit = 5
	}
	if prefix == "" {
		return SuggestionList{}
	}

	threshold := minFrequency
	if minFrequency < 0 {
		threshold = adaptivePrefixThreshold(len([]rune(prefix)))
	}

	hits := e.words.PrefixScan(prefix, limit*4)
	out := make(SuggestionList, 0, limit)
	for _, h := range hits {
		if int64(h.Count) < threshold {
			continue
		}
		out = append(out, SuggestItem{Term: h.Term, Distance: 0, Count: h.Count})
		if len(out) >= limit {
			break
		}
	}
	return out
}

func adaptivePrefixThreshold(prefixRuneLen int) int64 {
	switch {
	case prefixRuneLen <= 2:
		return 10000
	case prefixRuneLen == 3:
		return 1000
	case prefixRuneLen == 4:
		return 100
	default:
		return 10
	}
}

func runeSlice(runes []rune, start, end int) string {
	if start >= len(runes) {
		return ""
	}
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}

func removeRuneAt(runes []rune, i int) string {
	out := make([]rune, 0, len(runes)-1)
	out = append(out, runes[:i]...)
	out = append(out, runes[i+1:]...)
	return string(out)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
