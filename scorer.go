package symspell

import (
	"math"
	"sort"
)

// rank combines distance, unigram frequency and (when a previous word is
// known) bigram frequency into a single score per the engine's configured
// ScoringMode, then sorts descending by score with a deterministic tiebreak.
// When no previous word was supplied, ranking collapses to the natural
// (distance, count, term) order that finalizeLookup's sortNatural already
// applies; rank is still called uniformly to keep Lookup's control flow
// single-path.
func rank(items SuggestionList, e *Engine, previousWord string, hasPreviousWord bool) SuggestionList {
	if len(items) <= 1 {
		return items
	}
	if !hasPreviousWord {
		sortNatural(items)
		return items
	}

	weights := weightsFor(e.Config.ScoringMode)
	maxCount := e.words.EstimateMaxCount()
	maxEditDistance := e.Config.MaxEditDistance

	var maxBigram uint64
	bigramFreq := make([]uint64, len(items))
	if e.bigrams != nil {
		for i, item := range items {
			f := e.bigrams.Get(previousWord + " " + item.Term)
			bigramFreq[i] = f
			if f > maxBigram {
				maxBigram = f
			}
		}
	}

	scores := make([]float64, len(items))
	for i, item := range items {
		scores[i] = score(e.Config.ScoringMode, weights, item, maxEditDistance, maxCount, bigramFreq[i], maxBigram)
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if scores[i] != scores[j] {
			return scores[i] > scores[j]
		}
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Term < items[j].Term
	})

	out := make(SuggestionList, len(items))
	for i, idx := range order {
		out[i] = items[idx]
	}
	return out
}

func score(mode ScoringMode, w scoringWeights, item SuggestItem, maxEditDistance int, maxCount, bigramFreq, maxBigram uint64) float64 {
	if mode == DistanceFirst {
		const tierWidth = 1e9
		tier := float64(maxEditDistance+1-item.Distance) * tierWidth
		// Count and bigram bonus only order items inside a tier, so their sum
		// is capped just below the tier width.
		within := float64(item.Count) + float64(bigramFreq)*w.bigramBoost
		if within > tierWidth-1 {
			within = tierWidth - 1
		}
		return tier + within
	}

	distPen := float64(item.Distance) / float64(maxInt(1, maxEditDistance))

	var normFreq float64
	if maxCount > 0 {
		normFreq = math.Log10(float64(item.Count)+1) / math.Log10(float64(maxCount)+1)
	}

	var normBi float64
	if bigramFreq > 0 && maxBigram > 0 {
		normBi = math.Log10(float64(bigramFreq)+1) / math.Log10(float64(maxBigram)+1)
	}

	var epsilon float64
	if item.Distance == 0 {
		epsilon = w.epsilon
	}

	return epsilon + (1-distPen)*w.wDistance + normFreq*w.wFreq + normBi*w.wBigram
}
