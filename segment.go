package symspell

import (
	"math"
	"sort"
	"strings"
)

// SegmentResult is the outcome of Segment: the original input as segmented
// pieces, the corrected words those pieces map to, and the cumulative
// edit-distance/log-probability the beam search accumulated.
type SegmentResult struct {
	Segmented   string
	Corrected   string
	DistanceSum int
	LogProbSum  float64
}

// segmentHypothesis is the ephemeral beam-search state: an ordered list of
// corrected words, the parallel list of original segments, the input
// position consumed so far, and the cumulative edit distance and
// log-bigram-probability.
type segmentHypothesis struct {
	words            []string
	originalSegments []string
	position         int
	editDistance     int
	logProbSum       float64
}

func (h segmentHypothesis) score(penaltyPerEdit float64) float64 {
	return h.logProbSum - float64(h.editDistance)*penaltyPerEdit
}

type segmentCandidate struct {
	word     string
	distance int
	freq     uint64
}

// segmentParams is the flat record a SegmentOption mutates, the same shape
// as lookupParams but scoped to the per-call segmentation knobs.
type segmentParams struct {
	maxEditDistance int
	overrideSet     bool
	beamWidth       int
	maxSegmentLen   int
}

// SegmentOption configures a single Segment call.
type SegmentOption func(*segmentParams)

// WithSegmentMaxEditDistance overrides the per-segment correction max edit
// distance, clamped to the engine's instance max like WithMaxEditDistance.
func WithSegmentMaxEditDistance(n int) SegmentOption {
	return func(p *segmentParams) {
		p.maxEditDistance = n
		p.overrideSet = true
	}
}

// WithBeamWidth overrides the number of hypotheses retained per expansion.
func WithBeamWidth(n int) SegmentOption {
	return func(p *segmentParams) { p.beamWidth = n }
}

// WithMaxSegmentLen overrides the longest candidate segment considered at
// each input position.
func WithMaxSegmentLen(n int) SegmentOption {
	return func(p *segmentParams) { p.maxSegmentLen = n }
}

// Segment runs the beam-search word segmenter: it jointly segments a
// concatenated, possibly misspelled string and corrects each resulting word,
// using the bigram store to gate plausible word boundaries. Without a bigram
// store it is a no-op.
func (e *Engine) Segment(phrase string, opts ...SegmentOption) SegmentResult {
	cfg := e.Config.Segmenter
	maxEditDistance := e.Config.MaxEditDistance

	p := &segmentParams{}
	for _, opt := range opts {
		opt(p)
	}
	if p.overrideSet && p.maxEditDistance >= 0 && p.maxEditDistance < maxEditDistance {
		maxEditDistance = p.maxEditDistance
	}
	if p.beamWidth > 0 {
		cfg.BeamWidth = p.beamWidth
	}
	if p.maxSegmentLen > 0 {
		cfg.MaxSegmentLen = p.maxSegmentLen
	}

	if !e.HasBigrams() {
		return SegmentResult{Segmented: phrase, Corrected: phrase, DistanceSum: 0, LogProbSum: cfg.NoBigramLogProb}
	}

	input := strings.ToLower(strings.Join(strings.Fields(phrase), ""))
	if input == "" {
		return SegmentResult{Segmented: phrase, Corrected: phrase, DistanceSum: 0, LogProbSum: cfg.NoBigramLogProb}
	}

	inputRunes := []rune(input)
	n := len(inputRunes)

	beam := []segmentHypothesis{{}}

	for hasLive(beam, n) {
		next := make([]segmentHypothesis, 0, len(beam)*cfg.BeamWidth)
		for _, h := range beam {
			if h.position >= n {
				next = append(next, h)
				continue
			}
			next = append(next, e.expandHypothesis(h, inputRunes, n, cfg, maxEditDistance)...)
		}

		sortHypotheses(next, cfg.EditDistancePenalty)
		if len(next) > cfg.BeamWidth {
			next = next[:cfg.BeamWidth]
		}
		if len(next) == 0 {
			break
		}
		beam = next
	}

	var completed []segmentHypothesis
	for _, h := range beam {
		if h.position == n {
			completed = append(completed, h)
		}
	}
	if len(completed) == 0 {
		return SegmentResult{Segmented: input, Corrected: input, DistanceSum: 0, LogProbSum: cfg.NoBigramLogProb}
	}
	sortHypotheses(completed, cfg.EditDistancePenalty)
	best := completed[0]

	if count := e.words.Get(input); count > 0 {
		singleWordScore := math.Log(float64(count) + 1)
		clearlyBetter := len(best.words) > 1 &&
			singleWordScore < (best.logProbSum/float64(len(best.words)))*0.8 &&
			best.editDistance == 0
		if !clearlyBetter {
			return SegmentResult{Segmented: input, Corrected: input, DistanceSum: 0, LogProbSum: singleWordScore}
		}
	}

	return SegmentResult{
		Segmented:   strings.Join(best.originalSegments, " "),
		Corrected:   strings.Join(best.words, " "),
		DistanceSum: best.editDistance,
		LogProbSum:  best.logProbSum,
	}
}

func hasLive(beam []segmentHypothesis, n int) bool {
	for _, h := range beam {
		if h.position < n {
			return true
		}
	}
	return false
}

func sortHypotheses(hyps []segmentHypothesis, penaltyPerEdit float64) {
	sort.SliceStable(hyps, func(i, j int) bool {
		return hyps[i].score(penaltyPerEdit) > hyps[j].score(penaltyPerEdit)
	})
}

// expandHypothesis runs one round of the segmenter's expansion step for a
// single live hypothesis.
func (e *Engine) expandHypothesis(h segmentHypothesis, inputRunes []rune, n int, cfg SegmenterConfig, maxEditDistance int) []segmentHypothesis {
	var out []segmentHypothesis
	remaining := n - h.position
	maxL := cfg.MaxSegmentLen
	if remaining < maxL {
		maxL = remaining
	}

	var previousWord string
	hasPrevious := len(h.words) > 0
	if hasPrevious {
		previousWord = h.words[len(h.words)-1]
	}

	for l := 1; l <= maxL; l++ {
		seg := string(inputRunes[h.position : h.position+l])
		candidates := e.segmentCandidates(seg, l, maxEditDistance)

		for _, c := range candidates {
			logProbDelta, ok := e.gateCandidate(c, l, remaining, hasPrevious, previousWord, cfg)
			if !ok {
				continue
			}

			words := make([]string, len(h.words)+1)
			copy(words, h.words)
			words[len(h.words)] = c.word

			segments := make([]string, len(h.originalSegments)+1)
			copy(segments, h.originalSegments)
			segments[len(h.originalSegments)] = seg

			out = append(out, segmentHypothesis{
				words:            words,
				originalSegments: segments,
				position:         h.position + l,
				editDistance:     h.editDistance + c.distance,
				logProbSum:       h.logProbSum + logProbDelta,
			})
		}
	}
	return out
}

// gateCandidate applies the bigram gate and computes the log-probability
// contribution for extending a hypothesis with c.
func (e *Engine) gateCandidate(c segmentCandidate, segLen, remaining int, hasPrevious bool, previousWord string, cfg SegmenterConfig) (float64, bool) {
	if !hasPrevious {
		delta := math.Log(float64(c.freq) + 1)
		if c.distance == 0 && segLen > 3 {
			delta += 0.5 * float64(segLen)
		}
		return delta, true
	}

	var bigramFreq uint64
	if e.bigrams != nil {
		bigramFreq = e.bigrams.Get(previousWord + " " + c.word)
	}
	if bigramFreq > 0 {
		return math.Log(float64(bigramFreq) + 1), true
	}
	if segLen == remaining && c.distance == 0 {
		return cfg.TerminalFallbackLogProb, true
	}
	return 0, false
}

// segmentCandidates generates up to three candidates for a segment: an exact
// match, plus (for segments of three or more characters) Closest lookup
// suggestions within range, sorted ascending by distance then descending by
// frequency; a raw last-resort candidate when nothing matched.
func (e *Engine) segmentCandidates(seg string, segLen, maxEditDistance int) []segmentCandidate {
	seen := make(map[string]bool)
	var candidates []segmentCandidate

	if count := e.words.Get(seg); count > 0 {
		candidates = append(candidates, segmentCandidate{word: seg, distance: 0, freq: count})
		seen[seg] = true
	}

	if segLen >= 3 {
		suggestions, err := e.Lookup(seg, WithVerbosity(Closest), WithMaxEditDistance(maxEditDistance))
		if err == nil {
			for _, s := range suggestions {
				if seen[s.Term] {
					continue
				}
				if absInt(len([]rune(s.Term))-segLen) > maxEditDistance {
					continue
				}
				seen[s.Term] = true
				candidates = append(candidates, segmentCandidate{word: s.Term, distance: s.Distance, freq: s.Count})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].freq > candidates[j].freq
	})

	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	if len(candidates) == 0 {
		candidates = []segmentCandidate{{word: seg, distance: maxEditDistance + 1, freq: 0}}
	}
	return candidates
}
