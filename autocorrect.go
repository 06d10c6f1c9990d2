package symspell

// AutoCorrectResult is the optional outcome of AutoCorrect: a replacement
// term paired with a confidence in [0,1].
type AutoCorrectResult struct {
	Term       string
	Confidence float64
}

// autoCorrectParams is the flat record an AutoCorrectOption mutates.
type autoCorrectParams struct {
	minConfidence float64
	overrideSet   bool
}

// AutoCorrectOption configures a single AutoCorrect call.
type AutoCorrectOption func(*autoCorrectParams)

// WithMinConfidence overrides the configured confidence floor for this call.
func WithMinConfidence(v float64) AutoCorrectOption {
	return func(p *autoCorrectParams) {
		p.minConfidence = v
		p.overrideSet = true
	}
}

// AutoCorrect decides whether w should be replaced, returning (result, true)
// when the best suggestion's confidence clears the configured floor, else
// (zero value, false).
func (e *Engine) AutoCorrect(w string, opts ...AutoCorrectOption) (AutoCorrectResult, bool) {
	cfg := e.Config.AutoCorrect
	p := &autoCorrectParams{}
	for _, opt := range opts {
		opt(p)
	}
	if p.overrideSet {
		cfg.MinConfidence = p.minConfidence
	}

	suggestions, err := e.Lookup(w, WithVerbosity(All))
	if err != nil || len(suggestions) == 0 {
		return AutoCorrectResult{}, false
	}
	sortNatural(suggestions)

	if count := e.words.Get(w); count > 0 {
		return e.autoCorrectKnownWord(w, count, suggestions, cfg)
	}
	return e.autoCorrectUnknownWord(w, suggestions, cfg)
}

func (e *Engine) autoCorrectKnownWord(w string, count uint64, suggestions SuggestionList, cfg AutoCorrectConfig) (AutoCorrectResult, bool) {
	var alt *SuggestItem
	for i := range suggestions {
		if suggestions[i].Distance >= 1 && suggestions[i].Term != w {
			alt = &suggestions[i]
			break
		}
	}
	if alt == nil {
		return AutoCorrectResult{}, false
	}

	ratio := float64(alt.Count) / float64(maxUint64(1, count))
	if alt.Distance != 1 || ratio < cfg.ValidWordMinFreqRatio {
		return AutoCorrectResult{}, false
	}

	conf := 0.3 + 0.003*ratio
	if conf > cfg.ValidWordMaxConfidence {
		conf = cfg.ValidWordMaxConfidence
	}
	if conf < cfg.MinConfidence {
		return AutoCorrectResult{}, false
	}
	return AutoCorrectResult{Term: alt.Term, Confidence: conf}, true
}

func (e *Engine) autoCorrectUnknownWord(w string, suggestions SuggestionList, cfg AutoCorrectConfig) (AutoCorrectResult, bool) {
	top := suggestions[0]
	conf := 1.0

	conf -= cfg.DistancePenaltyPerEdit * float64(top.Distance)

	if len(suggestions) > 1 && suggestions[1].Distance == top.Distance {
		second := suggestions[1]
		ratio := float64(top.Count) / float64(top.Count+second.Count)
		conf -= (1 - ratio) * cfg.AmbiguityMult
	}

	wLen := len([]rune(w))
	if wLen < cfg.ShortWordThreshold {
		conf -= float64(cfg.ShortWordThreshold-wLen) * cfg.ShortWordPenaltyPerChar
	}

	if int64(top.Count) > cfg.HighFreqThreshold {
		conf += cfg.HighFreqBonus
	}

	conf = clamp01(conf)
	if conf < cfg.MinConfidence {
		return AutoCorrectResult{}, false
	}
	return AutoCorrectResult{Term: top.Term, Confidence: conf}, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxUint64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
