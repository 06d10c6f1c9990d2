package symspell

import "strings"

// CompoundResult is the outcome of LookupCompound: a corrected phrase and
// its summed per-token edit distance.
type CompoundResult struct {
	Corrected string
	Distance  int
}

// compoundParams is the flat record a CompoundOption mutates, the same
// shape as lookupParams but scoped to the per-token correction knobs.
type compoundParams struct {
	maxEditDistance int
	overrideSet     bool
	transferCasing  bool
}

// CompoundOption configures a single LookupCompound call.
type CompoundOption func(*compoundParams)

// WithCompoundMaxEditDistance overrides the per-token max edit distance,
// same clamping as WithMaxEditDistance on a single-word Lookup.
func WithCompoundMaxEditDistance(n int) CompoundOption {
	return func(p *compoundParams) {
		p.maxEditDistance = n
		p.overrideSet = true
	}
}

// WithCompoundTransferCasing reapplies each token's own casing pattern onto
// its corrected replacement, same as WithTransferCasing on a single-word
// Lookup.
func WithCompoundTransferCasing() CompoundOption {
	return func(p *compoundParams) { p.transferCasing = true }
}

// LookupCompound splits the input on whitespace, corrects each token
// independently at Top verbosity, and joins the winners with a single space.
// It does not merge or split adjacent tokens; that is the segmenter's job.
func (e *Engine) LookupCompound(phrase string, opts ...CompoundOption) CompoundResult {
	p := &compoundParams{}
	for _, opt := range opts {
		opt(p)
	}

	tokens := strings.Fields(phrase)
	if len(tokens) == 0 {
		return CompoundResult{Corrected: "", Distance: 0}
	}

	lookupOpts := []LookupOption{WithVerbosity(Top)}
	if p.overrideSet {
		lookupOpts = append(lookupOpts, WithMaxEditDistance(p.maxEditDistance))
	}
	if p.transferCasing {
		lookupOpts = append(lookupOpts, WithTransferCasing())
	}

	maxEditDistance := e.Config.MaxEditDistance
	if p.overrideSet && p.maxEditDistance < maxEditDistance {
		maxEditDistance = p.maxEditDistance
	}

	corrected := make([]string, len(tokens))
	totalDistance := 0

	for i, token := range tokens {
		suggestions, err := e.Lookup(token, lookupOpts...)
		if err != nil || len(suggestions) == 0 {
			corrected[i] = token
			totalDistance += maxEditDistance + 1
			continue
		}
		corrected[i] = suggestions[0].Term
		totalDistance += suggestions[0].Distance
	}

	return CompoundResult{
		Corrected: strings.Join(corrected, " "),
		Distance:  totalDistance,
	}
}
