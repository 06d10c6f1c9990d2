package symspell

import "fmt"

// Verbosity controls how many suggestions a Lookup returns, and how it
// decides which survivors to keep as better candidates are found.
type Verbosity int

const (
	// Top yields a single best suggestion.
	Top Verbosity = iota
	// Closest yields every suggestion tied at the smallest distance found.
	Closest
	// All yields every suggestion within the max edit distance.
	All
)

func (v Verbosity) String() string {
	switch v {
	case Top:
		return "Top"
	case Closest:
		return "Closest"
	case All:
		return "All"
	default:
		return fmt.Sprintf("Verbosity(%d)", int(v))
	}
}

// ScoringMode selects one of the three ranking strategies. Mode-specific
// weights live in scoringWeights below, a plain configuration record, not a
// subclass per mode, dispatched by scorer.go.
type ScoringMode int

const (
	// DistanceFirst keeps edit distance strictly primary; bigram frequency
	// only breaks ties within a distance tier.
	DistanceFirst ScoringMode = iota
	// Balanced blends distance, unigram frequency and bigram context with
	// weights 0.5, 0.3 and 0.2.
	Balanced
	// FrequencyBoosted leans the blend further toward frequency and bigram
	// context than Balanced.
	FrequencyBoosted
)

func (m ScoringMode) String() string {
	switch m {
	case DistanceFirst:
		return "DistanceFirst"
	case Balanced:
		return "Balanced"
	case FrequencyBoosted:
		return "FrequencyBoosted"
	default:
		return fmt.Sprintf("ScoringMode(%d)", int(m))
	}
}

// scoringWeights holds the constants for a ScoringMode.
type scoringWeights struct {
	// DistanceFirst bigram boost multiplier.
	bigramBoost float64
	// Balanced/FrequencyBoosted blend weights.
	wDistance float64
	wFreq     float64
	wBigram   float64
	epsilon   float64
}

func weightsFor(mode ScoringMode) scoringWeights {
	switch mode {
	case Balanced:
		return scoringWeights{wDistance: 0.5, wFreq: 0.3, wBigram: 0.2, epsilon: 0.01}
	case FrequencyBoosted:
		return scoringWeights{wDistance: 0.3, wFreq: 0.4, wBigram: 0.3, epsilon: 0.01}
	default: // DistanceFirst
		return scoringWeights{bigramBoost: 10.0}
	}
}

// AutoCorrectConfig holds the knobs for the auto-correction policy.
type AutoCorrectConfig struct {
	MinConfidence           float64
	DistancePenaltyPerEdit  float64
	AmbiguityMult           float64
	ShortWordThreshold      int
	ShortWordPenaltyPerChar float64
	HighFreqBonus           float64
	HighFreqThreshold       int64
	ValidWordMaxConfidence  float64
	ValidWordMinFreqRatio   float64
}

func defaultAutoCorrectConfig() AutoCorrectConfig {
	return AutoCorrectConfig{
		MinConfidence:           0.75,
		DistancePenaltyPerEdit:  0.2,
		AmbiguityMult:           0.6,
		ShortWordThreshold:      4,
		ShortWordPenaltyPerChar: 0.07,
		HighFreqBonus:           0.05,
		HighFreqThreshold:       100000,
		ValidWordMaxConfidence:  0.6,
		ValidWordMinFreqRatio:   10.0,
	}
}

// SegmenterConfig holds the knobs for the beam segmenter.
type SegmenterConfig struct {
	BeamWidth               int
	MaxSegmentLen           int
	EditDistancePenalty     float64 // per-edit score penalty, default 5.0
	TerminalFallbackLogProb float64 // log-prob for the terminal bigram-gate exception, default -5
	NoBigramLogProb         float64 // reported log_prob_sum when there is no bigram store, default -50
}

func defaultSegmenterConfig() SegmenterConfig {
	return SegmenterConfig{
		BeamWidth:               10,
		MaxSegmentLen:           20,
		EditDistancePenalty:     5.0,
		TerminalFallbackLogProb: -5.0,
		NoBigramLogProb:         -50.0,
	}
}

// Config is the flat record of recognized engine-construction options;
// defaults are named constants so presets are construction helpers, not
// subtypes.
type Config struct {
	// MaxEditDistance bounds how many deletes are generated per dictionary
	// word, and the default ceiling for Lookup calls.
	MaxEditDistance int
	// PrefixLength bounds how much of a word is used to generate its
	// deletes; must be > max(1, MaxEditDistance).
	PrefixLength int
	// CacheSize bounds the per-store word->count memoization cache.
	CacheSize int
	// ScoringMode selects the ranking strategy used by the scorer.
	ScoringMode ScoringMode

	AutoCorrect AutoCorrectConfig
	Segmenter   SegmenterConfig
}

const (
	defaultMaxEditDistance = 2
	defaultPrefixLength    = 7
	defaultCacheSize       = 1000
)

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		MaxEditDistance: defaultMaxEditDistance,
		PrefixLength:    defaultPrefixLength,
		CacheSize:       defaultCacheSize,
		ScoringMode:     DistanceFirst,
		AutoCorrect:     defaultAutoCorrectConfig(),
		Segmenter:       defaultSegmenterConfig(),
	}
}

// ConservativeConfig tightens the edit distance and raises the
// auto-correction confidence bar, trading recall for precision (suited to
// an embedded keyboard extension where a wrong auto-correct is more costly
// than a missed one).
func ConservativeConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxEditDistance = 1
	cfg.AutoCorrect.MinConfidence = 0.85
	return cfg
}

// AggressiveConfig widens the edit distance and lowers the auto-correction
// confidence bar, trading precision for recall.
func AggressiveConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxEditDistance = 3
	cfg.PrefixLength = 8
	cfg.AutoCorrect.MinConfidence = 0.6
	cfg.ScoringMode = FrequencyBoosted
	return cfg
}

// Validate checks the construction-time invariants: MaxEditDistance >= 0 and
// PrefixLength > max(1, MaxEditDistance).
func (c Config) Validate() error {
	if c.MaxEditDistance < 0 {
		return fmt.Errorf("symspell: MaxEditDistance must be >= 0, got %d", c.MaxEditDistance)
	}
	floor := c.MaxEditDistance
	if floor < 1 {
		floor = 1
	}
	if c.PrefixLength <= floor {
		return fmt.Errorf("symspell: PrefixLength (%d) must be greater than max(1, MaxEditDistance) (%d)", c.PrefixLength, floor)
	}
	return nil
}
