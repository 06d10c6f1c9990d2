package symspell_test

import (
	"path/filepath"
	"testing"

	"symspell"
	"symspell/internal/wordstore"
)

// newTestEngine builds and opens an engine from inline word/bigram
// frequency tables. useKeyboard loads the built-in QWERTY preset.
func newTestEngine(t *testing.T, words map[string]uint64, bigrams map[string]uint64, useKeyboard bool) *symspell.Engine {
	t.Helper()

	dir := t.TempDir()
	paths := symspell.Paths{
		Words:   filepath.Join(dir, "words.bin"),
		Deletes: filepath.Join(dir, "deletes.bin"),
	}

	var wordEntries []wordstore.Entry
	for term, count := range words {
		wordEntries = append(wordEntries, wordstore.Entry{Term: term, Count: count})
	}

	input := symspell.BuildInput{Words: wordEntries}

	if len(bigrams) > 0 {
		paths.Bigrams = filepath.Join(dir, "bigrams.bin")
		for term, count := range bigrams {
			input.Bigrams = append(input.Bigrams, wordstore.Entry{Term: term, Count: count})
		}
	}

	if useKeyboard {
		paths.Keyboard = filepath.Join(dir, "kbd.bin")
		if err := symspell.BuildKeyboard(paths.Keyboard); err != nil {
			t.Fatalf("BuildKeyboard: %v", err)
		}
	}

	cfg := symspell.DefaultConfig()
	if err := symspell.Build(paths, input, cfg); err != nil {
		t.Fatalf("Build: %v", err)
	}

	e, err := symspell.Open(paths, cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

// A misspelled token resolves to the closest dictionary word at Top
// verbosity; an exact match comes back alone with distance 0.
func TestLookupSingleToken(t *testing.T) {
	e := newTestEngine(t, map[string]uint64{
		"hello": 1000, "world": 900, "help": 800, "held": 700,
	}, nil, false)

	got, err := e.Lookup("helo", symspell.WithVerbosity(symspell.Top))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Term != "hello" || got[0].Distance != 1 || got[0].Count != 1000 {
		t.Fatalf("lookup(helo, Top) = %+v, want [{hello 1 1000}]", got)
	}

	got, err = e.Lookup("hello", symspell.WithVerbosity(symspell.Top))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Term != "hello" || got[0].Distance != 0 {
		t.Fatalf("lookup(hello, Top) = %+v, want [{hello 0 1000}]", got)
	}
}

// Verbosity monotonicity: |Top| <= |Closest| <= |All| for the same query.
func TestLookupVerbosityMonotonicity(t *testing.T) {
	e := newTestEngine(t, map[string]uint64{
		"steam": 100, "steams": 200, "steem": 150,
	}, nil, false)

	top, err := e.Lookup("steems", symspell.WithVerbosity(symspell.Top))
	if err != nil {
		t.Fatal(err)
	}
	closest, err := e.Lookup("steems", symspell.WithVerbosity(symspell.Closest))
	if err != nil {
		t.Fatal(err)
	}
	all, err := e.Lookup("steems", symspell.WithVerbosity(symspell.All))
	if err != nil {
		t.Fatal(err)
	}

	if len(top) != 1 {
		t.Fatalf("len(top) = %d, want 1", len(top))
	}
	if len(closest) != 2 {
		t.Fatalf("len(closest) = %d, want 2", len(closest))
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}
}

func TestSegmentConcatenatedPhrase(t *testing.T) {
	e := newTestEngine(t,
		map[string]uint64{"the": 10000, "quick": 5000, "brown": 4000, "fox": 3000},
		map[string]uint64{"the quick": 1000, "quick brown": 800, "brown fox": 600},
		false,
	)

	result := e.Segment("thequickbrownfox")
	if result.Corrected != "the quick brown fox" {
		t.Fatalf("Segment(...).Corrected = %q, want %q", result.Corrected, "the quick brown fox")
	}
}

// Keyboard-weighted distance keeps "the" ranked first over "tie" both with
// and without a keyboard layout.
func TestLookupKeyboardWeighting(t *testing.T) {
	words := map[string]uint64{"the": 10000000, "tie": 5000}

	e := newTestEngine(t, words, nil, false)
	got, err := e.Lookup("tje", symspell.WithVerbosity(symspell.Closest))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	for _, item := range got {
		if item.Distance != 1 {
			t.Fatalf("distance for %q = %d, want 1", item.Term, item.Distance)
		}
	}
	if got[0].Term != "the" {
		t.Fatalf("got[0].Term = %q, want %q (ranked first by count)", got[0].Term, "the")
	}

	ek := newTestEngine(t, words, nil, true)
	gotKbd, err := ek.Lookup("tje", symspell.WithVerbosity(symspell.Closest))
	if err != nil {
		t.Fatal(err)
	}
	if gotKbd[0].Term != "the" {
		t.Fatalf("with keyboard, got[0].Term = %q, want %q", gotKbd[0].Term, "the")
	}
}

// Bigram context reinforces, rather than overturns, an already-favored
// suggestion under Balanced scoring.
func TestLookupBigramReinforces(t *testing.T) {
	dir := t.TempDir()
	paths := symspell.Paths{
		Words:   filepath.Join(dir, "words.bin"),
		Deletes: filepath.Join(dir, "deletes.bin"),
		Bigrams: filepath.Join(dir, "bigrams.bin"),
	}
	cfg := symspell.DefaultConfig()
	cfg.ScoringMode = symspell.Balanced

	input := symspell.BuildInput{
		Words: []wordstore.Entry{
			{Term: "quick", Count: 100000},
			{Term: "quack", Count: 80000},
		},
		Bigrams: []wordstore.Entry{
			{Term: "the quick", Count: 1000000},
			{Term: "the quack", Count: 1000},
		},
	}
	if err := symspell.Build(paths, input, cfg); err != nil {
		t.Fatalf("Build: %v", err)
	}
	e, err := symspell.Open(paths, cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer e.Close()

	withoutContext, err := e.Lookup("quic", symspell.WithVerbosity(symspell.Closest))
	if err != nil {
		t.Fatal(err)
	}
	if len(withoutContext) == 0 || withoutContext[0].Term != "quick" {
		t.Fatalf("lookup(quic, Closest) first = %+v, want quick first", withoutContext)
	}

	withContext, err := e.Lookup("quic", symspell.WithVerbosity(symspell.Closest), symspell.WithPreviousWord("the"))
	if err != nil {
		t.Fatal(err)
	}
	if len(withContext) == 0 || withContext[0].Term != "quick" {
		t.Fatalf("lookup(quic, Closest, previous_word=the) first = %+v, want quick first", withContext)
	}
}

// Under FrequencyBoosted, strong bigram context can override an exact
// match's epsilon bonus.
func TestLookupBigramOverridesExactMatch(t *testing.T) {
	dir := t.TempDir()
	paths := symspell.Paths{
		Words:   filepath.Join(dir, "words.bin"),
		Deletes: filepath.Join(dir, "deletes.bin"),
		Bigrams: filepath.Join(dir, "bigrams.bin"),
	}
	cfg := symspell.DefaultConfig()
	cfg.ScoringMode = symspell.FrequencyBoosted

	input := symspell.BuildInput{
		Words: []wordstore.Entry{
			{Term: "bow", Count: 50000},
			{Term: "how", Count: 500000},
			{Term: "wonder", Count: 100000},
		},
		Bigrams: []wordstore.Entry{
			{Term: "wonder how", Count: 1000000},
			{Term: "wonder bow", Count: 100},
		},
	}
	if err := symspell.Build(paths, input, cfg); err != nil {
		t.Fatalf("Build: %v", err)
	}
	e, err := symspell.Open(paths, cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer e.Close()

	withoutContext, err := e.Lookup("bow", symspell.WithVerbosity(symspell.Closest))
	if err != nil {
		t.Fatal(err)
	}
	if len(withoutContext) == 0 || withoutContext[0].Term != "bow" || withoutContext[0].Distance != 0 {
		t.Fatalf("lookup(bow, Closest) first = %+v, want exact-match bow first", withoutContext)
	}

	withContext, err := e.Lookup("bow", symspell.WithVerbosity(symspell.Closest), symspell.WithPreviousWord("wonder"))
	if err != nil {
		t.Fatal(err)
	}
	if len(withContext) == 0 || withContext[0].Term != "how" {
		t.Fatalf("lookup(bow, Closest, previous_word=wonder) first = %+v, want how first", withContext)
	}
}

func TestAutoCorrectUnknownWord(t *testing.T) {
	e := newTestEngine(t, map[string]uint64{
		"hello": 1000000, "world": 900000,
	}, nil, false)

	result, ok := e.AutoCorrect("helo")
	if !ok {
		t.Fatal("expected AutoCorrect to find a correction")
	}
	if result.Term != "hello" {
		t.Fatalf("AutoCorrect(helo).Term = %q, want hello", result.Term)
	}
	if result.Confidence < e.Config.AutoCorrect.MinConfidence {
		t.Fatalf("AutoCorrect(helo).Confidence = %v, below min_confidence", result.Confidence)
	}
}

func TestAutoCorrectValidWordUnchangedByDefault(t *testing.T) {
	// ValidWordMaxConfidence (0.6) < MinConfidence (0.75) by default, so a
	// dictionary word with a close, much more frequent neighbor still isn't
	// auto-corrected.
	e := newTestEngine(t, map[string]uint64{
		"definately": 10, "definitely": 1000000,
	}, nil, false)

	_, ok := e.AutoCorrect("definately")
	if ok {
		t.Fatal("expected no auto-correction of a valid word under default config")
	}
}

func TestLookupCompound(t *testing.T) {
	e := newTestEngine(t, map[string]uint64{
		"the": 10000, "quick": 5000, "brown": 4000, "fox": 3000,
	}, nil, false)

	result := e.LookupCompound("teh quikc brown fox")
	if result.Corrected != "the quick brown fox" {
		t.Fatalf("LookupCompound(...).Corrected = %q, want %q", result.Corrected, "the quick brown fox")
	}
	if result.Distance == 0 {
		t.Fatal("expected nonzero summed distance for two corrected tokens")
	}
}

func TestSegmentNoBigramStoreIsNoOp(t *testing.T) {
	e := newTestEngine(t, map[string]uint64{"the": 100, "quick": 50}, nil, false)

	result := e.Segment("thequick")
	if result.Segmented != "thequick" || result.Corrected != "thequick" {
		t.Fatalf("Segment without bigrams = %+v, want input echoed back", result)
	}
	if result.DistanceSum != 0 || result.LogProbSum != e.Config.Segmenter.NoBigramLogProb {
		t.Fatalf("Segment without bigrams distance/logprob = %d/%v, want 0/%v",
			result.DistanceSum, result.LogProbSum, e.Config.Segmenter.NoBigramLogProb)
	}
}

func TestLookupIncludeUnknown(t *testing.T) {
	e := newTestEngine(t, map[string]uint64{"hello": 1000}, nil, false)

	got, err := e.Lookup("zzzzzz", symspell.WithVerbosity(symspell.Top))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("lookup(zzzzzz) = %+v, want empty without include_unknown", got)
	}

	got, err = e.Lookup("zzzzzz", symspell.WithVerbosity(symspell.Top), symspell.WithIncludeUnknown())
	if err != nil {
		t.Fatal(err)
	}
	wantDist := e.Config.MaxEditDistance + 1
	if len(got) != 1 || got[0].Term != "zzzzzz" || got[0].Distance != wantDist || got[0].Count != 0 {
		t.Fatalf("lookup(zzzzzz, include_unknown) = %+v, want [{zzzzzz %d 0}]", got, wantDist)
	}
}

func TestAutoCorrectMinConfidenceOverride(t *testing.T) {
	e := newTestEngine(t, map[string]uint64{"hello": 1000000}, nil, false)

	if _, ok := e.AutoCorrect("helo"); !ok {
		t.Fatal("expected a correction under the default confidence floor")
	}
	if _, ok := e.AutoCorrect("helo", symspell.WithMinConfidence(0.99)); ok {
		t.Fatal("expected no correction with the floor raised to 0.99")
	}
}

func TestSegmentBeamWidthOverride(t *testing.T) {
	e := newTestEngine(t,
		map[string]uint64{"the": 10000, "quick": 5000, "brown": 4000, "fox": 3000},
		map[string]uint64{"the quick": 1000, "quick brown": 800, "brown fox": 600},
		false,
	)

	// Even a greedy single-hypothesis beam finds the bigram-gated path.
	result := e.Segment("thequickbrownfox", symspell.WithBeamWidth(1))
	if result.Corrected != "the quick brown fox" {
		t.Fatalf("Segment(beam_width=1).Corrected = %q, want %q", result.Corrected, "the quick brown fox")
	}
}

func TestLookupEmptyPhrase(t *testing.T) {
	e := newTestEngine(t, map[string]uint64{"hello": 1}, nil, false)
	got, err := e.Lookup("")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("lookup(\"\") = %+v, want empty", got)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := symspell.DefaultConfig()
	cfg.PrefixLength = cfg.MaxEditDistance
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected Validate to reject prefix_length <= max_edit_distance")
	}
}

func TestPresets(t *testing.T) {
	if c := symspell.ConservativeConfig(); c.MaxEditDistance != 1 {
		t.Fatalf("ConservativeConfig().MaxEditDistance = %d, want 1", c.MaxEditDistance)
	}
	if c := symspell.AggressiveConfig(); c.MaxEditDistance != 3 {
		t.Fatalf("AggressiveConfig().MaxEditDistance = %d, want 3", c.MaxEditDistance)
	}
}

// PrefixLookup's adaptive minimum-frequency floor: a 1-2 char prefix
// requires 10000, a 3 char prefix requires 1000, a 5+ char prefix requires
// 10. Below-floor entries are dropped from the result.
func TestPrefixLookupAdaptiveThresholdLengthOne(t *testing.T) {
	e := newTestEngine(t, map[string]uint64{
		"art": 20000, "apple": 15000, "ant": 5000,
	}, nil, false)

	got := e.PrefixLookup("a", 10, -1)
	words := got.GetWords()
	if len(words) != 2 || words[0] != "art" || words[1] != "apple" {
		t.Fatalf("PrefixLookup(a, -1) = %v, want [art apple] (ant below the 10000 floor)", words)
	}
}

func TestPrefixLookupAdaptiveThresholdLengthThree(t *testing.T) {
	e := newTestEngine(t, map[string]uint64{
		"application": 2000, "apple": 1500, "applaud": 500,
	}, nil, false)

	got := e.PrefixLookup("app", 10, -1)
	words := got.GetWords()
	if len(words) != 2 || words[0] != "application" || words[1] != "apple" {
		t.Fatalf("PrefixLookup(app, -1) = %v, want [application apple] (applaud below the 1000 floor)", words)
	}
}

func TestPrefixLookupAdaptiveThresholdLengthFive(t *testing.T) {
	e := newTestEngine(t, map[string]uint64{
		"apples": 50, "applesauce": 5,
	}, nil, false)

	got := e.PrefixLookup("apple", 10, -1)
	words := got.GetWords()
	if len(words) != 1 || words[0] != "apples" {
		t.Fatalf("PrefixLookup(apple, -1) = %v, want [apples] (applesauce below the 10 floor)", words)
	}
}

// An explicit minFrequency overrides the adaptive floor entirely, even when
// it is far below what the prefix length would otherwise require.
func TestPrefixLookupExplicitMinFrequencyOverridesAdaptiveFloor(t *testing.T) {
	e := newTestEngine(t, map[string]uint64{
		"art": 200, "ant": 50,
	}, nil, false)

	got := e.PrefixLookup("a", 10, 100)
	words := got.GetWords()
	if len(words) != 1 || words[0] != "art" {
		t.Fatalf("PrefixLookup(a, minFrequency=100) = %v, want [art] (ant below the explicit floor, both below the adaptive 10000 floor)", words)
	}
}
