// Package symspell implements a low-memory approximate-string-matching
// engine built around the Symmetric Delete (SymSpell) algorithm: ranked
// spelling suggestions, confidence-scored auto-correction, per-token
// compound correction, and bigram-aware word segmentation, all served from
// memory-mapped binary dictionaries so the resident footprint stays small
// enough for resource-constrained embeddings.
package symspell

import (
	"fmt"

	"symspell/internal/deleteindex"
	"symspell/internal/keyboard"
	"symspell/internal/wordstore"
)

// Engine owns a dictionary store, an optional bigram store, a deletes index,
// and an optional keyboard layout. All are immutable for the engine's
// lifetime and safe for concurrent read access; the only
// mutable shared state is each store's bounded word cache, which serializes
// its own writes.
type Engine struct {
	Config Config

	words   *wordstore.Store
	bigrams *wordstore.Store // nil if no bigram store was supplied
	deletes *deleteindex.Index
	kbd     *keyboard.Matrix // nil if no keyboard layout was supplied
}

// Paths names the on-disk files an Engine is built from or opened from.
type Paths struct {
	Words    string
	Deletes  string
	Bigrams  string // optional; "" disables bigram-aware ranking and segmentation
	Keyboard string // optional; "" disables keyboard-weighted substitution cost
}

// Open opens an existing set of store files. cfg.Validate() must pass or
// Open fails without touching disk.
func Open(paths Paths, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	words, err := wordstore.Open(paths.Words, cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("symspell: opening word store: %w", err)
	}

	deletes, err := deleteindex.Open(paths.Deletes)
	if err != nil {
		words.Close()
		return nil, fmt.Errorf("symspell: opening deletes index: %w", err)
	}

	e := &Engine{
		Config:  cfg,
		words:   words,
		deletes: deletes,
	}

	if paths.Bigrams != "" {
		if bigrams, err := wordstore.Open(paths.Bigrams, cfg.CacheSize); err == nil {
			e.bigrams = bigrams
		}
		// A missing/unreadable bigram store is not fatal: lookup/auto-correct
		// proceed with no bigram boost and Segment degrades to a no-op.
	}

	if paths.Keyboard != "" {
		if m, err := keyboard.Load(paths.Keyboard); err == nil {
			e.kbd = m
		}
	}

	return e, nil
}

// Close releases the mmap regions backing the engine's stores.
func (e *Engine) Close() error {
	var firstErr error
	if err := e.words.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if e.bigrams != nil {
		if err := e.bigrams.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := e.deletes.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// HasBigrams reports whether the engine has a bigram store loaded.
func (e *Engine) HasBigrams() bool { return e.bigrams != nil }

// HasKeyboard reports whether the engine has a keyboard layout loaded.
func (e *Engine) HasKeyboard() bool { return e.kbd != nil }

// BuildInput is the in-memory dictionary handed to Build; parsing terms out
// of raw text/JSON dictionary files is the caller's job, not the core's.
type BuildInput struct {
	Words   []wordstore.Entry
	Bigrams []wordstore.Entry // optional
}

// Build performs the offline index construction: it writes words.bin (and
// bigrams.bin, if provided) and the derived deletes.bin to paths, using
// cfg's MaxEditDistance/PrefixLength. It does not open the result; callers
// open separately.
func Build(paths Paths, input BuildInput, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	merged := wordstore.SortEntries(input.Words)
	if err := wordstore.Build(paths.Words, merged); err != nil {
		return fmt.Errorf("symspell: writing word store: %w", err)
	}

	terms := make([]string, len(merged))
	for i, e := range merged {
		terms[i] = e.Term
	}
	entries := deleteindex.BuildEntries(terms, cfg.MaxEditDistance, cfg.PrefixLength)
	if err := deleteindex.Build(paths.Deletes, entries); err != nil {
		return fmt.Errorf("symspell: writing deletes index: %w", err)
	}

	if paths.Bigrams != "" && len(input.Bigrams) > 0 {
		if err := wordstore.Build(paths.Bigrams, input.Bigrams); err != nil {
			return fmt.Errorf("symspell: writing bigram store: %w", err)
		}
	}

	return nil
}

// BuildKeyboard writes a preset keyboard-layout matrix (currently only
// QWERTY is built in) to path.
func BuildKeyboard(path string) error {
	return keyboard.NewQWERTY().Save(path)
}
