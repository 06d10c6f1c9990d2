package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"symspell"
	"symspell/internal/wordstore"
)

var (
	buildWordsPath   string
	buildBigramsPath string
	buildFormat      string
	buildOutDir      string
	buildKeyboard    bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build words.bin/deletes.bin (and optionally bigrams.bin/kbd_qwerty.bin) from a frequency dictionary",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		cfg := resolvedConfig()

		wordEntries, err := loadDictionary(buildWordsPath, false)
		if err != nil {
			return fmt.Errorf("loading word dictionary: %w", err)
		}
		logger.Info("loaded word dictionary", "terms", len(wordEntries))

		paths := symspell.Paths{
			Words:   filepath.Join(buildOutDir, "words.bin"),
			Deletes: filepath.Join(buildOutDir, "deletes.bin"),
		}
		input := symspell.BuildInput{Words: wordEntries}

		if buildBigramsPath != "" {
			bigramEntries, err := loadDictionary(buildBigramsPath, true)
			if err != nil {
				return fmt.Errorf("loading bigram dictionary: %w", err)
			}
			paths.Bigrams = filepath.Join(buildOutDir, "bigrams.bin")
			input.Bigrams = bigramEntries
			logger.Info("loaded bigram dictionary", "bigrams", len(bigramEntries))
		}

		if buildKeyboard {
			paths.Keyboard = filepath.Join(buildOutDir, "kbd_qwerty.bin")
			if err := symspell.BuildKeyboard(paths.Keyboard); err != nil {
				return fmt.Errorf("building keyboard layout: %w", err)
			}
			logger.Info("wrote keyboard layout", "path", paths.Keyboard)
		}

		if err := symspell.Build(paths, input, cfg); err != nil {
			return fmt.Errorf("building stores: %w", err)
		}
		logger.Info("build complete", "words", paths.Words, "deletes", paths.Deletes)
		return nil
	},
}

func loadDictionary(path string, bigram bool) ([]wordstore.Entry, error) {
	if buildFormat == "json" {
		return loadJSONDictionary(path, bigram)
	}
	columns := 2
	if bigram {
		columns = 3
	}
	return loadTextDictionary(path, columns)
}

func init() {
	buildCmd.Flags().StringVar(&buildWordsPath, "words", "", "path to the unigram frequency dictionary")
	buildCmd.Flags().StringVar(&buildBigramsPath, "bigrams", "", "optional path to the bigram frequency dictionary")
	buildCmd.Flags().StringVar(&buildFormat, "format", "text", "dictionary format: text or json")
	buildCmd.Flags().StringVar(&buildOutDir, "out", ".", "output directory for the built store files")
	buildCmd.Flags().BoolVar(&buildKeyboard, "keyboard", false, "also write the built-in QWERTY keyboard layout file")
	buildCmd.MarkFlagRequired("words")
}
