package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"symspell"
)

var (
	cfgFile    string
	storeDir   string
	presetFlag string
)

var rootCmd = &cobra.Command{
	Use:   "symspell",
	Short: "Low-memory approximate string matching over memory-mapped SymSpell dictionaries",
}

// Execute runs the CLI; main's sole job is to report its error and exit.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a symspell.toml config file")
	rootCmd.PersistentFlags().StringVar(&storeDir, "dir", ".", "directory containing words.bin/deletes.bin/bigrams.bin/kbd_*.bin")
	rootCmd.PersistentFlags().StringVar(&presetFlag, "preset", "", "config preset: conservative or aggressive (overrides the config file's preset)")

	rootCmd.AddCommand(buildCmd, lookupCmd, segmentCmd, autocorrectCmd, compoundCmd)
}

// resolvedConfig merges the optional TOML config file with the --preset
// flag into a symspell.Config, preferring explicit flag values.
func resolvedConfig() symspell.Config {
	fileCfg, err := loadConfig(cfgFile)
	if err != nil {
		newLogger().Warn("failed to load config file, falling back to defaults", "path", cfgFile, "err", err)
		fileCfg = dictConfig{}
	}

	preset := presetFlag
	if preset == "" {
		preset = fileCfg.Preset
	}

	return applyOverrides(presetConfig(preset), fileCfg)
}

func presetConfig(preset string) symspell.Config {
	switch preset {
	case "conservative":
		return symspell.ConservativeConfig()
	case "aggressive":
		return symspell.AggressiveConfig()
	default:
		return symspell.DefaultConfig()
	}
}

func applyOverrides(base symspell.Config, cfg dictConfig) symspell.Config {
	if cfg.MaxEditDistance > 0 {
		base.MaxEditDistance = cfg.MaxEditDistance
	}
	if cfg.PrefixLength > 0 {
		base.PrefixLength = cfg.PrefixLength
	}
	if cfg.CacheSize > 0 {
		base.CacheSize = cfg.CacheSize
	}
	switch cfg.ScoringMode {
	case "balanced":
		base.ScoringMode = symspell.Balanced
	case "frequency_boosted":
		base.ScoringMode = symspell.FrequencyBoosted
	case "distance_first":
		base.ScoringMode = symspell.DistanceFirst
	}
	return base
}

// openEngine opens the store files under --dir, wiring in bigrams.bin and
// kbd_qwerty.bin only when present; their absence is not an error.
func openEngine() (*symspell.Engine, error) {
	paths := symspell.Paths{
		Words:   filepath.Join(storeDir, "words.bin"),
		Deletes: filepath.Join(storeDir, "deletes.bin"),
	}
	if p := filepath.Join(storeDir, "bigrams.bin"); fileExists(p) {
		paths.Bigrams = p
	}
	if p := filepath.Join(storeDir, "kbd_qwerty.bin"); fileExists(p) {
		paths.Keyboard = p
	}
	return symspell.Open(paths, resolvedConfig())
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
