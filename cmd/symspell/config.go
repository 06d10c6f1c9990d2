package main

import (
	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
)

// dictConfig is the typed shape of a symspell.toml file. Decoding goes
// through two steps: BurntSushi/toml into a loosely-typed map, then
// mitchellh/mapstructure into this struct.
type dictConfig struct {
	Preset          string `mapstructure:"preset"`
	MaxEditDistance int    `mapstructure:"max_edit_distance"`
	PrefixLength    int    `mapstructure:"prefix_length"`
	CacheSize       int    `mapstructure:"cache_size"`
	ScoringMode     string `mapstructure:"scoring_mode"`
}

func loadConfig(path string) (dictConfig, error) {
	if path == "" {
		return dictConfig{}, nil
	}

	var raw map[string]interface{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return dictConfig{}, err
	}

	var cfg dictConfig
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return dictConfig{}, err
	}
	return cfg, nil
}
