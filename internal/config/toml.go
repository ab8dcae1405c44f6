// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Write   WriteSection   `toml:"write"`
	Scoring ScoringSection `toml:"scoring"`
	Log     LogSection     `toml:"log"`
}

// WriteSection maps timed writing session settings.
type WriteSection struct {
	Minutes *int    `toml:"minutes"`
	Topic   *string `toml:"topic"`
	Save    *bool   `toml:"save"`
}

// ScoringSection maps scoring settings.
type ScoringSection struct {
	LexiconDir *string `toml:"lexicon-dir"`
}

// LogSection maps logging settings.
type LogSection struct {
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
// Unknown keys are rejected so typos do not pass silently.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
