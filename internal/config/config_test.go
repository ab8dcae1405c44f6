package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Write.Minutes != nil || cfg.Log.Level != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[write]
minutes = 25
topic = "The impact of globalization"
save = false

[scoring]
lexicon-dir = "/tmp/lexicon"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Write.Minutes == nil || *cfg.Write.Minutes != 25 {
		t.Fatalf("unexpected minutes: %v", cfg.Write.Minutes)
	}
	if cfg.Write.Topic == nil || *cfg.Write.Topic != "The impact of globalization" {
		t.Fatalf("unexpected topic: %v", cfg.Write.Topic)
	}
	if cfg.Write.Save == nil || *cfg.Write.Save {
		t.Fatalf("unexpected save: %v", cfg.Write.Save)
	}
	if cfg.Scoring.LexiconDir == nil || *cfg.Scoring.LexiconDir != "/tmp/lexicon" {
		t.Fatalf("unexpected lexicon dir: %v", cfg.Scoring.LexiconDir)
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %v", cfg.Log.Level)
	}
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[write]\nminutse = 10\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "minutse") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "writescore", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "writescore", "writescore.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
	if got := DefaultLexiconDir(); got != filepath.Join("/cfg", "writescore", "lexicon") {
		t.Fatalf("unexpected lexicon dir: %s", got)
	}
}
