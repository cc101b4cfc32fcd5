// Package config loads optional user configuration for prosecoach.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user-tunable session settings. Command-line flags override
// anything set here.
type Config struct {
	// Editor is the command used for inline and external edits.
	Editor string `toml:"editor"`

	// Limit caps how many issues a normal session presents.
	Limit int `toml:"limit"`

	// QuickLimit caps how many issues a --quick session presents.
	QuickLimit int `toml:"quick_limit"`

	// Skip lists issue types never presented (e.g. "adverbs").
	Skip []string `toml:"skip"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Limit:      10,
		QuickLimit: 3,
	}
}

// Load reads configuration from path. An empty path searches
// ./prosecoach.toml then ~/.config/prosecoach/config.toml; a missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfig()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("load config %s: %w", path, err)
	}

	if cfg.Limit <= 0 {
		cfg.Limit = Default().Limit
	}
	if cfg.QuickLimit <= 0 {
		cfg.QuickLimit = Default().QuickLimit
	}

	return cfg, nil
}

func findConfig() string {
	if _, err := os.Stat("prosecoach.toml"); err == nil {
		return "prosecoach.toml"
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".config", "prosecoach", "config.toml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
