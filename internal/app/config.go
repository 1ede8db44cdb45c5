package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"calc/internal/domain"
	"calc/internal/store"
)

const (
	configFile    = "config.yaml"
	defaultPrompt = "calc> "
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home         string        `yaml:"-"`             // config directory, e.g. $HOME/.calc
	Policy       domain.Policy `yaml:"policy"`        // engine policy: deferred or immediate
	Prompt       string        `yaml:"prompt"`        // repl prompt
	HistoryLimit int           `yaml:"history_limit"` // max stored history entries
}

// DefaultConfig returns the defaults applied before any file or flag.
func DefaultConfig(home string) Config {
	return Config{
		Home:         home,
		Policy:       domain.PolicyDeferred,
		Prompt:       defaultPrompt,
		HistoryLimit: store.DefaultHistoryLimit,
	}
}

// LoadConfig reads <home>/config.yaml over the defaults. A missing file
// yields the defaults; a malformed one is an error.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig(home)

	b, err := os.ReadFile(filepath.Join(home, configFile))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", configFile, err)
	}

	if cfg.Policy == "" {
		cfg.Policy = domain.PolicyDeferred
	}
	if !cfg.Policy.Valid() {
		return Config{}, fmt.Errorf("%s: unknown policy %q", configFile, cfg.Policy)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = store.DefaultHistoryLimit
	}
	return cfg, nil
}
