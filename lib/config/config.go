// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the bridge configuration: the externally
// maintained set of deprecated command identifiers and the help
// formatting margin.
//
// Configuration is loaded from a single file specified by the
// FACADE_CONFIG environment variable. There are no fallbacks or
// automatic discovery; a missing variable just means the built-in
// defaults apply. This keeps the bridge deterministic with no hidden
// overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/facade-works/facade/lib/helpfmt"
)

// Config is the bridge configuration.
type Config struct {
	// Margin is subtracted from the terminal column count when
	// computing the help layout width.
	Margin int `yaml:"margin"`

	// Deprecated lists obsolete command identifiers (hyphenated
	// form). These subcommands stay dispatchable but never appear in
	// rendered help.
	Deprecated []string `yaml:"deprecated"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Margin: helpfmt.Margin}
}

// Load reads the config file named by FACADE_CONFIG, or returns the
// defaults when the variable is unset.
func Load() (*Config, error) {
	path := os.Getenv("FACADE_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path, merging
// over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Margin < 0 {
		return nil, fmt.Errorf("%s: margin must be non-negative", path)
	}
	return cfg, nil
}

// DeprecatedSet returns the deny-list as a set keyed by hyphenated
// identifier, the form the help layout engine consults.
func (c *Config) DeprecatedSet() map[string]bool {
	set := make(map[string]bool, len(c.Deprecated))
	for _, name := range c.Deprecated {
		set[name] = true
	}
	return set
}
