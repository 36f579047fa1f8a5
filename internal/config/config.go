// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

// Package config loads docsmith settings from an optional global YAML file
// and the environment, producing a plain Settings object consumed by the
// generator and provider client.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the config file nor the environment
// provides a value.
const (
	DefaultProvider    = "openai"
	DefaultModel       = "gpt-4o-mini"
	DefaultMaxTokens   = 4000
	DefaultTemperature = 0.3
)

// Settings holds everything the core needs: provider defaults, credentials,
// and storage paths. It is read once at startup and passed in explicitly.
type Settings struct {
	DefaultProvider    string  `yaml:"default_provider,omitempty"`
	DefaultModel       string  `yaml:"default_model,omitempty"`
	DefaultMaxTokens   int     `yaml:"default_max_tokens,omitempty"`
	DefaultTemperature float64 `yaml:"default_temperature,omitempty"`

	// Credentials are normally supplied via the environment
	// (OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY) but may also
	// be set in the global config file.
	OpenAIAPIKey     string `yaml:"openai_api_key,omitempty"`
	AnthropicAPIKey  string `yaml:"anthropic_api_key,omitempty"`
	OpenRouterAPIKey string `yaml:"openrouter_api_key,omitempty"`

	// OutputDir receives generated markdown files and the metadata index.
	OutputDir string `yaml:"output_dir,omitempty"`

	// TemplatesDir holds custom_templates.json.
	TemplatesDir string `yaml:"templates_dir,omitempty"`

	// temperatureSet records that the file or environment supplied a
	// temperature, including an explicit zero.
	temperatureSet bool
}

// GlobalConfigDir returns the directory for global docsmith configuration.
// It uses $XDG_CONFIG_HOME/docsmith if set, otherwise ~/.config/docsmith.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "docsmith")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "docsmith")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// dataDir returns the default directory for generated data.
// It uses $XDG_DATA_HOME/docsmith if set, otherwise ~/.local/share/docsmith.
func dataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "docsmith")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "docsmith")
}

// Load builds Settings by layering, lowest precedence first: built-in
// defaults, the global config file, then environment variables. A .env file
// in the working directory is loaded into the environment first, if present.
func Load() (*Settings, error) {
	// Best-effort: a missing .env is the normal case.
	_ = godotenv.Load()

	s, err := loadFile(GlobalConfigPath())
	if err != nil {
		return nil, err
	}

	s.applyEnv()
	s.applyDefaults()
	return s, nil
}

// loadFile reads a YAML settings file. A missing file yields zero-value
// Settings and no error.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	// Zero is a valid temperature, so presence is tracked separately from
	// the value.
	var raw struct {
		DefaultTemperature *float64 `yaml:"default_temperature"`
	}
	if err := yaml.Unmarshal(data, &raw); err == nil && raw.DefaultTemperature != nil {
		s.temperatureSet = true
	}
	return &s, nil
}

// applyEnv overrides settings from environment variables. Empty env values
// are ignored so the file/default layers show through.
func (s *Settings) applyEnv() {
	if v := os.Getenv("DEFAULT_AI_PROVIDER"); v != "" {
		s.DefaultProvider = v
	}
	if v := os.Getenv("DEFAULT_MODEL"); v != "" {
		s.DefaultModel = v
	}
	if v := os.Getenv("DEFAULT_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.DefaultMaxTokens = n
		}
	}
	if v := os.Getenv("DEFAULT_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.DefaultTemperature = f
			s.temperatureSet = true
		}
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		s.OpenAIAPIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		s.AnthropicAPIKey = v
	}
	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		s.OpenRouterAPIKey = v
	}
	if v := os.Getenv("DOCSMITH_OUTPUT_DIR"); v != "" {
		s.OutputDir = v
	}
	if v := os.Getenv("DOCSMITH_TEMPLATES_DIR"); v != "" {
		s.TemplatesDir = v
	}
}

// applyDefaults fills any remaining zero values.
func (s *Settings) applyDefaults() {
	if s.DefaultProvider == "" {
		s.DefaultProvider = DefaultProvider
	}
	if s.DefaultModel == "" {
		s.DefaultModel = DefaultModel
	}
	if s.DefaultMaxTokens == 0 {
		s.DefaultMaxTokens = DefaultMaxTokens
	}
	if !s.temperatureSet && s.DefaultTemperature == 0 {
		s.DefaultTemperature = DefaultTemperature
	}
	if s.OutputDir == "" {
		s.OutputDir = filepath.Join(dataDir(), "output")
	}
	if s.TemplatesDir == "" {
		s.TemplatesDir = filepath.Join(dataDir(), "templates")
	}
}
