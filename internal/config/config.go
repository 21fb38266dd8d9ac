// Package config handles loading and saving user configuration for ireum.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the config file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	Provider    string        `yaml:"provider"`    // openai or gemini
	Model       string        `yaml:"model"`       // empty uses the provider default
	Temperature float64       `yaml:"temperature"` // sampling temperature
	Format      string        `yaml:"format"`      // json or text
	BaseURL     string        `yaml:"base_url"`    // OpenAI-compatible endpoint
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	Addr        string        `yaml:"addr"`       // listen address for serve
	Dictionary  string        `yaml:"dictionary"` // Make Me a Hanzi dictionary.jsonl
	LogLevel    string        `yaml:"log_level"`
	LogFormat   string        `yaml:"log_format"`

	// Prompts maps a format (json, text) to a text/template file that
	// replaces the built-in prompt for that format.
	Prompts map[string]string `yaml:"prompts,omitempty"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		Provider:    "openai",
		Temperature: 0.7,
		Format:      "json",
		HTTPTimeout: 60 * time.Second,
		Addr:        ":8080",
		Dictionary:  "data/dictionary.jsonl",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ireum"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
