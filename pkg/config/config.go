// Package config loads and holds debtguard configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for debtguard. A Config value is
// treated as immutable once constructed; components receive it (or a
// section of it) at construction time.
type Config struct {
	Slicer    SlicerConfig    `koanf:"slicer"`
	Detection DetectionConfig `koanf:"detection"`
	Exclude   ExcludeConfig   `koanf:"exclude"`
	Output    OutputConfig    `koanf:"output"`
}

// SlicerConfig bounds which extracted units are kept.
type SlicerConfig struct {
	MinMethodLOC int `koanf:"min_method_loc"`
	MaxClassLOC  int `koanf:"max_class_loc"`
}

// DetectorConfig configures one detector capability.
type DetectorConfig struct {
	Enabled     bool    `koanf:"enabled"`
	Model       string  `koanf:"model"`
	BaseURL     string  `koanf:"base_url"`
	APIKey      string  `koanf:"api_key"`
	Shot        string  `koanf:"shot"` // few or zero
	Temperature float64 `koanf:"temperature"`
	TimeoutSecs int     `koanf:"timeout"`
}

// DetectionConfig controls dispatch, scoring, and filtering.
type DetectionConfig struct {
	Parallel      bool    `koanf:"parallel"`
	Workers       int     `koanf:"workers"`
	MinConfidence float64 `koanf:"min_confidence"`

	// DedupeUnits drops method units whose (file, name, byte span)
	// identity was already dispatched, suppressing the double submission
	// of class-nested methods.
	DedupeUnits bool `koanf:"dedupe_units"`

	ClassDetector  DetectorConfig `koanf:"class_detector"`
	MethodDetector DetectorConfig `koanf:"method_detector"`
}

// ExcludeConfig defines file exclusion rules for directory scans.
type ExcludeConfig struct {
	Patterns   []string `koanf:"patterns"`
	Extensions []string `koanf:"extensions"`
	Dirs       []string `koanf:"dirs"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format"` // text, json, markdown
	Color   bool   `koanf:"color"`
	Verbose bool   `koanf:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Slicer: SlicerConfig{
			MinMethodLOC: 3,
			MaxClassLOC:  1000,
		},
		Detection: DetectionConfig{
			Parallel:      false,
			Workers:       4,
			MinConfidence: 0.5,
			DedupeUnits:   false,
			ClassDetector: DetectorConfig{
				Enabled:     true,
				Model:       "codestral:22b",
				BaseURL:     "http://localhost:11434",
				APIKey:      "ollama",
				Shot:        "few",
				Temperature: 0.1,
				TimeoutSecs: 300,
			},
			MethodDetector: DetectorConfig{
				Enabled:     true,
				Model:       "qwen2.5-coder:7b",
				BaseURL:     "http://localhost:11434",
				APIKey:      "ollama",
				Shot:        "few",
				Temperature: 0.1,
				TimeoutSecs: 300,
			},
		},
		Exclude: ExcludeConfig{
			Patterns:   []string{"*Test.java", "*Tests.java"},
			Extensions: []string{".java"},
			Dirs: []string{
				".git",
				"target",
				"build",
				"out",
				"node_modules",
			},
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a file, layered over the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries standard config locations and falls back to defaults.
func LoadOrDefault() *Config {
	names := []string{
		"debtguard.toml",
		"debtguard.yaml",
		"debtguard.yml",
		"debtguard.json",
		".debtguard.toml",
		".debtguard.yaml",
	}

	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			if cfg, err := Load(name); err == nil {
				return cfg
			}
		}
	}

	return DefaultConfig()
}

// ShouldExclude checks if a path should be excluded from analysis.
func (c *Config) ShouldExclude(path string) bool {
	for _, dir := range c.Exclude.Dirs {
		if strings.Contains(path, string(filepath.Separator)+dir+string(filepath.Separator)) ||
			strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}

	base := filepath.Base(path)
	for _, pattern := range c.Exclude.Patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}

// IncludesExtension reports whether the path carries one of the configured
// source extensions.
func (c *Config) IncludesExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range c.Exclude.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
