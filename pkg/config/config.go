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

// Config holds all configuration options for mimic.
type Config struct {
	// Detector settings for the comparison pipeline
	Detector DetectorConfig `koanf:"detector" toml:"detector"`

	// File exclusion patterns
	Exclude ExcludeConfig `koanf:"exclude" toml:"exclude"`

	// Output settings
	Output OutputConfig `koanf:"output" toml:"output"`
}

// DetectorConfig controls fingerprinting and scoring.
type DetectorConfig struct {
	// Threshold is the similarity percentage at or above which a pair is
	// flagged. It never changes the computed score.
	Threshold float64 `koanf:"threshold" toml:"threshold"`

	// Algorithm selects the fingerprinter: "ast" (structural, default) or
	// "kgram" (winnowing over the normalized token stream).
	Algorithm string `koanf:"algorithm" toml:"algorithm"`

	// KGramSize and WindowSize apply to the kgram algorithm only.
	KGramSize  int `koanf:"kgram_size" toml:"kgram_size"`
	WindowSize int `koanf:"window_size" toml:"window_size"`

	// MaxFileSize skips larger documents (bytes, 0 = no limit).
	MaxFileSize int64 `koanf:"max_file_size" toml:"max_file_size"`
}

// ExcludeConfig defines file exclusion patterns.
type ExcludeConfig struct {
	Patterns  []string `koanf:"patterns" toml:"patterns"`
	Dirs      []string `koanf:"dirs" toml:"dirs"`
	Gitignore bool     `koanf:"gitignore" toml:"gitignore"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format" toml:"format"` // text, json, markdown, toon
	Color   bool   `koanf:"color" toml:"color"`
	Verbose bool   `koanf:"verbose" toml:"verbose"`
}

// Accepted Detector.Algorithm values.
const (
	AlgorithmAST   = "ast"
	AlgorithmKGram = "kgram"
)

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Detector: DetectorConfig{
			Threshold:   70.0,
			Algorithm:   AlgorithmAST,
			KGramSize:   5,
			WindowSize:  4,
			MaxFileSize: 0,
		},
		Exclude: ExcludeConfig{
			Patterns: []string{
				"*_test.cpp",
				"*_test.cc",
			},
			Dirs: []string{
				"vendor",
				"build",
				"dist",
				".git",
				".mimic",
			},
			Gitignore: true,
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
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

// LoadOrDefault tries to load config from standard locations or returns
// defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"mimic.toml",
		"mimic.yaml",
		"mimic.yml",
		"mimic.json",
		".mimic.toml",
		".mimic.yaml",
		".mimic.yml",
		".mimic.json",
	}
	searchDirs := []string{".", ".mimic"}

	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				if err == nil {
					return cfg
				}
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
