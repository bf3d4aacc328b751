package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values used by NewConfig.
const (
	DefaultIndentSize     = 2
	MaxIndentSize         = 10
	DefaultRootName       = "Root"
	DefaultHistoryLimit   = 50
	DefaultFavoritesLimit = 100
)

// Config represents the complete configuration for jsonsmith
type Config struct {
	IndentSize int              `yaml:"indent_size"`
	Lenient    bool             `yaml:"lenient"`
	TypeScript TypeScriptConfig `yaml:"typescript"`
	Tree       TreeConfig       `yaml:"tree"`
	Store      StoreConfig      `yaml:"store"`
}

// TypeScriptConfig controls TypeScript declaration output
type TypeScriptConfig struct {
	RootName   string `yaml:"root_name"`
	Export     bool   `yaml:"export"`
	IndentSize int    `yaml:"indent_size"`
	// MaxDepth rejects documents nested deeper than this; 0 means unlimited.
	MaxDepth int `yaml:"max_depth"`
}

// TreeConfig controls the tree view
type TreeConfig struct {
	MaxDepth  int  `yaml:"max_depth"`
	ShowPaths bool `yaml:"show_paths"`
}

// StoreConfig controls where history, favorites and settings are kept
type StoreConfig struct {
	Path           string `yaml:"path"`
	Compress       bool   `yaml:"compress"`
	HistoryLimit   int    `yaml:"history_limit"`
	FavoritesLimit int    `yaml:"favorites_limit"`
	RecordHistory  bool   `yaml:"record_history"`
}

// Overrides holds values given on the command line. Nil fields were not set
// and leave the file or default value untouched.
type Overrides struct {
	IndentSize *int
	Lenient    *bool
	RootName   *string
	Export     *bool
	MaxDepth   *int
	ShowPaths  *bool
	StorePath  *string
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		IndentSize: DefaultIndentSize,
		Lenient:    false,
		TypeScript: TypeScriptConfig{
			RootName:   DefaultRootName,
			Export:     false,
			IndentSize: DefaultIndentSize,
		},
		Tree: TreeConfig{
			MaxDepth:  0,
			ShowPaths: false,
		},
		Store: StoreConfig{
			Path:           "",
			Compress:       true,
			HistoryLimit:   DefaultHistoryLimit,
			FavoritesLimit: DefaultFavoritesLimit,
			RecordHistory:  true,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults so that missing keys keep their default value
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", path, err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonsmith.yml", ".jsonsmith.yaml", "jsonsmith.yml", "jsonsmith.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate reports the first out-of-range value in c.
func (c *Config) Validate() error {
	if c.IndentSize < 0 || c.IndentSize > MaxIndentSize {
		return fmt.Errorf("indent_size must be between 0 and %d, got %d", MaxIndentSize, c.IndentSize)
	}
	if c.TypeScript.IndentSize < 1 || c.TypeScript.IndentSize > MaxIndentSize {
		return fmt.Errorf("typescript.indent_size must be between 1 and %d, got %d", MaxIndentSize, c.TypeScript.IndentSize)
	}
	if c.TypeScript.MaxDepth < 0 {
		return fmt.Errorf("typescript.max_depth must not be negative, got %d", c.TypeScript.MaxDepth)
	}
	if c.Tree.MaxDepth < 0 {
		return fmt.Errorf("tree.max_depth must not be negative, got %d", c.Tree.MaxDepth)
	}
	if c.Store.HistoryLimit <= 0 {
		return fmt.Errorf("store.history_limit must be positive, got %d", c.Store.HistoryLimit)
	}
	if c.Store.FavoritesLimit <= 0 {
		return fmt.Errorf("store.favorites_limit must be positive, got %d", c.Store.FavoritesLimit)
	}
	return nil
}

// StorePath returns the configured store file, or the default location
// under the user's config directory.
func (c *Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	name := "store.json"
	if c.Store.Compress {
		name += ".gz"
	}
	return filepath.Join(dir, "jsonsmith", name), nil
}

// MergeConfigs applies the explicitly set overrides to a copy of base
func MergeConfigs(base *Config, override Overrides) *Config {
	merged := *base

	if override.IndentSize != nil {
		merged.IndentSize = *override.IndentSize
	}
	if override.Lenient != nil {
		merged.Lenient = *override.Lenient
	}
	if override.RootName != nil && *override.RootName != "" {
		merged.TypeScript.RootName = *override.RootName
	}
	if override.Export != nil {
		merged.TypeScript.Export = *override.Export
	}
	if override.MaxDepth != nil {
		merged.Tree.MaxDepth = *override.MaxDepth
	}
	if override.ShowPaths != nil {
		merged.Tree.ShowPaths = *override.ShowPaths
	}
	if override.StorePath != nil && *override.StorePath != "" {
		merged.Store.Path = *override.StorePath
	}

	return &merged
}

// LoadConfigWithCLI loads config with CLI argument precedence:
// CLI > config file > defaults.
func LoadConfigWithCLI(configPath string, override Overrides) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	cfg = MergeConfigs(cfg, override)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
