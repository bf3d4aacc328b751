package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 2, cfg.IndentSize)
	assert.False(t, cfg.Lenient)
	assert.Equal(t, "Root", cfg.TypeScript.RootName)
	assert.False(t, cfg.TypeScript.Export)
	assert.Equal(t, 2, cfg.TypeScript.IndentSize)
	assert.Equal(t, 0, cfg.Tree.MaxDepth)
	assert.True(t, cfg.Store.Compress)
	assert.Equal(t, 50, cfg.Store.HistoryLimit)
	assert.Equal(t, 100, cfg.Store.FavoritesLimit)
	assert.True(t, cfg.Store.RecordHistory)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadFromYAML(t *testing.T) {
	path := writeConfig(t, `
indent_size: 4
lenient: true
typescript:
  root_name: "ApiResponse"
  export: true
  max_depth: 8
tree:
  max_depth: 3
  show_paths: true
store:
  path: "/tmp/store.json"
  compress: false
  history_limit: 10
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.IndentSize)
	assert.True(t, cfg.Lenient)
	assert.Equal(t, "ApiResponse", cfg.TypeScript.RootName)
	assert.True(t, cfg.TypeScript.Export)
	assert.Equal(t, 8, cfg.TypeScript.MaxDepth)
	assert.Equal(t, 3, cfg.Tree.MaxDepth)
	assert.True(t, cfg.Tree.ShowPaths)
	assert.Equal(t, "/tmp/store.json", cfg.Store.Path)
	assert.False(t, cfg.Store.Compress)
	assert.Equal(t, 10, cfg.Store.HistoryLimit)

	// Keys missing from the file keep their defaults
	assert.Equal(t, 2, cfg.TypeScript.IndentSize)
	assert.Equal(t, 100, cfg.Store.FavoritesLimit)
	assert.True(t, cfg.Store.RecordHistory)
}

func TestConfig_LoadNonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/config.yml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no such file or directory")
}

func TestConfig_LoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, `
indent_size: 2
invalid_yaml: [unclosed array
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestConfig_LoadOutOfRange(t *testing.T) {
	path := writeConfig(t, "indent_size: 12\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indent_size must be between 0 and 10")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"negative indent", func(c *Config) { c.IndentSize = -1 }, "indent_size"},
		{"zero typescript indent", func(c *Config) { c.TypeScript.IndentSize = 0 }, "typescript.indent_size"},
		{"negative depth", func(c *Config) { c.Tree.MaxDepth = -2 }, "tree.max_depth"},
		{"negative typescript depth", func(c *Config) { c.TypeScript.MaxDepth = -1 }, "typescript.max_depth"},
		{"zero history", func(c *Config) { c.Store.HistoryLimit = 0 }, "store.history_limit"},
		{"zero favorites", func(c *Config) { c.Store.FavoritesLimit = 0 }, "store.favorites_limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	zero := NewConfig()
	zero.IndentSize = 0
	assert.NoError(t, zero.Validate())
}

func TestConfig_FindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	nestedDir := filepath.Join(tmpDir, "project", "subdir")
	require.NoError(t, os.MkdirAll(nestedDir, 0o755))

	configPath := filepath.Join(tmpDir, "project", ".jsonsmith.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(`indent_size: 3`), 0o644))

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(originalWd) }()

	require.NoError(t, os.Chdir(nestedDir))

	// Should find the file in the parent directory
	foundPath := FindConfigFile()
	require.NotEmpty(t, foundPath, "Should find config file")

	foundContent, err := os.ReadFile(foundPath)
	require.NoError(t, err)
	assert.Contains(t, string(foundContent), `indent_size: 3`)
}

func TestConfig_FindConfigFileNotFound(t *testing.T) {
	tmpDir := t.TempDir()

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(originalWd) }()

	require.NoError(t, os.Chdir(tmpDir))

	assert.Empty(t, FindConfigFile())
}

func TestConfig_StorePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Store.Path = "/data/store.json"
	path, err := cfg.StorePath()
	require.NoError(t, err)
	assert.Equal(t, "/data/store.json", path)

	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/test")
	cfg.Store.Path = ""
	path, err = cfg.StorePath()
	require.NoError(t, err)
	assert.Equal(t, "jsonsmith", filepath.Base(filepath.Dir(path)))
	assert.Equal(t, "store.json.gz", filepath.Base(path))

	cfg.Store.Compress = false
	path, err = cfg.StorePath()
	require.NoError(t, err)
	assert.Equal(t, "store.json", filepath.Base(path))
}

func TestConfig_MergeWithCLI(t *testing.T) {
	base := NewConfig()
	base.TypeScript.RootName = "ApiResponse"
	base.Lenient = true

	indent := 4
	lenient := false
	empty := ""
	merged := MergeConfigs(base, Overrides{
		IndentSize: &indent,
		Lenient:    &lenient,
		RootName:   &empty,
	})

	assert.Equal(t, 4, merged.IndentSize)
	// Explicitly set booleans override even when false
	assert.False(t, merged.Lenient)
	// Empty strings do not override
	assert.Equal(t, "ApiResponse", merged.TypeScript.RootName)
	// Base is not modified
	assert.Equal(t, 2, base.IndentSize)
}

func TestLoadConfigWithPrecedence(t *testing.T) {
	path := writeConfig(t, `
indent_size: 3
typescript:
  root_name: "Response"
  export: true
tree:
  max_depth: 2
`)

	rootName := "ApiResult"
	depth := 5
	cfg, err := LoadConfigWithCLI(path, Overrides{RootName: &rootName, MaxDepth: &depth})
	require.NoError(t, err)

	// Verify precedence: CLI > config file > defaults
	assert.Equal(t, "ApiResult", cfg.TypeScript.RootName) // From CLI
	assert.Equal(t, 5, cfg.Tree.MaxDepth)                 // From CLI
	assert.Equal(t, 3, cfg.IndentSize)                    // From config file
	assert.True(t, cfg.TypeScript.Export)                 // From config file
	assert.Equal(t, 50, cfg.Store.HistoryLimit)           // Default value
}

func TestLoadConfigWithPrecedence_NoFile(t *testing.T) {
	cfg, err := LoadConfigWithCLI("", Overrides{})
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadConfigWithPrecedence_InvalidOverride(t *testing.T) {
	indent := 99
	_, err := LoadConfigWithCLI("", Overrides{IndentSize: &indent})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indent_size")
}
