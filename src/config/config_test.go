package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.Equal(t, "README.md", cfg.Output)
	assert.True(t, cfg.IncludeSamples)
	assert.Equal(t, 500, cfg.MaxSampleLines)
	assert.Empty(t, cfg.ExtraExcludeDirs)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `output: DOCS.md
include_samples: false
max_sample_lines: 100
extra_exclude_dirs:
  - fixtures
  - tmp
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "DOCS.md", cfg.Output)
	assert.False(t, cfg.IncludeSamples)
	assert.Equal(t, 100, cfg.MaxSampleLines)
	assert.Equal(t, []string{"fixtures", "tmp"}, cfg.ExtraExcludeDirs)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "nope.yaml")
	_, err := LoadConfig(missing)
	assert.Error(t, err)

	badYAML := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("output: [unterminated"), 0644))
	_, err = LoadConfig(badYAML)
	assert.Error(t, err)

	noOutput := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(noOutput, []byte("include_samples: true\n"), 0644))
	_, err = LoadConfig(noOutput)
	assert.Error(t, err)

	pathOutput := filepath.Join(dir, "path.yaml")
	require.NoError(t, os.WriteFile(pathOutput, []byte("output: docs/README.md\n"), 0644))
	_, err = LoadConfig(pathOutput)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{Output: "README.md", IncludeSamples: true, MaxSampleLines: 250}

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadOrDefault_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: OUT.md\n"), 0644))

	cfg, err := LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, "OUT.md", cfg.Output)
}
