package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := NewConfig(filepath.Join(t.TempDir(), "config.yml"))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Logger.Level)
	assert.False(t, cfg.Validator.Strict)
}

func TestNewConfigParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `logger:
  level: debug
validator:
  strict: true
  format: sarif
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Validator.Strict)
	assert.Equal(t, "sarif", cfg.Validator.Format)
}

func TestValidateConfigRejectsUnknownFormat(t *testing.T) {
	assert.NoError(t, ValidateConfig(&Config{}))
	assert.NoError(t, ValidateConfig(&Config{Validator: Validator{Format: "console"}}))
	assert.Error(t, ValidateConfig(&Config{Validator: Validator{Format: "xml"}}))
}

func TestValidateConfigPath(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, ValidateConfigPath(dir))

	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("logger: {}\n"), 0o644))
	assert.NoError(t, ValidateConfigPath(path))
}
