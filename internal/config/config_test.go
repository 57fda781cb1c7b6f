package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"data_dir": "data",
		"default_job_type": "Full-time",
		"verbose": true
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "Full-time", cfg.DefaultJobType)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{ not json"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidateResumeMustExist(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "absent.pdf")}
	assert.Error(t, cfg.Validate())

	assert.NoError(t, (&Config{}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{DataDir: "custom"}
	defaults := Config{
		DataDir:        "data",
		DefaultJobType: "Full-time",
		DatabaseURL:    "postgres://localhost/jobs",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "custom", merged.DataDir)
	assert.Equal(t, "Full-time", merged.DefaultJobType)
	assert.Equal(t, "postgres://localhost/jobs", merged.DatabaseURL)
}
