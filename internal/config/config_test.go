// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ModeSingle, cfg.Mode)
	assert.Equal(t, 1e-10, cfg.Epsilon)
	assert.Equal(t, 1, cfg.Workers)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad mode", func(c *Config) { c.Mode = "batch" }},
		{"zero rank", func(c *Config) { c.Rank = 0 }},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }},
		{"negative epsilon", func(c *Config) { c.Epsilon = -1 }},
		{"nan epsilon", func(c *Config) { c.Epsilon = math.NaN() }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"zero rows", func(c *Config) { c.Data.Rows = 0 }},
		{"zero cols", func(c *Config) { c.Data.Cols = 0 }},
		{"joint without matrices", func(c *Config) { c.Mode = ModeJoint; c.Data.Matrices = 0 }},
		{"zero true rank", func(c *Config) { c.Data.TrueRank = 0 }},
		{"negative noise", func(c *Config) { c.Data.Noise = -0.1 }},
		{"reference tolerance", func(c *Config) { c.Reference.Enabled = true; c.Reference.Tolerance = 0 }},
		{"reference inner limit", func(c *Config) { c.Reference.Enabled = true; c.Reference.MaxInnerSub = 0 }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestValidate_DisabledReferenceIgnoresLimits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Reference.Enabled = false
	cfg.Reference.Tolerance = 0
	assert.NoError(t, cfg.Validate())
}

func TestEnvTransformFunc(t *testing.T) {
	assert.Equal(t, "data.true_rank", envTransformFunc("NMF_DATA_TRUE_RANK"))
	assert.Equal(t, "reference.max_inner_sub", envTransformFunc("NMF_REFERENCE_MAX_INNER_SUB"))
	assert.Equal(t, "rank", envTransformFunc("NMF_RANK"))
	assert.Empty(t, envTransformFunc("NMF_CONFIG"))
	assert.Empty(t, envTransformFunc("NMF_UNKNOWN"))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nmf.yaml")
	body := []byte(`mode: joint
rank: 3
iterations: 50
data:
  rows: 12
  cols: 9
  matrices: 2
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, body, 0o600))

	t.Setenv("NMF_ITERATIONS", "75")
	t.Setenv("NMF_WORKERS", "4")
	t.Setenv("NMF_DATA_NOISE", "0.05")
	t.Setenv("NMF_REFERENCE_ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeJoint, cfg.Mode)
	assert.Equal(t, 3, cfg.Rank)
	assert.Equal(t, 75, cfg.Iterations, "env wins over file")
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 12, cfg.Data.Rows)
	assert.Equal(t, 9, cfg.Data.Cols)
	assert.Equal(t, 2, cfg.Data.Matrices)
	assert.InDelta(t, 0.05, cfg.Data.Noise, 1e-15)
	assert.True(t, cfg.Reference.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format, "untouched keys keep defaults")
}

func TestLoad_PathFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rank: 7\n"), 0o600))
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Rank)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("NMF_MODE", "stream")

	_, err := Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
