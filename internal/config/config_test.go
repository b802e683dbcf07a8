package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/exgen/internal/sampler"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvMaxAttempts, "")
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, sampler.DefaultRange, cfg.Sampling.Target)
	assert.Equal(t, 1000, cfg.Sampling.MaxAttempts)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "exgen.yaml")
	data := `
seed: 17
sampling:
  max_attempts: 50
  target:
    min: 1
    max: 20
topics: [radicals, "002"]
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(17), cfg.Seed)
	assert.Equal(t, 50, cfg.Sampling.MaxAttempts)
	assert.Equal(t, sampler.Range{Min: 1, Max: 20}, cfg.Sampling.Target)
	assert.Equal(t, []string{"radicals", "002"}, cfg.Topics)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched sections keep their defaults
	assert.Equal(t, 10, cfg.Worksheet.Count)
	require.NoError(t, cfg.Validate())

	reg, err := cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, []string{"fractions", "radicals"}, reg.Topics())
}

func TestLoad_PathFromEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "exgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 99\n"), 0644))
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint64(99), cfg.Seed)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "exgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sampling: [not, a, map"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("seed and attempts", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvSeed, "123")
		t.Setenv(EnvMaxAttempts, "7")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, uint64(123), cfg.Seed)
		assert.Equal(t, 7, cfg.Sampling.MaxAttempts)
	})

	t.Run("invalid seed", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvSeed, "-1")
		_, err := Load("")
		assert.ErrorContains(t, err, EnvSeed)
	})

	t.Run("invalid attempts", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvMaxAttempts, "lots")
		_, err := Load("")
		assert.ErrorContains(t, err, EnvMaxAttempts)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"attempts", func(c *Config) { c.Sampling.MaxAttempts = 0 }, "max_attempts"},
		{"empty range", func(c *Config) { c.Sampling.Target = sampler.Range{Min: 5, Max: 1} }, "target is empty"},
		{"count", func(c *Config) { c.Worksheet.Count = 0 }, "worksheet.count"},
		{"workers", func(c *Config) { c.Worksheet.Workers = -2 }, "worksheet.workers"},
		{"window", func(c *Config) { c.Practice.RecentWindow = -1 }, "recent_window"},
		{"questions", func(c *Config) { c.Practice.Questions = 0 }, "practice.questions"},
		{"level", func(c *Config) { c.Logging.Level = "loud" }, "invalid log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "exgen.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 5
	cfg.Topics = []string{"equation"}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEngine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sampling.MaxAttempts = 12
	ec := cfg.Engine(3)
	assert.Equal(t, uint64(3), ec.Seed)
	assert.Equal(t, 12, ec.MaxAttempts)
	assert.NotEmpty(t, ec.Validators)
}

func TestRegistry_UnknownTopic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Topics = []string{"topology"}
	_, err := cfg.Registry()
	assert.Error(t, err)
}
