package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"phones"}, cfg.Dictionary.Paths)
	assert.Equal(t, "None found!", cfg.Pun.NoSolution)
	assert.Equal(t, 1024, cfg.Pun.MaxPhones)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "autopun.yaml")

	cfg := DefaultConfig()
	cfg.Dictionary.Paths = []string{"a.txt", "b.gob"}
	cfg.Pun.Seed = 7
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autopun.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pun:\n  max_phones: 64\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Pun.MaxPhones)
	assert.Equal(t, "None found!", cfg.Pun.NoSolution)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autopun.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pun: [unclosed\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("dictionary list", func(t *testing.T) {
		t.Setenv("AUTOPUN_DICTIONARY", "one.txt"+string(os.PathListSeparator)+"two.txt")
		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, []string{"one.txt", "two.txt"}, cfg.Dictionary.Paths)
	})

	t.Run("log level and seed", func(t *testing.T) {
		t.Setenv("AUTOPUN_LOG_LEVEL", "debug")
		t.Setenv("AUTOPUN_SEED", "42")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, uint64(42), cfg.Pun.Seed)
	})

	t.Run("bad seed", func(t *testing.T) {
		t.Setenv("AUTOPUN_SEED", "soon")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AUTOPUN_SEED")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative max phones", func(c *Config) { c.Pun.MaxPhones = -1 }, "max_phones"},
		{"unknown encoding", func(c *Config) { c.Dictionary.Encoding = "ebcdic" }, "encoding"},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"unknown format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	cfg := DefaultConfig()
	cfg.Logging.Level = "DEBUG"
	assert.NoError(t, cfg.Validate())
}
