package config

import (
	"os"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) (billy.Filesystem, string) {
	t.Helper()
	fsys := memfs.New()
	path := "/etc/quickreplace.yaml"
	require.NoError(t, util.WriteFile(fsys, path, []byte(content), 0644))
	return fsys, path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Color)
	assert.False(t, cfg.Literal)
	assert.False(t, cfg.LockOutput)
	assert.Equal(t, os.FileMode(0644), cfg.FileMode)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Full(t *testing.T) {
	fsys, path := writeConfig(t, `
log_level: debug
color: never
literal: true
lock_output: true
file_mode: "0600"
`)

	cfg, err := LoadConfig(fsys, path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "never", cfg.Color)
	assert.True(t, cfg.Literal)
	assert.True(t, cfg.LockOutput)
	assert.Equal(t, os.FileMode(0600), cfg.FileMode)
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	fsys, path := writeConfig(t, "color: always\n")

	cfg, err := LoadConfig(fsys, path)
	require.NoError(t, err)

	assert.Equal(t, "always", cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, os.FileMode(0644), cfg.FileMode)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(memfs.New(), "/etc/nope.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "log_level: [unterminated\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("bad file mode", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "file_mode: \"0999\"\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid file_mode")
	})
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	level := "warn"
	literal := true

	cfg.MergeWithFlags(&level, nil, &literal, nil)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Color)
	assert.True(t, cfg.Literal)
	assert.False(t, cfg.LockOutput)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
		{"bad color", func(c *Config) { c.Color = "rainbow" }, "invalid color"},
		{"non-permission bits", func(c *Config) { c.FileMode = os.ModeDir | 0755 }, "file_mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
