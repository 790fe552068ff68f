package config_test

import (
	"path/filepath"
	"testing"

	"github.com/hbjs97/ok/internal/config"
	"github.com/hbjs97/ok/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidTOML(t *testing.T) {
	content := `profile_file = ".tasks"
prefix = "cd {} && "
suffix = "; cd -"
log_level = "debug"`

	path := testutil.TempConfigFile(t, content)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.True(t, cfg.Loaded)
	assert.Equal(t, ".tasks", cfg.ProfileFile)
	assert.Equal(t, "cd {} && ", cfg.Prefix)
	assert.Equal(t, "; cd -", cfg.Suffix)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	path := testutil.TempConfigFile(t, `prefix = "p"`)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, config.DefaultProfileFile, cfg.ProfileFile)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.Suffix)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope", "config.toml"))

	require.NoError(t, err)
	assert.False(t, cfg.Loaded)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := testutil.TempConfigFile(t, "invalid toml [[[")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_InvalidProfileFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "path separator", content: `profile_file = "sub/.ok"`},
		{name: "dot", content: `profile_file = "."`},
		{name: "dotdot", content: `profile_file = ".."`},
		{name: "backslash", content: `profile_file = 'a\b'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.TempConfigFile(t, tt.content)
			_, err := config.Load(path)
			assert.ErrorIs(t, err, config.ErrConfig)
		})
	}
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "ok", "config.toml"), config.DefaultPath())
}

func TestDefaultPath_Home(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/someone")
	assert.Equal(t, filepath.Join("/home/someone", ".config", "ok", "config.toml"), config.DefaultPath())
}
