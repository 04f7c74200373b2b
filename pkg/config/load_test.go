package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/timestamp/errors"
)

// isolate points the user config dir and the working directory at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	t.Setenv(ConfigPathEnvVar, "")

	wd := t.TempDir()
	prevWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Cleanup(func() { _ = os.Chdir(prevWD) })
	return wd
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, CliConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultLogsFile, cfg.Logs.File)
	assert.Equal(t, DefaultLogsLevel, cfg.Logs.Level)
	assert.Equal(t, DefaultFormat, cfg.Label.Format)
	assert.Equal(t, DefaultDirection, cfg.Label.Direction)
	assert.Equal(t, DefaultStart, cfg.Label.Start)
	assert.Equal(t, DefaultScale, cfg.Label.Scale)
	assert.Zero(t, cfg.Label.ZeroOffset)
	assert.False(t, cfg.Label.Plain)
	assert.Empty(t, cfg.ConfigPath)
}

func TestLoad_WorkDirConfig(t *testing.T) {
	wd := isolate(t)
	path := writeConfig(t, wd, `
logs:
  level: Debug
label:
  format: "mm:ss"
  direction: decrease
  zero_offset: 9h
  ticks: 5
  attributes:
    foreground: cyan
    bold: "true"
`)

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "Debug", cfg.Logs.Level)
	assert.Equal(t, "mm:ss", cfg.Label.Format)
	assert.Equal(t, "decrease", cfg.Label.Direction)
	assert.Equal(t, 9*time.Hour, cfg.Label.ZeroOffset)
	assert.Equal(t, uint64(5), cfg.Label.Ticks)
	assert.Equal(t, map[string]string{"foreground": "cyan", "bold": "true"}, cfg.Label.Attributes)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestLoad_UserConfigIsOverriddenByWorkDir(t *testing.T) {
	wd := isolate(t)
	userDir := filepath.Join(xdg.ConfigHome, AppName)
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	writeConfig(t, userDir, "label:\n  format: ms\n  scale: 1m\n")
	writeConfig(t, wd, "label:\n  format: hms\n")

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "hms", cfg.Label.Format)
	assert.Equal(t, "1m", cfg.Label.Scale)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	wd := isolate(t)
	writeConfig(t, wd, "label:\n  format: ms\n")
	t.Setenv("TIMESTAMP_LABEL_FORMAT", "HH:mm")
	t.Setenv("TIMESTAMP_LABEL_ZERO_OFFSET", "90m")
	t.Setenv("TIMESTAMP_LOGS_LEVEL", "Trace")

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "HH:mm", cfg.Label.Format)
	assert.Equal(t, 90*time.Minute, cfg.Label.ZeroOffset)
	assert.Equal(t, "Trace", cfg.Logs.Level)
}

func TestLoad_ConfigPathEnvVar(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, "label:\n  direction: down\n")
	t.Setenv(ConfigPathEnvVar, dir)

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "down", cfg.Label.Direction)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestLoad_ExplicitConfig(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("label:\n  plain: true\n"), 0o644))

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)

	assert.True(t, cfg.Label.Plain)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	isolate(t)

	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, errUtils.ErrLoadConfig)
}

func TestLoad_InvalidYAML(t *testing.T) {
	wd := isolate(t)
	writeConfig(t, wd, "label: [unclosed\n")

	_, err := Load(NewViper(), "")
	assert.ErrorIs(t, err, errUtils.ErrLoadConfig)
}

func TestLoad_InvalidDuration(t *testing.T) {
	wd := isolate(t)
	writeConfig(t, wd, "label:\n  zero_offset: soon\n")

	_, err := Load(NewViper(), "")
	assert.ErrorIs(t, err, errUtils.ErrLoadConfig)
}
