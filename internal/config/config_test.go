package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "MyMath", cfg.Title)
	assert.Equal(t, 10, cfg.Game.MaxNumber)
	assert.Equal(t, 10, cfg.Game.Rounds)
	assert.Equal(t, 1500, cfg.Game.DelayMs)
	assert.Equal(t, 1500, cfg.Game.RevealDelayMs)
	assert.Equal(t, 1500, cfg.Game.OptionsDelayMs)
	assert.Equal(t, 1, cfg.Counting.MinCount)
	assert.Equal(t, 10, cfg.Counting.MaxCount)
	assert.True(t, cfg.Sound.Enabled)
	assert.Equal(t, 7, cfg.Video.MinRounds)
	assert.Equal(t, 1, cfg.Video.MaxWrong)
	assert.Empty(t, cfg.Path)
}

func TestLoad_MissingImplicitUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Game.MaxNumber)
	assert.Equal(t, filepath.Join(dir, "data", "images"), cfg.ImagesFolder)
	assert.Empty(t, cfg.Path)
}

func TestLoad_MissingExplicitIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := Load(path, true)
	require.ErrorIs(t, err, ErrConfigMissing)
}

func TestLoad_ReadsFileAndInheritsDelays(t *testing.T) {
	path := writeConfig(t, `
title: Numbers
game:
  max_number: 5
  rounds: 3
  delay_ms: 200
video:
  videos_folder: /abs/videos
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "Numbers", cfg.Title)
	assert.Equal(t, 5, cfg.Game.MaxNumber)
	assert.Equal(t, 3, cfg.Game.Rounds)
	assert.Equal(t, 200*time.Millisecond, cfg.Game.RevealDelay())
	assert.Equal(t, 200*time.Millisecond, cfg.Game.OptionsDelay())
	assert.Equal(t, 200*time.Millisecond, cfg.Game.NextRoundDelay())
	assert.Equal(t, 5, cfg.Counting.MaxCount)
	assert.Equal(t, "/abs/videos", cfg.Video.VideosFolder)
	assert.Equal(t, path, cfg.Path)
}

func TestLoad_ExplicitPhaseDelays(t *testing.T) {
	path := writeConfig(t, `
game:
  delay_ms: 1000
  reveal_delay_ms: 0
  options_delay_ms: 250
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Game.RevealDelayMs)
	assert.Equal(t, 250, cfg.Game.OptionsDelayMs)
	assert.Equal(t, 1000, cfg.Game.DelayMs)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero max number", "game:\n  max_number: 0\n"},
		{"zero rounds", "game:\n  rounds: 0\n"},
		{"negative delay", "game:\n  delay_ms: -1\n"},
		{"count range inverted", "counting:\n  min_count: 5\n  max_count: 3\n"},
		{"negative max wrong", "video:\n  max_wrong: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			_, err := Load(path, true)
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "game: [unclosed\n")

	_, err := Load(path, true)
	require.Error(t, err)
}

func TestSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	require.NoError(t, Set(path, "game.rounds", "4"))
	require.NoError(t, Set(path, "sound.enabled", "false"))
	require.NoError(t, Set(path, "title", "Count with me"))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Game.Rounds)
	assert.False(t, cfg.Sound.Enabled)
	assert.Equal(t, "Count with me", cfg.Title)
}

func TestSet_RejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	err := Set(path, "game.speed", "3")
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.NoFileExists(t, path)
}

func TestSet_RejectsInvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	err := Set(path, "game.max_number", "0")
	require.ErrorIs(t, err, ErrInvalid)
	assert.NoFileExists(t, path)
}

func TestKeysCoverSettings(t *testing.T) {
	settings := Default().Settings()
	keys := Keys()

	assert.Len(t, keys, len(settings))
	for _, k := range keys {
		assert.Contains(t, settings, k)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MYMATH_CONFIG", "/tmp/c.yaml")
	t.Setenv("MYMATH_DB", "/tmp/m.db")
	t.Setenv("MYMATH_LOG", "")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.yaml", e.ConfigPath)
	assert.Equal(t, "/tmp/m.db", e.DBPath)
	assert.Empty(t, e.LogFile)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/x/config")

	assert.Equal(t, "/x/config/mymath/config.yaml", DefaultConfigPath())
}
