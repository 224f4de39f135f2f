package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the config file", func(t *testing.T) {
		// Given: a config file with a custom game
		path := writeConfig(t, `
log-level: debug
trace: true
game:
  side-length: 7
  win-length: 5
  players: 3
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: every value comes from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.True(t, conf.Trace)
		assert.Equal(t, Game{SideLength: 7, WinLength: 5, Players: 3}, conf.Game)
	})

	t.Run("Defaults fill the gaps", func(t *testing.T) {
		// Given: a config file that only sets the board size
		path := writeConfig(t, "game:\n  side-length: 15\n")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the rest is the classic game
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.False(t, conf.Trace)
		assert.Equal(t, Game{SideLength: 15, WinLength: 3, Players: 2}, conf.Game)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an environment variable
		path := writeConfig(t, "game:\n  win-length: 4\n")
		t.Setenv("ATTT_WIN_LENGTH", "6")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, 6, conf.Game.WinLength)
	})

	t.Run("Missing file falls back to the environment", func(t *testing.T) {
		// Given: no config file
		t.Setenv("ATTT_SIDE_LENGTH", "9")

		// When: the config is loaded
		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		// Then: environment and defaults are used
		require.NoError(t, err)
		assert.Equal(t, Game{SideLength: 9, WinLength: 3, Players: 2}, conf.Game)
	})

	t.Run("Broken file is an error", func(t *testing.T) {
		path := writeConfig(t, "game: [unclosed")

		_, err := Load(path)

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestConfig_Level(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, (&Config{}).Level())
	assert.Equal(t, slog.LevelDebug, (&Config{LogLevel: "debug"}).Level())
	assert.Equal(t, slog.LevelWarn, (&Config{LogLevel: "warn"}).Level())
	assert.Equal(t, slog.LevelError, (&Config{LogLevel: "error"}).Level())
	assert.Equal(t, slog.LevelDebug, (&Config{LogLevel: "error", Trace: true}).Level())
}
