package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rocketscienceinc/attt-engine/internal/entity"
	"github.com/rocketscienceinc/attt-engine/internal/logging"
	"github.com/rocketscienceinc/attt-engine/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var classic = Settings{SideLength: 3, WinLength: 3, Players: 2}

func play(t *testing.T, settings Settings, input string) (*tictactoe.Engine, string) {
	t.Helper()

	game := tictactoe.New()
	out := &bytes.Buffer{}
	server := New(logging.Discard(), game, settings, out)

	err := server.Start(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	return game, out.String()
}

func TestServer_Start(t *testing.T) {
	t.Run("Configured game is prepared", func(t *testing.T) {
		// When: the console starts without any input
		game, out := play(t, classic, "")

		// Then: an empty classic field is shown and X is to move
		assert.True(t, game.IsActive())
		assert.Contains(t, out, "new game: field 3x3, 3 in a row wins, 2 players")
		assert.Contains(t, out, ". . .\n. . .\n. . .\n")
		assert.Contains(t, out, "player X moves")
	})

	t.Run("Game is played to the win", func(t *testing.T) {
		// When: the players make their moves
		game, out := play(t, classic, "0 0\n1 0\nmove 0 1\n1 1\n0 2\n")

		// Then: X wins with the first column
		assert.False(t, game.IsActive())
		assert.Equal(t, entity.PlayerX, game.Winner())
		assert.Contains(t, out, "X O .\nX O .\nX . .\n")
		assert.Contains(t, out, "player X wins")
	})

	t.Run("Draw is announced", func(t *testing.T) {
		_, out := play(t, classic, "0 0\n1 0\n2 0\n1 1\n0 1\n2 1\n1 2\n0 2\n2 2\n")

		assert.Contains(t, out, "draw\n")
	})

	t.Run("Rejected moves are reported", func(t *testing.T) {
		// When: a player hits an occupied cell, misses the field and mistypes
		game, out := play(t, classic, "1 1\n1 1\n5 5\n1\nmove a b\n")

		// Then: every problem is reported and O is still to move
		assert.Contains(t, out, "cell is already occupied")
		assert.Contains(t, out, "out of the game field")
		assert.Contains(t, out, "expected two coordinates")
		assert.Contains(t, out, `x "a" is not a number`)
		assert.Equal(t, entity.PlayerO, game.ActivePlayer())
	})

	t.Run("New game with custom size", func(t *testing.T) {
		// When: a bigger game is requested
		game, out := play(t, classic, "new 5 4\n")

		// Then: it replaces the configured one
		assert.Equal(t, 5, game.SideLength())
		assert.Contains(t, out, "new game: field 5x5, 4 in a row wins, 2 players")
	})

	t.Run("New game with broken settings", func(t *testing.T) {
		// When: the size is mistyped
		game, out := play(t, classic, "0 0\nnew five\nnew 5 four\n")

		// Then: the running game is kept
		assert.Contains(t, out, `invalid game settings: side length "five" is not a number`)
		assert.Contains(t, out, `invalid game settings: winning length "four" is not a number`)
		assert.Equal(t, entity.PlayerX, game.MarkAt(0, 0))
		assert.Equal(t, 3, game.SideLength())
	})

	t.Run("Finish stops the game", func(t *testing.T) {
		game, out := play(t, classic, "finish\n0 0\nprint\n")

		assert.False(t, game.IsActive())
		assert.Contains(t, out, "game finished")
		assert.Contains(t, out, "game is not active")
		assert.Contains(t, out, "no game")
	})

	t.Run("Quit ends the session early", func(t *testing.T) {
		game, out := play(t, classic, "quit\n0 0\n")

		assert.False(t, game.IsActive())
		assert.NotContains(t, out, "X . .")
	})

	t.Run("Unknown command and help", func(t *testing.T) {
		_, out := play(t, classic, "dance\nhelp\n\n")

		assert.Contains(t, out, "unknown command: dance")
		assert.Contains(t, out, "new [side] [win]")
	})

	t.Run("Three players", func(t *testing.T) {
		game, out := play(t, Settings{SideLength: 4, WinLength: 4, Players: 3}, "0 0\n1 0\n")

		assert.Equal(t, entity.Player(3), game.ActivePlayer())
		assert.Contains(t, out, "player A moves")
	})
}

func TestServer_Start_Canceled(t *testing.T) {
	// Given: a canceled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	game := tictactoe.New()
	out := &bytes.Buffer{}
	server := New(logging.Discard(), game, classic, out)

	// When: the console starts with pending input
	err := server.Start(ctx, strings.NewReader("0 0\n"))

	// Then: no command is served
	require.NoError(t, err)
	assert.Equal(t, entity.PlayerNone, game.MarkAt(0, 0))
}

func TestServer_Close(t *testing.T) {
	// Given: a console that was closed before serving
	game := tictactoe.New()
	out := &bytes.Buffer{}
	server := New(logging.Discard(), game, classic, out)
	server.Close()

	// When: commands arrive
	err := server.Start(context.Background(), strings.NewReader("new\n0 0\n"))

	// Then: none of them is served
	require.NoError(t, err)
	assert.False(t, game.IsActive())
	assert.Empty(t, out.String())
	assert.NotPanics(t, server.Close)
}
