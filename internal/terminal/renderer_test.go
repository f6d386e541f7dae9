package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/game"
)

func TestRenderer_Board(t *testing.T) {
	t.Run("Plain grid without colors", func(t *testing.T) {
		// Given: a 3x3 game with X on the first cell
		g, err := game.NewGame(3)
		require.NoError(t, err)
		g.Board.Place(0, 0, game.PlayerX)

		var buf bytes.Buffer
		renderer := NewRenderer(&buf, false)

		// When: drawing the board
		renderer.Board(g)

		// Then: cells are five wide, pipes between columns, underscores
		// between rows
		expected := strings.Join([]string{
			"     |     |     ",
			"  X  |     |     ",
			"_____|_____|_____",
			"     |     |     ",
			"     |     |     ",
			"_____|_____|_____",
			"     |     |     ",
			"     |     |     ",
			"     |     |     ",
			"",
		}, "\n")
		require.Equal(t, expected, buf.String())
	})

	t.Run("Colored marks", func(t *testing.T) {
		g, err := game.NewGame(3)
		require.NoError(t, err)
		g.Board.Place(0, 0, game.PlayerX)
		g.Board.Place(1, 1, game.PlayerO)

		var buf bytes.Buffer
		NewRenderer(&buf, true).Board(g)

		// Then: X is red, O is green
		assert.Contains(t, buf.String(), "\x1b[31mX")
		assert.Contains(t, buf.String(), "\x1b[32mO")
	})

	t.Run("Dims everything outside the winning line", func(t *testing.T) {
		// Given: X won the first row while another X sits elsewhere
		g, err := game.NewGame(3)
		require.NoError(t, err)
		for col := 0; col < 3; col++ {
			g.Board.Place(0, col, game.PlayerX)
		}
		g.Board.Place(2, 2, game.PlayerX)

		won, err := g.CheckWinner()
		require.NoError(t, err)
		require.True(t, won)

		var buf bytes.Buffer
		NewRenderer(&buf, true).Board(g)

		// Then: the stray mark is rendered dim, the line stays red
		assert.Contains(t, buf.String(), "\x1b[90mX")
		assert.Contains(t, buf.String(), "\x1b[31mX")
	})
}

func TestRenderer_Mark(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewRenderer(&buf, true)

	assert.Equal(t, "\x1b[31mX\x1b[0m", renderer.Mark(game.PlayerX))
	assert.Equal(t, "\x1b[32mO\x1b[0m", renderer.Mark(game.PlayerO))

	plain := NewRenderer(&buf, false)
	assert.Equal(t, "X", plain.Mark(game.PlayerX))
}

func TestReader(t *testing.T) {
	t.Run("Prompt trims the line", func(t *testing.T) {
		var out bytes.Buffer
		reader := NewReader(strings.NewReader("  5  \n"), &out)

		token, ok := reader.Prompt("Enter a cell: ")

		require.True(t, ok)
		assert.Equal(t, "5", token)
		assert.Equal(t, "Enter a cell: ", out.String())
	})

	t.Run("Prompt reports a closed stream", func(t *testing.T) {
		var out bytes.Buffer
		reader := NewReader(strings.NewReader(""), &out)

		_, ok := reader.Prompt("> ")

		assert.False(t, ok)
	})

	t.Run("Confirm accepts y and yes only", func(t *testing.T) {
		var out bytes.Buffer
		reader := NewReader(strings.NewReader("Y\nyes\nno\n\n"), &out)

		assert.True(t, reader.Confirm("? "))
		assert.True(t, reader.Confirm("? "))
		assert.False(t, reader.Confirm("? "))
		assert.False(t, reader.Confirm("? "))
	})
}
