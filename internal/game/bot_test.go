package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSelector() *Selector {
	return NewSelector(rand.New(rand.NewSource(1))) //nolint: gosec // fixed seed for reproducibility
}

func TestSelector_ChooseMove(t *testing.T) {
	t.Run("Completes its own line before anything else", func(t *testing.T) {
		// Given: O can win on the first row while X threatens the second
		g, err := NewGame(3)
		require.NoError(t, err)
		g.Board.Place(0, 0, PlayerO)
		g.Board.Place(0, 1, PlayerO)
		g.Board.Place(1, 0, PlayerX)
		g.Board.Place(1, 1, PlayerX)

		// When: the bot picks a move
		cell, ok := newTestSelector().ChooseMove(g)

		// Then: it takes the winning cell, not the block or the center
		require.True(t, ok)
		require.Equal(t, Cell{Row: 0, Col: 2}, cell)
	})

	t.Run("Blocks the opponent when it cannot win", func(t *testing.T) {
		// Given: X is one move from winning the second row
		g, err := NewGame(3)
		require.NoError(t, err)
		g.Board.Place(1, 0, PlayerX)
		g.Board.Place(1, 1, PlayerX)
		g.Board.Place(0, 0, PlayerO)

		cell, ok := newTestSelector().ChooseMove(g)

		require.True(t, ok)
		require.Equal(t, Cell{Row: 1, Col: 2}, cell)
	})

	t.Run("Takes the center on an empty board", func(t *testing.T) {
		g, err := NewGame(3)
		require.NoError(t, err)

		cell, ok := newTestSelector().ChooseMove(g)

		require.True(t, ok)
		require.Equal(t, Cell{Row: 1, Col: 1}, cell)
	})

	t.Run("Even sizes use the quadrant cell as center", func(t *testing.T) {
		g, err := NewGame(4)
		require.NoError(t, err)

		cell, ok := newTestSelector().ChooseMove(g)

		require.True(t, ok)
		require.Equal(t, Cell{Row: 2, Col: 2}, cell)
	})

	t.Run("Falls back to a random empty cell", func(t *testing.T) {
		// Given: the center is taken and no line is one move from complete
		build := func() *Game {
			g, err := NewGame(3)
			require.NoError(t, err)
			g.Board.Place(1, 1, PlayerO)
			g.Board.Place(0, 0, PlayerX)
			return g
		}

		// When: two selectors share the same seed
		first, ok := NewSelector(rand.New(rand.NewSource(42))).ChooseMove(build())
		require.True(t, ok)
		second, ok := NewSelector(rand.New(rand.NewSource(42))).ChooseMove(build())
		require.True(t, ok)

		// Then: the draw is reproducible and lands on an empty cell
		require.Equal(t, first, second)
		g := build()
		require.False(t, g.Board.IsOccupied(first.Row, first.Col))
	})

	t.Run("No move on a full board", func(t *testing.T) {
		g, err := NewGame(2)
		require.NoError(t, err)
		for row := 0; row < 2; row++ {
			for col := 0; col < 2; col++ {
				g.Board.Place(row, col, PlayerX)
			}
		}

		_, ok := newTestSelector().ChooseMove(g)

		require.False(t, ok)
	})
}
