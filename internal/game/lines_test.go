package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWinLines(t *testing.T) {
	t.Run("Catalog shape for every board size", func(t *testing.T) {
		for size := MinBoardSize; size <= MaxBoardSize; size++ {
			lines := generateWinLines(size)

			// Then: n rows + n columns + 2 diagonals
			require.Len(t, lines, 2*size+2, "size %d", size)

			seen := make(map[string]struct{}, len(lines))
			for _, line := range lines {
				require.Len(t, line, size)

				key := ""
				for _, cell := range line {
					require.GreaterOrEqual(t, cell.Row, 0)
					require.Less(t, cell.Row, size)
					require.GreaterOrEqual(t, cell.Col, 0)
					require.Less(t, cell.Col, size)
					key += fmt.Sprintf("(%d,%d)", cell.Row, cell.Col)
				}

				// Then: no line appears twice
				_, duplicate := seen[key]
				require.False(t, duplicate, "duplicate line %s for size %d", key, size)
				seen[key] = struct{}{}
			}
		}
	})

	t.Run("Order is rows, columns, diagonals", func(t *testing.T) {
		lines := generateWinLines(3)

		assert.Equal(t, Line{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, lines[0])
		assert.Equal(t, Line{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}}, lines[3])
		assert.Equal(t, Line{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}, lines[6])
		assert.Equal(t, Line{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}}, lines[7])
	})
}

func TestLine_Contains(t *testing.T) {
	line := Line{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}

	assert.True(t, line.Contains(1, 1))
	assert.False(t, line.Contains(0, 1))
}
