package game

// Cell - a zero-based board coordinate.
type Cell struct {
	Row int
	Col int
}

// Line - one potential win condition: a full row, column or diagonal.
type Line []Cell

// generateWinLines - builds every winning line for an n×n board: n rows,
// then n columns, then the main diagonal, then the anti-diagonal. Win
// detection and the bot walk the slice front to back and stop on the first
// hit, so the order is part of the observable behavior.
func generateWinLines(size int) []Line {
	lines := make([]Line, 0, 2*size+2)

	for i := 0; i < size; i++ {
		row := make(Line, size)
		for j := 0; j < size; j++ {
			row[j] = Cell{Row: i, Col: j}
		}
		lines = append(lines, row)
	}

	for i := 0; i < size; i++ {
		col := make(Line, size)
		for j := 0; j < size; j++ {
			col[j] = Cell{Row: j, Col: i}
		}
		lines = append(lines, col)
	}

	diagonal := make(Line, size)
	antiDiagonal := make(Line, size)
	for i := 0; i < size; i++ {
		diagonal[i] = Cell{Row: i, Col: i}
		antiDiagonal[i] = Cell{Row: i, Col: size - 1 - i}
	}

	return append(lines, diagonal, antiDiagonal)
}

// Contains - reports whether the line passes through a coordinate.
func (that Line) Contains(row, col int) bool {
	for _, cell := range that {
		if cell.Row == row && cell.Col == col {
			return true
		}
	}

	return false
}
