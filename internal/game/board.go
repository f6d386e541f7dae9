package game

import "github.com/rocketscienceinc/tictactoe-console/internal/apperror"

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

const (
	MinBoardSize = 2
	MaxBoardSize = 9
)

// Board - an n×n grid of cells, addressed by zero-based row and column.
type Board struct {
	size  int
	cells [][]string
}

func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, &apperror.BoardSizeError{Size: size}
	}

	cells := make([][]string, size)
	for i := range cells {
		cells[i] = make([]string, size)
	}

	return &Board{size: size, cells: cells}, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) At(row, col int) string {
	return that.cells[row][col]
}

func (that *Board) IsOccupied(row, col int) bool {
	return that.cells[row][col] != EmptyCell
}

// Place - writes a mark into a cell. The caller checks occupancy first.
func (that *Board) Place(row, col int, mark string) {
	that.cells[row][col] = mark
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}
