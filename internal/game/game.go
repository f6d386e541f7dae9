package game

import (
	"strconv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Game - one round of tic-tac-toe on a fixed board size. The win-line
// catalog is computed once per game and never mutated; Reset reuses it.
type Game struct {
	Board       *Board
	Turn        string
	MoveCount   int
	WinningLine Line

	winLines []Line
}

func NewGame(size int) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	return &Game{
		Board:    board,
		Turn:     PlayerX,
		winLines: generateWinLines(size),
	}, nil
}

// Limit - the highest 1-based position on the board.
func (that *Game) Limit() int {
	return that.Board.Size() * that.Board.Size()
}

// Position - the 1-based board position of a cell.
func (that *Game) Position(cell Cell) int {
	return cell.Row*that.Board.Size() + cell.Col + 1
}

// ParsePosition - validates a raw move token before range checking.
func ParsePosition(token string) (int, error) {
	position, err := strconv.Atoi(token)
	if err != nil || position < 0 {
		return 0, &apperror.InvalidInputError{Token: token}
	}

	return position, nil
}

// ApplyMove - places the current player's mark at a 1-based position and
// increments the move count. Turn switching is a separate step so the
// caller can evaluate win and draw before it.
func (that *Game) ApplyMove(position int) error {
	limit := that.Limit()
	if position < 1 || position > limit {
		return &apperror.InvalidPositionError{Position: position, Limit: limit}
	}

	size := that.Board.Size()
	row := (position - 1) / size
	col := (position - 1) % size

	if that.Board.IsOccupied(row, col) {
		return &apperror.CellOccupiedError{Position: position, Mark: that.Board.At(row, col)}
	}

	that.Board.Place(row, col, that.Turn)
	that.MoveCount++

	return nil
}

// CheckWinner - scans the catalog front to back and records the first
// monochromatic line in WinningLine. The check counts both marks, not just
// the player on turn; two complete lines for different marks cannot happen
// in legal play and are reported as corruption.
func (that *Game) CheckWinner() (bool, error) {
	size := that.Board.Size()

	winner := EmptyCell
	for _, line := range that.winLines {
		var countX, countO int
		for _, cell := range line {
			switch that.Board.At(cell.Row, cell.Col) {
			case PlayerX:
				countX++
			case PlayerO:
				countO++
			}
		}

		var mark string
		switch size {
		case countX:
			mark = PlayerX
		case countO:
			mark = PlayerO
		default:
			continue
		}

		if winner == EmptyCell {
			winner = mark
			that.WinningLine = line
			continue
		}

		if winner != mark {
			return false, apperror.ErrBoardCorrupted
		}
	}

	return winner != EmptyCell, nil
}

// CheckDraw - reports a full board with no recorded winner. Call it only
// after CheckWinner for the same move.
func (that *Game) CheckDraw() bool {
	return that.WinningLine == nil && that.Board.IsFull()
}

func (that *Game) SwitchTurn() {
	if that.Turn == PlayerX {
		that.Turn = PlayerO
	} else {
		that.Turn = PlayerX
	}
}

// Reset - returns the game to a fresh round on the same board size.
func (that *Game) Reset() {
	board, _ := NewBoard(that.Board.Size()) // size was validated at construction
	that.Board = board
	that.Turn = PlayerX
	that.MoveCount = 0
	that.WinningLine = nil
}
