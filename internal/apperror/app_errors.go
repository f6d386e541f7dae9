package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrBoardCorrupted  = errors.New("board is corrupted: both players hold a complete line")
	ErrHistoryNotFound = errors.New("history file not found, play at least one game first")
)

// BoardSizeError - the requested board side is outside the supported range.
type BoardSizeError struct {
	Size int
}

func (that *BoardSizeError) Error() string {
	return fmt.Sprintf("board size %d is not allowed, choose a size from 2 to 9", that.Size)
}

// InvalidInputError - the raw move token is not a positive integer.
type InvalidInputError struct {
	Token string
}

func (that *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q, please enter a number", that.Token)
}

// InvalidPositionError - the parsed position is outside [1, Limit].
type InvalidPositionError struct {
	Position int
	Limit    int
}

func (that *InvalidPositionError) Error() string {
	return fmt.Sprintf("value %d is outside the board, enter a value from 1 to %d", that.Position, that.Limit)
}

// CellOccupiedError - carries the position and the mark that occupies it.
type CellOccupiedError struct {
	Position int
	Mark     string
}

func (that *CellOccupiedError) Error() string {
	return fmt.Sprintf("cell %d is already occupied by player %s", that.Position, that.Mark)
}
