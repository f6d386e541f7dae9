package game

import "math/rand"

// Selector - picks the bot's next move. Four tiers, first hit wins:
// complete the bot's own line, block the opponent's, take the center,
// any empty cell.
type Selector struct {
	rand *rand.Rand
}

// NewSelector - the random source drives only the last tier; inject a
// seeded one for reproducible games.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rand: rng}
}

// ChooseMove - returns the chosen cell for the bot, which always plays O.
// ok is false only on a full board.
func (that *Selector) ChooseMove(g *Game) (Cell, bool) {
	size := g.Board.Size()

	if cell, ok := findEmptyInLine(g, PlayerO, size-1); ok {
		return cell, true
	}

	if cell, ok := findEmptyInLine(g, PlayerX, size-1); ok {
		return cell, true
	}

	// for even sizes this lands in the lower-right quadrant rather than a
	// true geometric center
	center := size / 2
	if !g.Board.IsOccupied(center, center) {
		return Cell{Row: center, Col: center}, true
	}

	var empty []Cell
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if !g.Board.IsOccupied(row, col) {
				empty = append(empty, Cell{Row: row, Col: col})
			}
		}
	}

	if len(empty) == 0 {
		return Cell{}, false
	}

	return empty[that.rand.Intn(len(empty))], true
}

// findEmptyInLine - the empty cell of the first catalog line where mark
// fills target cells and exactly one cell is free.
func findEmptyInLine(g *Game, mark string, target int) (Cell, bool) {
	for _, line := range g.winLines {
		var marked, empties int
		var empty Cell
		for _, cell := range line {
			switch g.Board.At(cell.Row, cell.Col) {
			case mark:
				marked++
			case EmptyCell:
				empties++
				empty = cell
			}
		}

		if marked == target && empties == 1 {
			return empty, true
		}
	}

	return Cell{}, false
}
