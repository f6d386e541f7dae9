package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/game"
)

const cellWidth = 5

// Renderer - draws the board and colored marks to the terminal. X is red
// and O is green; once a round is won the winning line keeps its color and
// every other mark goes dim.
type Renderer struct {
	out *termenv.Output

	red   termenv.Color
	green termenv.Color
	dim   termenv.Color
}

// NewRenderer - with colors disabled the output downgrades to the plain
// ASCII profile and no escape sequences are emitted.
func NewRenderer(w io.Writer, colors bool) *Renderer {
	profile := termenv.ANSI
	if !colors {
		profile = termenv.Ascii
	}

	out := termenv.NewOutput(w, termenv.WithProfile(profile))

	return &Renderer{
		out:   out,
		red:   out.Profile.Color("1"),
		green: out.Profile.Color("2"),
		dim:   out.Profile.Color("8"),
	}
}

// Mark - the colored one-character form of a mark, used in prompts.
func (that *Renderer) Mark(mark string) string {
	return that.out.String(mark).Foreground(that.markColor(mark)).String()
}

// Board - draws the grid. Cells are five columns wide, separated by pipes,
// with underscore lines between rows so the field reads as a grid without
// box-drawing characters.
func (that *Renderer) Board(g *game.Game) {
	size := g.Board.Size()

	blank := make([]string, size)
	separator := make([]string, size)
	for i := range blank {
		blank[i] = strings.Repeat(" ", cellWidth)
		separator[i] = strings.Repeat("_", cellWidth)
	}
	emptyLine := strings.Join(blank, "|")
	separatorLine := strings.Join(separator, "|")

	for row := 0; row < size; row++ {
		fmt.Fprintln(that.out, emptyLine)

		cells := make([]string, size)
		for col := 0; col < size; col++ {
			cells[col] = that.cell(g, row, col)
		}
		fmt.Fprintln(that.out, strings.Join(cells, "|"))

		if row < size-1 {
			fmt.Fprintln(that.out, separatorLine)
		} else {
			fmt.Fprintln(that.out, emptyLine)
		}
	}
}

// cell - one centered, colored cell.
func (that *Renderer) cell(g *game.Game, row, col int) string {
	mark := g.Board.At(row, col)
	if mark == game.EmptyCell {
		return strings.Repeat(" ", cellWidth)
	}

	color := that.markColor(mark)
	if g.WinningLine != nil && !g.WinningLine.Contains(row, col) {
		color = that.dim
	}

	left := (cellWidth - 1) / 2
	right := cellWidth - 1 - left
	styled := that.out.String(mark).Foreground(color).String()

	return strings.Repeat(" ", left) + styled + strings.Repeat(" ", right)
}

func (that *Renderer) markColor(mark string) termenv.Color {
	if mark == game.PlayerX {
		return that.red
	}

	return that.green
}
