package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/game"
	"github.com/rocketscienceinc/tictactoe-console/internal/history"
	"github.com/rocketscienceinc/tictactoe-console/internal/terminal"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// GamePlayService - drives whole rounds: mode selection, prompts, bot
// turns, rendering and the history record of every finished round.
type GamePlayService interface {
	Run(ctx context.Context) error
}

type gamePlayService struct {
	logger *slog.Logger

	game     *game.Game
	selector *game.Selector
	renderer *terminal.Renderer
	reader   *terminal.Reader
	writer   *history.Writer
	out      io.Writer

	now func() time.Time
}

func NewGamePlayService(
	logger *slog.Logger,
	gameState *game.Game,
	selector *game.Selector,
	renderer *terminal.Renderer,
	reader *terminal.Reader,
	writer *history.Writer,
	out io.Writer,
) GamePlayService {
	return &gamePlayService{
		logger:   logger.With("component", "gameplay"),
		game:     gameState,
		selector: selector,
		renderer: renderer,
		reader:   reader,
		writer:   writer,
		out:      out,
		now:      time.Now,
	}
}

// Run - plays rounds until the player aborts, declines a replay or the
// context is cancelled. The bot always plays O, the human moves first.
func (that *gamePlayService) Run(ctx context.Context) error {
	fmt.Fprintln(that.out, "Press ENTER on a move prompt to leave the game early")

	withBot := that.reader.Confirm("Play against the bot? [Y/n] ")
	if withBot {
		fmt.Fprintln(that.out, "Game against the bot started. You move first")
	} else {
		fmt.Fprintln(that.out, "Game started in PVP mode")
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		position, aborted, err := that.nextMove(withBot)
		if err != nil {
			return err
		}
		if aborted {
			fmt.Fprintln(that.out, "You left the game early")
			return nil
		}

		if err = that.game.ApplyMove(position); err != nil {
			if isRecoverable(err) {
				fmt.Fprintln(that.out, err)
				continue
			}
			return fmt.Errorf("failed to make turn: %w", err)
		}

		won, err := that.game.CheckWinner()
		if err != nil {
			return fmt.Errorf("failed to check winner: %w", err)
		}

		switch {
		case won:
			that.renderer.Board(that.game)
			fmt.Fprintf(that.out, "Player %s won!\n", that.renderer.Mark(that.game.Turn))
			if !that.finishRound(withBot, that.game.Turn) {
				return nil
			}
		case that.game.CheckDraw():
			that.renderer.Board(that.game)
			fmt.Fprintln(that.out, "The game ended in a draw!")
			if !that.finishRound(withBot, history.OutcomeDraw) {
				return nil
			}
		default:
			that.game.SwitchTurn()
		}
	}
}

// nextMove - collects the next 1-based position, from the bot when it is
// its turn and from the prompt otherwise. aborted reports an empty input.
func (that *gamePlayService) nextMove(withBot bool) (position int, aborted bool, err error) {
	if withBot && that.game.Turn == game.PlayerO {
		cell, ok := that.selector.ChooseMove(that.game)
		if !ok {
			return 0, false, fmt.Errorf("bot failed to make turn: %w", ErrNoAvailableMoves)
		}

		fmt.Fprintln(that.out, "The bot has moved, now it's your turn")
		return that.game.Position(cell), false, nil
	}

	that.renderer.Board(that.game)
	if withBot {
		fmt.Fprintf(that.out, "Your move %s\n", that.renderer.Mark(that.game.Turn))
	} else {
		fmt.Fprintf(that.out, "Player %s moves\n", that.renderer.Mark(that.game.Turn))
	}

	token, ok := that.reader.Prompt(fmt.Sprintf("Enter a cell 1 - %d: ", that.game.Limit()))
	if !ok || token == "" {
		return 0, true, nil
	}

	position, parseErr := game.ParsePosition(token)
	if parseErr != nil {
		fmt.Fprintln(that.out, parseErr)
		return that.nextMove(withBot)
	}

	return position, false, nil
}

// finishRound - persists the round and asks for a replay. Returns true
// when the game was reset for another round.
func (that *gamePlayService) finishRound(withBot bool, outcome string) bool {
	mode := history.ModePVP
	if withBot {
		mode = history.ModeBot
	}

	that.writer.Append(history.Record{
		PlayedAt:  that.now(),
		Mode:      mode,
		BoardSize: that.game.Board.Size(),
		Moves:     that.game.MoveCount,
		Outcome:   outcome,
	})

	that.logger.Info("round finished", "mode", mode, "moves", that.game.MoveCount, "outcome", outcome)

	if that.reader.Confirm("Play again? [Y/n] ") {
		that.game.Reset()
		return true
	}

	fmt.Fprintln(that.out, "Have a nice day!")
	return false
}

// isRecoverable - move failures the round survives: the player is simply
// asked again with the state intact.
func isRecoverable(err error) bool {
	var invalidInput *apperror.InvalidInputError
	var invalidPosition *apperror.InvalidPositionError
	var cellOccupied *apperror.CellOccupiedError

	return errors.As(err, &invalidInput) || errors.As(err, &invalidPosition) || errors.As(err, &cellOccupied)
}
