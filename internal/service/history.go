package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/game"
	"github.com/rocketscienceinc/tictactoe-console/internal/history"
)

var ErrUnknownCommand = errors.New("unknown history command")

const historyUsage = `Usage: tictactoe-console history <command> [arg]

Commands:
  story              full match history
  draws              drawn games only
  stats              win and draw counts per mode
  wins <X|O>         games won by a player
  last [n]           last n games (1-40, default 5)
  winrate <bot|pvp>  win percentage within a mode
  fastest            the game with the fewest moves
  date <DD.MM.YYYY>  games played on a date
  moves              total moves across all games
  boards             total board area across all games
  remove delete      delete the history file
`

// HistoryService - the post-hoc browsing commands over the match log.
type HistoryService interface {
	Execute(command, arg string) error
}

type historyService struct {
	logger *slog.Logger
	path   string
	out    io.Writer
}

func NewHistoryService(logger *slog.Logger, path string, out io.Writer) HistoryService {
	return &historyService{
		logger: logger.With("component", "history-cli"),
		path:   path,
		out:    out,
	}
}

func (that *historyService) Execute(command, arg string) error {
	if command == "" || command == "help" {
		fmt.Fprint(that.out, historyUsage)
		return nil
	}

	manager, err := history.NewManager(that.path)
	if err != nil {
		return fmt.Errorf("could not load history: %w", err)
	}

	that.logger.Debug("executing history command", "command", command, "arg", arg)

	switch command {
	case "story":
		that.printLines("--- Match history ---", manager.All())
	case "draws":
		that.printRecords("--- Drawn games ---", manager.Draws())
	case "stats":
		that.printStats(manager.Stats())
	case "wins":
		return that.printWins(manager, arg)
	case "last":
		return that.printLast(manager, arg)
	case "winrate":
		return that.printWinRate(manager, arg)
	case "fastest":
		return that.printFastest(manager)
	case "date":
		that.printByDate(manager, arg)
	case "moves":
		fmt.Fprintf(that.out, "Total moves across all games: %d\n", manager.TotalMoves())
	case "boards":
		fmt.Fprintf(that.out, "Total area of all boards: %d\n", manager.TotalBoardArea())
	case "remove":
		return that.remove(manager, arg)
	default:
		fmt.Fprint(that.out, historyUsage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}

	return nil
}

func (that *historyService) printLines(header string, lines []string) {
	fmt.Fprintln(that.out, header)
	for _, line := range lines {
		fmt.Fprintln(that.out, line)
	}
}

func (that *historyService) printRecords(header string, records []history.Record) {
	fmt.Fprintln(that.out, header)
	for _, record := range records {
		fmt.Fprintln(that.out, record)
	}
}

func (that *historyService) printStats(stats history.Stats) {
	fmt.Fprintln(that.out, "----- Wins and draws -----")
	fmt.Fprintf(that.out, "Wins by X | PVP %d | Bot %d | Total %d\n", stats.WinsXPVP, stats.WinsXBot, stats.WinsX())
	fmt.Fprintf(that.out, "Wins by O | PVP %d | Bot %d | Total %d\n", stats.WinsOPVP, stats.WinsOBot, stats.WinsO())
	fmt.Fprintf(that.out, "Draws     | PVP %d | Bot %d | Total %d\n", stats.DrawsPVP, stats.DrawsBot, stats.Draws())
	fmt.Fprintf(that.out, "Total matches: %d\n", stats.Total())
}

func (that *historyService) printWins(manager *history.Manager, arg string) error {
	mark := strings.ToUpper(arg)
	if mark != game.PlayerX && mark != game.PlayerO {
		fmt.Fprintln(that.out, "Specify a player: X or O")
		return nil
	}

	that.printRecords(fmt.Sprintf("--- Wins by player %s ---", mark), manager.WinsBy(mark))
	return nil
}

func (that *historyService) printLast(manager *history.Manager, arg string) error {
	n := 0
	if arg != "" {
		parsed, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintln(that.out, "Enter the number of recent games, from 1 to 40")
			return nil
		}
		n = parsed
	}

	lines, err := manager.LastN(n)
	if err != nil {
		if errors.Is(err, history.ErrBadLastCount) {
			fmt.Fprintln(that.out, "Enter the number of recent games, from 1 to 40")
			return nil
		}
		return err
	}

	if len(lines) == 0 {
		fmt.Fprintln(that.out, "The match history is still empty.")
		return nil
	}

	if len(lines) == 1 {
		that.printLines("--- Last game ---", lines)
	} else {
		that.printLines(fmt.Sprintf("--- Last %d games ---", len(lines)), lines)
	}
	return nil
}

func (that *historyService) printWinRate(manager *history.Manager, arg string) error {
	rate, err := manager.WinRate(strings.ToLower(arg))
	if err != nil {
		if errors.Is(err, history.ErrUnknownMode) {
			fmt.Fprintln(that.out, "Specify a game mode: bot or pvp")
			return nil
		}
		return err
	}

	if rate.Games == 0 {
		fmt.Fprintf(that.out, "No statistics for mode %s yet.\n", rate.Mode)
		return nil
	}

	opponent := "Player(O)"
	if rate.Mode == history.ModeBot {
		opponent = "Bot(O)"
	}
	fmt.Fprintf(that.out, "Win rate | mode: %s | Player(X) %.1f%% | %s %.1f%% | Draws %.1f%%\n",
		rate.Mode, rate.WinsX, opponent, rate.WinsO, rate.Draws)
	return nil
}

func (that *historyService) printFastest(manager *history.Manager) error {
	record, err := manager.FastestGame()
	if err != nil {
		if errors.Is(err, history.ErrEmptyHistory) {
			fmt.Fprintln(that.out, "The match history is still empty.")
			return nil
		}
		return err
	}

	fmt.Fprintf(that.out, "Fewest moves on record. Date: %s. Total %d moves\n",
		record.PlayedAt.Format(history.TimeLayout), record.Moves)
	return nil
}

func (that *historyService) printByDate(manager *history.Manager, arg string) {
	if arg == "" {
		fmt.Fprintln(that.out, "Specify a date as DD.MM.YYYY")
		return
	}

	records := manager.ByDate(arg)
	if len(records) == 0 {
		fmt.Fprintf(that.out, "No games found on %s.\n", arg)
		return
	}

	that.printRecords(fmt.Sprintf("---------- Games on %s ----------", arg), records)
}

func (that *historyService) remove(manager *history.Manager, arg string) error {
	if err := manager.Remove(arg); err != nil {
		if errors.Is(err, history.ErrRemoveNotConfirmed) {
			fmt.Fprintln(that.out, `If you are sure you want to delete the history file, add the word "delete"`)
			return nil
		}
		return err
	}

	fmt.Fprintln(that.out, "The match history file was deleted")
	return nil
}
