package history

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	defaultLastMatches = 5
	maxLastMatches     = 40

	removeConfirmWord = "delete"
)

var (
	ErrBadLastCount       = errors.New("last matches count must be from 1 to 40")
	ErrUnknownMode        = errors.New("unknown game mode, use bot or pvp")
	ErrEmptyHistory       = errors.New("history is empty or its format was not recognized")
	ErrRemoveNotConfirmed = errors.New("history removal requires the confirmation word \"delete\"")
)

// Manager - the read side of the match log: loads the file once and
// answers statistics queries over it. Raw lines are kept alongside the
// parsed records so dump-style queries show the file as it is.
type Manager struct {
	path    string
	lines   []string
	records []Record
}

func NewManager(path string) (*Manager, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperror.ErrHistoryNotFound
		}
		return nil, fmt.Errorf("could not open history file: %w", err)
	}
	defer file.Close()

	manager := &Manager{path: path}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		manager.lines = append(manager.lines, line)
		if record, ok := ParseRecord(line); ok {
			manager.records = append(manager.records, record)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read history file: %w", err)
	}

	return manager, nil
}

// All - every raw log line, oldest first.
func (that *Manager) All() []string {
	return that.lines
}

func (that *Manager) Draws() []Record {
	return that.filter(func(record Record) bool { return record.Outcome == OutcomeDraw })
}

// WinsBy - rounds won by the given mark, X or O.
func (that *Manager) WinsBy(mark string) []Record {
	return that.filter(func(record Record) bool { return record.Outcome == mark })
}

// ByDate - records whose timestamp starts with a DD.MM.YYYY prefix.
func (that *Manager) ByDate(prefix string) []Record {
	return that.filter(func(record Record) bool {
		return strings.HasPrefix(record.PlayedAt.Format(TimeLayout), prefix)
	})
}

func (that *Manager) filter(keep func(Record) bool) []Record {
	var out []Record
	for _, record := range that.records {
		if keep(record) {
			out = append(out, record)
		}
	}

	return out
}

// Stats - win and draw counts split per game mode.
type Stats struct {
	WinsXPVP int
	WinsXBot int
	WinsOPVP int
	WinsOBot int
	DrawsPVP int
	DrawsBot int
}

func (that Stats) WinsX() int { return that.WinsXPVP + that.WinsXBot }
func (that Stats) WinsO() int { return that.WinsOPVP + that.WinsOBot }
func (that Stats) Draws() int { return that.DrawsPVP + that.DrawsBot }
func (that Stats) Total() int { return that.WinsX() + that.WinsO() + that.Draws() }

func (that *Manager) Stats() Stats {
	var stats Stats
	for _, record := range that.records {
		isPVP := record.Mode == ModePVP
		switch {
		case record.Outcome == OutcomeX && isPVP:
			stats.WinsXPVP++
		case record.Outcome == OutcomeX:
			stats.WinsXBot++
		case record.Outcome == OutcomeO && isPVP:
			stats.WinsOPVP++
		case record.Outcome == OutcomeO:
			stats.WinsOBot++
		case isPVP:
			stats.DrawsPVP++
		default:
			stats.DrawsBot++
		}
	}

	return stats
}

// LastN - the last n raw lines, newest first. Zero falls back to the
// default of 5; anything outside [1, 40] is rejected.
func (that *Manager) LastN(n int) ([]string, error) {
	if n == 0 {
		n = defaultLastMatches
	}
	if n < 1 || n > maxLastMatches {
		return nil, ErrBadLastCount
	}

	count := min(n, len(that.lines))
	out := make([]string, 0, count)
	for i := len(that.lines) - 1; i >= len(that.lines)-count; i-- {
		out = append(out, that.lines[i])
	}

	return out, nil
}

// WinRate - the share of X wins, O wins and draws within one mode, in
// percent. Games is zero when the mode has no history yet.
type WinRate struct {
	Mode  string
	Games int
	WinsX float64
	WinsO float64
	Draws float64
}

func (that *Manager) WinRate(mode string) (WinRate, error) {
	if mode != ModeBot && mode != ModePVP {
		return WinRate{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	var winsX, winsO, draws int
	for _, record := range that.records {
		if record.Mode != mode {
			continue
		}
		switch record.Outcome {
		case OutcomeX:
			winsX++
		case OutcomeO:
			winsO++
		default:
			draws++
		}
	}

	total := winsX + winsO + draws
	if total == 0 {
		return WinRate{Mode: mode}, nil
	}

	return WinRate{
		Mode:  mode,
		Games: total,
		WinsX: 100 * float64(winsX) / float64(total),
		WinsO: 100 * float64(winsO) / float64(total),
		Draws: 100 * float64(draws) / float64(total),
	}, nil
}

// FastestGame - the record with the minimum move count.
func (that *Manager) FastestGame() (Record, error) {
	if len(that.records) == 0 {
		return Record{}, ErrEmptyHistory
	}

	fastest := that.records[0]
	for _, record := range that.records[1:] {
		if record.Moves < fastest.Moves {
			fastest = record
		}
	}

	return fastest, nil
}

// TotalMoves - the sum of move counts over every recorded round.
func (that *Manager) TotalMoves() int {
	var sum int
	for _, record := range that.records {
		sum += record.Moves
	}

	return sum
}

// TotalBoardArea - the sum of n² over every recorded round.
func (that *Manager) TotalBoardArea() int {
	var sum int
	for _, record := range that.records {
		sum += record.BoardSize * record.BoardSize
	}

	return sum
}

// Remove - deletes the log file, but only with the literal confirmation
// word so a stray command cannot wipe the history.
func (that *Manager) Remove(confirm string) error {
	if confirm != removeConfirmWord {
		return ErrRemoveNotConfirmed
	}

	if err := os.Remove(that.path); err != nil {
		return fmt.Errorf("could not remove history file: %w", err)
	}

	return nil
}
