package history

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	ModeBot = "bot"
	ModePVP = "pvp"

	OutcomeX    = "X"
	OutcomeO    = "O"
	OutcomeDraw = "draw"
)

// TimeLayout - the timestamp format used in log lines and date searches.
const TimeLayout = "02.01.2006 15:04"

// Record - one finished round as persisted in the match log.
type Record struct {
	PlayedAt  time.Time
	Mode      string
	BoardSize int
	Moves     int
	Outcome   string
}

func (that Record) String() string {
	return fmt.Sprintf("[%s] Mode: %s | Board: %dx%d | Moves: %d | Result: %s",
		that.PlayedAt.Format(TimeLayout), that.Mode, that.BoardSize, that.BoardSize, that.Moves, that.Outcome)
}

var recordPattern = regexp.MustCompile(
	`^\[(?P<date>[^\]]+)\] Mode: (?P<mode>bot|pvp) \| Board: (?P<size>\d)x\d \| Moves: (?P<moves>\d+) \| Result: (?P<result>X|O|draw)$`)

// ParseRecord - reads one log line back into a Record. ok is false for
// lines that do not match the format so callers can skip them.
func ParseRecord(line string) (Record, bool) {
	match := recordPattern.FindStringSubmatch(line)
	if match == nil {
		return Record{}, false
	}

	playedAt, err := time.Parse(TimeLayout, match[recordPattern.SubexpIndex("date")])
	if err != nil {
		return Record{}, false
	}

	size, _ := strconv.Atoi(match[recordPattern.SubexpIndex("size")])
	moves, _ := strconv.Atoi(match[recordPattern.SubexpIndex("moves")])

	return Record{
		PlayedAt:  playedAt,
		Mode:      match[recordPattern.SubexpIndex("mode")],
		BoardSize: size,
		Moves:     moves,
		Outcome:   match[recordPattern.SubexpIndex("result")],
	}, true
}
