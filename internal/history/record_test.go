package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_String(t *testing.T) {
	// Given: a finished bot round
	record := Record{
		PlayedAt:  time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC),
		Mode:      ModeBot,
		BoardSize: 3,
		Moves:     7,
		Outcome:   OutcomeX,
	}

	// Then: it serializes into the one-line log format
	require.Equal(t, "[15.01.2025 14:30] Mode: bot | Board: 3x3 | Moves: 7 | Result: X", record.String())
}

func TestParseRecord(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		record := Record{
			PlayedAt:  time.Date(2025, 3, 2, 9, 5, 0, 0, time.UTC),
			Mode:      ModePVP,
			BoardSize: 4,
			Moves:     16,
			Outcome:   OutcomeDraw,
		}

		parsed, ok := ParseRecord(record.String())

		require.True(t, ok)
		require.Equal(t, record, parsed)
	})

	t.Run("Rejects malformed lines", func(t *testing.T) {
		for _, line := range []string{
			"",
			"not a record",
			"[15.01.2025 14:30] Mode: chess | Board: 3x3 | Moves: 7 | Result: X",
			"[15.01.2025 14:30] Mode: bot | Board: 3x3 | Moves: 7 | Result: Q",
			"[yesterday] Mode: bot | Board: 3x3 | Moves: 7 | Result: X",
		} {
			_, ok := ParseRecord(line)
			assert.False(t, ok, "line %q", line)
		}
	})
}
