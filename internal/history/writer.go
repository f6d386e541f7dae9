package history

import (
	"fmt"
	"log/slog"
	"os"
)

// Writer - appends finished rounds to the flat match-log file. Write
// failures are logged and swallowed: losing one history line must not
// interrupt play.
type Writer struct {
	logger *slog.Logger
	path   string
}

func NewWriter(logger *slog.Logger, path string) *Writer {
	return &Writer{
		logger: logger.With("component", "history"),
		path:   path,
	}
}

func (that *Writer) Append(record Record) {
	file, err := os.OpenFile(that.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		that.logger.Error("could not open history file", "path", that.path, "error", err)
		return
	}
	defer file.Close()

	if _, err = fmt.Fprintln(file, record.String()); err != nil {
		that.logger.Error("could not append history record", "path", that.path, "error", err)
	}
}
