package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader - collects raw move tokens and answers from the player.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Prompt - prints a label and reads one trimmed line. ok is false when the
// input stream is closed.
func (that *Reader) Prompt(label string) (string, bool) {
	fmt.Fprint(that.out, label)

	if !that.scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(that.scanner.Text()), true
}

// Confirm - a yes/no prompt; anything but y or yes counts as no.
func (that *Reader) Confirm(label string) bool {
	answer, ok := that.Prompt(label)
	if !ok {
		return false
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
