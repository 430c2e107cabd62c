package textutil

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Level indexes the fixed severity vocabulary TRACE..ERROR.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// DefaultLevel is used when no level is passed to the log functions.
const DefaultLevel = LevelInfo

// noLevel is rendered for levels outside the vocabulary.
const noLevel = "None"

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}

// String returns the level label, or "None" when l is out of range.
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return noLevel
	}
	return levelNames[l]
}

// ParseLevel returns the level named name, ignoring case.
func ParseLevel(name string) (Level, error) {
	for i, label := range levelNames {
		if strings.EqualFold(name, label) {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// FormatLog renders "{timestamp} [{processID}] [{LEVEL}] {message}" without a
// trailing newline. Only the first of level is used; it defaults to INFO.
func FormatLog(message string, processID int, timestamp string, level ...Level) string {
	l := DefaultLevel
	if len(level) > 0 {
		l = level[0]
	}
	return fmt.Sprintf("%s [%d] [%s] %s", timestamp, processID, l, message)
}

// FprintLog writes the formatted log line and a newline to w.
func FprintLog(w io.Writer, message string, processID int, timestamp string, level ...Level) error {
	_, err := fmt.Fprintln(w, FormatLog(message, processID, timestamp, level...))
	return err
}

// PrintLog writes the formatted log line to standard output. Write errors
// are dropped; use FprintLog to observe them.
func PrintLog(message string, processID int, timestamp string, level ...Level) {
	_ = FprintLog(os.Stdout, message, processID, timestamp, level...)
}
