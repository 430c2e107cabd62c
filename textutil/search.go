package textutil

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxLineSize bounds a single line read by SearchFile.
const maxLineSize = 1 << 20

// Match is a line that contained the searched pattern.
type Match struct {
	Line int    `json:"line"` // 0-based line number
	Text string `json:"text"` // line content with surrounding whitespace trimmed
}

// String renders the match the way FindInFile prints it: line numbers up to
// 99 get a leading space, larger ones are printed at their natural width.
func (m Match) String() string {
	if m.Line <= 99 {
		return fmt.Sprintf(" %d %s", m.Line, m.Text)
	}
	return fmt.Sprintf("%d %s", m.Line, m.Text)
}

// SearchFile returns the lines of filename that contain pattern, compared
// case-insensitively, in file order.
func SearchFile(pattern, filename string) ([]Match, error) {
	f, err := openFile(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	matches, err := searchLines(f, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, filename, err)
	}
	return matches, nil
}

func searchLines(r io.Reader, pattern string) ([]Match, error) {
	lower := cases.Lower(language.Und)
	needle := lower.String(pattern)

	var matches []Match
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanUniversalLines)
	for n := 0; scanner.Scan(); n++ {
		line := scanner.Text()
		if strings.Contains(lower.String(line), needle) {
			matches = append(matches, Match{Line: n, Text: strings.TrimSpace(line)})
		}
	}
	return matches, scanner.Err()
}

// scanUniversalLines is a bufio.SplitFunc that ends a line at "\n", "\r\n"
// or a lone "\r". The terminator is not part of the token.
func scanUniversalLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// a trailing '\r' may be the first half of "\r\n"
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// FprintMatches writes every match of pattern in filename to w, one per line.
func FprintMatches(w io.Writer, pattern, filename string) error {
	matches, err := SearchFile(pattern, filename)
	if err != nil {
		return err
	}
	for _, m := range matches {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}
	return nil
}

// FindInFile prints every line of filename containing pattern, ignoring
// case, prefixed by its 0-based line number.
func FindInFile(pattern, filename string) error {
	return FprintMatches(os.Stdout, pattern, filename)
}
