package txf

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Lines is the ordered sequence of trimmed lines of a statement text.
type Lines []string

// SplitLines splits text into lines, trimming leading and trailing white spaces.
//
// Order and blank lines are preserved. An empty text has no lines.
func SplitLines(text string) Lines {
	if text == "" {
		return Lines{}
	}
	raw := strings.Split(text, "\n")
	lines := make(Lines, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// ReadLines reads r until EOF and splits it into Lines.
func ReadLines(r io.Reader) (Lines, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read statement text")
	}
	return SplitLines(string(content)), nil
}

// Len returns the number of lines.
func (l Lines) Len() int { return len(l) }

// At returns the line at index i (0-based) or "" if i is out of range.
func (l Lines) At(i int) string {
	if i < 0 || i >= len(l) {
		return ""
	}
	return l[i]
}
