package grid

import (
	"fmt"
	"strings"
)

// ParseCharGrid splits text into lines of equal width and returns the shape
// together with the cells in row-major order. A trailing newline and CRLF line
// endings are accepted.
//
// Returns ErrEmptyGrid if there is no non-empty first line and ErrRaggedGrid if
// any line width differs from the first.
// Complexity: O(W×H).
func ParseCharGrid(text string) (Shape, []rune, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return Shape{}, nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	width := len([]rune(lines[0]))
	if width == 0 {
		return Shape{}, nil, ErrEmptyGrid
	}
	cells := make([]rune, 0, width*len(lines))
	for i, line := range lines {
		row := []rune(line)
		if len(row) != width {
			return Shape{}, nil, fmt.Errorf("%w: line %d: expected %d, got %d (%q)",
				ErrRaggedGrid, i+1, width, len(row), line)
		}
		cells = append(cells, row...)
	}

	return Shape{Width: width, Height: len(lines)}, cells, nil
}

// FormatCharGrid renders cells row by row, Width runes per line, each line
// terminated by a newline. A short final row is emitted as-is.
func FormatCharGrid(s Shape, cells []rune) string {
	if s.Width <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(cells) + len(cells)/s.Width + 1)
	for i := 0; i < len(cells); i += s.Width {
		end := i + s.Width
		if end > len(cells) {
			end = len(cells)
		}
		b.WriteString(string(cells[i:end]))
		b.WriteByte('\n')
	}

	return b.String()
}
