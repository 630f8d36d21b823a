package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseDigits reads a grid where each line is one row and each character is
// one cell's cost in the range 0..9. Blank lines and surrounding whitespace
// are ignored. A character outside '0'..'9' yields ErrBadCell wrapped with
// its position; shape problems yield the NewGrid errors.
func ParseDigits(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}

	return ParseLines(lines)
}

// ParseLines is ParseDigits over lines already split.
func ParseLines(lines []string) (*Grid, error) {
	values := make([][]int, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for col, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, ch, len(values), col)
			}
			row = append(row, int(ch-'0'))
		}
		values = append(values, row)
	}

	return NewGrid(values)
}
