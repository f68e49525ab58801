package board

import (
	"fmt"
	"strconv"
)

type Cell int8

const (
	Covered Cell = -4
	Mine    Cell = -3
	Safe    Cell = -2
	Probe   Cell = -1
	// 0 to 8 for a revealed cell with the given number of mined neighbours
)

// IsClue reports whether the cell is a revealed number.
func (c Cell) IsClue() bool {
	return c >= 0
}

func (c Cell) String() string {
	switch {
	case c == Covered:
		return "_"
	case c == Mine:
		return "*"
	case c == Safe:
		return "s"
	case c == Probe:
		return "?"
	case 0 <= c && c <= 8:
		return strconv.Itoa(int(c))
	default:
		return "!"
	}
}

// ParseCell decodes a single board token: `_` covered, `*` mine, `s` safe,
// `?` probe, or a clue digit 0-8.
func ParseCell(token string) (Cell, error) {
	switch token {
	case "_":
		return Covered, nil
	case "*":
		return Mine, nil
	case "s":
		return Safe, nil
	case "?":
		return Probe, nil
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid cell token %q", token)
	}
	if n < 0 || n > 8 {
		return 0, fmt.Errorf("invalid clue %q: a cell has at most 8 mined neighbours", token)
	}
	return Cell(n), nil
}
