package board

import (
	"fmt"
	"strings"
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Board is an immutable rectangular grid of cells with exactly one probe,
// the covered cell whose safety is under query.
type Board struct {
	Width, Height int
	Cells         []Cell
	probe         Point
}

// New validates a flat row-major grid and locates its probe.
func New(width int, cells []Cell) (*Board, error) {
	if width <= 0 || len(cells) == 0 || len(cells)%width != 0 {
		return nil, ConfigError{"board must be a non-empty rectangular grid"}
	}
	b := &Board{
		Width:  width,
		Height: len(cells) / width,
		Cells:  cells,
	}
	probes := 0
	for i, c := range cells {
		if c < Covered || c > 8 {
			return nil, ConfigError{fmt.Sprintf(
				"invalid cell value %d at %d:%d", c, i%width, i/width,
			)}
		}
		if c == Probe {
			b.probe = Point{X: i % width, Y: i / width}
			probes++
		}
	}
	if probes == 0 {
		return nil, ConfigError{"board has no probe cell"}
	}
	if probes > 1 {
		return nil, ConfigError{fmt.Sprintf("board has %d probe cells, want exactly 1", probes)}
	}
	return b, nil
}

// Parse reads a board from its text form: one row per line, cells as
// whitespace-separated tokens.
func Parse(s string) (*Board, error) {
	var (
		width int
		cells []Cell
	)
	for i, line := range strings.Split(strings.TrimSpace(s), "\n") {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			return nil, ParseError{Line: i + 1, message: "empty row"}
		}
		if i == 0 {
			width = len(tokens)
		} else if len(tokens) != width {
			return nil, ParseError{Line: i + 1, message: fmt.Sprintf(
				"row has %d cells, want %d", len(tokens), width,
			)}
		}
		for _, token := range tokens {
			c, err := ParseCell(token)
			if err != nil {
				return nil, ParseError{Line: i + 1, message: err.Error()}
			}
			cells = append(cells, c)
		}
	}
	return New(width, cells)
}

func (b *Board) At(x, y int) Cell {
	return b.Cells[y*b.Width+x]
}

// Probe returns the location of the probe cell.
func (b *Board) Probe() Point {
	return b.probe
}

func (b *Board) IsMine(x, y int) bool {
	return b.At(x, y) == Mine
}

// IsCovered reports whether the cell's mine status is unknown. The probe
// counts as covered for clue arithmetic.
func (b *Board) IsCovered(x, y int) bool {
	c := b.At(x, y)
	return c == Covered || c == Probe
}

// Neighbours returns every in-bounds cell 8-adjacent to x:y, never the cell
// itself. Out-of-range coordinates are a caller bug and panic on indexing.
func (b *Board) Neighbours(x, y int) []Point {
	ns := make([]Point, 0, 8)
	for dy := -1; dy <= +1; dy++ {
		for dx := -1; dx <= +1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= b.Width || yy < 0 || yy >= b.Height {
				continue
			}
			ns = append(ns, Point{X: xx, Y: yy})
		}
	}
	return ns
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.Height {
		for x := range b.Width {
			if x > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(b.At(x, y).String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
