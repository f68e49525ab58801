package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleBoard = `_ _ 2 _ 3 _
2 _ _ * * 3
1 1 2 4 _ 3
1 ? 3 4 _ 2
2 * * * _ 3
_ 3 3 3 * *`

func TestParse(t *testing.T) {
	b, err := Parse(exampleBoard)
	require.NoError(t, err)

	assert.Equal(t, 6, b.Width)
	assert.Equal(t, 6, b.Height)
	assert.Equal(t, Point{X: 1, Y: 3}, b.Probe())

	assert.Equal(t, Covered, b.At(0, 0))
	assert.Equal(t, Cell(2), b.At(2, 0))
	assert.Equal(t, Mine, b.At(3, 1))
	assert.Equal(t, Probe, b.At(1, 3))

	assert.True(t, b.IsMine(4, 1))
	assert.False(t, b.IsMine(1, 3))
	assert.True(t, b.IsCovered(0, 0))
	assert.True(t, b.IsCovered(1, 3), "the probe counts as covered")
	assert.False(t, b.IsCovered(2, 0))
}

func TestParseRectangular(t *testing.T) {
	b, err := Parse("_ ? _ _\n1 2 1 0")
	require.NoError(t, err)
	assert.Equal(t, 4, b.Width)
	assert.Equal(t, 2, b.Height)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{"bad token", "? x\n1 1"},
		{"clue out of range", "? 9\n1 1"},
		{"negative clue", "? -1\n1 1"},
		{"ragged rows", "? _ _\n1 1"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.text)
			var parseErr ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no probe", "_ _\n1 1"},
		{"two probes", "? ?\n1 1"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.text)
			var configErr ConfigError
			assert.ErrorAs(t, err, &configErr)
		})
	}
}

func TestNeighbours(t *testing.T) {
	b, err := Parse(exampleBoard)
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"top-left corner", 0, 0, 3},
		{"top-right corner", 5, 0, 3},
		{"bottom-left corner", 0, 5, 3},
		{"bottom-right corner", 5, 5, 3},
		{"left edge", 0, 2, 5},
		{"top edge", 3, 0, 5},
		{"interior", 2, 3, 8},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ns := b.Neighbours(test.x, test.y)
			assert.Len(t, ns, test.want)
			assert.NotContains(t, ns, Point{X: test.x, Y: test.y})
			for _, p := range ns {
				assert.True(t, 0 <= p.X && p.X < b.Width)
				assert.True(t, 0 <= p.Y && p.Y < b.Height)
			}
		})
	}
}

func TestNeighboursSymmetric(t *testing.T) {
	b, err := Parse(exampleBoard)
	require.NoError(t, err)

	for y := range b.Height {
		for x := range b.Width {
			for _, p := range b.Neighbours(x, y) {
				assert.Contains(t, b.Neighbours(p.X, p.Y), Point{X: x, Y: y},
					"%d:%d is a neighbour of %d:%d but not vice versa", x, y, p.X, p.Y)
			}
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	b, err := Parse(exampleBoard)
	require.NoError(t, err)

	again, err := Parse(b.String())
	require.NoError(t, err)
	assert.Equal(t, b.Cells, again.Cells)
	assert.Equal(t, b.Probe(), again.Probe())
}

func TestParseCell(t *testing.T) {
	for _, token := range []string{"x", "9", "-1", "", "?s"} {
		_, err := ParseCell(token)
		assert.Error(t, err, "token %q", token)
	}
	c, err := ParseCell("8")
	require.NoError(t, err)
	assert.Equal(t, Cell(8), c)
	assert.True(t, c.IsClue())
	assert.False(t, Probe.IsClue())
}
