// Package cnf translates a board's clue constraints into a boolean formula
// in conjunctive normal form, one variable per cell, true meaning the cell
// holds a mine.
package cnf

import (
	"fmt"
	"math/bits"
	"slices"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-probe/internal/board"
)

// ConsistencyError reports a board whose clues contradict their own
// neighbourhoods, e.g. a clue claiming more mines than it has covered
// neighbours left to supply them.
type ConsistencyError struct {
	message string
}

// [ConsistencyError] implements [error]
func (e ConsistencyError) Error() string {
	return e.message
}

type encoder struct {
	b       *board.Board
	seen    map[string]struct{}
	clauses []Clause
}

// varOf assigns each cell a stable variable id, row-major starting at 1.
func (e *encoder) varOf(p board.Point) int {
	return p.Y*e.b.Width + p.X + 1
}

// add normalizes a clause and drops it if an identical one was already
// emitted. Literals within a clause are unique by construction, so sorting
// them gives a canonical form.
func (e *encoder) add(clause Clause) {
	slices.Sort(clause)
	var sb strings.Builder
	for _, lit := range clause {
		sb.WriteString(strconv.Itoa(lit))
		sb.WriteString(",")
	}
	key := sb.String()
	if _, ok := e.seen[key]; ok {
		return
	}
	e.seen[key] = struct{}{}
	e.clauses = append(e.clauses, clause)
}

// encodeClue emits the constraint "exactly k of the covered neighbours are
// mines" for a single clue cell.
func (e *encoder) encodeClue(x, y int) error {
	clue := e.b.At(x, y)

	mines := 0
	var covered []board.Point
	for _, p := range e.b.Neighbours(x, y) {
		if e.b.IsMine(p.X, p.Y) {
			mines++
		} else if e.b.IsCovered(p.X, p.Y) {
			covered = append(covered, p)
		}
	}

	m := len(covered)
	if m > 8 {
		// 8-adjacency caps the neighbourhood; anything larger would blow
		// up the subset enumeration below
		return ConsistencyError{fmt.Sprintf(
			"clue at %d:%d has %d covered neighbours, the limit is 8", x, y, m,
		)}
	}
	k := int(clue) - mines
	if k < 0 || k > m {
		return ConsistencyError{fmt.Sprintf(
			"clue %d at %d:%d requires %d mines among %d covered neighbours",
			clue, x, y, k, m,
		)}
	}

	switch {
	case m == 0:
		// nothing left to constrain
	case k == 0:
		for _, p := range covered {
			e.add(Clause{-e.varOf(p)})
		}
	case k == m:
		for _, p := range covered {
			e.add(Clause{e.varOf(p)})
		}
	default:
		/*
		 * 0 < k < m. Enumerate every assignment to the covered
		 * neighbours and forbid each one whose mine count is not k,
		 * with a clause negating that exact combination. At most 2^m
		 * clauses of width m, and m <= 8 keeps that at 256.
		 */
		for mask := range 1 << m {
			if bits.OnesCount(uint(mask)) == k {
				continue
			}
			clause := make(Clause, m)
			for i, p := range covered {
				if mask&(1<<i) != 0 {
					clause[i] = -e.varOf(p)
				} else {
					clause[i] = e.varOf(p)
				}
			}
			e.add(clause)
		}
	}
	return nil
}

// Encode builds the CNF formula for a board under the given probe
// assumption: probeIsMine false asks "can the probe be mine-free", true asks
// the complement. Clauses are deduplicated and ordered by increasing width
// so unit clauses reach the solver first.
func Encode(b *board.Board, probeIsMine bool) (*Formula, error) {
	e := &encoder{
		b:    b,
		seen: make(map[string]struct{}),
	}

	probe := e.varOf(b.Probe())
	if probeIsMine {
		e.add(Clause{probe})
	} else {
		e.add(Clause{-probe})
	}

	for y := range b.Height {
		for x := range b.Width {
			if !b.At(x, y).IsClue() {
				continue
			}
			if err := e.encodeClue(x, y); err != nil {
				return nil, err
			}
		}
	}

	slices.SortStableFunc(e.clauses, func(a, b Clause) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return slices.Compare(a, b)
	})

	return &Formula{
		NumVars: b.Width * b.Height,
		Clauses: e.clauses,
	}, nil
}
