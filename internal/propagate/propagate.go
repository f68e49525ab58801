// Package propagate resolves probe queries by iterating two local deduction
// rules over the board's clue cells until a fixpoint:
//
//   - a clue already touching its full mine count makes every remaining
//     covered neighbour safe;
//   - a clue that needs every remaining covered neighbour to be a mine makes
//     all of them mines.
//
// The rules are sound but incomplete, so the answer may stay Unknown even
// when the clue set fully determines the probe.
package propagate

import (
	"github.com/vancomm/minesweeper-probe/internal/board"
)

type Verdict int8

const (
	Unknown Verdict = iota
	Safe
	Unsafe
)

func (v Verdict) String() string {
	switch v {
	case Safe:
		return "safe"
	case Unsafe:
		return "unsafe"
	default:
		return "unknown"
	}
}

// Inference maps covered cells to their deduced status, true meaning safe.
// An entry is written at most once per run and never reverted.
type Inference map[board.Point]bool

// Verdict reads the probe's entry out of an inference map.
func (inf Inference) Verdict(probe board.Point) Verdict {
	safe, ok := inf[probe]
	switch {
	case !ok:
		return Unknown
	case safe:
		return Safe
	default:
		return Unsafe
	}
}

// Run iterates the deduction rules until a whole round infers nothing new
// and returns the accumulated inference map. Each round scans every clue
// cell once; inferences made during a round are committed only after the
// scan, so a round's deductions all work from the same committed state.
//
// Every productive round commits at least one new entry and entries are
// never overwritten, so the loop halts within one round per covered cell.
func Run(b *board.Board) Inference {
	inferred := make(Inference)
	for {
		pending := make(Inference)
		for y := range b.Height {
			for x := range b.Width {
				clue := b.At(x, y)
				if !clue.IsClue() {
					continue
				}

				mines := 0
				var covered []board.Point
				for _, p := range b.Neighbours(x, y) {
					if b.IsMine(p.X, p.Y) {
						mines++
						continue
					}
					if !b.IsCovered(p.X, p.Y) {
						continue
					}
					if safe, ok := inferred[p]; ok {
						if !safe {
							mines++
						}
						continue
					}
					covered = append(covered, p)
				}
				if len(covered) == 0 {
					continue
				}

				switch int(clue) {
				case mines:
					// every mine accounted for, the rest are clear
					for _, p := range covered {
						if _, ok := pending[p]; !ok {
							pending[p] = true
						}
					}
				case mines + len(covered):
					// only mines can fill the remaining cells
					for _, p := range covered {
						if _, ok := pending[p]; !ok {
							pending[p] = false
						}
					}
				}
			}
		}

		changed := false
		for p, safe := range pending {
			if _, ok := inferred[p]; !ok {
				inferred[p] = safe
				changed = true
			}
		}
		if !changed {
			return inferred
		}
	}
}

// Check runs propagation and reports the probe's verdict.
func Check(b *board.Board) Verdict {
	return Run(b).Verdict(b.Probe())
}
