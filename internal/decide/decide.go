// Package decide answers probe queries exactly by handing the board's full
// constraint set to a SAT oracle, one satisfiability query per probe
// polarity.
package decide

import (
	"errors"
	"fmt"

	"github.com/vancomm/minesweeper-probe/internal/board"
	"github.com/vancomm/minesweeper-probe/internal/cnf"
	"github.com/vancomm/minesweeper-probe/internal/propagate"
)

// ErrInconsistent marks a board whose constraints admit no completion at
// all, regardless of the probe's status.
var ErrInconsistent = errors.New("board admits no completion under either probe assumption")

// Solve asks the oracle whether some completion of the board leaves the
// probe mine-free. Unsat means the probe is guaranteed a mine; Sat only
// establishes that safety is possible, not certain.
func Solve(b *board.Board, o Oracle) (Decision, error) {
	f, err := cnf.Encode(b, false)
	if err != nil {
		return Unsat, err
	}
	return o.Solve(f)
}

// Check tests both probe polarities and combines the answers into the same
// three-way verdict the propagation engine produces. An oracle failure
// surfaces as Unknown with a non-nil error, never as a verdict.
func Check(b *board.Board, o Oracle) (propagate.Verdict, error) {
	mineFree, err := assume(b, o, false)
	if err != nil {
		return propagate.Unknown, err
	}
	mined, err := assume(b, o, true)
	if err != nil {
		return propagate.Unknown, err
	}
	switch {
	case mineFree == Unsat && mined == Unsat:
		return propagate.Unknown, ErrInconsistent
	case mineFree == Unsat:
		return propagate.Unsafe, nil
	case mined == Unsat:
		return propagate.Safe, nil
	default:
		return propagate.Unknown, nil
	}
}

// Resolve runs the fast propagation engine first and falls back to the SAT
// oracle only when the probe remains undetermined.
func Resolve(b *board.Board, o Oracle) (propagate.Verdict, error) {
	if v := propagate.Check(b); v != propagate.Unknown {
		return v, nil
	}
	return Check(b, o)
}

func assume(b *board.Board, o Oracle, probeIsMine bool) (Decision, error) {
	f, err := cnf.Encode(b, probeIsMine)
	if err != nil {
		return Unsat, err
	}
	d, err := o.Solve(f)
	if err != nil {
		return Unsat, fmt.Errorf("oracle failed on probeIsMine=%t: %w", probeIsMine, err)
	}
	return d, nil
}
