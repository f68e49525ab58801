package decide

import (
	"errors"

	"github.com/crillab/gophersat/solver"

	"github.com/vancomm/minesweeper-probe/internal/cnf"
)

type Decision int8

const (
	Unsat Decision = iota
	Sat
)

func (d Decision) String() string {
	if d == Sat {
		return "SAT"
	}
	return "UNSAT"
}

// An Oracle answers whether a CNF formula is satisfiable. It must never
// guess: a solver that cannot reach an answer returns an error instead.
type Oracle interface {
	Solve(f *cnf.Formula) (Decision, error)
}

// Gophersat is the default Oracle, backed by the gophersat CDCL solver.
type Gophersat struct{}

// [Gophersat] implements [Oracle]
func (Gophersat) Solve(f *cnf.Formula) (Decision, error) {
	clauses := make([][]int, len(f.Clauses))
	for i, clause := range f.Clauses {
		clauses[i] = clause
	}
	pb := solver.ParseSlice(clauses)
	switch s := solver.New(pb); s.Solve() {
	case solver.Sat:
		return Sat, nil
	case solver.Unsat:
		return Unsat, nil
	default:
		return Unsat, errors.New("solver returned an indeterminate status")
	}
}
