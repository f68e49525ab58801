package cnf

import (
	"fmt"
	"io"
)

// A Clause is a disjunction of signed literals. A positive literal asserts
// the variable true ("is a mine"), a negative one asserts it false.
type Clause []int

// A Formula is a conjunction of clauses over variables 1..NumVars.
type Formula struct {
	NumVars int
	Clauses []Clause
}

// Dimacs writes the formula in the DIMACS CNF exchange format.
func (f *Formula) Dimacs(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", f.NumVars, len(f.Clauses)); err != nil {
		return err
	}
	for _, clause := range f.Clauses {
		for _, lit := range clause {
			if _, err := fmt.Fprintf(w, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "0"); err != nil {
			return err
		}
	}
	return nil
}
