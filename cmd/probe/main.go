package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-probe/internal/board"
	"github.com/vancomm/minesweeper-probe/internal/cnf"
	"github.com/vancomm/minesweeper-probe/internal/decide"
	"github.com/vancomm/minesweeper-probe/internal/propagate"
)

var log = logrus.New()

const exampleBoard = `_ _ 2 _ 3 _
2 _ _ * * 3
1 1 2 4 _ 3
1 ? 3 4 _ 2
2 * * * _ 3
_ 3 3 3 * *`

var (
	satMode    bool
	fullMode   bool
	dumpDimacs bool
)

func init() {
	flag.BoolVar(&satMode, "sat", false,
		"encode the probe-mine-free assumption and print SAT/UNSAT")
	flag.BoolVar(&fullMode, "full", false,
		"fall back to the SAT oracle when propagation is inconclusive")
	flag.BoolVar(&dumpDimacs, "dimacs", false,
		"print the encoded formula in DIMACS format and exit")
}

func main() {
	flag.Parse()

	fmt.Println("A board consists of `_` (covered), `*` (mine), `s` (safe), `?` (probe) and clue cells 0-8.")
	fmt.Println("Enter a board with a single probe (ending with EOF), or an empty string to use the example:")

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal("unable to read stdin: ", err)
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		text = exampleBoard
		fmt.Println("Example board:")
		fmt.Println(text)
	}

	b, err := board.Parse(text)
	if err != nil {
		log.Fatal("invalid board: ", err)
	}

	fmt.Println()

	switch {
	case dumpDimacs:
		f, err := cnf.Encode(b, false)
		if err != nil {
			log.Fatal("unable to encode board: ", err)
		}
		if err := f.Dimacs(os.Stdout); err != nil {
			log.Fatal("unable to write formula: ", err)
		}
	case satMode:
		d, err := decide.Solve(b, decide.Gophersat{})
		if err != nil {
			log.Fatal("unable to decide probe: ", err)
		}
		fmt.Println(d)
	case fullMode:
		v, err := decide.Resolve(b, decide.Gophersat{})
		if err != nil {
			log.Fatal("unable to decide probe: ", err)
		}
		fmt.Println(v)
	default:
		fmt.Println(propagate.Check(b))
	}
}
