package main

import (
	"errors"
	"io"
	"net/http"
	"slices"

	"github.com/vancomm/minesweeper-probe/internal/board"
	"github.com/vancomm/minesweeper-probe/internal/decide"
	"github.com/vancomm/minesweeper-probe/internal/propagate"
)

// maxBoardSize caps the request body; boards are tiny, anything bigger is
// not a board.
const maxBoardSize = 1 << 20

type CheckParams struct {
	Engine string `schema:"engine"`
}

type InferredCell struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	Safe bool `json:"safe"`
}

type CheckResponse struct {
	Verdict  string         `json:"verdict"`
	Inferred []InferredCell `json:"inferred,omitempty"`
}

func handleStatus(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// handleCheck parses the board text in the request body and reports the
// probe verdict. The `engine` query param selects the strategy: `prop`
// (default) for propagation only, `sat` for the exact SAT check, `auto` for
// propagation with a SAT fallback.
func handleCheck(w http.ResponseWriter, r *http.Request) {
	var params CheckParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, errorBody(err))
		return
	}

	text, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBoardSize))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, errorBody(err))
		return
	}

	b, err := board.Parse(string(text))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, errorBody(err))
		return
	}

	var res CheckResponse
	switch params.Engine {
	case "", "prop":
		inferred := propagate.Run(b)
		res.Verdict = inferred.Verdict(b.Probe()).String()
		res.Inferred = collectInferred(inferred)
	case "sat":
		v, err := decide.Check(b, oracle)
		if err != nil {
			sendVerdictError(w, err)
			return
		}
		res.Verdict = v.String()
	case "auto":
		v, err := decide.Resolve(b, oracle)
		if err != nil {
			sendVerdictError(w, err)
			return
		}
		res.Verdict = v.String()
	default:
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, map[string]string{
			"error": "unknown engine " + params.Engine + ", want prop, sat or auto",
		})
		return
	}

	sendJSONOrLog(w, res)
}

func sendVerdictError(w http.ResponseWriter, err error) {
	if errors.Is(err, decide.ErrInconsistent) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	} else {
		w.WriteHeader(http.StatusInternalServerError)
	}
	sendJSONOrLog(w, errorBody(err))
}

func collectInferred(inferred propagate.Inference) []InferredCell {
	cells := make([]InferredCell, 0, len(inferred))
	for p, safe := range inferred {
		cells = append(cells, InferredCell{X: p.X, Y: p.Y, Safe: safe})
	}
	slices.SortFunc(cells, func(a, b InferredCell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return cells
}
