package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/CorruptedArk/sudoku-solver-go/puzzle"
	"github.com/CorruptedArk/sudoku-solver-go/storage"
)

/*

solving

*/

// A solveRequest asks the service to solve one board.  The board
// travels in the usual text form; the guess budget is optional.
type solveRequest struct {
	Puzzle     string `json:"puzzle"`
	MaxGuesses int    `json:"maxGuesses,omitempty"`
}

// A solveResponse reports the outcome of a solving run.  Values
// hold the final board in reading order, 0 for cells an unsolved
// run left unresolved.  Cached marks results served from the
// result cache instead of a fresh run.
type solveResponse struct {
	Solved    bool    `json:"solved"`
	Values    []int32 `json:"values"`
	Guesses   int32   `json:"guesses"`
	Rerolls   int32   `json:"rerolls"`
	ElapsedMs int64   `json:"elapsedMs"`
	Cached    bool    `json:"cached"`
}

// solveHandler is a POST handler that solves a posted board.
// The result cache is consulted first, so a board the service
// has solved before comes back without another run.  Fresh runs
// are recorded in the solve history, and solved ones go into the
// result cache.
func solveHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErrorJSON(w, http.StatusMethodNotAllowed, "use POST to solve a puzzle")
		return
	}
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, fmt.Sprintf("couldn't decode request: %v", err))
		return
	}
	board, err := puzzle.Parse(req.Puzzle)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, fmt.Sprintf("couldn't parse puzzle: %v", err))
		return
	}

	if sr := storage.LookupSolution(board.Signature()); sr != nil {
		log.Debug().Str("signature", sr.Signature).Msg("solve served from cache")
		writeJSON(w, http.StatusOK, solveResponse{
			Solved:    sr.Solved,
			Values:    sr.Solution,
			Guesses:   sr.Guesses,
			Rerolls:   sr.Rerolls,
			ElapsedMs: sr.Elapsed,
			Cached:    true,
		})
		return
	}

	start := time.Now()
	result := puzzle.Solve(board, puzzle.SolveOptions{MaxGuessesPerRoll: req.MaxGuesses})
	record := storage.NewSolveRecord(board, result, time.Since(start))
	record.Save()
	log.Info().
		Str("signature", record.Signature).
		Bool("solved", record.Solved).
		Int32("guesses", record.Guesses).
		Int32("rerolls", record.Rerolls).
		Msg("solving finished")

	writeJSON(w, http.StatusOK, solveResponse{
		Solved:    record.Solved,
		Values:    record.Solution,
		Guesses:   record.Guesses,
		Rerolls:   record.Rerolls,
		ElapsedMs: record.Elapsed,
	})
}

/*

library and history

*/

// A sampleInfo describes one library puzzle.
type sampleInfo struct {
	Name   string  `json:"name"`
	Values []int32 `json:"values"`
}

// samplesHandler lists the seeded puzzle library.
func samplesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorJSON(w, http.StatusMethodNotAllowed, "use GET to list samples")
		return
	}
	var samples []sampleInfo
	for _, name := range storage.ListPuzzles() {
		pe := storage.LoadPuzzle(name)
		samples = append(samples, sampleInfo{Name: pe.Name, Values: pe.Values})
	}
	writeJSON(w, http.StatusOK, samples)
}

// solvesHandler lists the most recent entries of the solve
// history, newest first.
func solvesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorJSON(w, http.StatusMethodNotAllowed, "use GET to list solve history")
		return
	}
	writeJSON(w, http.StatusOK, storage.RecentSolves(20))
}

/*

various low-level utilities

*/

// recoverWrap guards a handler against the panics the storage
// package uses for store failures, turning them into 500s.
func recoverWrap(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if e := recover(); e != nil {
				log.Error().Interface("cause", e).Str("path", r.URL.Path).Msg("handler panic")
				writeErrorJSON(w, http.StatusInternalServerError, fmt.Sprintf("storage failure: %v", e))
			}
		}()
		handler(w, r)
	}
}

// writeJSON sends a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("couldn't encode response")
	}
}

// writeErrorJSON sends an error message as a JSON response.
func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
