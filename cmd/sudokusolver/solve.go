package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/CorruptedArk/sudoku-solver-go/logger"
	"github.com/CorruptedArk/sudoku-solver-go/puzzle"
)

var (
	outFile    string
	maxGuesses int
	seed       int64
)

// runSolve reads the named puzzle file, solves it, prints the
// final board, and optionally appends it to the output file.  An
// unsolvable puzzle is a normal outcome, not a command failure.
func runSolve(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	board, err := puzzle.Parse(string(text))
	if err != nil {
		return fmt.Errorf("%s: %v", args[0], err)
	}

	opts := puzzle.SolveOptions{MaxGuessesPerRoll: maxGuesses}
	if seed != 0 {
		opts.Rand = rand.New(rand.NewSource(seed))
	}
	start := time.Now()
	result := puzzle.Solve(board, opts)
	log := logger.Logger()
	log.Info().
		Bool("solved", result.Solved).
		Int("guesses", result.Guesses).
		Int("rerolls", result.Rerolls).
		Dur("elapsed", time.Since(start)).
		Msg("solving finished")

	fmt.Printf("Done... Solved: %v\n", result.Solved)
	if !result.Solved {
		fmt.Println("This puzzle is either unsolvable or infeasible to solve in reasonable time")
	}
	fmt.Print(result.Grid.String())

	if outFile != "" {
		if err := appendBoard(result.Grid, outFile); err != nil {
			return fmt.Errorf("couldn't write solution file: %v", err)
		}
	}
	return nil
}

// appendBoard appends the pretty-printed board to the named file,
// creating it if needed.
func appendBoard(g *puzzle.Grid, name string) error {
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := g.Write(f); err != nil {
		return err
	}
	_, err = f.WriteString("\n")
	return err
}
