// Command sudokusolver solves sudoku puzzles from text files.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is the release version of the program.
const Version = "1.0.0"

const about = `sudokusolver solves sudoku puzzles from text files

Sudokus are entered through plain text files with periods for empty
spaces and optional line separators.  Whitespace is ignored.

Example:

  -------------------------
  | 8 . . | . . . | . . . |
  | . . 3 | 6 . . | . . . |
  | . 7 . | . 9 . | 2 . . |
  -------------------------
  | . 5 . | . . 7 | . . . |
  | . . . | . 4 5 | 7 . . |
  | . . . | 1 . . | . 3 . |
  -------------------------
  | . . 1 | . . . | . 6 8 |
  | . . 8 | 5 . . | . 1 . |
  | . 9 . | . . . | 4 . . |
  -------------------------
`

var debug bool

func main() {
	root := &cobra.Command{
		Use:     "sudokusolver FILE",
		Short:   "solve a sudoku puzzle from a text file",
		Long:    about,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
		RunE:          runSolve,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log solving progress")
	root.Flags().StringVarP(&outFile, "out", "o", "", "name of optional solution file output")
	root.Flags().IntVarP(&maxGuesses, "max", "m", 500, "maximum number of guesses per roll")
	root.Flags().Int64Var(&seed, "seed", 0, "random seed for guess ordering (0 means time-seeded)")
	root.AddCommand(storageCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sudokusolver: %v\n", err)
		os.Exit(1)
	}
}
