package puzzle

import (
	"math/rand"
	"time"

	"github.com/CorruptedArk/sudoku-solver-go/logger"
)

/*

Solver

The solver drives the elimination engine against successive
guesses: normalize the input, eliminate once, and if that stalls,
pull guess boards from an enumerator and eliminate each until one
resolves the board or the enumeration runs out.  A guess budget
bounds each roll; overrunning it rerolls - the counter resets and
a fresh enumerator reshuffles the cell order - so one unlucky
ordering can't pin the search in a barren corner of the space.

*/

// DefaultMaxGuesses is the number of guesses tried per roll
// before the enumeration order is reshuffled.
const DefaultMaxGuesses = 500

// SolveOptions configure a solve call.  The zero value gives the
// default guess budget and time-seeded randomness.
type SolveOptions struct {
	MaxGuessesPerRoll int        // guesses per roll before a reroll; <=0 means DefaultMaxGuesses
	Rand              *rand.Rand // randomness for guess ordering; nil means time-seeded
}

// A Result pairs the final board with its solved status.  The
// board of an unsolved result is the best-effort partial board of
// the last attempt, with leftover candidate sets intact.
type Result struct {
	Grid    *Grid
	Solved  bool
	Guesses int // guess boards attempted in total
	Rerolls int // times the enumeration order was reshuffled
}

// Solve attempts to solve a board with a mix of elimination and
// guessing.  The input board is never modified.  Unsolvable and
// budget-exhausted boards come back as normal unsolved Results;
// there is no error case.  A fixed input value outside 1-9 yields
// an immediate unsolved Result carrying the input unchanged.
func Solve(g *Grid, opts SolveOptions) Result {
	max := opts.MaxGuessesPerRoll
	if max <= 0 {
		max = DefaultMaxGuesses
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// normalize: empty cells get full candidate sets, and fixed
	// values are vetted before any solving is attempted
	board := g.Copy()
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			s := &board.cells[r][c]
			if s.fixed() {
				if s.val < 1 || s.val > SideLen {
					return Result{Grid: g.Copy()}
				}
				s.cands = nil
				continue
			}
			s.cands = newIntsetRange(SideLen)
		}
	}

	partial, solved := Eliminate(board)
	if solved {
		return Result{Grid: partial, Solved: true}
	}

	log := logger.Logger()
	gsr := newGuesser(partial, rng)
	final := partial
	guesses, total, rerolls := 0, 0, 0
	for hasGuess := true; !solved && hasGuess; {
		var temp *Grid
		temp, hasGuess = gsr.next()
		final, solved = Eliminate(temp)
		guesses++
		total++
		if !solved && hasGuess && guesses >= max {
			rerolls++
			guesses = 0
			gsr = newGuesser(partial, rng)
			log.Debug().Int("reroll", rerolls).Int("guesses", total).Msg("reshuffling guess order")
		}
	}
	return Result{Grid: final, Solved: solved, Guesses: total, Rerolls: rerolls}
}
