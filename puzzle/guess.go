package puzzle

import (
	"math/rand"
)

/*

Guess enumeration

When elimination stalls short of a solution, the solver explores
hypothetical assignments.  The enumeration is an iterative
deepening over a randomized ordering of the unresolved cells: at
depth d, every combination of candidate choices for the first
d+1 shuffled cells is tried, counted off like an odometer whose
wheels have mixed sizes (each cell's wheel ranges over its own
candidate count).  When all wheels of a depth have wrapped, the
depth grows by one.  Every depth up to the number of unresolved
cells is eventually visited, so any combination of fixings that
elimination can finish from is eventually produced.

*/

// An unknown records one unresolved cell for enumeration: its
// location, its ordered candidate list, the current position of
// its odometer wheel, and the wheel size.
type unknown struct {
	at        coord
	possible  intset
	count     int
	iteration int
}

// A guesser enumerates guess boards built from a base board.
// Create one with newGuesser and pull boards with next; the
// enumeration order is fixed by a single shuffle at creation.
type guesser struct {
	base      *Grid
	unknowns  []unknown
	depth     int
	exhausted bool
}

// newGuesser builds an enumerator over the unresolved cells of
// the given board, which the solver always takes post-elimination
// so the candidate lists are as small as they can be.
func newGuesser(g *Grid, rng *rand.Rand) *guesser {
	gu := &guesser{base: g}
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			s := &g.cells[r][c]
			if s.fixed() {
				continue
			}
			gu.unknowns = append(gu.unknowns, unknown{
				at:       coord{r, c},
				possible: newIntsetCopy(s.cands),
				count:    len(s.cands),
			})
		}
	}
	// shuffle once per enumerator, so a reroll gets a new order
	rng.Shuffle(len(gu.unknowns), func(i, j int) {
		gu.unknowns[i], gu.unknowns[j] = gu.unknowns[j], gu.unknowns[i]
	})
	if len(gu.unknowns) == 0 {
		gu.exhausted = true
	}
	return gu
}

// next returns a full copy of the base board with the current
// depth+1 chosen cells fixed to specific values, all other
// unresolved cells untouched, plus a flag that is false exactly
// when no further guess remains after this one.
func (gu *guesser) next() (*Grid, bool) {
	if gu.exhausted {
		return gu.base.Copy(), false
	}
	board := gu.base.Copy()
	for i := 0; i <= gu.depth; i++ {
		u := &gu.unknowns[i]
		board.Set(u.at.row, u.at.col, u.possible[u.iteration])
	}
	if !gu.advance() {
		gu.exhausted = true
		return board, false
	}
	return board, true
}

// advance increments the odometer, carrying wrapped wheels and
// deepening when the whole depth has wrapped.  It reports false
// once every combination at every depth has been produced.
func (gu *guesser) advance() bool {
	for i := 0; i <= gu.depth; i++ {
		u := &gu.unknowns[i]
		if u.iteration < u.count-1 {
			u.iteration++
			return true
		}
		u.iteration = 0
		if i == gu.depth {
			gu.depth++
			return gu.depth < len(gu.unknowns)
		}
	}
	return false
}
