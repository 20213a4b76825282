package puzzle

import (
	"github.com/bits-and-blooms/bitset"
)

/*

Board validity

*/

// Valid reports whether the board's fixed values are consistent:
// no row, column, or block holds the same fixed value twice.
// Unresolved cells are ignored, so a partial board is valid as
// long as its fixed values don't collide.
func (g *Grid) Valid() bool {
	for r := 0; r < SideLen; r++ {
		seen := bitset.New(SideLen + 1)
		for c := 0; c < SideLen; c++ {
			if !g.mark(seen, r, c) {
				return false
			}
		}
	}
	for c := 0; c < SideLen; c++ {
		seen := bitset.New(SideLen + 1)
		for r := 0; r < SideLen; r++ {
			if !g.mark(seen, r, c) {
				return false
			}
		}
	}
	for b := 0; b < SideLen; b++ {
		seen := bitset.New(SideLen + 1)
		for _, at := range blockCells[b] {
			if !g.mark(seen, at.row, at.col) {
				return false
			}
		}
	}
	return true
}

// mark records a cell's fixed value in a digit mask, reporting
// false on a repeat.  Out-of-range values never collide with
// digit values; Solve rejects them during normalization.
func (g *Grid) mark(seen *bitset.BitSet, row, col int) bool {
	s := &g.cells[row][col]
	if !s.fixed() || s.val < 1 || s.val > SideLen {
		return true
	}
	v := uint(s.val)
	if seen.Test(v) {
		return false
	}
	seen.Set(v)
	return true
}

// Solved reports whether the board is completely and correctly
// filled: every cell fixed to a value between 1 and 9, and no
// group constraint violated.  A board with any unresolved cell is
// never solved, even if otherwise consistent.
func (g *Grid) Solved() bool {
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if v := g.cells[r][c].val; v < 1 || v > SideLen {
				return false
			}
		}
	}
	return g.Valid()
}
