package puzzle

import (
	"github.com/CorruptedArk/sudoku-solver-go/logger"
)

/*

Elimination engine

The engine makes only moves that must be correct given the board
it starts from.  Per round it walks every unresolved cell,
removes candidates that collide with fixed values among the
cell's block, column, and row peers, and then applies the
unique-candidate inference: a value that no peer could also take
must belong to this cell.  Rounds repeat until one makes no
changes.  Candidate sets only ever shrink, so the fixed point is
always reached.

*/

// Eliminate runs elimination rounds on a copy of the given board
// until a round makes no changes or a contradiction appears.  It
// returns the (possibly still partial) reduced board and whether
// that board is solved.  A contradiction - a board whose fixed
// values already collide, or a cell left with no candidates -
// returns the board as it stood along with false.
func Eliminate(g *Grid) (*Grid, bool) {
	board := g.Copy()
	if !board.Valid() {
		return board, false
	}

	log := logger.Logger()
	diffs, round := 1, 0
	for diffs > 0 {
		diffs = 0
		for i := 0; i < SideLen; i++ {
			for j := 0; j < SideLen; j++ {
				s := &board.cells[i][j]
				if !s.fixed() && len(s.cands) > 1 {
					diffs += board.eliminateCell(i, j)
				}
				if s.fixed() {
					continue
				}
				switch len(s.cands) {
				case 1:
					// single candidate left, the cell is settled
					board.Set(i, j, s.cands[0])
				case 0:
					return board, false
				}
			}
		}
		round++
		log.Debug().Int("round", round).Int("changes", diffs).Msg("elimination round")
	}
	return board, board.Solved()
}

// eliminateCell prunes the candidate set of one unresolved cell,
// returning the number of changes made.
//
// Pruning happens in two stages.  First every value fixed among
// the cell's block, column, and row peers is removed from the
// candidates.  Then the set differences between the remaining
// candidates and (a) the block peers' fixed values, (b) the
// column peers' candidates, (c) the row peers' candidates are
// tried in that order: a singleton difference is a value only
// this cell can supply, so the cell is fixed to it.  If none is
// singleton but the difference against all three combined is
// non-empty, the candidate set narrows to that difference
// without committing (a pruning step, not counted as a change).
func (g *Grid) eliminateCell(row, col int) int {
	diffs := 0
	s := &g.cells[row][col]

	members := intset(g.BlockValues(row, col))
	for _, v := range members {
		if s.cands.remove(v) {
			diffs++
		}
	}
	for _, v := range g.ColumnValues(col) {
		if s.cands.remove(v) {
			diffs++
		}
	}
	for _, v := range g.RowValues(row) {
		if s.cands.remove(v) {
			diffs++
		}
	}

	colCands := g.columnCandidates(row, col)
	rowCands := g.rowCandidates(row, col)
	taken := newIntsetCopy(members)
	for _, v := range colCands {
		taken.insert(v)
	}
	for _, v := range rowCands {
		taken.insert(v)
	}

	if d := s.cands.minus(members); len(d) == 1 {
		g.Set(row, col, d[0])
		return diffs + 1
	}
	if d := s.cands.minus(colCands); len(d) == 1 {
		g.Set(row, col, d[0])
		return diffs + 1
	}
	if d := s.cands.minus(rowCands); len(d) == 1 {
		g.Set(row, col, d[0])
		return diffs + 1
	}
	if d := s.cands.minus(taken); len(d) > 0 {
		s.cands = d
	}
	return diffs
}
