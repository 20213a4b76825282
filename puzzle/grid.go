// Package puzzle models 9x9 Sudoku boards and solves them with a
// mix of candidate elimination and guessing.
//
// Each cell of a board is either fixed to a value between 1 and 9
// or holds the set of candidate values it could still legally
// take.  The board's geometry is the standard one: nine rows,
// nine columns, and nine non-overlapping 3x3 blocks, with rows
// and columns indexed 0 through 8.
//
// Solving never fails with an error.  A board that cannot be
// solved (or cannot be solved within the configured guessing
// budget) produces a normal unsolved Result carrying the
// best-effort partial board.
package puzzle

import (
	"fmt"
)

// SideLen is the row, column, and block size of a board.
const SideLen = 9

// TileLen is the side of one block.
const TileLen = 3

/*

Geometry

*/

// A coord locates a cell on the board.
type coord struct {
	row, col int
}

// The block membership tables are fixed by the 9x9/3x3 topology,
// so they are computed once at package load: blockOf maps a cell
// to its block, blockCells lists each block's member cells.
var (
	blockOf    [SideLen][SideLen]int
	blockCells [SideLen][]coord
)

func init() {
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			b := (r/TileLen)*TileLen + c/TileLen
			blockOf[r][c] = b
			blockCells[b] = append(blockCells[b], coord{r, c})
		}
	}
}

// BlockID returns the block (0-8) containing the given cell.
func BlockID(row, col int) int {
	return blockOf[row][col]
}

/*

Cells

*/

// A cell is either fixed to a value (val between 1 and 9) or
// unresolved with a set of candidate values.  An unresolved cell
// whose candidate set shrinks to a single value is normalized to
// fixed by the elimination engine; a candidate set that shrinks
// to empty marks the board as contradictory.
type cell struct {
	val   int
	cands intset
}

// fixed reports whether the cell holds a settled value.
func (s *cell) fixed() bool {
	return s.val != 0
}

/*

Grids

*/

// A Grid is a 9x9 Sudoku board.  The zero Grid has every cell
// empty: not fixed, and with no candidates assigned yet (the
// solver fills empty cells with full candidate sets when it
// normalizes its input).
type Grid struct {
	cells [SideLen][SideLen]cell
}

// New creates a Grid from 81 values in reading order, where 0
// means an empty cell.  Values are not range-checked here: the
// solver treats an out-of-range fixed value as an immediately
// unsolvable input rather than a construction failure.
func New(values []int) (*Grid, error) {
	if len(values) != SideLen*SideLen {
		return nil, fmt.Errorf("need %d values to make a grid, have %d", SideLen*SideLen, len(values))
	}
	g := &Grid{}
	for i, v := range values {
		if v != 0 {
			g.cells[i/SideLen][i%SideLen].val = v
		}
	}
	return g, nil
}

// Get returns the fixed value of a cell, or 0 if the cell is
// unresolved.
func (g *Grid) Get(row, col int) int {
	return g.cells[row][col].val
}

// Set fixes a cell to the given value, dropping any candidates.
func (g *Grid) Set(row, col, val int) {
	g.cells[row][col] = cell{val: val}
}

// Values returns the fixed values of all cells in reading order,
// with 0 for unresolved cells.
func (g *Grid) Values() []int {
	vals := make([]int, 0, SideLen*SideLen)
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			vals = append(vals, g.cells[r][c].val)
		}
	}
	return vals
}

// Candidates returns a copy of the candidate set of a cell.  A
// fixed cell has no candidates.
func (g *Grid) Candidates(row, col int) []int {
	return newIntsetCopy(g.cells[row][col].cands)
}

// Copy returns a deep copy of the grid.  Each solving attempt
// mutates its own copy, so failed attempts never corrupt the
// caller's board.
func (g *Grid) Copy() *Grid {
	c := &Grid{}
	for r := 0; r < SideLen; r++ {
		for col := 0; col < SideLen; col++ {
			s := &g.cells[r][col]
			c.cells[r][col] = cell{val: s.val, cands: newIntsetCopy(s.cands)}
		}
	}
	return c
}

/*

Peer queries

*/

// BlockValues returns the fixed values among the cells of the
// block containing the given cell.
func (g *Grid) BlockValues(row, col int) []int {
	var vals intset
	for _, at := range blockCells[blockOf[row][col]] {
		if s := &g.cells[at.row][at.col]; s.fixed() {
			vals.insert(s.val)
		}
	}
	return vals
}

// RowValues returns the fixed values among the cells of a row.
func (g *Grid) RowValues(row int) []int {
	var vals intset
	for c := 0; c < SideLen; c++ {
		if s := &g.cells[row][c]; s.fixed() {
			vals.insert(s.val)
		}
	}
	return vals
}

// ColumnValues returns the fixed values among the cells of a column.
func (g *Grid) ColumnValues(col int) []int {
	var vals intset
	for r := 0; r < SideLen; r++ {
		if s := &g.cells[r][col]; s.fixed() {
			vals.insert(s.val)
		}
	}
	return vals
}

// rowCandidates returns the union of the candidate sets of the
// unresolved cells in a row, excluding the given cell.
func (g *Grid) rowCandidates(row, col int) intset {
	var vals intset
	for c := 0; c < SideLen; c++ {
		if c == col {
			continue
		}
		for _, v := range g.cells[row][c].cands {
			vals.insert(v)
		}
	}
	return vals
}

// columnCandidates returns the union of the candidate sets of the
// unresolved cells in a column, excluding the given cell.
func (g *Grid) columnCandidates(row, col int) intset {
	var vals intset
	for r := 0; r < SideLen; r++ {
		if r == row {
			continue
		}
		for _, v := range g.cells[r][col].cands {
			vals.insert(v)
		}
	}
	return vals
}

/*

Integer sets

*/

// An intset is a set of small integers, represented as a sorted
// slice.  Intsets hold the candidate values of unresolved cells;
// keeping them ordered gives the guess enumerator a stable
// positional indexing into each cell's candidates.
type intset []int

// newIntsetRange: make an intset holding 1 through max.
func newIntsetRange(max int) intset {
	if max < 1 {
		return intset{}
	}
	out := make(intset, max)
	for i := 0; i < max; i++ {
		out[i] = i + 1
	}
	return out
}

// newIntsetCopy: make a copy of an intset.
func newIntsetCopy(in intset) intset {
	if in == nil {
		return nil
	}
	out := make(intset, len(in))
	copy(out, in)
	return out
}

// Find value v, returning where it should be in the intset and
// whether it was found there.
func (ps *intset) find(v int) (int, bool) {
	end := len(*ps)
	where := end
	for i := 0; i < end; i++ {
		if (*ps)[i] == v {
			return i, true
		}
		if (*ps)[i] > v {
			where = i
			break
		}
	}
	return where, false
}

// contains reports whether v is in the intset.
func (ps intset) contains(v int) bool {
	_, found := ps.find(v)
	return found
}

// Insert value v, returning whether it was there already.
func (ps *intset) insert(v int) bool {
	end := len(*ps)
	where, found := ps.find(v)
	if found {
		return true
	}
	// insert by lengthening, shifting, inserting
	// see https://github.com/golang/go/wiki/SliceTricks
	*ps = append(*ps, v)
	if where < end {
		copy((*ps)[where+1:], (*ps)[where:])
		(*ps)[where] = v
	}
	return false
}

// Remove value v, returning whether it was there.
func (ps *intset) remove(v int) bool {
	end := len(*ps)
	for i := 0; i < end; i++ {
		pv := (*ps)[i]
		if pv == v {
			copy((*ps)[i:], (*ps)[i+1:])
			*ps = (*ps)[:end-1]
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}

// minus returns a new intset holding the members of ps that are
// not in xs.  Neither input is modified.
func (ps intset) minus(xs intset) intset {
	out := make(intset, 0, len(ps))
	xi := 0
	for _, pv := range ps {
		for xi < len(xs) && xs[xi] < pv {
			xi++
		}
		if xi < len(xs) && xs[xi] == pv {
			continue
		}
		out = append(out, pv)
	}
	return out
}
