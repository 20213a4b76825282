package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solvedValues is a correctly completed board, used as the ground
// truth the other fixtures are derived from.
var solvedValues = []int{
	5, 3, 4, 6, 7, 8, 9, 1, 2,
	6, 7, 2, 1, 9, 5, 3, 4, 8,
	1, 9, 8, 3, 4, 2, 5, 6, 7,
	8, 5, 9, 7, 6, 1, 4, 2, 3,
	4, 2, 6, 8, 5, 3, 7, 9, 1,
	7, 1, 3, 9, 2, 4, 8, 5, 6,
	9, 6, 1, 5, 3, 7, 2, 8, 4,
	2, 8, 7, 4, 1, 9, 6, 3, 5,
	3, 4, 5, 2, 8, 6, 1, 7, 9,
}

// easyValues is a puzzle that elimination alone solves, with
// solvedValues as its unique completion.
var easyValues = []int{
	5, 3, 0, 0, 7, 0, 0, 0, 0,
	6, 0, 0, 1, 9, 5, 0, 0, 0,
	0, 9, 8, 0, 0, 0, 0, 6, 0,
	8, 0, 0, 0, 6, 0, 0, 0, 3,
	4, 0, 0, 8, 0, 3, 0, 0, 1,
	7, 0, 0, 0, 2, 0, 0, 0, 6,
	0, 6, 0, 0, 0, 0, 2, 8, 0,
	0, 0, 0, 4, 1, 9, 0, 0, 5,
	0, 0, 0, 0, 8, 0, 0, 7, 9,
}

// rectangleValues is solvedValues with the four corners of a value
// rectangle blanked: cells (0,3) (0,4) (3,3) (3,4) held 6 7 7 6, so
// either diagonal assignment completes the board.  Elimination
// stalls on it with exactly the candidates {6,7} in each corner,
// which forces the solver into its guessing phase.
var rectangleValues = []int{
	5, 3, 4, 0, 0, 8, 9, 1, 2,
	6, 7, 2, 1, 9, 5, 3, 4, 8,
	1, 9, 8, 3, 4, 2, 5, 6, 7,
	8, 5, 9, 0, 0, 1, 4, 2, 3,
	4, 2, 6, 8, 5, 3, 7, 9, 1,
	7, 1, 3, 9, 2, 4, 8, 5, 6,
	9, 6, 1, 5, 3, 7, 2, 8, 4,
	2, 8, 7, 4, 1, 9, 6, 3, 5,
	3, 4, 5, 2, 8, 6, 1, 7, 9,
}

func mustGrid(t *testing.T, values []int) *Grid {
	t.Helper()
	g, err := New(values)
	require.NoError(t, err)
	return g
}

// normalizedGrid builds a grid whose empty cells carry full
// candidate sets, the shape Eliminate expects its input in.
func normalizedGrid(t *testing.T, values []int) *Grid {
	t.Helper()
	g := mustGrid(t, values)
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if s := &g.cells[r][c]; !s.fixed() {
				s.cands = newIntsetRange(SideLen)
			}
		}
	}
	return g
}

func withValue(values []int, row, col, val int) []int {
	out := make([]int, len(values))
	copy(out, values)
	out[row*SideLen+col] = val
	return out
}

func TestNewRejectsWrongLength(t *testing.T) {
	_, err := New(make([]int, 80))
	assert.Error(t, err)
	_, err = New(nil)
	assert.Error(t, err)
	_, err = New(make([]int, 81))
	assert.NoError(t, err)
}

func TestValuesRoundTrip(t *testing.T) {
	g := mustGrid(t, easyValues)
	assert.Equal(t, easyValues, g.Values())
	assert.Equal(t, 5, g.Get(0, 0))
	assert.Equal(t, 0, g.Get(0, 2))
	g.Set(0, 2, 4)
	assert.Equal(t, 4, g.Get(0, 2))
}

func TestBlockID(t *testing.T) {
	cases := []struct{ row, col, block int }{
		{0, 0, 0}, {2, 2, 0}, {0, 3, 1}, {1, 8, 2},
		{3, 0, 3}, {4, 4, 4}, {5, 8, 5},
		{6, 2, 6}, {8, 5, 7}, {8, 8, 8},
	}
	for _, c := range cases {
		assert.Equal(t, c.block, BlockID(c.row, c.col), "cell (%d,%d)", c.row, c.col)
	}
}

func TestBlockCellsCoverBoard(t *testing.T) {
	seen := map[coord]bool{}
	for b := 0; b < SideLen; b++ {
		assert.Len(t, blockCells[b], SideLen)
		for _, at := range blockCells[b] {
			assert.Equal(t, b, blockOf[at.row][at.col])
			assert.False(t, seen[at], "cell (%d,%d) in two blocks", at.row, at.col)
			seen[at] = true
		}
	}
	assert.Len(t, seen, SideLen*SideLen)
}

func TestPeerValues(t *testing.T) {
	g := mustGrid(t, easyValues)
	assert.Equal(t, []int{3, 5, 7}, g.RowValues(0))
	assert.Equal(t, []int{4, 5, 6, 7, 8}, g.ColumnValues(0))
	assert.Equal(t, []int{2, 3, 6, 8}, g.BlockValues(4, 4))
	// every cell of a block reports the same fixed values
	assert.Equal(t, g.BlockValues(3, 3), g.BlockValues(5, 5))
}

func TestCandidateUnions(t *testing.T) {
	g := mustGrid(t, solvedValues)
	g.cells[0][0] = cell{cands: intset{1, 2}}
	g.cells[0][5] = cell{cands: intset{2, 3}}
	g.cells[4][0] = cell{cands: intset{4, 5}}

	assert.Equal(t, intset{2, 3}, g.rowCandidates(0, 0))
	assert.Equal(t, intset{1, 2}, g.rowCandidates(0, 5))
	assert.Equal(t, intset{4, 5}, g.columnCandidates(0, 0))
	assert.Equal(t, intset{1, 2}, g.columnCandidates(4, 0))
	// a cell never contributes to its own union
	assert.Empty(t, g.rowCandidates(8, 8))
}

func TestCopyIndependence(t *testing.T) {
	g := normalizedGrid(t, easyValues)
	c := g.Copy()
	require.Equal(t, g.Values(), c.Values())

	c.Set(0, 2, 4)
	assert.Equal(t, 0, g.Get(0, 2), "copy mutation leaked into original")

	// candidate slices must not be shared either
	c.cells[1][1].cands.remove(9)
	assert.Contains(t, []int(g.cells[1][1].cands), 9)
}

func TestCandidatesReturnsCopy(t *testing.T) {
	g := normalizedGrid(t, easyValues)
	cands := g.Candidates(0, 2)
	require.NotEmpty(t, cands)
	cands[0] = 42
	assert.NotContains(t, g.Candidates(0, 2), 42)
	assert.Empty(t, g.Candidates(0, 0), "fixed cells have no candidates")
}

func TestIntsetOperations(t *testing.T) {
	var s intset
	assert.False(t, s.insert(5))
	assert.False(t, s.insert(2))
	assert.False(t, s.insert(8))
	assert.True(t, s.insert(5), "inserting a member reports presence")
	assert.Equal(t, intset{2, 5, 8}, s, "members stay sorted")

	assert.True(t, s.contains(8))
	assert.False(t, s.contains(3))

	assert.True(t, s.remove(5))
	assert.False(t, s.remove(5))
	assert.Equal(t, intset{2, 8}, s)
}

func TestIntsetMinus(t *testing.T) {
	s := intset{1, 3, 5, 7, 9}
	assert.Equal(t, intset{1, 9}, s.minus(intset{3, 5, 7}))
	assert.Equal(t, intset{1, 3, 5, 7, 9}, s.minus(nil))
	assert.Empty(t, s.minus(s))
	// inputs are untouched
	assert.Equal(t, intset{1, 3, 5, 7, 9}, s)
}

func TestIntsetRange(t *testing.T) {
	assert.Equal(t, intset{1, 2, 3, 4, 5, 6, 7, 8, 9}, newIntsetRange(9))
	assert.Empty(t, newIntsetRange(0))
}
