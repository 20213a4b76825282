package puzzle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoUnknownGrid is a board with exactly two unresolved cells whose
// candidate wheels have different sizes, small enough to enumerate
// by hand.
func twoUnknownGrid(t *testing.T) *Grid {
	g := mustGrid(t, solvedValues)
	g.cells[0][0] = cell{cands: intset{1, 2}}
	g.cells[8][8] = cell{cands: intset{3, 4, 5}}
	return g
}

func TestGuesserEnumeration(t *testing.T) {
	gu := newGuesser(twoUnknownGrid(t), rand.New(rand.NewSource(1)))
	require.Len(t, gu.unknowns, 2)

	type pair struct{ a, b int }
	pairs := map[pair]bool{}
	yields, hasNext := 0, true
	for hasNext {
		var board *Grid
		board, hasNext = gu.next()
		yields++
		a, b := board.Get(0, 0), board.Get(8, 8)
		if a != 0 && b != 0 {
			pairs[pair{a, b}] = true
		} else {
			// at depth zero only the first shuffled cell is set
			assert.NotEqual(t, a != 0, b != 0, "depth zero sets exactly one cell")
		}
		require.Less(t, yields, 20, "enumeration failed to terminate")
	}

	// the first wheel alone yields its candidate count, then every
	// combination of the two wheels: 2+2*3 or 3+3*2 depending on
	// the shuffle order
	assert.Contains(t, []int{8, 9}, yields)
	assert.Len(t, pairs, 6, "depth one covers the full product")
	for _, a := range []int{1, 2} {
		for _, b := range []int{3, 4, 5} {
			assert.True(t, pairs[pair{a, b}], "missing combination %d/%d", a, b)
		}
	}
}

func TestGuesserFinalYieldFlag(t *testing.T) {
	gu := newGuesser(twoUnknownGrid(t), rand.New(rand.NewSource(7)))
	var flags []bool
	for {
		_, more := gu.next()
		flags = append(flags, more)
		if !more {
			break
		}
	}
	// false appears exactly once, on the last yield
	for i, f := range flags[:len(flags)-1] {
		assert.True(t, f, "yield %d", i)
	}
	assert.False(t, flags[len(flags)-1])
}

func TestGuesserLeavesBaseUntouched(t *testing.T) {
	base := twoUnknownGrid(t)
	gu := newGuesser(base, rand.New(rand.NewSource(3)))
	for hasNext := true; hasNext; {
		_, hasNext = gu.next()
	}
	assert.Equal(t, 0, base.Get(0, 0))
	assert.Equal(t, 0, base.Get(8, 8))
	assert.Equal(t, []int{1, 2}, base.Candidates(0, 0))
}

func TestGuesserNoUnknowns(t *testing.T) {
	gu := newGuesser(mustGrid(t, solvedValues), rand.New(rand.NewSource(1)))
	board, hasNext := gu.next()
	assert.False(t, hasNext)
	assert.Equal(t, solvedValues, board.Values())
}

func TestGuesserDeterministicUnderSeed(t *testing.T) {
	run := func(seed int64) [][]int {
		gu := newGuesser(twoUnknownGrid(t), rand.New(rand.NewSource(seed)))
		var boards [][]int
		for hasNext := true; hasNext; {
			var board *Grid
			board, hasNext = gu.next()
			boards = append(boards, board.Values())
		}
		return boards
	}
	assert.Equal(t, run(42), run(42))
}
