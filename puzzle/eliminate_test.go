package puzzle

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEliminateSolvedBoard(t *testing.T) {
	board, solved := Eliminate(mustGrid(t, solvedValues))
	assert.True(t, solved)
	assert.Equal(t, solvedValues, board.Values())
}

func TestEliminateSolvesEasyPuzzle(t *testing.T) {
	board, solved := Eliminate(normalizedGrid(t, easyValues))
	require.True(t, solved)
	assert.Equal(t, solvedValues, board.Values())
}

func TestEliminateNeverModifiesInput(t *testing.T) {
	g := normalizedGrid(t, easyValues)
	_, _ = Eliminate(g)
	assert.Equal(t, easyValues, g.Values())
	assert.Len(t, g.Candidates(0, 2), SideLen)
}

func TestEliminateStallsOnRectangle(t *testing.T) {
	board, solved := Eliminate(normalizedGrid(t, rectangleValues))
	require.False(t, solved)

	corners := []coord{{0, 3}, {0, 4}, {3, 3}, {3, 4}}
	for _, at := range corners {
		assert.Equal(t, 0, board.Get(at.row, at.col))
		assert.Equal(t, []int{6, 7}, board.Candidates(at.row, at.col), "cell (%d,%d)", at.row, at.col)
	}
	// everything outside the rectangle is already settled
	unresolved := 0
	for _, v := range board.Values() {
		if v == 0 {
			unresolved++
		}
	}
	assert.Equal(t, len(corners), unresolved)
}

func TestEliminateReachesFixedPoint(t *testing.T) {
	once, _ := Eliminate(normalizedGrid(t, rectangleValues))
	twice, _ := Eliminate(once)
	assert.Equal(t, once.Values(), twice.Values())
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			assert.Equal(t, once.Candidates(r, c), twice.Candidates(r, c))
		}
	}
}

func TestEliminateRejectsDuplicates(t *testing.T) {
	g := mustGrid(t, withValue(solvedValues, 0, 2, 3))
	board, solved := Eliminate(g)
	assert.False(t, solved)
	assert.Equal(t, g.Values(), board.Values(), "invalid boards come back untouched")
}

func TestEliminateEmptyCandidateSet(t *testing.T) {
	g := normalizedGrid(t, easyValues)
	g.cells[4][4].cands = intset{}
	_, solved := Eliminate(g)
	assert.False(t, solved)
}

func TestEliminateDetectsContradiction(t *testing.T) {
	// row 0 pins cell (0,8) to 9, which its column already holds
	values := make([]int, 81)
	for j := 0; j < 8; j++ {
		values[j] = j + 1
	}
	values[SideLen+8] = 9
	_, solved := Eliminate(normalizedGrid(t, values))
	assert.False(t, solved)
}

// Elimination makes forced moves only, so digging holes into a
// solved board and eliminating must give back a board where every
// settled cell matches the original solution and every open cell
// still counts the original value among its candidates.
func TestEliminateSoundness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("forced moves agree with the known solution", prop.ForAll(
		func(seed int64, holes int) bool {
			rng := rand.New(rand.NewSource(seed))
			values := make([]int, len(solvedValues))
			copy(values, solvedValues)
			for _, idx := range rng.Perm(len(values))[:holes] {
				values[idx] = 0
			}
			board, _ := Eliminate(normalizedGrid(t, values))
			for r := 0; r < SideLen; r++ {
				for c := 0; c < SideLen; c++ {
					want := solvedValues[r*SideLen+c]
					if v := board.Get(r, c); v != 0 {
						if v != want {
							return false
						}
						continue
					}
					if !intset(board.Candidates(r, c)).contains(want) {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(0, SideLen*SideLen),
	))
	properties.TestingRun(t)
}
