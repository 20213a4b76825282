package dbprep

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CorruptedArk/sudoku-solver-go/puzzle"
)

func TestDatabaseUrlScheme(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://somehost:5432/sudoku?sslmode=disable")
	assert.Equal(t, "pgx5://somehost:5432/sudoku?sslmode=disable", databaseUrl())

	t.Setenv("DATABASE_URL", "")
	assert.Equal(t, "pgx5://localhost/sudoku?sslmode=disable", databaseUrl())
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationFiles.ReadDir("migrations")
	require.NoError(t, err)

	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		default:
			t.Errorf("unexpected migration file %q", e.Name())
		}
	}
	assert.Equal(t, ups, downs, "every migration has a rollback")
	assert.Greater(t, ups, 0)
}

func TestSamplePuzzlesAreSolvable(t *testing.T) {
	for name, values := range samplePuzzles {
		require.Len(t, values, 81, "sample %q", name)
		ints := make([]int, len(values))
		for i, v := range values {
			ints[i] = int(v)
		}
		g, err := puzzle.New(ints)
		require.NoError(t, err, "sample %q", name)
		assert.True(t, g.Valid(), "sample %q has conflicting givens", name)
		assert.False(t, g.Solved(), "sample %q is already finished", name)
	}
}
