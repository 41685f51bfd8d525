package store

import (
	"database/sql"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brocard-search/internal/search"
)

// setupTestDB creates a temporary SQLite database for testing
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := Init(dbPath)
	require.NoError(t, err)

	require.NoError(t, Setup(db))

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func testSolutions() []search.Solution {
	return []search.Solution{
		{N: 4, X: big.NewInt(5)},
		{N: 5, X: big.NewInt(11)},
		{N: 7, X: big.NewInt(71)},
	}
}

func TestRecordRun(t *testing.T) {
	db := setupTestDB(t)

	run := Run{
		Limit:     100,
		Workers:   4,
		ChunkSize: 10,
		Duration:  1500 * time.Millisecond,
	}

	runID, err := RecordRun(db, run, testSolutions())
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	got, err := GetRun(db, runID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, runID, got.ID)
	assert.Equal(t, 100, got.Limit)
	assert.Equal(t, 4, got.Workers)
	assert.Equal(t, 10, got.ChunkSize)
	assert.Equal(t, 1500*time.Millisecond, got.Duration)
	assert.Equal(t, 3, got.Solutions)
}

func TestRecordRun_NoSolutions(t *testing.T) {
	db := setupTestDB(t)

	runID, err := RecordRun(db, Run{Limit: 1, Workers: 1, ChunkSize: 10}, nil)
	require.NoError(t, err)

	got, err := GetRun(db, runID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Solutions)

	solutions, err := GetSolutions(db, runID)
	require.NoError(t, err)
	assert.Empty(t, solutions)
}

func TestRecordRun_DBError(t *testing.T) {
	db := setupTestDB(t)
	db.Close()

	_, err := RecordRun(db, Run{Limit: 10}, testSolutions())
	assert.Error(t, err)
}

func TestGetRun_NotFound(t *testing.T) {
	db := setupTestDB(t)

	got, err := GetRun(db, "no-such-run")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetRuns(t *testing.T) {
	db := setupTestDB(t)

	first, err := RecordRun(db, Run{Limit: 10, Workers: 1, ChunkSize: 10}, nil)
	require.NoError(t, err)
	second, err := RecordRun(db, Run{Limit: 20, Workers: 2, ChunkSize: 5}, testSolutions())
	require.NoError(t, err)

	runs, err := GetRuns(db)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	ids := []string{runs[0].ID, runs[1].ID}
	assert.Contains(t, ids, first)
	assert.Contains(t, ids, second)
}

func TestGetRuns_DBError(t *testing.T) {
	db := setupTestDB(t)
	db.Close()

	_, err := GetRuns(db)
	assert.Error(t, err)
}

func TestGetSolutions(t *testing.T) {
	db := setupTestDB(t)

	runID, err := RecordRun(db, Run{Limit: 100, Workers: 2, ChunkSize: 10}, testSolutions())
	require.NoError(t, err)

	solutions, err := GetSolutions(db, runID)
	require.NoError(t, err)
	require.Len(t, solutions, 3)

	assert.Equal(t, RunSolution{N: 4, X: "5"}, solutions[0])
	assert.Equal(t, RunSolution{N: 5, X: "11"}, solutions[1])
	assert.Equal(t, RunSolution{N: 7, X: "71"}, solutions[2])
}

// Roots larger than any machine integer must round-trip through the text
// column untouched.
func TestGetSolutions_BigRoot(t *testing.T) {
	db := setupTestDB(t)

	huge, ok := new(big.Int).SetString("123456789012345678901234567890123456789", 10)
	require.True(t, ok)

	runID, err := RecordRun(db, Run{Limit: 500, Workers: 1, ChunkSize: 10},
		[]search.Solution{{N: 321, X: huge}})
	require.NoError(t, err)

	solutions, err := GetSolutions(db, runID)
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	assert.Equal(t, huge.String(), solutions[0].X)
}
