// Package store records search runs and their solutions in a SQLite
// database. The search core never depends on it; recording happens after a
// run completes.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"brocard-search/internal/search"
)

// Run is one recorded search invocation.
type Run struct {
	ID        string
	CreatedAt time.Time
	Limit     int
	Workers   int
	ChunkSize int
	Duration  time.Duration
	Solutions int
}

// RunSolution mirrors one solutions row. The root x stays a decimal string
// because the values outgrow every integer column type.
type RunSolution struct {
	N int
	X string
}

const (
	dropTables = `
		DROP TABLE IF EXISTS solutions;
		DROP TABLE IF EXISTS runs;
	`

	createTables = `
		CREATE TABLE runs (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			search_limit INTEGER NOT NULL,
			workers INTEGER NOT NULL,
			chunk_size INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			solution_count INTEGER NOT NULL
		);

		CREATE TABLE solutions (
			run_id TEXT NOT NULL,
			n INTEGER NOT NULL,
			x TEXT NOT NULL,
			FOREIGN KEY (run_id) REFERENCES runs(id),
			PRIMARY KEY (run_id, n)
		);
	`
)

// Init opens and returns a SQLite database connection.
func Init(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Setup drops and recreates the runs and solutions tables.
func Setup(db *sql.DB) error {
	if _, err := db.Exec(dropTables); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if _, err := db.Exec(createTables); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// RecordRun inserts a run and all of its solutions in a single transaction
// and returns the generated run ID. The ID and CreatedAt fields of the
// passed Run are ignored.
func RecordRun(db *sql.DB, run Run, solutions []search.Solution) (string, error) {
	runID := uuid.New().String()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertRunQuery := `INSERT INTO runs (id, search_limit, workers, chunk_size, duration_ms, solution_count)
		VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := tx.Exec(insertRunQuery, runID, run.Limit, run.Workers, run.ChunkSize,
		run.Duration.Milliseconds(), len(solutions)); err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	insertSolutionQuery := `INSERT INTO solutions (run_id, n, x) VALUES (?, ?, ?)`
	for _, s := range solutions {
		if _, err := tx.Exec(insertSolutionQuery, runID, s.N, s.X.String()); err != nil {
			return "", fmt.Errorf("failed to insert solution n=%d: %w", s.N, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return runID, nil
}

// GetRuns fetches all recorded runs, newest first.
func GetRuns(db *sql.DB) ([]Run, error) {
	query := `SELECT id, created_at, search_limit, workers, chunk_size, duration_ms, solution_count
		FROM runs ORDER BY created_at DESC, id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64

		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Limit, &r.Workers, &r.ChunkSize,
			&durationMS, &r.Solutions); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond

		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// GetRun fetches a single run by its ID, or nil if it does not exist.
func GetRun(db *sql.DB, id string) (*Run, error) {
	query := `SELECT id, created_at, search_limit, workers, chunk_size, duration_ms, solution_count
		FROM runs WHERE id = ?`

	var r Run
	var durationMS int64

	err := db.QueryRow(query, id).Scan(&r.ID, &r.CreatedAt, &r.Limit, &r.Workers,
		&r.ChunkSize, &durationMS, &r.Solutions)
	if err == sql.ErrNoRows {
		return nil, nil // Run not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	r.Duration = time.Duration(durationMS) * time.Millisecond

	return &r, nil
}

// GetSolutions fetches the solutions of a run in ascending n order.
func GetSolutions(db *sql.DB, runID string) ([]RunSolution, error) {
	query := `SELECT n, x FROM solutions WHERE run_id = ? ORDER BY n`

	rows, err := db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query solutions: %w", err)
	}
	defer rows.Close()

	var solutions []RunSolution
	for rows.Next() {
		var s RunSolution
		if err := rows.Scan(&s.N, &s.X); err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		solutions = append(solutions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating solutions: %w", err)
	}

	return solutions, nil
}
