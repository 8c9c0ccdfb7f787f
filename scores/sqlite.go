package scores

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements Store on a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens the ledger database at path, creating the file, its
// directory, and the schema as needed.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			played_at DATETIME NOT NULL,
			phrase TEXT NOT NULL,
			outcome TEXT NOT NULL,
			lives_left INTEGER NOT NULL,
			guesses INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_played_at ON results(played_at);`,
	}

	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// Record appends one finished session to the ledger.
func (s *SQLiteStore) Record(ctx context.Context, r Result) error {
	query := `
		INSERT INTO results (id, played_at, phrase, outcome, lives_left, guesses)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		r.ID, r.When, r.Phrase, r.Outcome, r.LivesLeft, r.Guesses,
	)
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}
	return nil
}

// Summary aggregates wins and losses over the whole ledger.
func (s *SQLiteStore) Summary(ctx context.Context) (Summary, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0)
		FROM results
	`
	var sum Summary
	if err := s.db.QueryRowContext(ctx, query).Scan(&sum.Games, &sum.Won, &sum.Lost); err != nil {
		return Summary{}, fmt.Errorf("failed to read summary: %w", err)
	}
	return sum, nil
}

// Recent returns up to limit results, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]Result, error) {
	query := `
		SELECT id, played_at, phrase, outcome, lives_left, guesses
		FROM results
		ORDER BY played_at DESC, id
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.When, &r.Phrase, &r.Outcome, &r.LivesLeft, &r.Guesses); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
