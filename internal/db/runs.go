package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateRun records the start of a cleaning run and returns its ID.
func (db *DB) CreateRun(ctx context.Context, sourceFile string, asOf time.Time) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO cleaning_runs (source_file, as_of, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		sourceFile, asOf,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a cleaning run as finished and stores its row counts.
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string, stats RunStats) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE cleaning_runs
		 SET status = $1, total_rows = $2, missing_birthdates = $3,
		     missing_hire_dates = $4, malformed_termdates = $5, completed_at = NOW()
		 WHERE id = $6`,
		status, stats.TotalRows, stats.MissingBirthdates,
		stats.MissingHireDates, stats.MalformedTermdates, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// GetRun retrieves a cleaning run by ID. Returns nil when no run exists.
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*CleaningRun, error) {
	var run CleaningRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, source_file, as_of, status, total_rows, missing_birthdates,
		        missing_hire_dates, malformed_termdates, created_at, completed_at
		 FROM cleaning_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.SourceFile, &run.AsOf, &run.Status, &run.TotalRows,
		&run.MissingBirthdates, &run.MissingHireDates, &run.MalformedTermdates,
		&run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// LatestRun retrieves the most recently created cleaning run, or nil when the
// table is empty.
func (db *DB) LatestRun(ctx context.Context) (*CleaningRun, error) {
	var run CleaningRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, source_file, as_of, status, total_rows, missing_birthdates,
		        missing_hire_dates, malformed_termdates, created_at, completed_at
		 FROM cleaning_runs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&run.ID, &run.SourceFile, &run.AsOf, &run.Status, &run.TotalRows,
		&run.MissingBirthdates, &run.MissingHireDates, &run.MalformedTermdates,
		&run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}
	return &run, nil
}
