package db

import (
	"fmt"
	"time"

	"github.com/JagjeetChauhan/wasserstoff/models"
)

// Run is one recorded batch run.
type Run struct {
	RunID          int64
	StartedAt      time.Time
	SourceDir      string
	FileCount      int
	ProcessedCount int
	FailedCount    int
	TotalSizeBytes int64
	DurationMS     int64
}

// RecordRun inserts one row for a completed batch and returns its ID.
func (db *DB) RecordRun(sourceDir string, stats models.RunStats) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (source_dir, file_count, processed_count, failed_count, total_size_bytes, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sourceDir, stats.FileCount(), stats.Processed, stats.Failed, stats.TotalBytes, stats.Duration.Milliseconds())
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// RecentRuns returns up to limit runs, newest first.
func (db *DB) RecentRuns(limit int) ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, started_at, source_dir, file_count, processed_count, failed_count, total_size_bytes, duration_ms
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.StartedAt, &r.SourceDir, &r.FileCount,
			&r.ProcessedCount, &r.FailedCount, &r.TotalSizeBytes, &r.DurationMS); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}
