package db

import (
	"testing"
	"time"

	"github.com/JagjeetChauhan/wasserstoff/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestRecordRun_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	stats := models.RunStats{
		Processed:  7,
		Failed:     2,
		TotalBytes: 14336,
		Duration:   1500 * time.Millisecond,
	}

	runID, err := db.RecordRun("/data/pdfs", stats)
	if err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}
	if runID == 0 {
		t.Error("RecordRun() returned 0 ID")
	}

	runs, err := db.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("RecentRuns() returned %d runs, want 1", len(runs))
	}

	run := runs[0]
	if run.SourceDir != "/data/pdfs" {
		t.Errorf("SourceDir = %q, want %q", run.SourceDir, "/data/pdfs")
	}
	if run.FileCount != 9 {
		t.Errorf("FileCount = %d, want 9", run.FileCount)
	}
	if run.ProcessedCount != 7 {
		t.Errorf("ProcessedCount = %d, want 7", run.ProcessedCount)
	}
	if run.FailedCount != 2 {
		t.Errorf("FailedCount = %d, want 2", run.FailedCount)
	}
	if run.TotalSizeBytes != 14336 {
		t.Errorf("TotalSizeBytes = %d, want 14336", run.TotalSizeBytes)
	}
	if run.DurationMS != 1500 {
		t.Errorf("DurationMS = %d, want 1500", run.DurationMS)
	}
}

func TestRecentRuns_NewestFirstAndLimited(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 5; i++ {
		if _, err := db.RecordRun("/data/pdfs", models.RunStats{Processed: i}); err != nil {
			t.Fatalf("RecordRun() error = %v", err)
		}
	}

	runs, err := db.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("RecentRuns(3) returned %d runs, want 3", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i-1].RunID <= runs[i].RunID {
			t.Errorf("runs not newest first: %d before %d", runs[i-1].RunID, runs[i].RunID)
		}
	}
}

func TestRecentRuns_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runs, err := db.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("RecentRuns() on empty ledger returned %d runs, want 0", len(runs))
	}
}
