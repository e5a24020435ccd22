package models

import "time"

// Record is the document written to the store for each successfully
// processed PDF. Records are append-only: they are created once and never
// updated or deleted by the pipeline. Re-running a batch over the same
// directory inserts duplicates; that is documented behavior, not a bug.
type Record struct {
	Filename    string    `bson:"filename" json:"filename"`
	Path        string    `bson:"path" json:"path"`
	Size        int64     `bson:"size" json:"size"`
	Content     string    `bson:"content" json:"content"`
	Summary     string    `bson:"summary" json:"summary"`
	Keywords    []string  `bson:"keywords" json:"keywords"`
	Language    string    `bson:"language,omitempty" json:"language,omitempty"`
	ProcessedAt time.Time `bson:"processed_at" json:"processed_at"`
}

// RunStats accumulates the outcome of one batch run. It is built by a single
// collector from per-worker results, never shared between goroutines.
type RunStats struct {
	Processed  int
	Failed     int
	TotalBytes int64
	Duration   time.Duration
}

// FileCount returns the number of files that produced an outcome.
func (s RunStats) FileCount() int {
	return s.Processed + s.Failed
}

// AverageBytes returns the mean size of successfully processed files,
// or 0 when nothing was processed.
func (s RunStats) AverageBytes() float64 {
	if s.Processed == 0 {
		return 0
	}
	return float64(s.TotalBytes) / float64(s.Processed)
}
