package pipeline

import "github.com/JagjeetChauhan/wasserstoff/models"

// Job defines a single file for a worker to process.
type Job struct {
	Path string
}

// Result holds the outcome of one processed file. Exactly one Result is
// produced per enumerated file: either Record is set, or Error and
// ErrorType describe the stage that failed.
type Result struct {
	Path      string
	Record    *models.Record
	Error     error
	ErrorType string // "parse_error", "analysis_error" or "store_error"
}
