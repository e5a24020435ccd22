package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/JagjeetChauhan/wasserstoff/models"
	"github.com/JagjeetChauhan/wasserstoff/pkg/analytics"
	"github.com/JagjeetChauhan/wasserstoff/pkg/docstore"
	"github.com/JagjeetChauhan/wasserstoff/pkg/pdftext"
)

// Options controls one batch run.
type Options struct {
	Workers          int
	SummarySentences int
	MaxKeywords      int
}

// Run dispatches every path through a fixed-size worker pool and collects
// one Result per file. Workers share nothing mutable; statistics are summed
// afterwards by Reduce, so no ordering between files is needed or provided.
func Run(ctx context.Context, logger *slog.Logger, store docstore.Store, paths []string, opts Options) []Result {
	// A pool of zero workers would drain no jobs and drop outcomes for
	// enumerated files; zero sentences or keywords would store empty
	// analysis. Clamp all three so every file yields exactly one outcome.
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.SummarySentences < 1 {
		opts.SummarySentences = 1
	}
	if opts.MaxKeywords < 1 {
		opts.MaxKeywords = 1
	}

	logger.Info("Starting batch phase", "file_count", len(paths), "workers", opts.Workers)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(paths))
	results := make(chan Result, len(paths))

	for w := 1; w <= opts.Workers; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, store, opts, &wg, jobs, results)
	}

	for _, path := range paths {
		jobs <- Job{Path: path}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All workers finished")

	allResults := make([]Result, 0, len(paths))
	for result := range results {
		allResults = append(allResults, result)
	}
	return allResults
}

func worker(ctx context.Context, id int, logger *slog.Logger, store docstore.Store, opts Options, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "file", job.Path)
		results <- processFile(ctx, logger, store, opts, job.Path)
	}
}

// processFile runs one file through extract, analyze and store. The first
// failing stage tags the result and stops; no partial record reaches the
// store.
func processFile(ctx context.Context, logger *slog.Logger, store docstore.Store, opts Options, path string) Result {
	result := Result{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		logger.Error("Error reading file", "file", path, "error", err)
		result.Error = err
		result.ErrorType = "parse_error"
		return result
	}

	text, err := pdftext.Extract(path)
	if err != nil {
		logger.Error("Error extracting PDF text", "file", path, "error", err)
		result.Error = err
		result.ErrorType = "parse_error"
		return result
	}

	summary, err := analytics.Summarize(text, opts.SummarySentences)
	if err != nil {
		logger.Error("Error summarizing text", "file", path, "error", err)
		result.Error = err
		result.ErrorType = "analysis_error"
		return result
	}

	keywords, err := analytics.Keywords(text, opts.MaxKeywords)
	if err != nil {
		logger.Error("Error extracting keywords", "file", path, "error", err)
		result.Error = err
		result.ErrorType = "analysis_error"
		return result
	}

	record := &models.Record{
		Filename:    filepath.Base(path),
		Path:        path,
		Size:        info.Size(),
		Content:     text,
		Summary:     summary,
		Keywords:    keywords,
		Language:    analytics.DetectLanguage(text),
		ProcessedAt: time.Now().UTC(),
	}

	if err := store.Insert(ctx, record); err != nil {
		logger.Error("Error storing record", "file", path, "error", err)
		result.Error = err
		result.ErrorType = "store_error"
		return result
	}

	result.Record = record
	logger.Info("Stored record", "file", record.Filename, "size", record.Size)
	return result
}

// Reduce sums per-file results into run statistics. The reduction is
// associative and order-independent, so results may arrive in any
// completion order.
func Reduce(results []Result) models.RunStats {
	var stats models.RunStats
	for _, result := range results {
		if result.Error != nil {
			stats.Failed++
			continue
		}
		stats.Processed++
		stats.TotalBytes += result.Record.Size
	}
	return stats
}

// LogFailures writes one entry per failed file to the failure logger.
func LogFailures(failures *slog.Logger, results []Result) {
	for _, result := range results {
		if result.Error == nil {
			continue
		}
		failures.Error("file failed",
			"file", filepath.Base(result.Path),
			"path", result.Path,
			"error_type", result.ErrorType,
			"error", result.Error.Error())
	}
}
