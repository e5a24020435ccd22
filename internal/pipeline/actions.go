package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/JagjeetChauhan/wasserstoff/models"
	"github.com/JagjeetChauhan/wasserstoff/pkg/db"
	"github.com/JagjeetChauhan/wasserstoff/pkg/docstore"
	"github.com/JagjeetChauhan/wasserstoff/pkg/pdftext"
	"github.com/JagjeetChauhan/wasserstoff/pkg/report"
)

// ProcessAction runs the full batch: enumerate PDFs, process them through
// the worker pool, print the run report and store summary, and record the
// run in the ledger. Per-file failures never fail the command; only a
// missing directory, bad config or unreachable store do.
func ProcessAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	applyFlags(c, cfg)

	if cfg.SourceDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no source directory (use --dir or source_dir in the config file)")
		os.Exit(1)
	}

	// DirectoryNotFound is fatal: it aborts before any file is processed.
	paths, err := pdftext.ListPDFs(cfg.SourceDir)
	if err != nil {
		logger.Error("failed to list PDFs", "dir", cfg.SourceDir, "error", err)
		os.Exit(2)
	}

	failureFile, err := os.OpenFile(cfg.FailureLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logger.Error("failed to open failure log", "path", cfg.FailureLog, "error", err)
		os.Exit(2)
	}
	defer failureFile.Close()
	failures := slog.New(slog.NewJSONHandler(failureFile, nil))

	ctx := context.Background()
	store, err := docstore.NewMongoStore(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("failed to connect to document store", "error", err)
		os.Exit(2)
	}
	defer store.Close(ctx)

	start := time.Now()
	results := Run(ctx, logger, store, paths, Options{
		Workers:          cfg.Workers,
		SummarySentences: cfg.SummarySentences,
		MaxKeywords:      cfg.MaxKeywords,
	})
	stats := Reduce(results)
	stats.Duration = time.Since(start)

	LogFailures(failures, results)

	fmt.Print(report.RenderRun(stats))

	agg, err := store.Aggregate(ctx)
	if err != nil {
		logger.Error("aggregate query failed", "error", err)
	} else {
		fmt.Print(report.RenderStore(agg))
	}

	recordRun(logger, cfg, stats)
	return nil
}

// recordRun appends the run to the local ledger. Ledger problems are logged
// and ignored: the batch already succeeded.
func recordRun(logger *slog.Logger, cfg *models.Config, stats models.RunStats) {
	ledger, err := db.Open(cfg.LedgerPath)
	if err != nil {
		logger.Warn("failed to open run ledger", "path", cfg.LedgerPath, "error", err)
		return
	}
	defer ledger.Close()

	if _, err := ledger.RecordRun(cfg.SourceDir, stats); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}

// applyFlags overrides config fields with any flags the user set.
// Non-positive numeric flags are ignored, the same way LoadConfig backfills
// non-positive values from the file.
func applyFlags(c *cli.Context, cfg *models.Config) {
	if c.IsSet("dir") {
		cfg.SourceDir = c.String("dir")
	}
	if n := c.Int("workers"); c.IsSet("workers") && n > 0 {
		cfg.Workers = n
	}
	if n := c.Int("sentences"); c.IsSet("sentences") && n > 0 {
		cfg.SummarySentences = n
	}
	if n := c.Int("keywords"); c.IsSet("keywords") && n > 0 {
		cfg.MaxKeywords = n
	}
	if c.IsSet("mongo-uri") {
		cfg.Mongo.URI = c.String("mongo-uri")
	}
}
