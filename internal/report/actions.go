// Package report implements the report CLI command: a read-only view of the
// document store and the local run ledger.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/JagjeetChauhan/wasserstoff/models"
	"github.com/JagjeetChauhan/wasserstoff/pkg/db"
	"github.com/JagjeetChauhan/wasserstoff/pkg/docstore"
	"github.com/JagjeetChauhan/wasserstoff/pkg/report"
)

// ReportAction prints the store aggregate and recent runs without
// processing anything.
func ReportAction(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if c.IsSet("mongo-uri") {
		cfg.Mongo.URI = c.String("mongo-uri")
	}

	ctx := context.Background()
	store, err := docstore.NewMongoStore(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("failed to connect to document store", "error", err)
		os.Exit(2)
	}
	defer store.Close(ctx)

	agg, err := store.Aggregate(ctx)
	if err != nil {
		logger.Error("aggregate query failed", "error", err)
		os.Exit(2)
	}
	fmt.Print(report.RenderStore(agg))

	ledger, err := db.Open(cfg.LedgerPath)
	if err != nil {
		logger.Error("failed to open run ledger", "path", cfg.LedgerPath, "error", err)
		return nil
	}
	defer ledger.Close()

	runs, err := ledger.RecentRuns(c.Int("limit"))
	if err != nil {
		logger.Error("failed to list runs", "error", err)
		return nil
	}
	fmt.Print(report.RenderRuns(runs))

	return nil
}
