// Package report renders run and store summaries as human-readable text.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/JagjeetChauhan/wasserstoff/models"
	"github.com/JagjeetChauhan/wasserstoff/pkg/db"
	"github.com/JagjeetChauhan/wasserstoff/pkg/docstore"
)

func kb(bytes float64) float64 {
	return bytes / 1024
}

// RenderRun formats the outcome of one batch run.
func RenderRun(stats models.RunStats) string {
	var sb strings.Builder
	sb.WriteString("--------- PDF Processing Report ---------\n")
	fmt.Fprintf(&sb, "Total PDFs processed: %d\n", stats.Processed)
	fmt.Fprintf(&sb, "Total PDFs failed: %d\n", stats.Failed)
	fmt.Fprintf(&sb, "Total file size processed: %.2f KB\n", kb(float64(stats.TotalBytes)))
	fmt.Fprintf(&sb, "Average file size: %.2f KB\n", kb(stats.AverageBytes()))
	fmt.Fprintf(&sb, "Elapsed time: %s\n", stats.Duration.Round(time.Millisecond))
	sb.WriteString("-----------------------------------------\n")
	return sb.String()
}

// RenderStore formats the aggregate view of the document store.
func RenderStore(agg docstore.Aggregate) string {
	var sb strings.Builder
	sb.WriteString("--------- Document Store Summary ---------\n")
	fmt.Fprintf(&sb, "Total documents stored: %d\n", agg.Count)
	fmt.Fprintf(&sb, "Average file size stored: %.2f KB\n", kb(agg.AverageSize))
	sb.WriteString("------------------------------------------\n")
	return sb.String()
}

// RenderRuns formats the recent-run ledger, newest first.
func RenderRuns(runs []db.Run) string {
	if len(runs) == 0 {
		return "No recorded runs.\n"
	}

	var sb strings.Builder
	sb.WriteString("--------- Recent Runs ---------\n")
	for _, r := range runs {
		fmt.Fprintf(&sb, "#%d %s %s: %d processed, %d failed, %.2f KB in %dms\n",
			r.RunID, r.StartedAt.Format("2006-01-02 15:04:05"), r.SourceDir,
			r.ProcessedCount, r.FailedCount, kb(float64(r.TotalSizeBytes)), r.DurationMS)
	}
	sb.WriteString("-------------------------------\n")
	return sb.String()
}
