package report

import (
	"strings"
	"testing"
	"time"

	"github.com/JagjeetChauhan/wasserstoff/models"
	"github.com/JagjeetChauhan/wasserstoff/pkg/db"
	"github.com/JagjeetChauhan/wasserstoff/pkg/docstore"
)

func TestRenderRun(t *testing.T) {
	stats := models.RunStats{
		Processed:  2,
		Failed:     1,
		TotalBytes: 4096,
		Duration:   1200 * time.Millisecond,
	}

	out := RenderRun(stats)
	for _, want := range []string{
		"Total PDFs processed: 2",
		"Total PDFs failed: 1",
		"Total file size processed: 4.00 KB",
		"Average file size: 2.00 KB",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderRun() missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderRun_ZeroStats(t *testing.T) {
	out := RenderRun(models.RunStats{})
	for _, want := range []string{
		"Total PDFs processed: 0",
		"Total PDFs failed: 0",
		"Total file size processed: 0.00 KB",
		"Average file size: 0.00 KB",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderRun() missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderStore(t *testing.T) {
	out := RenderStore(docstore.Aggregate{Count: 3, AverageSize: 2048})
	if !strings.Contains(out, "Total documents stored: 3") {
		t.Errorf("RenderStore() missing count in:\n%s", out)
	}
	if !strings.Contains(out, "Average file size stored: 2.00 KB") {
		t.Errorf("RenderStore() missing average in:\n%s", out)
	}
}

func TestRenderStore_Empty(t *testing.T) {
	out := RenderStore(docstore.Aggregate{})
	if !strings.Contains(out, "Total documents stored: 0") {
		t.Errorf("RenderStore() missing zero count in:\n%s", out)
	}
	if !strings.Contains(out, "Average file size stored: 0.00 KB") {
		t.Errorf("RenderStore() missing zero average in:\n%s", out)
	}
}

func TestRenderRuns(t *testing.T) {
	if out := RenderRuns(nil); !strings.Contains(out, "No recorded runs") {
		t.Errorf("RenderRuns(nil) = %q, want placeholder text", out)
	}

	runs := []db.Run{
		{RunID: 2, SourceDir: "/data/pdfs", ProcessedCount: 4, FailedCount: 0, TotalSizeBytes: 1024, DurationMS: 250},
	}
	out := RenderRuns(runs)
	if !strings.Contains(out, "#2") || !strings.Contains(out, "/data/pdfs") {
		t.Errorf("RenderRuns() missing run line in:\n%s", out)
	}
}
