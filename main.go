package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/JagjeetChauhan/wasserstoff/internal/pipeline"
	"github.com/JagjeetChauhan/wasserstoff/internal/report"
)

func main() {
	app := &cli.App{
		Name:  "pdf-pipeline",
		Usage: "batch-process a folder of PDFs: extract, summarize, store, report",
		Commands: []*cli.Command{
			{
				Name:   "process",
				Usage:  "process every PDF in a directory and print the run report",
				Action: pipeline.ProcessAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Value: "config.yaml",
						Usage: "path to the YAML config file",
					},
					&cli.StringFlag{
						Name:  "dir",
						Usage: "directory containing PDF files (overrides config)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "number of concurrent workers (overrides config)",
					},
					&cli.IntFlag{
						Name:  "sentences",
						Usage: "sentences per summary (overrides config)",
					},
					&cli.IntFlag{
						Name:  "keywords",
						Usage: "keywords per document (overrides config)",
					},
					&cli.StringFlag{
						Name:  "mongo-uri",
						Usage: "MongoDB connection string (overrides config)",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors to stderr",
					},
				},
			},
			{
				Name:   "report",
				Usage:  "print the document store summary and recent runs",
				Action: report.ReportAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Value: "config.yaml",
						Usage: "path to the YAML config file",
					},
					&cli.StringFlag{
						Name:  "mongo-uri",
						Usage: "MongoDB connection string (overrides config)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 10,
						Usage: "number of recent runs to show",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
