// Package models defines data structures for configuration and pipeline records.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MongoConfig holds the connection settings for the document store.
type MongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// Config holds runtime configuration for a pipeline run.
// Values come from an optional YAML file; CLI flags override individual fields.
type Config struct {
	SourceDir        string      `yaml:"source_dir"`
	SummarySentences int         `yaml:"summary_sentences"`
	MaxKeywords      int         `yaml:"max_keywords"`
	Workers          int         `yaml:"workers"`
	FailureLog       string      `yaml:"failure_log"`
	LedgerPath       string      `yaml:"ledger_path"`
	Mongo            MongoConfig `yaml:"mongo"`
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		SummarySentences: 3,
		MaxKeywords:      5,
		Workers:          4,
		FailureLog:       "pdf-pipeline.log",
		LedgerPath:       "pdf-pipeline.db",
		Mongo: MongoConfig{
			URI:        "mongodb://localhost:27017",
			Database:   "pdf_database",
			Collection: "pdf_documents",
		},
	}
}

// LoadConfig reads a YAML config file and applies defaults for unset fields.
// A missing file is not an error; the defaults are returned as-is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Re-apply defaults for fields the file zeroed or omitted.
	if cfg.SummarySentences <= 0 {
		cfg.SummarySentences = 3
	}
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = 5
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.FailureLog == "" {
		cfg.FailureLog = "pdf-pipeline.log"
	}
	if cfg.LedgerPath == "" {
		cfg.LedgerPath = "pdf-pipeline.db"
	}
	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = "mongodb://localhost:27017"
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "pdf_database"
	}
	if cfg.Mongo.Collection == "" {
		cfg.Mongo.Collection = "pdf_documents"
	}

	return cfg, nil
}
