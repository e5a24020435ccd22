package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.SummarySentences != 3 {
		t.Errorf("SummarySentences = %d, want 3", cfg.SummarySentences)
	}
	if cfg.MaxKeywords != 5 {
		t.Errorf("MaxKeywords = %d, want 5", cfg.MaxKeywords)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("Mongo.URI = %q, want default", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "pdf_database" || cfg.Mongo.Collection != "pdf_documents" {
		t.Errorf("Mongo defaults not applied: %+v", cfg.Mongo)
	}
}

func TestLoadConfig_FileOverridesAndBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
source_dir: /data/pdfs
summary_sentences: 7
workers: 2
mongo:
  uri: mongodb://db.internal:27017
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.SourceDir != "/data/pdfs" {
		t.Errorf("SourceDir = %q, want /data/pdfs", cfg.SourceDir)
	}
	if cfg.SummarySentences != 7 {
		t.Errorf("SummarySentences = %d, want 7", cfg.SummarySentences)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
	if cfg.Mongo.URI != "mongodb://db.internal:27017" {
		t.Errorf("Mongo.URI = %q, want override", cfg.Mongo.URI)
	}
	// Fields the file omitted fall back to defaults.
	if cfg.MaxKeywords != 5 {
		t.Errorf("MaxKeywords = %d, want backfilled 5", cfg.MaxKeywords)
	}
	if cfg.Mongo.Database != "pdf_database" {
		t.Errorf("Mongo.Database = %q, want backfilled default", cfg.Mongo.Database)
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("source_dir: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() on malformed YAML returned nil error")
	}
}
