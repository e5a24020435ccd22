// Package docstore persists processed document records and answers
// aggregate queries over the stored collection.
package docstore

import (
	"context"

	"github.com/JagjeetChauhan/wasserstoff/models"
)

// Aggregate summarizes the stored collection.
type Aggregate struct {
	Count       int64
	AverageSize float64
}

// Store is an append-only sink for document records. Insert never updates
// an existing record; re-processing a directory produces duplicates.
type Store interface {
	Insert(ctx context.Context, record *models.Record) error
	Aggregate(ctx context.Context) (Aggregate, error)
	Close(ctx context.Context) error
}
