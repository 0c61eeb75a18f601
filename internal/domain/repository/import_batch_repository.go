package repository

import (
	"context"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"
)

// ImportBatchRepository defines the interface for import batch operations
type ImportBatchRepository interface {
	// Create persists a new batch row. Must happen before any flight row
	// referencing the batch.
	Create(ctx context.Context, batch *entity.ImportBatch) error

	// UpdateCounts finalizes the four row counters of a batch.
	UpdateCounts(ctx context.Context, id string, processed, imported, skipped, duplicate int) error

	// GetByID returns a batch by its token.
	GetByID(ctx context.Context, id string) (*entity.ImportBatch, error)
}
