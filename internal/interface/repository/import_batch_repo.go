package repository

import (
	"context"
	"errors"
	"time"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"
	"github.com/DarrellThomas/PilotLog/internal/domain/repository"

	"gorm.io/gorm"
)

// GormImportBatchRepository implements the ImportBatchRepository interface
type GormImportBatchRepository struct {
	db *gorm.DB
}

// NewGormImportBatchRepository creates a new GORM import batch repository
func NewGormImportBatchRepository(db *gorm.DB) repository.ImportBatchRepository {
	return &GormImportBatchRepository{
		db: db,
	}
}

// ImportBatches GORM model for database mapping
type ImportBatches struct {
	ID            string    `gorm:"primaryKey;size:36"`
	Source        string    `gorm:"column:source;size:20;not null"`
	Filename      string    `gorm:"column:filename;size:255"`
	ImportedAt    time.Time `gorm:"column:imported_at;not null"`
	RowsProcessed int       `gorm:"column:rows_processed"`
	RowsImported  int       `gorm:"column:rows_imported"`
	RowsSkipped   int       `gorm:"column:rows_skipped"`
	RowsDuplicate int       `gorm:"column:rows_duplicate"`
}

// TableName overrides the default table name
func (ImportBatches) TableName() string {
	return "import_batches"
}

// Create persists a new batch row
func (r *GormImportBatchRepository) Create(ctx context.Context, batch *entity.ImportBatch) error {
	model := &ImportBatches{
		ID:            batch.ID,
		Source:        batch.Source,
		Filename:      batch.Filename,
		ImportedAt:    batch.ImportedAt,
		RowsProcessed: batch.RowsProcessed,
		RowsImported:  batch.RowsImported,
		RowsSkipped:   batch.RowsSkipped,
		RowsDuplicate: batch.RowsDuplicate,
	}
	return r.db.WithContext(ctx).Create(model).Error
}

// UpdateCounts finalizes the four row counters of a batch
func (r *GormImportBatchRepository) UpdateCounts(ctx context.Context, id string, processed, imported, skipped, duplicate int) error {
	return r.db.WithContext(ctx).Model(&ImportBatches{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rows_processed": processed,
			"rows_imported":  imported,
			"rows_skipped":   skipped,
			"rows_duplicate": duplicate,
		}).Error
}

// GetByID returns a batch by its token
func (r *GormImportBatchRepository) GetByID(ctx context.Context, id string) (*entity.ImportBatch, error) {
	var model ImportBatches
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &entity.ImportBatch{
		ID:            model.ID,
		Source:        model.Source,
		Filename:      model.Filename,
		ImportedAt:    model.ImportedAt,
		RowsProcessed: model.RowsProcessed,
		RowsImported:  model.RowsImported,
		RowsSkipped:   model.RowsSkipped,
		RowsDuplicate: model.RowsDuplicate,
	}, nil
}
