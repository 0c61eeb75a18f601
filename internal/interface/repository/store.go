package repository

import (
	"context"

	"github.com/DarrellThomas/PilotLog/internal/domain/repository"

	"gorm.io/gorm"
)

// GormStore implements the Store interface over a single gorm session
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store bound to db and ensures the schema exists
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&ImportBatches{}, &Flights{}, &Airports{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

// Flights returns the flight repository for this session
func (s *GormStore) Flights() repository.FlightRepository {
	return NewGormFlightRepository(s.db)
}

// Batches returns the import batch repository for this session
func (s *GormStore) Batches() repository.ImportBatchRepository {
	return NewGormImportBatchRepository(s.db)
}

// Airports returns the airport repository for this session
func (s *GormStore) Airports() repository.AirportRepository {
	return NewGormAirportRepository(s.db)
}

// WithinTransaction runs fn against a store bound to one database
// transaction. The transaction commits when fn returns nil and rolls back
// entirely otherwise, so a failed import leaves no partial rows visible.
func (s *GormStore) WithinTransaction(ctx context.Context, fn func(repository.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
