package repository

import (
	"context"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"
)

// AirportRepository defines the interface for airport reference data
type AirportRepository interface {
	// GetByICAO returns one airport or nil when unknown.
	GetByICAO(ctx context.Context, icao string) (*entity.Airport, error)

	// ListByICAO returns the airports matching any of the given codes.
	ListByICAO(ctx context.Context, codes []string) ([]entity.Airport, error)

	// Upsert inserts or replaces a reference row.
	Upsert(ctx context.Context, airport *entity.Airport) error

	// List returns all airports ordered by ICAO code.
	List(ctx context.Context) ([]entity.Airport, error)
}
