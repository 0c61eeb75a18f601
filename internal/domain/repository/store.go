package repository

import "context"

// Store bundles the repositories behind one transactional session. The import
// and aggregation cores depend only on this interface, not on any storage
// engine.
type Store interface {
	Flights() FlightRepository
	Batches() ImportBatchRepository
	Airports() AirportRepository

	// WithinTransaction runs fn against a Store whose writes are committed
	// atomically when fn returns nil and rolled back entirely otherwise.
	WithinTransaction(ctx context.Context, fn func(Store) error) error
}
