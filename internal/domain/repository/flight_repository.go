package repository

import (
	"context"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"
)

// FlightRepository defines the interface for flight record operations
type FlightRepository interface {
	// Create persists a new flight row.
	Create(ctx context.Context, flight *entity.Flight) error

	// Exists reports whether a flight with the given natural key is already
	// stored. An empty flightNumber weakens the key to (date, origin,
	// destination).
	Exists(ctx context.Context, flightDate, origin, destination, flightNumber string) (bool, error)

	// List returns flights matching the filter plus the unpaginated total,
	// ordered by date then departure time, newest first.
	List(ctx context.Context, filter entity.FlightFilter) ([]entity.Flight, int64, error)

	// WindowTotals counts non-deadhead flights and sums their block minutes
	// for dates in (cutoff, asOf], or [cutoff, asOf] when inclusiveCutoff
	// is set. Dates are ISO strings.
	WindowTotals(ctx context.Context, cutoff, asOf string, inclusiveCutoff bool) (flights, minutes int, err error)

	// CareerTotals returns overall totals without breakdowns.
	CareerTotals(ctx context.Context, rng entity.DateRange) (*entity.CareerStats, error)

	// TotalsByAircraftType groups totals by canonical type, most-flown first.
	TotalsByAircraftType(ctx context.Context, rng entity.DateRange) ([]entity.TypeStats, error)

	// TotalsByYear groups totals by calendar year, ascending.
	TotalsByYear(ctx context.Context) ([]entity.YearStats, error)

	// RouteTotals groups totals by (origin, destination) pair.
	RouteTotals(ctx context.Context, rng entity.DateRange) ([]entity.RouteStats, error)

	// DepartureCounts and ArrivalCounts return per-airport visit counts.
	DepartureCounts(ctx context.Context, rng entity.DateRange) (map[string]int, error)
	ArrivalCounts(ctx context.Context, rng entity.DateRange) (map[string]int, error)

	// DistinctAirportCodes returns every airport code appearing as an origin
	// or destination.
	DistinctAirportCodes(ctx context.Context) ([]string, error)
}
