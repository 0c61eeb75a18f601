package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"
	"github.com/DarrellThomas/PilotLog/internal/domain/repository"
	"github.com/DarrellThomas/PilotLog/pkg/logger"
)

// StatisticsCalculator answers career, route and airport statistics queries.
// Queries are read-only and run outside any transaction, so results composed
// from several calls may straddle a concurrent import commit.
type StatisticsCalculator struct {
	store  repository.Store
	logger logger.Logger
}

// NewStatisticsCalculator creates a new statistics calculator
func NewStatisticsCalculator(store repository.Store, log logger.Logger) *StatisticsCalculator {
	return &StatisticsCalculator{
		store:  store,
		logger: log,
	}
}

// Career returns overall totals with per-aircraft-type and per-year
// breakdowns, optionally restricted to a date range. The per-year breakdown
// always spans the whole logbook.
func (s *StatisticsCalculator) Career(ctx context.Context, rng entity.DateRange) (*entity.CareerStats, error) {
	stats, err := s.store.Flights().CareerTotals(ctx, rng)
	if err != nil {
		return nil, err
	}

	stats.ByAircraftType, err = s.store.Flights().TotalsByAircraftType(ctx, rng)
	if err != nil {
		return nil, err
	}

	stats.ByYear, err = s.store.Flights().TotalsByYear(ctx)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// Routes returns per-route totals for map visualization.
func (s *StatisticsCalculator) Routes(ctx context.Context, rng entity.DateRange) ([]entity.RouteStats, error) {
	return s.store.Flights().RouteTotals(ctx, rng)
}

// Airports returns departure and arrival counts per airport, joined with
// static reference data. Airports without a reference row still appear, with
// absent name and coordinates.
func (s *StatisticsCalculator) Airports(ctx context.Context, rng entity.DateRange) ([]entity.AirportStats, error) {
	departures, err := s.store.Flights().DepartureCounts(ctx, rng)
	if err != nil {
		return nil, err
	}
	arrivals, err := s.store.Flights().ArrivalCounts(ctx, rng)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(departures)+len(arrivals))
	seen := make(map[string]struct{}, len(departures)+len(arrivals))
	for icao := range departures {
		if _, ok := seen[icao]; !ok {
			seen[icao] = struct{}{}
			codes = append(codes, icao)
		}
	}
	for icao := range arrivals {
		if _, ok := seen[icao]; !ok {
			seen[icao] = struct{}{}
			codes = append(codes, icao)
		}
	}
	sort.Strings(codes)

	reference, err := s.store.Airports().ListByICAO(ctx, codes)
	if err != nil {
		return nil, err
	}
	byICAO := make(map[string]entity.Airport, len(reference))
	for _, a := range reference {
		byICAO[a.ICAO] = a
	}

	stats := make([]entity.AirportStats, 0, len(codes))
	for _, icao := range codes {
		stat := entity.AirportStats{
			ICAO:       icao,
			Departures: departures[icao],
			Arrivals:   arrivals[icao],
		}
		stat.TotalVisits = stat.Departures + stat.Arrivals
		if airport, ok := byICAO[icao]; ok {
			stat.Name = airport.Name
			stat.Latitude = airport.Latitude
			stat.Longitude = airport.Longitude
		}
		stats = append(stats, stat)
	}

	return stats, nil
}

// RouteIntensity maps a route count to [0,1] on a log scale, giving
// diminishing sensitivity at high counts. Zero when either count is not
// positive.
func RouteIntensity(count, maxCount int) float64 {
	if maxCount <= 0 || count <= 0 {
		return 0.0
	}

	logCount := math.Log10(float64(count) + 1)
	logMax := math.Log10(float64(maxCount) + 1)
	if logMax <= 0 {
		return 0.0
	}

	return logCount / logMax
}

// TopRoutes returns the n most frequently flown routes. Non-positive n
// yields an empty result.
func TopRoutes(routes []entity.RouteStats, n int) []entity.RouteStats {
	if n <= 0 {
		return nil
	}
	sorted := make([]entity.RouteStats, len(routes))
	copy(sorted, routes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// TopAirports returns the n most visited airports (departures + arrivals).
// Non-positive n yields an empty result.
func TopAirports(airports []entity.AirportStats, n int) []entity.AirportStats {
	if n <= 0 {
		return nil
	}
	sorted := make([]entity.AirportStats, len(airports))
	copy(sorted, airports)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalVisits > sorted[j].TotalVisits
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
