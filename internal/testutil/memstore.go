// Package testutil provides an in-memory Store implementation for tests.
package testutil

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"
	"github.com/DarrellThomas/PilotLog/internal/domain/repository"
	"github.com/DarrellThomas/PilotLog/pkg/roster"
)

// MemStore is an in-memory Store. WithinTransaction runs against a deep copy
// that replaces the live data only on success, matching the all-or-nothing
// visibility of the real store.
type MemStore struct {
	FlightRows  []entity.Flight
	BatchRows   map[string]entity.ImportBatch
	AirportRows map[string]entity.Airport

	// FlightCreateErr makes every flight insert fail, to exercise rollback.
	FlightCreateErr error

	nextID int64
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{
		BatchRows:   make(map[string]entity.ImportBatch),
		AirportRows: make(map[string]entity.Airport),
	}
}

// AddFlight seeds a flight row directly, bypassing the import pipeline.
func (s *MemStore) AddFlight(f entity.Flight) {
	s.nextID++
	f.ID = s.nextID
	s.FlightRows = append(s.FlightRows, f)
}

func (s *MemStore) clone() *MemStore {
	c := &MemStore{
		FlightRows:      make([]entity.Flight, len(s.FlightRows)),
		BatchRows:       make(map[string]entity.ImportBatch, len(s.BatchRows)),
		AirportRows:     make(map[string]entity.Airport, len(s.AirportRows)),
		FlightCreateErr: s.FlightCreateErr,
		nextID:          s.nextID,
	}
	copy(c.FlightRows, s.FlightRows)
	for k, v := range s.BatchRows {
		c.BatchRows[k] = v
	}
	for k, v := range s.AirportRows {
		c.AirportRows[k] = v
	}
	return c
}

// Flights returns the flight repository
func (s *MemStore) Flights() repository.FlightRepository {
	return &memFlightRepo{store: s}
}

// Batches returns the import batch repository
func (s *MemStore) Batches() repository.ImportBatchRepository {
	return &memBatchRepo{store: s}
}

// Airports returns the airport repository
func (s *MemStore) Airports() repository.AirportRepository {
	return &memAirportRepo{store: s}
}

// WithinTransaction commits fn's writes only when fn returns nil
func (s *MemStore) WithinTransaction(ctx context.Context, fn func(repository.Store) error) error {
	c := s.clone()
	if err := fn(c); err != nil {
		return err
	}
	s.FlightRows = c.FlightRows
	s.BatchRows = c.BatchRows
	s.AirportRows = c.AirportRows
	s.nextID = c.nextID
	return nil
}

func inRange(date string, rng entity.DateRange) bool {
	if rng.From != "" && date < rng.From {
		return false
	}
	if rng.To != "" && date > rng.To {
		return false
	}
	return true
}

type memFlightRepo struct {
	store *MemStore
}

func (r *memFlightRepo) Create(ctx context.Context, flight *entity.Flight) error {
	if r.store.FlightCreateErr != nil {
		return r.store.FlightCreateErr
	}
	r.store.nextID++
	flight.ID = r.store.nextID
	r.store.FlightRows = append(r.store.FlightRows, *flight)
	return nil
}

func (r *memFlightRepo) Exists(ctx context.Context, flightDate, origin, destination, flightNumber string) (bool, error) {
	for _, f := range r.store.FlightRows {
		if f.FlightDate != flightDate || f.Origin != origin || f.Destination != destination {
			continue
		}
		if flightNumber != "" && f.FlightNumber != flightNumber {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (r *memFlightRepo) List(ctx context.Context, filter entity.FlightFilter) ([]entity.Flight, int64, error) {
	var matched []entity.Flight
	for _, f := range r.store.FlightRows {
		if !inRange(f.FlightDate, entity.DateRange{From: filter.DateFrom, To: filter.DateTo}) {
			continue
		}
		if filter.Origin != "" && f.Origin != filter.Origin {
			continue
		}
		if filter.Destination != "" && f.Destination != filter.Destination {
			continue
		}
		if filter.Crew != "" && !strings.Contains(strings.ToUpper(f.CrewName), strings.ToUpper(filter.Crew)) {
			continue
		}
		if filter.Tail != "" && !strings.Contains(strings.ToUpper(f.TailNumber), strings.ToUpper(filter.Tail)) {
			continue
		}
		if filter.AircraftType != "" && f.AircraftType != filter.AircraftType {
			continue
		}
		matched = append(matched, f)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].FlightDate != matched[j].FlightDate {
			return matched[i].FlightDate > matched[j].FlightDate
		}
		di, dj := -1, -1
		if matched[i].DepartureTime != nil {
			di = *matched[i].DepartureTime
		}
		if matched[j].DepartureTime != nil {
			dj = *matched[j].DepartureTime
		}
		return di > dj
	})

	total := int64(len(matched))
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	if filter.Offset < len(matched) {
		matched = matched[filter.Offset:]
	} else {
		matched = nil
	}
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (r *memFlightRepo) WindowTotals(ctx context.Context, cutoff, asOf string, inclusiveCutoff bool) (int, int, error) {
	flights, minutes := 0, 0
	for _, f := range r.store.FlightRows {
		if f.IsDeadhead || f.FlightDate > asOf {
			continue
		}
		if inclusiveCutoff {
			if f.FlightDate < cutoff {
				continue
			}
		} else if f.FlightDate <= cutoff {
			continue
		}
		flights++
		minutes += f.BlockMinutes
	}
	return flights, minutes, nil
}

func (r *memFlightRepo) CareerTotals(ctx context.Context, rng entity.DateRange) (*entity.CareerStats, error) {
	stats := &entity.CareerStats{}
	airports := make(map[string]struct{})
	tails := make(map[string]struct{})

	for _, f := range r.store.FlightRows {
		if !inRange(f.FlightDate, rng) {
			continue
		}
		stats.TotalFlights++
		stats.TotalBlockMinutes += f.BlockMinutes
		airports[f.Origin] = struct{}{}
		airports[f.Destination] = struct{}{}
		if f.TailNumber != "" {
			tails[f.TailNumber] = struct{}{}
		}
		if stats.FirstFlight == "" || f.FlightDate < stats.FirstFlight {
			stats.FirstFlight = f.FlightDate
		}
		if f.FlightDate > stats.LastFlight {
			stats.LastFlight = f.FlightDate
		}
	}

	stats.UniqueAirports = len(airports)
	stats.UniqueAircraft = len(tails)
	stats.TotalBlockFormatted = roster.FormatMinutes(stats.TotalBlockMinutes)
	return stats, nil
}

func (r *memFlightRepo) TotalsByAircraftType(ctx context.Context, rng entity.DateRange) ([]entity.TypeStats, error) {
	byType := make(map[string]*entity.TypeStats)
	for _, f := range r.store.FlightRows {
		if !inRange(f.FlightDate, rng) {
			continue
		}
		name := f.AircraftType
		if name == "" {
			name = "Unknown"
		}
		s, ok := byType[name]
		if !ok {
			s = &entity.TypeStats{Type: name}
			byType[name] = s
		}
		s.Flights++
		s.Minutes += f.BlockMinutes
	}

	stats := make([]entity.TypeStats, 0, len(byType))
	for _, s := range byType {
		stats = append(stats, *s)
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Flights > stats[j].Flights })
	return stats, nil
}

func (r *memFlightRepo) TotalsByYear(ctx context.Context) ([]entity.YearStats, error) {
	byYear := make(map[int]*entity.YearStats)
	for _, f := range r.store.FlightRows {
		if len(f.FlightDate) < 4 {
			continue
		}
		year, err := strconv.Atoi(f.FlightDate[:4])
		if err != nil {
			continue
		}
		s, ok := byYear[year]
		if !ok {
			s = &entity.YearStats{Year: year}
			byYear[year] = s
		}
		s.Flights++
		s.Minutes += f.BlockMinutes
	}

	stats := make([]entity.YearStats, 0, len(byYear))
	for _, s := range byYear {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Year < stats[j].Year })
	return stats, nil
}

func (r *memFlightRepo) RouteTotals(ctx context.Context, rng entity.DateRange) ([]entity.RouteStats, error) {
	byRoute := make(map[string]*entity.RouteStats)
	for _, f := range r.store.FlightRows {
		if !inRange(f.FlightDate, rng) {
			continue
		}
		key := f.Origin + "|" + f.Destination
		s, ok := byRoute[key]
		if !ok {
			s = &entity.RouteStats{Origin: f.Origin, Destination: f.Destination}
			byRoute[key] = s
		}
		s.Count++
		s.TotalMinutes += f.BlockMinutes
		if s.FirstFlown == "" || f.FlightDate < s.FirstFlown {
			s.FirstFlown = f.FlightDate
		}
		if f.FlightDate > s.LastFlown {
			s.LastFlown = f.FlightDate
		}
	}

	stats := make([]entity.RouteStats, 0, len(byRoute))
	for _, s := range byRoute {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Origin != stats[j].Origin {
			return stats[i].Origin < stats[j].Origin
		}
		return stats[i].Destination < stats[j].Destination
	})
	return stats, nil
}

func (r *memFlightRepo) DepartureCounts(ctx context.Context, rng entity.DateRange) (map[string]int, error) {
	counts := make(map[string]int)
	for _, f := range r.store.FlightRows {
		if inRange(f.FlightDate, rng) {
			counts[f.Origin]++
		}
	}
	return counts, nil
}

func (r *memFlightRepo) ArrivalCounts(ctx context.Context, rng entity.DateRange) (map[string]int, error) {
	counts := make(map[string]int)
	for _, f := range r.store.FlightRows {
		if inRange(f.FlightDate, rng) {
			counts[f.Destination]++
		}
	}
	return counts, nil
}

func (r *memFlightRepo) DistinctAirportCodes(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	for _, f := range r.store.FlightRows {
		seen[f.Origin] = struct{}{}
		seen[f.Destination] = struct{}{}
	}
	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

type memBatchRepo struct {
	store *MemStore
}

func (r *memBatchRepo) Create(ctx context.Context, batch *entity.ImportBatch) error {
	r.store.BatchRows[batch.ID] = *batch
	return nil
}

func (r *memBatchRepo) UpdateCounts(ctx context.Context, id string, processed, imported, skipped, duplicate int) error {
	batch := r.store.BatchRows[id]
	batch.RowsProcessed = processed
	batch.RowsImported = imported
	batch.RowsSkipped = skipped
	batch.RowsDuplicate = duplicate
	r.store.BatchRows[id] = batch
	return nil
}

func (r *memBatchRepo) GetByID(ctx context.Context, id string) (*entity.ImportBatch, error) {
	batch, ok := r.store.BatchRows[id]
	if !ok {
		return nil, nil
	}
	return &batch, nil
}

type memAirportRepo struct {
	store *MemStore
}

func (r *memAirportRepo) GetByICAO(ctx context.Context, icao string) (*entity.Airport, error) {
	airport, ok := r.store.AirportRows[strings.ToUpper(icao)]
	if !ok {
		return nil, nil
	}
	return &airport, nil
}

func (r *memAirportRepo) ListByICAO(ctx context.Context, codes []string) ([]entity.Airport, error) {
	var airports []entity.Airport
	for _, code := range codes {
		if airport, ok := r.store.AirportRows[code]; ok {
			airports = append(airports, airport)
		}
	}
	return airports, nil
}

func (r *memAirportRepo) Upsert(ctx context.Context, airport *entity.Airport) error {
	r.store.AirportRows[strings.ToUpper(airport.ICAO)] = *airport
	return nil
}

func (r *memAirportRepo) List(ctx context.Context) ([]entity.Airport, error) {
	codes := make([]string, 0, len(r.store.AirportRows))
	for code := range r.store.AirportRows {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	airports := make([]entity.Airport, 0, len(codes))
	for _, code := range codes {
		airports = append(airports, r.store.AirportRows[code])
	}
	return airports, nil
}
