package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"
	"github.com/DarrellThomas/PilotLog/internal/domain/repository"
	"github.com/DarrellThomas/PilotLog/pkg/roster"

	"gorm.io/gorm"
)

// GormFlightRepository implements the FlightRepository interface
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository
func NewGormFlightRepository(db *gorm.DB) repository.FlightRepository {
	return &GormFlightRepository{
		db: db,
	}
}

// Flights GORM model for database mapping
type Flights struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Source          string `gorm:"column:source;size:20;not null"`
	FlightDate      string `gorm:"column:flight_date;size:10;not null;index"`
	FlightNumber    string `gorm:"column:flight_number;size:20"`
	Origin          string `gorm:"column:origin;size:4;not null;index;index:ix_flights_route,priority:1"`
	Destination     string `gorm:"column:destination;size:4;not null;index;index:ix_flights_route,priority:2"`
	DepartureTime   *int   `gorm:"column:departure_time"`
	ArrivalTime     *int   `gorm:"column:arrival_time"`
	BlockMinutes    int    `gorm:"column:block_minutes;not null;default:0"`
	TailNumber      string `gorm:"column:tail_number;size:10;index"`
	AircraftTypeRaw string `gorm:"column:aircraft_type_raw;size:20"`
	AircraftType    string `gorm:"column:aircraft_type;size:20;index"`
	IsDeadhead      bool   `gorm:"column:is_deadhead;not null;default:false"`
	PicTakeoff      bool   `gorm:"column:pic_takeoff;not null;default:false"`
	PicLanding      bool   `gorm:"column:pic_landing;not null;default:false"`
	CrewPosition    string `gorm:"column:crew_position;size:5"`
	CrewName        string `gorm:"column:crew_name;size:100;index"`
	CrewID          string `gorm:"column:crew_id;size:20"`
	Remarks         string `gorm:"column:remarks;type:text"`
	ImportBatchID   string `gorm:"column:import_batch_id;size:36"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the default table name
func (Flights) TableName() string {
	return "flights"
}

func toFlightModel(f *entity.Flight) *Flights {
	return &Flights{
		ID:              f.ID,
		Source:          f.Source,
		FlightDate:      f.FlightDate,
		FlightNumber:    f.FlightNumber,
		Origin:          f.Origin,
		Destination:     f.Destination,
		DepartureTime:   f.DepartureTime,
		ArrivalTime:     f.ArrivalTime,
		BlockMinutes:    f.BlockMinutes,
		TailNumber:      f.TailNumber,
		AircraftTypeRaw: f.AircraftTypeRaw,
		AircraftType:    f.AircraftType,
		IsDeadhead:      f.IsDeadhead,
		PicTakeoff:      f.PICTakeoff,
		PicLanding:      f.PICLanding,
		CrewPosition:    f.CrewPosition,
		CrewName:        f.CrewName,
		CrewID:          f.CrewID,
		Remarks:         f.Remarks,
		ImportBatchID:   f.ImportBatchID,
	}
}

func toFlightEntity(m *Flights) entity.Flight {
	return entity.Flight{
		ID:              m.ID,
		Source:          m.Source,
		FlightDate:      m.FlightDate,
		FlightNumber:    m.FlightNumber,
		Origin:          m.Origin,
		Destination:     m.Destination,
		DepartureTime:   m.DepartureTime,
		ArrivalTime:     m.ArrivalTime,
		BlockMinutes:    m.BlockMinutes,
		TailNumber:      m.TailNumber,
		AircraftTypeRaw: m.AircraftTypeRaw,
		AircraftType:    m.AircraftType,
		IsDeadhead:      m.IsDeadhead,
		PICTakeoff:      m.PicTakeoff,
		PICLanding:      m.PicLanding,
		CrewPosition:    m.CrewPosition,
		CrewName:        m.CrewName,
		CrewID:          m.CrewID,
		Remarks:         m.Remarks,
		ImportBatchID:   m.ImportBatchID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// dateScope applies an optional inclusive date range filter.
func dateScope(rng entity.DateRange) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if rng.From != "" {
			db = db.Where("flight_date >= ?", rng.From)
		}
		if rng.To != "" {
			db = db.Where("flight_date <= ?", rng.To)
		}
		return db
	}
}

// Create persists a new flight row
func (r *GormFlightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	model := toFlightModel(flight)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	flight.ID = model.ID
	flight.CreatedAt = model.CreatedAt
	flight.UpdatedAt = model.UpdatedAt
	return nil
}

// Exists checks the natural key (date, route, optional flight number)
func (r *GormFlightRepository) Exists(ctx context.Context, flightDate, origin, destination, flightNumber string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&Flights{}).
		Where("flight_date = ?", flightDate).
		Where("origin = ?", origin).
		Where("destination = ?", destination)
	if flightNumber != "" {
		query = query.Where("flight_number = ?", flightNumber)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List queries flights with optional filters and pagination
func (r *GormFlightRepository) List(ctx context.Context, filter entity.FlightFilter) ([]entity.Flight, int64, error) {
	query := r.db.WithContext(ctx).Model(&Flights{}).
		Scopes(dateScope(entity.DateRange{From: filter.DateFrom, To: filter.DateTo}))

	if filter.Origin != "" {
		query = query.Where("origin = ?", filter.Origin)
	}
	if filter.Destination != "" {
		query = query.Where("destination = ?", filter.Destination)
	}
	if filter.Crew != "" {
		query = query.Where("crew_name ILIKE ?", "%"+filter.Crew+"%")
	}
	if filter.Tail != "" {
		query = query.Where("tail_number ILIKE ?", "%"+filter.Tail+"%")
	}
	if filter.AircraftType != "" {
		query = query.Where("aircraft_type = ?", filter.AircraftType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	var models []Flights
	err := query.
		Order("flight_date DESC").
		Order("departure_time DESC NULLS LAST").
		Limit(limit).
		Offset(filter.Offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	flights := make([]entity.Flight, 0, len(models))
	for i := range models {
		flights = append(flights, toFlightEntity(&models[i]))
	}
	return flights, total, nil
}

// WindowTotals sums non-deadhead flights inside one rolling window
func (r *GormFlightRepository) WindowTotals(ctx context.Context, cutoff, asOf string, inclusiveCutoff bool) (int, int, error) {
	query := r.db.WithContext(ctx).Model(&Flights{}).
		Where("is_deadhead = ?", false).
		Where("flight_date <= ?", asOf)
	if inclusiveCutoff {
		query = query.Where("flight_date >= ?", cutoff)
	} else {
		query = query.Where("flight_date > ?", cutoff)
	}

	var row struct {
		Flights int
		Minutes *int
	}
	err := query.
		Select("COUNT(id) AS flights, SUM(block_minutes) AS minutes").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}

	minutes := 0
	if row.Minutes != nil {
		minutes = *row.Minutes
	}
	return row.Flights, minutes, nil
}

// CareerTotals returns overall totals without breakdowns
func (r *GormFlightRepository) CareerTotals(ctx context.Context, rng entity.DateRange) (*entity.CareerStats, error) {
	var row struct {
		TotalFlights   int
		TotalMinutes   *int
		UniqueAircraft int
		FirstFlight    *string
		LastFlight     *string
	}
	err := r.db.WithContext(ctx).Model(&Flights{}).
		Scopes(dateScope(rng)).
		Select(`COUNT(id) AS total_flights,
			SUM(block_minutes) AS total_minutes,
			COUNT(DISTINCT NULLIF(tail_number, '')) AS unique_aircraft,
			MIN(flight_date) AS first_flight,
			MAX(flight_date) AS last_flight`).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	uniqueAirports, err := r.distinctAirportCount(ctx, rng)
	if err != nil {
		return nil, err
	}

	stats := &entity.CareerStats{
		TotalFlights:   row.TotalFlights,
		UniqueAirports: uniqueAirports,
		UniqueAircraft: row.UniqueAircraft,
	}
	if row.TotalMinutes != nil {
		stats.TotalBlockMinutes = *row.TotalMinutes
	}
	stats.TotalBlockFormatted = roster.FormatMinutes(stats.TotalBlockMinutes)
	if row.FirstFlight != nil {
		stats.FirstFlight = *row.FirstFlight
	}
	if row.LastFlight != nil {
		stats.LastFlight = *row.LastFlight
	}
	return stats, nil
}

// distinctAirportCount counts the union of origins and destinations, with the
// date filter applied on both sides.
func (r *GormFlightRepository) distinctAirportCount(ctx context.Context, rng entity.DateRange) (int, error) {
	where := "1=1"
	var args []interface{}
	if rng.From != "" {
		where += " AND flight_date >= ?"
		args = append(args, rng.From)
	}
	if rng.To != "" {
		where += " AND flight_date <= ?"
		args = append(args, rng.To)
	}

	sql := fmt.Sprintf(`SELECT COUNT(*) FROM (
		SELECT origin AS icao FROM flights WHERE %s
		UNION
		SELECT destination AS icao FROM flights WHERE %s
	) AS icaos`, where, where)

	var count int
	err := r.db.WithContext(ctx).Raw(sql, append(args, args...)...).Scan(&count).Error
	return count, err
}

// TotalsByAircraftType groups totals by canonical type, most-flown first
func (r *GormFlightRepository) TotalsByAircraftType(ctx context.Context, rng entity.DateRange) ([]entity.TypeStats, error) {
	var rows []struct {
		AircraftType string
		Flights      int
		Minutes      *int
	}
	err := r.db.WithContext(ctx).Model(&Flights{}).
		Scopes(dateScope(rng)).
		Select("aircraft_type, COUNT(id) AS flights, SUM(block_minutes) AS minutes").
		Group("aircraft_type").
		Order("flights DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make([]entity.TypeStats, 0, len(rows))
	for _, row := range rows {
		s := entity.TypeStats{Type: row.AircraftType, Flights: row.Flights}
		if s.Type == "" {
			s.Type = "Unknown"
		}
		if row.Minutes != nil {
			s.Minutes = *row.Minutes
		}
		stats = append(stats, s)
	}
	return stats, nil
}

// TotalsByYear groups totals by the year prefix of the ISO date, ascending
func (r *GormFlightRepository) TotalsByYear(ctx context.Context) ([]entity.YearStats, error) {
	var rows []struct {
		Year    string
		Flights int
		Minutes *int
	}
	err := r.db.WithContext(ctx).Model(&Flights{}).
		Select("SUBSTR(flight_date, 1, 4) AS year, COUNT(id) AS flights, SUM(block_minutes) AS minutes").
		Group("SUBSTR(flight_date, 1, 4)").
		Order("year ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make([]entity.YearStats, 0, len(rows))
	for _, row := range rows {
		year, err := strconv.Atoi(row.Year)
		if err != nil {
			continue
		}
		s := entity.YearStats{Year: year, Flights: row.Flights}
		if row.Minutes != nil {
			s.Minutes = *row.Minutes
		}
		stats = append(stats, s)
	}
	return stats, nil
}

// RouteTotals groups totals by (origin, destination) pair
func (r *GormFlightRepository) RouteTotals(ctx context.Context, rng entity.DateRange) ([]entity.RouteStats, error) {
	var rows []struct {
		Origin       string
		Destination  string
		Count        int
		TotalMinutes *int
		FirstFlown   string
		LastFlown    string
	}
	err := r.db.WithContext(ctx).Model(&Flights{}).
		Scopes(dateScope(rng)).
		Select(`origin, destination,
			COUNT(id) AS count,
			SUM(block_minutes) AS total_minutes,
			MIN(flight_date) AS first_flown,
			MAX(flight_date) AS last_flown`).
		Group("origin").Group("destination").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make([]entity.RouteStats, 0, len(rows))
	for _, row := range rows {
		s := entity.RouteStats{
			Origin:      row.Origin,
			Destination: row.Destination,
			Count:       row.Count,
			FirstFlown:  row.FirstFlown,
			LastFlown:   row.LastFlown,
		}
		if row.TotalMinutes != nil {
			s.TotalMinutes = *row.TotalMinutes
		}
		stats = append(stats, s)
	}
	return stats, nil
}

// DepartureCounts returns per-airport departure counts
func (r *GormFlightRepository) DepartureCounts(ctx context.Context, rng entity.DateRange) (map[string]int, error) {
	return r.visitCounts(ctx, rng, "origin")
}

// ArrivalCounts returns per-airport arrival counts
func (r *GormFlightRepository) ArrivalCounts(ctx context.Context, rng entity.DateRange) (map[string]int, error) {
	return r.visitCounts(ctx, rng, "destination")
}

func (r *GormFlightRepository) visitCounts(ctx context.Context, rng entity.DateRange, column string) (map[string]int, error) {
	var rows []struct {
		Icao  string
		Count int
	}
	err := r.db.WithContext(ctx).Model(&Flights{}).
		Scopes(dateScope(rng)).
		Select(column + " AS icao, COUNT(id) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Icao] = row.Count
	}
	return counts, nil
}

// DistinctAirportCodes returns every code used as an origin or destination
func (r *GormFlightRepository) DistinctAirportCodes(ctx context.Context) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Raw(`SELECT origin AS icao FROM flights UNION SELECT destination AS icao FROM flights ORDER BY icao`).
		Scan(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}
