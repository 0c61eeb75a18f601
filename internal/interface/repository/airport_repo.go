package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"
	"github.com/DarrellThomas/PilotLog/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

// Airports GORM model for database mapping
type Airports struct {
	ICAO      string   `gorm:"primaryKey;column:icao;size:4"`
	IATA      string   `gorm:"column:iata;size:3"`
	Name      string   `gorm:"column:name;size:100"`
	City      string   `gorm:"column:city;size:100"`
	Country   string   `gorm:"column:country;size:2"`
	Latitude  *float64 `gorm:"column:latitude"`
	Longitude *float64 `gorm:"column:longitude"`
	Timezone  string   `gorm:"column:timezone;size:50"`
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "airports"
}

func toAirportEntity(m *Airports) entity.Airport {
	return entity.Airport{
		ICAO:      m.ICAO,
		IATA:      m.IATA,
		Name:      m.Name,
		City:      m.City,
		Country:   m.Country,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Timezone:  m.Timezone,
	}
}

// GetByICAO returns one airport or nil when unknown
func (r *GormAirportRepository) GetByICAO(ctx context.Context, icao string) (*entity.Airport, error) {
	var model Airports
	result := r.db.WithContext(ctx).Where("icao = ?", strings.ToUpper(icao)).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	airport := toAirportEntity(&model)
	return &airport, nil
}

// ListByICAO returns the airports matching any of the given codes
func (r *GormAirportRepository) ListByICAO(ctx context.Context, codes []string) ([]entity.Airport, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	var models []Airports
	err := r.db.WithContext(ctx).Where("icao IN ?", codes).Find(&models).Error
	if err != nil {
		return nil, err
	}

	airports := make([]entity.Airport, 0, len(models))
	for i := range models {
		airports = append(airports, toAirportEntity(&models[i]))
	}
	return airports, nil
}

// Upsert inserts or replaces a reference row
func (r *GormAirportRepository) Upsert(ctx context.Context, airport *entity.Airport) error {
	model := &Airports{
		ICAO:      strings.ToUpper(airport.ICAO),
		IATA:      airport.IATA,
		Name:      airport.Name,
		City:      airport.City,
		Country:   airport.Country,
		Latitude:  airport.Latitude,
		Longitude: airport.Longitude,
		Timezone:  airport.Timezone,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "icao"}},
			UpdateAll: true,
		}).
		Create(model).Error
}

// List returns all airports ordered by ICAO code
func (r *GormAirportRepository) List(ctx context.Context) ([]entity.Airport, error) {
	var models []Airports
	err := r.db.WithContext(ctx).Order("icao ASC").Find(&models).Error
	if err != nil {
		return nil, err
	}

	airports := make([]entity.Airport, 0, len(models))
	for i := range models {
		airports = append(airports, toAirportEntity(&models[i]))
	}
	return airports, nil
}
