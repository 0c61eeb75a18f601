package entity

import (
	"time"
)

// Flight is a persisted flight record. Rows are append-only: created once by
// an import and never edited by this service.
type Flight struct {
	ID              int64
	Source          string
	FlightDate      string // ISO 8601 (YYYY-MM-DD)
	FlightNumber    string
	Origin          string
	Destination     string
	DepartureTime   *int // minutes since midnight, may exceed 1439
	ArrivalTime     *int
	BlockMinutes    int
	TailNumber      string
	AircraftTypeRaw string
	AircraftType    string
	IsDeadhead      bool
	PICTakeoff      bool
	PICLanding      bool
	CrewPosition    string
	CrewName        string
	CrewID          string
	Remarks         string
	ImportBatchID   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FlightFilter narrows flight list queries. Zero values mean no filter;
// Crew and Tail match partially, case-insensitive.
type FlightFilter struct {
	DateFrom     string
	DateTo       string
	Origin       string
	Destination  string
	Crew         string
	Tail         string
	AircraftType string
	Limit        int
	Offset       int
}

// Airport is a static reference row joined into airport statistics.
type Airport struct {
	ICAO      string
	IATA      string
	Name      string
	City      string
	Country   string
	Latitude  *float64
	Longitude *float64
	Timezone  string
}
