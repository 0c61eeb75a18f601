package entity

// DateRange is an optional inclusive date filter over ISO date strings.
// Empty fields leave that bound open.
type DateRange struct {
	From string
	To   string
}

// WindowTotals holds rolling totals for one lookback window.
type WindowTotals struct {
	Days      int
	Flights   int
	Minutes   int
	Formatted string // H:MM
}

// CareerStats are overall totals, optionally restricted to a date range.
type CareerStats struct {
	TotalFlights        int
	TotalBlockMinutes   int
	TotalBlockFormatted string
	UniqueAirports      int
	UniqueAircraft      int
	FirstFlight         string
	LastFlight          string
	ByAircraftType      []TypeStats
	ByYear              []YearStats
}

// TypeStats are totals for one canonical aircraft family.
type TypeStats struct {
	Type    string
	Flights int
	Minutes int
}

// YearStats are totals for one calendar year.
type YearStats struct {
	Year    int
	Flights int
	Minutes int
}

// RouteStats are totals for one (origin, destination) pair.
type RouteStats struct {
	Origin       string
	Destination  string
	Count        int
	TotalMinutes int
	FirstFlown   string
	LastFlown    string
}

// AirportStats are visit counts for one airport, joined with reference data
// when available. Name and coordinates stay absent for unknown airports.
type AirportStats struct {
	ICAO        string
	Name        string
	Latitude    *float64
	Longitude   *float64
	Departures  int
	Arrivals    int
	TotalVisits int
}

// BurnRate projects when a duty-time limit will be reached at the current
// pace. DaysToLimit and ProjectedLimitDate are absent when the rate is zero.
type BurnRate struct {
	DailyRateHours     float64 // hours per day, rounded to 2 decimals
	RemainingMinutes   int
	DaysToLimit        *int
	ProjectedLimitDate string // ISO date, empty when absent
}
