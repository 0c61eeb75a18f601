package roster

// SourceName tags every flight imported from the SWA roster export format.
const SourceName = "swa"

// ParsedFlight is a flight record decoded from one roster row, not yet
// validated or persisted.
type ParsedFlight struct {
	Line            int // 1-based line number in the source file
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
}

// RowError records a row that could not be decoded, keyed by its source line.
type RowError struct {
	Line    int
	Message string
}
