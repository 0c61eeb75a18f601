package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DarrellThomas/PilotLog/pkg/logger"
)

// headerLines is the fixed-size metadata preamble of the SWA export: summary
// stats, gauge configuration and the header label row. Skipped unconditionally.
const headerLines = 7

// Fixed positional columns of a data row.
const (
	colDate = iota
	colFlight
	colDeadhead
	colFrom
	colDepart
	colTo
	colArrive
	colBlock
	colTailNumber
	colAircraftType
	colTakeoff
	colLanding
	colCrew
	columnCount
)

const dateLayout = "2006-01-02"

// Parser decodes SWA roster export content into ParsedFlight candidates.
type Parser struct {
	logger logger.Logger
}

// NewParser creates a new roster parser
func NewParser(log logger.Logger) *Parser {
	return &Parser{logger: log}
}

// Parse decodes roster file content. The preamble is skipped, every remaining
// line is decoded as a fixed-column row. Rows with a blank date column are
// treated as trailers and skipped silently; any other row decode failure is
// logged, recorded with its 1-based line number, and excluded; one bad row
// never aborts the file. Candidates come back in file order.
func (p *Parser) Parse(content string) ([]ParsedFlight, []RowError) {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	var flights []ParsedFlight
	var rowErrors []RowError

	if len(lines) <= headerLines {
		p.logger.Warn("Roster file has no data rows", "lines", len(lines))
		return flights, rowErrors
	}

	for i, line := range lines[headerLines:] {
		lineNo := headerLines + i + 1

		if strings.TrimSpace(line) == "" {
			continue
		}

		fields, err := splitRow(line)
		if err != nil {
			p.logger.Error("Error reading row", "line", lineNo, "error", err)
			rowErrors = append(rowErrors, RowError{Line: lineNo, Message: err.Error()})
			continue
		}

		flight, err := p.parseRow(fields, lineNo)
		if err != nil {
			p.logger.Error("Error parsing row", "line", lineNo, "error", err)
			rowErrors = append(rowErrors, RowError{Line: lineNo, Message: err.Error()})
			continue
		}
		if flight != nil {
			flights = append(flights, *flight)
		}
	}

	return flights, rowErrors
}

// splitRow decodes one CSV line, honoring quoted fields, and pads short rows
// so positional access never goes out of range.
func splitRow(line string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1

	fields, err := reader.Read()
	if err != nil {
		return nil, err
	}
	for len(fields) < columnCount {
		fields = append(fields, "")
	}
	return fields, nil
}

// parseRow decodes one row into a ParsedFlight. A nil flight with nil error
// means the row was a blank trailer.
func (p *Parser) parseRow(fields []string, lineNo int) (*ParsedFlight, error) {
	dateStr := strings.TrimSpace(fields[colDate])
	if dateStr == "" {
		return nil, nil
	}

	if _, err := time.Parse(dateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("invalid date format: %s", dateStr)
	}

	origin := strings.ToUpper(strings.TrimSpace(fields[colFrom]))
	destination := strings.ToUpper(strings.TrimSpace(fields[colTo]))
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("missing origin or destination for flight on %s", dateStr)
	}

	blockMinutes, err := ParseBlockTime(fields[colBlock])
	if err != nil {
		if errors.Is(err, ErrBlockOverflow) {
			return nil, err
		}
		// Non-numeric block times decode to zero, a known quirk of the
		// export. Logged as an anomaly, not a row failure.
		p.logger.Warn("Could not parse block time", "line", lineNo, "error", err)
	}

	flight := &ParsedFlight{
		Line:            lineNo,
		Source:          SourceName,
		FlightDate:      dateStr,
		FlightNumber:    strings.TrimSpace(fields[colFlight]),
		Origin:          origin,
		Destination:     destination,
		BlockMinutes:    blockMinutes,
		TailNumber:      strings.ToUpper(strings.TrimSpace(fields[colTailNumber])),
		AircraftTypeRaw: strings.TrimSpace(fields[colAircraftType]),
		IsDeadhead:      strings.Contains(strings.ToUpper(fields[colDeadhead]), "DH"),
		PICTakeoff:      ParseFlag(fields[colTakeoff]),
		PICLanding:      ParseFlag(fields[colLanding]),
	}

	flight.AircraftType = NormalizeAircraftType(flight.AircraftTypeRaw)

	if minutes, ok := ParseClockTime(fields[colDepart]); ok {
		flight.DepartureTime = &minutes
	} else if strings.TrimSpace(fields[colDepart]) != "" {
		p.logger.Warn("Could not parse departure time", "line", lineNo, "value", fields[colDepart])
	}
	if minutes, ok := ParseClockTime(fields[colArrive]); ok {
		flight.ArrivalTime = &minutes
	} else if strings.TrimSpace(fields[colArrive]) != "" {
		p.logger.Warn("Could not parse arrival time", "line", lineNo, "value", fields[colArrive])
	}

	flight.CrewPosition, flight.CrewName, flight.CrewID = ParseCrew(fields[colCrew])

	return flight, nil
}

// ValidateFlight checks the structural invariants a candidate must satisfy
// before it can be persisted. This is the last gate before a row is either
// stored or counted as skipped.
func ValidateFlight(f ParsedFlight) (bool, string) {
	if f.FlightDate == "" {
		return false, "Missing flight date"
	}
	if f.Origin == "" {
		return false, "Missing origin airport"
	}
	if f.Destination == "" {
		return false, "Missing destination airport"
	}
	if len(f.Origin) != 4 {
		return false, fmt.Sprintf("Invalid origin ICAO code: %s", f.Origin)
	}
	if len(f.Destination) != 4 {
		return false, fmt.Sprintf("Invalid destination ICAO code: %s", f.Destination)
	}
	return true, ""
}
