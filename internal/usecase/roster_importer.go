package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"
	"github.com/DarrellThomas/PilotLog/internal/domain/repository"
	"github.com/DarrellThomas/PilotLog/pkg/logger"
	"github.com/DarrellThomas/PilotLog/pkg/metrics"
	"github.com/DarrellThomas/PilotLog/pkg/roster"

	"github.com/google/uuid"
)

// RosterImporter sequences parse, validate, duplicate-check and persist for
// one roster file, committing the batch and its flights as a single
// transaction. The batch identity is fixed at construction; create a new
// importer per logical import when distinct batch ids are required.
type RosterImporter struct {
	store      repository.Store
	parser     *roster.Parser
	metrics    *metrics.Metrics
	logger     logger.Logger
	batchID    string
	importedAt time.Time
}

// NewRosterImporter creates a new roster importer with a fresh batch identity
func NewRosterImporter(store repository.Store, log logger.Logger, m *metrics.Metrics) *RosterImporter {
	return &RosterImporter{
		store:      store,
		parser:     roster.NewParser(log),
		metrics:    m,
		logger:     log,
		batchID:    uuid.NewString(),
		importedAt: time.Now().UTC(),
	}
}

// BatchID returns the batch token new flights will reference.
func (imp *RosterImporter) BatchID() string {
	return imp.batchID
}

// ImportFile imports one roster file. Row-level failures are recovered and
// reported in the result; only store failures abort the invocation, in which
// case nothing is committed.
func (imp *RosterImporter) ImportFile(ctx context.Context, path string) (*entity.ImportResult, error) {
	start := time.Now()

	content, err := os.ReadFile(path)
	if err != nil {
		imp.countError("read_file")
		return nil, fmt.Errorf("reading roster file: %w", err)
	}

	result, err := imp.ImportContent(ctx, filepath.Base(path), string(content))
	if err != nil {
		return nil, err
	}

	if imp.metrics != nil {
		imp.metrics.FilesImported.Inc()
		imp.metrics.ImportDuration.Observe(time.Since(start).Seconds())
	}
	return result, nil
}

// ImportContent imports roster content under the given filename.
func (imp *RosterImporter) ImportContent(ctx context.Context, filename, content string) (*entity.ImportResult, error) {
	result := &entity.ImportResult{
		BatchID:  imp.batchID,
		Filename: filename,
		Source:   roster.SourceName,
	}

	flights, rowErrors := imp.parser.Parse(content)
	result.RowsProcessed = len(flights)
	for _, re := range rowErrors {
		result.Errors = append(result.Errors, entity.ImportError{Row: re.Line, Message: re.Message})
	}

	// Empty-file short-circuit: no batch row, no flight rows.
	if len(flights) == 0 {
		imp.logger.Warn("No parsable rows in roster file", "filename", filename)
		return result, nil
	}

	err := imp.store.WithinTransaction(ctx, func(tx repository.Store) error {
		return imp.importFlights(ctx, tx, flights, result)
	})
	if err != nil {
		imp.countError("import_transaction")
		return nil, fmt.Errorf("importing %s: %w", filename, err)
	}

	imp.recordOutcomes(result)
	imp.logger.Info("Imported roster file",
		"filename", filename,
		"batchID", imp.batchID,
		"imported", result.RowsImported,
		"skipped", result.RowsSkipped,
		"duplicate", result.RowsDuplicate,
	)
	return result, nil
}

func (imp *RosterImporter) importFlights(ctx context.Context, tx repository.Store, flights []roster.ParsedFlight, result *entity.ImportResult) error {
	// Batch row must exist before any flight row referencing it.
	batch := &entity.ImportBatch{
		ID:            imp.batchID,
		Source:        roster.SourceName,
		Filename:      result.Filename,
		ImportedAt:    imp.importedAt,
		RowsProcessed: result.RowsProcessed,
	}
	if err := tx.Batches().Create(ctx, batch); err != nil {
		return fmt.Errorf("creating import batch: %w", err)
	}

	// Keys already persisted in this file. The store only answers duplicate
	// checks against committed state, so within-file duplicates are caught
	// here instead.
	seen := make(map[string]struct{}, len(flights))

	var minDate, maxDate string

	for _, parsed := range flights {
		ok, reason := roster.ValidateFlight(parsed)
		if !ok {
			result.RowsSkipped++
			result.Errors = append(result.Errors, entity.ImportError{Row: parsed.Line, Message: reason})
			continue
		}

		key := naturalKey(parsed.FlightDate, parsed.Origin, parsed.Destination, parsed.FlightNumber)
		if _, dup := seen[key]; dup {
			result.RowsDuplicate++
			continue
		}

		exists, err := tx.Flights().Exists(ctx, parsed.FlightDate, parsed.Origin, parsed.Destination, parsed.FlightNumber)
		if err != nil {
			return fmt.Errorf("checking duplicate: %w", err)
		}
		if exists {
			result.RowsDuplicate++
			continue
		}

		flight := &entity.Flight{
			Source:          parsed.Source,
			FlightDate:      parsed.FlightDate,
			FlightNumber:    parsed.FlightNumber,
			Origin:          parsed.Origin,
			Destination:     parsed.Destination,
			DepartureTime:   parsed.DepartureTime,
			ArrivalTime:     parsed.ArrivalTime,
			BlockMinutes:    parsed.BlockMinutes,
			TailNumber:      parsed.TailNumber,
			AircraftTypeRaw: parsed.AircraftTypeRaw,
			AircraftType:    parsed.AircraftType,
			IsDeadhead:      parsed.IsDeadhead,
			PICTakeoff:      parsed.PICTakeoff,
			PICLanding:      parsed.PICLanding,
			CrewPosition:    parsed.CrewPosition,
			CrewName:        parsed.CrewName,
			CrewID:          parsed.CrewID,
			Remarks:         parsed.Remarks,
			ImportBatchID:   imp.batchID,
		}
		if err := tx.Flights().Create(ctx, flight); err != nil {
			return fmt.Errorf("creating flight row %d: %w", parsed.Line, err)
		}

		seen[key] = struct{}{}
		result.RowsImported++
		result.NewBlockMinutes += parsed.BlockMinutes
		if minDate == "" || parsed.FlightDate < minDate {
			minDate = parsed.FlightDate
		}
		if parsed.FlightDate > maxDate {
			maxDate = parsed.FlightDate
		}
	}

	result.DateRangeStart = minDate
	result.DateRangeEnd = maxDate

	return tx.Batches().UpdateCounts(ctx, imp.batchID,
		result.RowsProcessed, result.RowsImported, result.RowsSkipped, result.RowsDuplicate)
}

func naturalKey(date, origin, destination, flightNumber string) string {
	return date + "|" + origin + "|" + destination + "|" + flightNumber
}

func (imp *RosterImporter) recordOutcomes(result *entity.ImportResult) {
	if imp.metrics == nil {
		return
	}
	imp.metrics.ImportRows.WithLabelValues("imported").Add(float64(result.RowsImported))
	imp.metrics.ImportRows.WithLabelValues("skipped").Add(float64(result.RowsSkipped))
	imp.metrics.ImportRows.WithLabelValues("duplicate").Add(float64(result.RowsDuplicate))
}

func (imp *RosterImporter) countError(operation string) {
	if imp.metrics != nil {
		imp.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}
