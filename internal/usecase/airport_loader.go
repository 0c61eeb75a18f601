package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"
	"github.com/DarrellThomas/PilotLog/internal/domain/repository"
	"github.com/DarrellThomas/PilotLog/pkg/logger"
)

// AirportLoader fills the airport reference table from the OurAirports public
// dataset, restricted to airports actually present in the flight data.
type AirportLoader struct {
	store  repository.Store
	client *http.Client
	url    string
	logger logger.Logger
}

// NewAirportLoader creates a new airport loader
func NewAirportLoader(store repository.Store, url string, log logger.Logger) *AirportLoader {
	return &AirportLoader{
		store:  store,
		client: &http.Client{Timeout: 60 * time.Second},
		url:    url,
		logger: log,
	}
}

// Load downloads the dataset and upserts reference rows for every airport
// code used as an origin or destination. Closed airports and rows without
// coordinates are skipped. Returns the number of rows upserted.
func (l *AirportLoader) Load(ctx context.Context) (int, error) {
	needed, err := l.neededCodes(ctx)
	if err != nil {
		return 0, err
	}
	if len(needed) == 0 {
		l.logger.Warn("No airports referenced by flight data, nothing to load")
		return 0, nil
	}
	l.logger.Info("Loading airport reference data", "airports", len(needed), "url", l.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("downloading airport data: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("downloading airport data: unexpected status %s", resp.Status)
	}

	return l.upsertMatching(ctx, resp.Body, needed)
}

func (l *AirportLoader) neededCodes(ctx context.Context) (map[string]struct{}, error) {
	codes, err := l.store.Flights().DistinctAirportCodes(ctx)
	if err != nil {
		return nil, err
	}
	needed := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		needed[code] = struct{}{}
	}
	return needed, nil
}

func (l *AirportLoader) upsertMatching(ctx context.Context, body io.Reader, needed map[string]struct{}) (int, error) {
	reader := csv.NewReader(body)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("reading airport CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	field := func(record []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	inserted := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			l.logger.Warn("Skipping malformed airport row", "error", err)
			continue
		}

		icao := strings.ToUpper(field(record, "ident"))
		if _, ok := needed[icao]; !ok {
			continue
		}
		if field(record, "type") == "closed" {
			continue
		}

		lat, latErr := strconv.ParseFloat(field(record, "latitude_deg"), 64)
		lon, lonErr := strconv.ParseFloat(field(record, "longitude_deg"), 64)
		if latErr != nil || lonErr != nil {
			continue
		}

		airport := &entity.Airport{
			ICAO:      icao,
			IATA:      field(record, "iata_code"),
			Name:      field(record, "name"),
			City:      field(record, "municipality"),
			Country:   field(record, "iso_country"),
			Latitude:  &lat,
			Longitude: &lon,
			Timezone:  field(record, "local_region"),
		}
		if err := l.store.Airports().Upsert(ctx, airport); err != nil {
			return inserted, fmt.Errorf("upserting airport %s: %w", icao, err)
		}
		inserted++
	}

	l.logger.Info("Airport reference data loaded", "inserted", inserted)
	return inserted, nil
}
