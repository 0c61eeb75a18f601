package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"
	"github.com/DarrellThomas/PilotLog/internal/testutil"
	"github.com/DarrellThomas/PilotLog/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// KHOU is open with coordinates, KDAL is closed, KMDW lacks coordinates and
// KATL is open but not referenced by any flight below.
const airportsCSV = `"id","ident","type","name","latitude_deg","longitude_deg","iso_country","municipality","iata_code","local_region"
3777,"KHOU","medium_airport","William P Hobby Airport",29.6454,-95.2789,"US","Houston","HOU","US-TX"
3502,"KDAL","closed","Dallas Love Field",32.8471,-96.8518,"US","Dallas","DAL","US-TX"
3926,"KMDW","large_airport","Chicago Midway International Airport",,,"US","Chicago","MDW","US-IL"
3384,"KATL","large_airport","Hartsfield Jackson Atlanta International Airport",33.6367,-84.4281,"US","Atlanta","ATL","US-GA"
`

func airportServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(airportsCSV))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestAirportLoaderLoad(t *testing.T) {
	server := airportServer(t)
	ctx := context.Background()

	store := testutil.NewMemStore()
	store.AddFlight(entity.Flight{FlightDate: "2025-01-15", Origin: "KHOU", Destination: "KDAL", BlockMinutes: 67})
	store.AddFlight(entity.Flight{FlightDate: "2025-01-16", Origin: "KDAL", Destination: "KMDW", BlockMinutes: 134})

	inserted, err := NewAirportLoader(store, server.URL, logger.NewNop()).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted, "only the open airport with coordinates qualifies")

	hou, err := store.Airports().GetByICAO(ctx, "KHOU")
	require.NoError(t, err)
	require.NotNil(t, hou)
	assert.Equal(t, "William P Hobby Airport", hou.Name)
	assert.Equal(t, "HOU", hou.IATA)
	assert.Equal(t, "Houston", hou.City)
	require.NotNil(t, hou.Latitude)
	assert.InDelta(t, 29.6454, *hou.Latitude, 0.0001)
	require.NotNil(t, hou.Longitude)
	assert.InDelta(t, -95.2789, *hou.Longitude, 0.0001)

	// Closed airports and rows without coordinates are skipped.
	dal, err := store.Airports().GetByICAO(ctx, "KDAL")
	require.NoError(t, err)
	assert.Nil(t, dal)
	mdw, err := store.Airports().GetByICAO(ctx, "KMDW")
	require.NoError(t, err)
	assert.Nil(t, mdw)

	// KATL never appears in flight data, so it is not stored either.
	assert.Len(t, store.AirportRows, 1)
}

func TestAirportLoaderNoFlights(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(airportsCSV))
	}))
	defer server.Close()

	store := testutil.NewMemStore()
	inserted, err := NewAirportLoader(store, server.URL, logger.NewNop()).Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.Zero(t, requests, "no download when nothing references airports")
}

func TestAirportLoaderBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	store := testutil.NewMemStore()
	store.AddFlight(entity.Flight{FlightDate: "2025-01-15", Origin: "KHOU", Destination: "KDAL"})

	_, err := NewAirportLoader(store, server.URL, logger.NewNop()).Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unexpected status")
	assert.Empty(t, store.AirportRows)
}
