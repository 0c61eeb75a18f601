package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func depart(minutes int) *int { return &minutes }

func TestFlightListOrdering(t *testing.T) {
	store := NewMemStore()
	store.AddFlight(entity.Flight{FlightDate: "2025-01-14", Origin: "KHOU", Destination: "KDAL", DepartureTime: depart(600)})
	store.AddFlight(entity.Flight{FlightDate: "2025-01-15", Origin: "KDAL", Destination: "KMDW", DepartureTime: depart(540)})
	store.AddFlight(entity.Flight{FlightDate: "2025-01-15", Origin: "KMDW", Destination: "KHOU"})
	store.AddFlight(entity.Flight{FlightDate: "2025-01-15", Origin: "KHOU", Destination: "KDAL", DepartureTime: depart(780)})

	flights, total, err := store.Flights().List(context.Background(), entity.FlightFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, flights, 4)

	// Newest date first; within a date later departures first, absent last.
	assert.Equal(t, "2025-01-15", flights[0].FlightDate)
	require.NotNil(t, flights[0].DepartureTime)
	assert.Equal(t, 780, *flights[0].DepartureTime)
	require.NotNil(t, flights[1].DepartureTime)
	assert.Equal(t, 540, *flights[1].DepartureTime)
	assert.Nil(t, flights[2].DepartureTime)
	assert.Equal(t, "2025-01-14", flights[3].FlightDate)
}

func TestFlightListFilters(t *testing.T) {
	store := NewMemStore()
	store.AddFlight(entity.Flight{
		FlightDate: "2025-01-15", Origin: "KHOU", Destination: "KDAL",
		CrewName: "ZURCA JULIAN", TailNumber: "N111SW", AircraftType: "B737-700",
	})
	store.AddFlight(entity.Flight{
		FlightDate: "2025-01-16", Origin: "KDAL", Destination: "KHOU",
		CrewName: "EVERS ROB", TailNumber: "N222SW", AircraftType: "B737-800",
	})
	ctx := context.Background()

	// Crew matches partially, case-insensitive.
	flights, total, err := store.Flights().List(ctx, entity.FlightFilter{Crew: "zurca"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, flights, 1)
	assert.Equal(t, "ZURCA JULIAN", flights[0].CrewName)

	flights, _, err = store.Flights().List(ctx, entity.FlightFilter{Tail: "222"})
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "N222SW", flights[0].TailNumber)

	flights, _, err = store.Flights().List(ctx, entity.FlightFilter{Origin: "KHOU", AircraftType: "B737-700"})
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "2025-01-15", flights[0].FlightDate)

	flights, total, err = store.Flights().List(ctx, entity.FlightFilter{DateFrom: "2025-01-16"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, flights, 1)
	assert.Equal(t, "2025-01-16", flights[0].FlightDate)
}

func TestFlightListPagination(t *testing.T) {
	store := NewMemStore()
	for day := 1; day <= 5; day++ {
		store.AddFlight(entity.Flight{
			FlightDate:  fmt.Sprintf("2025-01-%02d", day),
			Origin:      "KHOU",
			Destination: "KDAL",
		})
	}
	ctx := context.Background()

	flights, total, err := store.Flights().List(ctx, entity.FlightFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total, "total counts the unpaginated match set")
	require.Len(t, flights, 2)
	assert.Equal(t, "2025-01-05", flights[0].FlightDate)

	flights, total, err = store.Flights().List(ctx, entity.FlightFilter{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, flights, 1)
	assert.Equal(t, "2025-01-01", flights[0].FlightDate)

	flights, total, err = store.Flights().List(ctx, entity.FlightFilter{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, flights)
}
