package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"
	"github.com/DarrellThomas/PilotLog/internal/testutil"
	"github.com/DarrellThomas/PilotLog/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFlight(store *testutil.MemStore, date string, minutes int, deadhead bool) {
	store.AddFlight(entity.Flight{
		Source:       "swa",
		FlightDate:   date,
		Origin:       "KHOU",
		Destination:  "KDAL",
		BlockMinutes: minutes,
		IsDeadhead:   deadhead,
	})
}

func TestRollingWindowBoundary(t *testing.T) {
	store := testutil.NewMemStore()
	// Reference date 2025-01-29: the 28-day cutoff lands exactly on
	// 2025-01-01, the 7-day cutoff exactly on 2025-01-22.
	seedFlight(store, "2025-01-01", 60, false)
	seedFlight(store, "2025-01-02", 60, false)
	seedFlight(store, "2025-01-22", 60, false)

	asOf := time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC)
	calc := NewRollingCalculator(store, logger.NewNop())

	totals, err := calc.Totals(context.Background(), asOf, []int{28, 7})
	require.NoError(t, err)
	require.Len(t, totals, 2)

	// The 672-hour window includes its cutoff date.
	window28 := totals[0]
	assert.Equal(t, 28, window28.Days)
	assert.Equal(t, 3, window28.Flights)
	assert.Equal(t, 180, window28.Minutes)
	assert.Equal(t, "3:00", window28.Formatted)

	// Every other window excludes the exact-cutoff flight.
	window7 := totals[1]
	assert.Equal(t, 7, window7.Days)
	assert.Equal(t, 0, window7.Flights)
	assert.Equal(t, "0:00", window7.Formatted)
}

func TestRollingExcludesDeadheads(t *testing.T) {
	store := testutil.NewMemStore()
	seedFlight(store, "2025-01-25", 120, false)
	seedFlight(store, "2025-01-26", 120, true)

	asOf := time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC)
	totals, err := NewRollingCalculator(store, logger.NewNop()).Totals(context.Background(), asOf, []int{7})
	require.NoError(t, err)

	assert.Equal(t, 1, totals[0].Flights)
	assert.Equal(t, 120, totals[0].Minutes)
}

func TestRollingExcludesFutureFlights(t *testing.T) {
	store := testutil.NewMemStore()
	seedFlight(store, "2025-01-28", 60, false)
	seedFlight(store, "2025-02-01", 60, false)

	asOf := time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC)
	totals, err := NewRollingCalculator(store, logger.NewNop()).Totals(context.Background(), asOf, []int{7})
	require.NoError(t, err)
	assert.Equal(t, 1, totals[0].Flights)
}

func TestRollingDefaults(t *testing.T) {
	store := testutil.NewMemStore()
	totals, err := NewRollingCalculator(store, logger.NewNop()).Totals(context.Background(), time.Time{}, nil)
	require.NoError(t, err)

	require.Len(t, totals, len(DefaultWindows))
	for i, w := range DefaultWindows {
		assert.Equal(t, w, totals[i].Days)
	}
}

func TestBurnRateNormal(t *testing.T) {
	today := time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC)
	rate := burnRateAt(today, 3000, 30, 6000)

	assert.InDelta(t, 1.67, rate.DailyRateHours, 0.01)
	assert.Equal(t, 3000, rate.RemainingMinutes)
	require.NotNil(t, rate.DaysToLimit)
	assert.Equal(t, 30, *rate.DaysToLimit)
	assert.Equal(t, "2025-02-28", rate.ProjectedLimitDate)
}

func TestBurnRateAtLimit(t *testing.T) {
	today := time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC)
	rate := burnRateAt(today, 6000, 30, 6000)

	assert.Equal(t, 0, rate.RemainingMinutes)
	require.NotNil(t, rate.DaysToLimit)
	assert.Equal(t, 0, *rate.DaysToLimit)
}

func TestBurnRateOverLimit(t *testing.T) {
	today := time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC)
	rate := burnRateAt(today, 7000, 30, 6000)
	assert.Equal(t, 0, rate.RemainingMinutes, "remaining clamps at zero")
}

func TestBurnRateZeroWindow(t *testing.T) {
	rate := BurnRate(1000, 0, 6000)

	assert.Zero(t, rate.DailyRateHours)
	assert.Equal(t, 6000, rate.RemainingMinutes)
	assert.Nil(t, rate.DaysToLimit)
	assert.Empty(t, rate.ProjectedLimitDate)
}

func TestBurnRateZeroFlying(t *testing.T) {
	rate := BurnRate(0, 30, 6000)

	assert.Zero(t, rate.DailyRateHours)
	assert.Equal(t, 6000, rate.RemainingMinutes)
	assert.Nil(t, rate.DaysToLimit)
	assert.Empty(t, rate.ProjectedLimitDate)
}
