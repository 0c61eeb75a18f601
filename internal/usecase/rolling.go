package usecase

import (
	"context"
	"math"
	"time"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"
	"github.com/DarrellThomas/PilotLog/internal/domain/repository"
	"github.com/DarrellThomas/PilotLog/pkg/logger"
	"github.com/DarrellThomas/PilotLog/pkg/roster"
)

// DefaultWindows are the lookback windows computed when the caller does not
// ask for specific ones. The regulatory 28-day window is not in the default
// set; callers needing its inclusive-cutoff rule request it explicitly.
var DefaultWindows = []int{7, 30, 60, 90, 365}

// inclusiveWindowDays is the 672-hour lookback. Its cutoff date is included
// in the window (>=), mirroring the FAR 117 interpretation; every other
// window excludes the cutoff (>).
const inclusiveWindowDays = 28

const isoDate = "2006-01-02"

// RollingCalculator computes rolling duty-time totals.
type RollingCalculator struct {
	store  repository.Store
	logger logger.Logger
}

// NewRollingCalculator creates a new rolling calculator
func NewRollingCalculator(store repository.Store, log logger.Logger) *RollingCalculator {
	return &RollingCalculator{
		store:  store,
		logger: log,
	}
}

// Totals computes non-deadhead flight counts and block-minute sums for each
// window ending on asOf. A zero asOf defaults to today; an empty window list
// defaults to DefaultWindows. Results come back in the requested order.
func (c *RollingCalculator) Totals(ctx context.Context, asOf time.Time, windows []int) ([]entity.WindowTotals, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	if len(windows) == 0 {
		windows = DefaultWindows
	}

	asOfStr := asOf.Format(isoDate)
	totals := make([]entity.WindowTotals, 0, len(windows))

	for _, window := range windows {
		cutoff := asOf.AddDate(0, 0, -window).Format(isoDate)
		inclusive := window == inclusiveWindowDays

		flights, minutes, err := c.store.Flights().WindowTotals(ctx, cutoff, asOfStr, inclusive)
		if err != nil {
			return nil, err
		}

		totals = append(totals, entity.WindowTotals{
			Days:      window,
			Flights:   flights,
			Minutes:   minutes,
			Formatted: roster.FormatMinutes(minutes),
		})
	}

	return totals, nil
}

// BurnRate projects when limitMinutes will be reached given currentMinutes
// flown over windowDays, as of today.
func BurnRate(currentMinutes, windowDays, limitMinutes int) entity.BurnRate {
	return burnRateAt(time.Now(), currentMinutes, windowDays, limitMinutes)
}

func burnRateAt(today time.Time, currentMinutes, windowDays, limitMinutes int) entity.BurnRate {
	if windowDays <= 0 {
		return entity.BurnRate{RemainingMinutes: limitMinutes}
	}

	dailyRate := float64(currentMinutes) / float64(windowDays)
	remaining := limitMinutes - currentMinutes
	if remaining < 0 {
		remaining = 0
	}

	rate := entity.BurnRate{
		DailyRateHours:   math.Round(dailyRate/60*100) / 100,
		RemainingMinutes: remaining,
	}

	if dailyRate > 0 {
		days := int(float64(remaining) / dailyRate)
		rate.DaysToLimit = &days
		rate.ProjectedLimitDate = today.AddDate(0, 0, days).Format(isoDate)
	}

	return rate
}
