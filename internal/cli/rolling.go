package cli

import (
	"fmt"
	"time"

	"github.com/DarrellThomas/PilotLog/internal/usecase"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RollingCmd returns the rolling subcommand
func RollingCmd() *cobra.Command {
	var asOfStr string
	var windows []int
	var limitMinutes int

	cmd := &cobra.Command{
		Use:   "rolling",
		Short: "Show rolling duty-time window totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, log, err := openStore()
			if err != nil {
				return err
			}

			var asOf time.Time
			if asOfStr != "" {
				asOf, err = time.Parse("2006-01-02", asOfStr)
				if err != nil {
					return fmt.Errorf("invalid --as-of date %q: %w", asOfStr, err)
				}
			}

			if limitMinutes == 0 {
				limitMinutes = cfg.DutyLimitMinutes
			}

			calc := usecase.NewRollingCalculator(store, log)
			totals, err := calc.Totals(cmd.Context(), asOf, windows)
			if err != nil {
				return err
			}

			for _, w := range totals {
				fmt.Printf("%4dd  %4d flights  %s\n", w.Days, w.Flights, color.GreenString("%8s", w.Formatted))
				if w.Days == 28 {
					rate := usecase.BurnRate(w.Minutes, w.Days, limitMinutes)
					line := fmt.Sprintf("       burn %.2f h/day, %d min remaining", rate.DailyRateHours, rate.RemainingMinutes)
					if rate.DaysToLimit != nil {
						line += fmt.Sprintf(", limit in %d days (%s)", *rate.DaysToLimit, rate.ProjectedLimitDate)
					}
					fmt.Println(line)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&asOfStr, "as-of", "", "reference date (YYYY-MM-DD, default today)")
	cmd.Flags().IntSliceVar(&windows, "windows", nil, "window sizes in days (default 7,30,60,90,365; use 28 for the 672-hour rule)")
	cmd.Flags().IntVar(&limitMinutes, "limit-minutes", 0, "duty limit in minutes for burn-rate projection")
	return cmd
}
