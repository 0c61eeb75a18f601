package cli

import (
	"fmt"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"
	"github.com/DarrellThomas/PilotLog/internal/usecase"
	"github.com/DarrellThomas/PilotLog/pkg/roster"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// StatsCmd returns the stats subcommand
func StatsCmd() *cobra.Command {
	var dateFrom, dateTo string
	var topRoutes int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show career, aircraft and route statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, log, err := openStore()
			if err != nil {
				return err
			}

			rng := entity.DateRange{From: dateFrom, To: dateTo}
			calc := usecase.NewStatisticsCalculator(store, log)

			career, err := calc.Career(cmd.Context(), rng)
			if err != nil {
				return err
			}

			color.Cyan("Career")
			fmt.Printf("  %d flights, %s block time\n", career.TotalFlights, career.TotalBlockFormatted)
			fmt.Printf("  %d airports, %d aircraft\n", career.UniqueAirports, career.UniqueAircraft)
			if career.FirstFlight != "" {
				fmt.Printf("  %s to %s\n", career.FirstFlight, career.LastFlight)
			}

			if len(career.ByAircraftType) > 0 {
				color.Cyan("By aircraft type")
				for _, t := range career.ByAircraftType {
					fmt.Printf("  %-12s %5d flights %10s\n", t.Type, t.Flights, roster.FormatMinutes(t.Minutes))
				}
			}

			if len(career.ByYear) > 0 {
				color.Cyan("By year")
				for _, y := range career.ByYear {
					fmt.Printf("  %d %5d flights %10s\n", y.Year, y.Flights, roster.FormatMinutes(y.Minutes))
				}
			}

			routes, err := calc.Routes(cmd.Context(), rng)
			if err != nil {
				return err
			}
			if len(routes) > 0 {
				maxCount := 0
				for _, r := range routes {
					if r.Count > maxCount {
						maxCount = r.Count
					}
				}
				color.Cyan("Top routes")
				for _, r := range usecase.TopRoutes(routes, topRoutes) {
					fmt.Printf("  %s-%s %5d flights %10s  intensity %.2f\n",
						r.Origin, r.Destination, r.Count,
						roster.FormatMinutes(r.TotalMinutes),
						usecase.RouteIntensity(r.Count, maxCount))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dateFrom, "from", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dateTo, "to", "", "range end (YYYY-MM-DD)")
	cmd.Flags().IntVar(&topRoutes, "top-routes", 10, "number of routes to show")
	return cmd
}
