package cli

import (
	"fmt"

	"github.com/DarrellThomas/PilotLog/internal/domain/entity"
	"github.com/DarrellThomas/PilotLog/internal/usecase"
	"github.com/DarrellThomas/PilotLog/pkg/roster"

	"github.com/spf13/cobra"
)

// FlightsCmd returns the flights subcommand
func FlightsCmd() *cobra.Command {
	filter := entity.FlightFilter{}

	cmd := &cobra.Command{
		Use:   "flights",
		Short: "List flights with optional filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, _, err := openStore()
			if err != nil {
				return err
			}

			flights, total, err := store.Flights().List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			for _, f := range flights {
				deadhead := ""
				if f.IsDeadhead {
					deadhead = " DH"
				}
				fmt.Printf("%s  %-5s %s-%s  %7s  %-9s %-12s%s\n",
					f.FlightDate, f.FlightNumber, f.Origin, f.Destination,
					roster.FormatMinutes(f.BlockMinutes),
					f.TailNumber, f.AircraftType, deadhead)
			}
			fmt.Printf("%d of %d flights\n", len(flights), total)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.DateFrom, "from", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filter.DateTo, "to", "", "range end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filter.Origin, "origin", "", "origin airport")
	cmd.Flags().StringVar(&filter.Destination, "destination", "", "destination airport")
	cmd.Flags().StringVar(&filter.Crew, "crew", "", "crew name (partial match)")
	cmd.Flags().StringVar(&filter.Tail, "tail", "", "tail number (partial match)")
	cmd.Flags().StringVar(&filter.AircraftType, "type", "", "canonical aircraft type")
	cmd.Flags().IntVar(&filter.Limit, "limit", 100, "max results")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "pagination offset")
	return cmd
}

// LoadAirportsCmd returns the load-airports subcommand
func LoadAirportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load-airports",
		Short: "Load airport reference data used by flight records",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, log, err := openStore()
			if err != nil {
				return err
			}

			loader := usecase.NewAirportLoader(store, cfg.AirportsURL, log)
			inserted, err := loader.Load(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("loaded %d airports\n", inserted)
			return nil
		},
	}
}
