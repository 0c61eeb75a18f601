package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DarrellThomas/PilotLog/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pilotlog",
		Short: "PilotLog - airline roster import and duty-time statistics",
		Long: `PilotLog imports airline roster CSV exports into a normalized flight
logbook and answers rolling duty-time and career statistics queries over it.`,
	}

	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.LoadAirportsCmd())
	rootCmd.AddCommand(cli.RollingCmd())
	rootCmd.AddCommand(cli.StatsCmd())
	rootCmd.AddCommand(cli.FlightsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
