package cli

import (
	"fmt"

	"github.com/DarrellThomas/PilotLog/internal/usecase"
	"github.com/DarrellThomas/PilotLog/pkg/roster"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ImportCmd returns the import subcommand
func ImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Import one or more roster CSV files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, log, err := openStore()
			if err != nil {
				return err
			}

			for _, path := range args {
				// One importer per file so every file gets its own batch id.
				importer := usecase.NewRosterImporter(store, log, nil)
				result, err := importer.ImportFile(cmd.Context(), path)
				if err != nil {
					return err
				}

				fmt.Printf("%s (batch %s)\n", result.Filename, result.BatchID)
				fmt.Printf("  processed %d  %s  %s  %s\n",
					result.RowsProcessed,
					color.GreenString("imported %d", result.RowsImported),
					color.YellowString("skipped %d", result.RowsSkipped),
					color.CyanString("duplicate %d", result.RowsDuplicate),
				)
				if result.RowsImported > 0 {
					fmt.Printf("  new block time %s (%s to %s)\n",
						roster.FormatMinutes(result.NewBlockMinutes),
						result.DateRangeStart, result.DateRangeEnd)
				}
				for _, e := range result.Errors {
					color.Red("  line %d: %s", e.Row, e.Message)
				}
			}
			return nil
		},
	}
}
