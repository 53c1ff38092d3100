package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solaceapp/solace/internal/importer"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Export the journal to a JSON backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := app.Backup.Export(context.Background())
			if err != nil {
				return err
			}
			if err := importer.WriteFile(args[0], schema); err != nil {
				return err
			}

			fmt.Printf("Exported %d entries and %d check-ins to %s\n",
				len(schema.Entries), len(schema.Checkins), args[0])
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Restore entries and check-ins from a JSON backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.ReadFile(args[0])
			if err != nil {
				return err
			}

			stats, err := app.Backup.Import(context.Background(), schema)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d entries and %d check-ins\n", stats.Entries, stats.Checkins)
			return nil
		},
	}
}
