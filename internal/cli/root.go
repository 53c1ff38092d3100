package cli

import (
	"github.com/spf13/cobra"

	"github.com/solaceapp/solace/internal/service"
	"github.com/solaceapp/solace/internal/strategy"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Entries     service.EntryService
	Checkins    service.CheckinService
	Recommender service.RecommendService
	Backup      service.BackupService
	Catalog     *strategy.Catalog

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// and the strategy browser are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "solace" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "solace",
		Short: "Journal, mood check-ins, and coping strategy suggestions",
	}

	root.AddCommand(
		newEntryCmd(app),
		newCheckinCmd(app),
		newRecommendCmd(app),
		newStrategiesCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
