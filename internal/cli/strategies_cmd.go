package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solaceapp/solace/internal/cli/formatter"
	"github.com/solaceapp/solace/internal/domain"
	"github.com/solaceapp/solace/internal/strategy"
)

func newStrategiesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strategies",
		Short: "Browse the coping strategy catalog",
	}

	cmd.AddCommand(
		newStrategiesListCmd(app),
		newStrategiesShowCmd(app),
	)

	return cmd
}

func newStrategiesListCmd(app *App) *cobra.Command {
	var category, intensity string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List strategies, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			records := app.Catalog.All()

			if category != "" {
				cat, err := strategy.ParseCategory(category)
				if err != nil {
					return err
				}
				records = app.Catalog.ByCategory(cat)
			}
			if intensity != "" {
				tier := domain.StrategyIntensity(intensity)
				if !domain.ValidIntensities[tier] {
					return fmt.Errorf("unknown intensity %q", intensity)
				}
				filtered := records[:0:0]
				for _, s := range records {
					if s.Intensity == tier {
						filtered = append(filtered, s)
					}
				}
				records = filtered
			}

			if len(records) == 0 {
				fmt.Println("No strategies match.")
				return nil
			}

			fmt.Print(formatter.RenderStrategyList(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&intensity, "intensity", "", "Filter by effort tier (quick, moderate, intensive)")

	return cmd
}

func newStrategiesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a strategy with its steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := app.Catalog.ByID(args[0])
			if !ok {
				return fmt.Errorf("no strategy with id %q", args[0])
			}
			fmt.Println(formatter.RenderStrategyCard(s))
			return nil
		},
	}
}
