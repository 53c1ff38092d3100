package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/solaceapp/solace/internal/app"
	"github.com/solaceapp/solace/internal/cli/formatter"
)

func newRecommendCmd(a *App) *cobra.Command {
	var text, mood, trigger string
	var intensity float64
	var scale int
	var seed int64
	var plain, browse bool

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Suggest coping strategies for how you feel",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewRecommendRequest()
			req.Text = text
			req.Mood = mood
			req.Trigger = trigger
			req.Scale = scale
			if cmd.Flags().Changed("intensity") {
				req.Intensity = &intensity
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}

			if browse && a.interactive() {
				model := newRecommendationBrowser(a.Recommender, req)
				_, err := tea.NewProgram(model).Run()
				return err
			}

			resp, err := a.Recommender.Recommend(context.Background(), req)
			if err != nil {
				return err
			}

			if plain {
				fmt.Print(formatter.RenderRecommendationPlain(resp))
				return nil
			}

			fmt.Println(formatter.RenderRecommendation(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Free text to match against")
	addMoodFlags(cmd.Flags(), &mood, &trigger)
	cmd.Flags().Float64Var(&intensity, "intensity", 0, "Reaction strength on --scale")
	cmd.Flags().IntVar(&scale, "scale", 10, "Intensity scale, 5 or 10")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Pin the selection shuffle for reproducible output")
	cmd.Flags().BoolVar(&plain, "plain", false, "Tab-separated output without styling")
	cmd.Flags().BoolVar(&browse, "browse", false, "Browse results interactively")

	return cmd
}
