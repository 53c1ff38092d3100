package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solaceapp/solace/internal/cli/formatter"
	"github.com/solaceapp/solace/internal/domain"
)

func newCheckinCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Log and review mood check-ins",
	}

	cmd.AddCommand(
		newCheckinLogCmd(app),
		newCheckinListCmd(app),
		newCheckinSummaryCmd(app),
		newCheckinRemoveCmd(app),
	)

	return cmd
}

func newCheckinLogCmd(app *App) *cobra.Command {
	var mood, note, trigger string
	var intensity int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log how you are feeling right now",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if mood == "" && app.interactive() {
				if err := runCheckinForm(&mood, &trigger, &note, &intensity); err != nil {
					return err
				}
			}

			checkin := &domain.MoodCheckin{
				Mood:      mood,
				Intensity: intensity,
				Note:      note,
				Trigger:   trigger,
			}
			if err := app.Checkins.Log(ctx, checkin); err != nil {
				return err
			}

			fmt.Printf("Logged %s\n", formatter.MoodPill(checkin.Mood, checkin.Intensity))

			resp, err := app.Recommender.ForCheckin(ctx, checkin)
			if err != nil {
				return err
			}
			if resp != nil && !resp.IsEmpty() {
				fmt.Println()
				fmt.Println(formatter.RenderRecommendation(resp))
			}
			return nil
		},
	}

	addMoodFlags(cmd.Flags(), &mood, &trigger)
	cmd.Flags().IntVar(&intensity, "intensity", 5, "How strongly (1-10)")
	cmd.Flags().StringVar(&note, "note", "", "Short note")

	return cmd
}

func newCheckinListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent check-ins",
		RunE: func(cmd *cobra.Command, args []string) error {
			checkins, err := app.Checkins.ListRecent(context.Background(), days)
			if err != nil {
				return err
			}

			if len(checkins) == 0 {
				fmt.Println("No check-ins found.")
				return nil
			}

			fmt.Print(formatter.RenderCheckinList(checkins))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of recent days to show")

	return cmd
}

func newCheckinSummaryCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show mood counts and average intensity",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Checkins.Summary(context.Background(), days)
			if err != nil {
				return err
			}

			fmt.Println(formatter.RenderMoodSummary(summary, days))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Summary window in days")

	return cmd
}

func newCheckinRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a check-in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Checkins.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed check-in %s\n", args[0])
			return nil
		},
	}
}
