package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solaceapp/solace/internal/cli/formatter"
	"github.com/solaceapp/solace/internal/domain"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Write and manage journal entries",
	}

	cmd.AddCommand(
		newEntryAddCmd(app),
		newEntryEditCmd(app),
		newEntryListCmd(app),
		newEntryShowCmd(app),
		newEntrySearchCmd(app),
		newEntryArchiveCmd(app),
		newEntryRemoveCmd(app),
	)

	return cmd
}

func newEntryAddCmd(app *App) *cobra.Command {
	var title, content, mood, trigger string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Write a new journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// With no content flag on a terminal, collect the entry through
			// the interactive form instead.
			if content == "" && app.interactive() {
				if err := runEntryForm(&title, &content, &mood, &trigger, &tags); err != nil {
					return err
				}
			}

			entry := &domain.JournalEntry{
				Title:   title,
				Content: content,
				Mood:    mood,
				Trigger: trigger,
				Tags:    tags,
			}
			if err := app.Entries.Create(ctx, entry); err != nil {
				return err
			}

			fmt.Printf("Saved entry %s\n", entry.DisplayID())

			resp, err := app.Recommender.ForEntry(ctx, entry)
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

	cmd.Flags().StringVar(&title, "title", "", "Entry title")
	cmd.Flags().StringVar(&content, "content", "", "Entry text")
	addMoodFlags(cmd.Flags(), &mood, &trigger)
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")

	return cmd
}

func newEntryEditCmd(app *App) *cobra.Command {
	var title, content, mood, trigger string
	var tags []string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit an existing entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			entry, err := app.Entries.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				entry.Title = title
			}
			if cmd.Flags().Changed("content") {
				entry.Content = content
			}
			if cmd.Flags().Changed("mood") {
				entry.Mood = mood
			}
			if cmd.Flags().Changed("trigger") {
				entry.Trigger = trigger
			}
			if cmd.Flags().Changed("tag") {
				entry.Tags = tags
			}

			if err := app.Entries.Update(ctx, entry); err != nil {
				return err
			}
			fmt.Printf("Updated entry %s\n", entry.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&content, "content", "", "New text")
	addMoodFlags(cmd.Flags(), &mood, &trigger)
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Replace tags (repeatable)")

	return cmd
}

func newEntryListCmd(app *App) *cobra.Command {
	var includeArchived bool
	var tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var entries []*domain.JournalEntry
			var err error
			if tag != "" {
				entries, err = app.Entries.ListByTag(ctx, tag)
			} else {
				entries, err = app.Entries.List(ctx, includeArchived)
			}
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("No entries yet.")
				return nil
			}

			fmt.Print(formatter.RenderEntryList(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeArchived, "all", false, "Include archived entries")
	cmd.Flags().StringVar(&tag, "tag", "", "Filter by tag")

	return cmd
}

func newEntryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a journal entry in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Entries.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderEntryDetail(entry))
			return nil
		},
	}
}

func newEntrySearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search entries by title and content",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			entries, err := app.Entries.Search(context.Background(), query)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Printf("No entries match %q.\n", query)
				return nil
			}

			fmt.Print(formatter.RenderEntryList(entries))
			return nil
		},
	}
}

func newEntryArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive an entry without deleting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Entries.Archive(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Archived entry %s\n", args[0])
			return nil
		},
	}
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Permanently delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Entries.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed entry %s\n", args[0])
			return nil
		},
	}
}
