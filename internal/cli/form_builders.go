package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/solaceapp/solace/internal/domain"
)

// moodOptions builds the suggested mood vocabulary, with an optional skip
// slot at the front.
func moodOptions(allowSkip bool) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.MoodLabels)+1)
	if allowSkip {
		options = append(options, huh.NewOption("(skip)", ""))
	}
	for _, mood := range domain.MoodLabels {
		options = append(options, huh.NewOption(mood, mood))
	}
	return options
}

// runEntryForm collects a journal entry interactively. Tags come from a
// comma-separated input and are split after the form completes.
func runEntryForm(title, content, mood, trigger *string, tags *[]string) error {
	var rawTags string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title (optional)").
				Value(title),
			huh.NewText().
				Title("What's on your mind?").
				Validate(requireText).
				Value(content),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Mood").
				Options(moodOptions(true)...).
				Value(mood),
			huh.NewInput().
				Title("Trigger (optional)").
				Placeholder("argument with a friend").
				Value(trigger),
			huh.NewInput().
				Title("Tags (comma-separated, optional)").
				Placeholder("work, sleep").
				Value(&rawTags),
		),
	).WithTheme(solaceHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	*tags = splitTags(rawTags)
	return nil
}

// runCheckinForm collects a mood check-in interactively.
func runCheckinForm(mood, trigger, note *string, intensity *int) error {
	var rawIntensity string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(moodOptions(false)...).
				Value(mood),
			huh.NewInput().
				Title("Intensity (1-10)").
				Placeholder("5").
				Validate(validateIntensity).
				Value(&rawIntensity),
			huh.NewInput().
				Title("Trigger (optional)").
				Value(trigger),
			huh.NewText().
				Title("Note (optional)").
				Value(note),
		),
	).WithTheme(solaceHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	*intensity, _ = strconv.Atoi(strings.TrimSpace(rawIntensity))
	return nil
}

func requireText(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func validateIntensity(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if n < 1 || n > 10 {
		return fmt.Errorf("must be between 1 and 10")
	}
	return nil
}

func splitTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}
