package formatter

import (
	"fmt"
	"strings"

	"github.com/solaceapp/solace/internal/domain"
	"github.com/solaceapp/solace/internal/repository"
)

// RenderCheckinList renders recent check-ins as a boxed table.
func RenderCheckinList(checkins []*domain.MoodCheckin) string {
	headers := []string{"ID", "MOOD", "NOTE", "WHEN"}
	rows := make([][]string, 0, len(checkins))
	for _, c := range checkins {
		note := StyleDim.Render("--")
		if c.Note != "" {
			note = TruncText(c.Note, 40)
		}
		rows = append(rows, []string{
			TruncID(c.ID),
			MoodPill(c.Mood, c.Intensity),
			note,
			Dim(HumanTimestamp(c.CreatedAt)),
		})
	}
	return RenderBox("Check-ins", RenderTable(headers, rows))
}

// RenderMoodSummary renders per-mood aggregates with a proportional bar.
func RenderMoodSummary(summary []repository.MoodSummary, days int) string {
	if len(summary) == 0 {
		return Dim("No check-ins in this period.")
	}

	maxCount := summary[0].Count
	for _, s := range summary {
		if s.Count > maxCount {
			maxCount = s.Count
		}
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Mood, last %d days", days)) + "\n\n")
	for _, s := range summary {
		barLen := 1
		if maxCount > 0 {
			barLen = s.Count * 20 / maxCount
			if barLen < 1 {
				barLen = 1
			}
		}
		bar := StyleBlue.Render(strings.Repeat("█", barLen))
		b.WriteString(fmt.Sprintf("%-12s %s %s\n",
			s.Mood,
			bar,
			Dim(fmt.Sprintf("%d× avg %.1f", s.Count, s.AvgIntensity)),
		))
	}
	return b.String()
}
