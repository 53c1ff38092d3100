package formatter

import (
	"fmt"
	"strings"

	"github.com/solaceapp/solace/internal/domain"
)

// EntryRow builds a table row for an entry listing.
func EntryRow(e *domain.JournalEntry) []string {
	mood := StyleDim.Render("--")
	if e.Mood != "" {
		mood = StyleYellow.Render(e.Mood)
	}
	return []string{
		TruncID(e.ID),
		Bold(e.DisplayTitle()),
		mood,
		TagList(e.Tags),
		Dim(HumanTimestamp(e.CreatedAt)),
	}
}

// RenderEntryList renders entries as a boxed table.
func RenderEntryList(entries []*domain.JournalEntry) string {
	headers := []string{"ID", "TITLE", "MOOD", "TAGS", "WRITTEN"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, EntryRow(e))
	}
	return RenderBox("Journal", RenderTable(headers, rows))
}

// RenderEntryDetail renders a single entry in full.
func RenderEntryDetail(e *domain.JournalEntry) string {
	var b strings.Builder

	b.WriteString(Header(e.DisplayTitle()) + "\n\n")
	b.WriteString(e.Content + "\n\n")

	if e.Mood != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Mood:"), StyleYellow.Render(e.Mood)))
	}
	if e.Trigger != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Trigger:"), e.Trigger))
	}
	if len(e.Tags) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Tags:"), TagList(e.Tags)))
	}
	if e.ArchivedAt != nil {
		b.WriteString(StyleDim.Render("✖ Archived "+HumanDate(*e.ArchivedAt)) + "\n")
	}
	b.WriteString(Dim("Written " + HumanDate(e.CreatedAt)))

	return b.String()
}
