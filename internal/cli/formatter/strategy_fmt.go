package formatter

import (
	"fmt"
	"strings"

	"github.com/solaceapp/solace/internal/domain"
)

// RenderStrategyList renders catalog strategies as a boxed table.
func RenderStrategyList(strategies []domain.Strategy) string {
	headers := []string{"ID", "STRATEGY", "CATEGORY", "EFFORT", "TIME"}
	rows := make([][]string, 0, len(strategies))
	for _, s := range strategies {
		rows = append(rows, []string{
			Dim(s.ID),
			Bold(s.Title),
			CategoryBadge(s.Category),
			IntensityPill(s.Intensity),
			Dim(s.TimeEstimate),
		})
	}
	return RenderBox("Strategies", RenderTable(headers, rows))
}

// RenderStrategyCard renders one strategy in full, with steps and tips.
func RenderStrategyCard(s domain.Strategy) string {
	var b strings.Builder

	b.WriteString(Header(s.Title) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n\n",
		CategoryBadge(s.Category),
		IntensityPill(s.Intensity),
		Dim(s.TimeEstimate),
	))

	if s.Description != "" {
		b.WriteString(s.Description + "\n\n")
	}

	for i, step := range s.Steps {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleHeader.Render(fmt.Sprintf("%d.", i+1)), step))
	}

	if len(s.Tips) > 0 {
		b.WriteString("\n")
		for _, tip := range s.Tips {
			b.WriteString("  " + Dim("◦ "+tip) + "\n")
		}
	}

	if len(s.MoodTargets) > 0 {
		b.WriteString("\n" + Dim("Helps with: "+strings.Join(s.MoodTargets, ", ")) + "\n")
	}

	return b.String()
}
