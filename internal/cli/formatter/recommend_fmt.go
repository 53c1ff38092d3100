package formatter

import (
	"fmt"
	"strings"

	"github.com/solaceapp/solace/internal/app"
	"github.com/solaceapp/solace/internal/domain"
	"github.com/solaceapp/solace/internal/strategy"
)

// RenderRecommendation renders a recommendation response as a boxed list
// with a short provenance line.
func RenderRecommendation(resp *app.RecommendResponse) string {
	if resp == nil || resp.IsEmpty() {
		return Dim("No strategies to suggest right now.")
	}

	var b strings.Builder
	b.WriteString(matchLine(resp) + "\n\n")

	for i, s := range resp.Strategies {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleHeader.Render(fmt.Sprintf("%d.", i+1)), Bold(s.Title)))
		b.WriteString(fmt.Sprintf("   %s  %s  %s\n", CategoryBadge(s.Category), IntensityPill(s.Intensity), Dim(s.TimeEstimate)))
		if s.Description != "" {
			b.WriteString("   " + TruncText(s.Description, 70) + "\n")
		}
		if i < len(resp.Strategies)-1 {
			b.WriteString("\n")
		}
	}

	return RenderBox("Try one of these", b.String())
}

// RenderRecommendationPlain is the no-color, script-friendly rendition.
func RenderRecommendationPlain(resp *app.RecommendResponse) string {
	if resp == nil || resp.IsEmpty() {
		return "no recommendations\n"
	}

	var b strings.Builder
	for _, s := range resp.Strategies {
		b.WriteString(fmt.Sprintf("%s\t%s\t%s\t%s\n", s.ID, s.Category, s.Intensity, s.Title))
	}
	return b.String()
}

func matchLine(resp *app.RecommendResponse) string {
	names := make([]string, 0, len(resp.Matched))
	for _, cat := range resp.Matched {
		names = append(names, strategy.DisplayName(cat))
	}
	joined := strings.Join(names, ", ")

	if resp.UsedDefault {
		return Dim("Nothing specific matched, so here are some gentle defaults (" + joined + ").")
	}
	line := Dim("Based on what you wrote: ") + StyleYellow.Render(joined)
	if resp.Intensity != nil && *resp.Intensity >= domain.StrongReactionThreshold {
		line += Dim(" · strong reaction")
	}
	return line
}
