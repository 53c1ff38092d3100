package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/solaceapp/solace/internal/domain"
	"github.com/solaceapp/solace/internal/strategy"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Dim renders text in the dim style.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in the bold foreground style.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// categoryStyle maps each strategy category to its palette color.
func categoryStyle(cat domain.StrategyCategory) lipgloss.Style {
	switch cat {
	case domain.CategoryMindfulness:
		return StyleBlue
	case domain.CategoryCognitive:
		return StylePurple
	case domain.CategoryPhysical:
		return StyleGreen
	case domain.CategorySocial:
		return StyleYellow
	case domain.CategoryCreative:
		return StyleRed
	case domain.CategorySelfCare:
		return StyleFg
	default:
		return StyleDim
	}
}

// CategoryBadge returns a colored "icon Name" label for a strategy category.
func CategoryBadge(cat domain.StrategyCategory) string {
	label := strategy.IconToken(cat) + " " + strategy.DisplayName(cat)
	return categoryStyle(cat).Render(label)
}

// IntensityPill returns a colored effort indicator for a strategy tier.
func IntensityPill(tier domain.StrategyIntensity) string {
	switch tier {
	case domain.IntensityQuick:
		return StyleGreen.Render("○ " + strategy.IntensityLabel(tier))
	case domain.IntensityModerate:
		return StyleYellow.Render("◐ " + strategy.IntensityLabel(tier))
	case domain.IntensityIntensive:
		return StyleRed.Render("● " + strategy.IntensityLabel(tier))
	default:
		return StyleDim.Render(string(tier))
	}
}

// MoodPill returns a 1-10 intensity readout colored by strength.
func MoodPill(mood string, intensity int) string {
	value := fmt.Sprintf("%s %d/10", mood, intensity)
	switch {
	case intensity >= 8:
		return StyleRed.Render(value)
	case intensity >= 5:
		return StyleYellow.Render(value)
	default:
		return StyleGreen.Render(value)
	}
}
