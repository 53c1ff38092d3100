package strategy

import (
	"fmt"
	"strings"

	"github.com/solaceapp/solace/internal/domain"
)

// MappingError reports a category label outside every known taxonomy. It is a
// programmer error: it means a taxonomy gained a value without this table
// being updated, so callers surface it loudly instead of guessing a category.
type MappingError struct {
	Label string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("no canonical category for label %q", e.Label)
}

// legacyCategoryLabels maps every category spelling from the superseded
// taxonomies onto the canonical set. Keys are canonicalized via foldLabel.
// The canonical spellings themselves are included, so ParseCategory is total
// over canonical and legacy labels alike.
var legacyCategoryLabels = map[string]domain.StrategyCategory{
	// canonical
	"mindfulness": domain.CategoryMindfulness,
	"cognitive":   domain.CategoryCognitive,
	"physical":    domain.CategoryPhysical,
	"social":      domain.CategorySocial,
	"creative":    domain.CategoryCreative,
	"selfcare":    domain.CategorySelfCare,

	// engine-local taxonomy
	"breathing":   domain.CategoryMindfulness,
	"thought":     domain.CategoryCognitive,
	"activity":    domain.CategoryPhysical,
	"support":     domain.CategorySocial,
	"distraction": domain.CategoryCreative,
	"comfort":     domain.CategorySelfCare,

	// core taxonomy
	"grounding":      domain.CategoryMindfulness,
	"reframing":      domain.CategoryCognitive,
	"movement":       domain.CategoryPhysical,
	"connection":     domain.CategorySocial,
	"expression":     domain.CategoryCreative,
	"selfcompassion": domain.CategorySelfCare,

	// library-local taxonomy
	"meditation":  domain.CategoryMindfulness,
	"thinking":    domain.CategoryCognitive,
	"exercise":    domain.CategoryPhysical,
	"relational":  domain.CategorySocial,
	"art":         domain.CategoryCreative,
	"selfsoothe":  domain.CategorySelfCare,
	"selfsoothing": domain.CategorySelfCare,
}

// foldLabel lowercases a label and strips separators so "Self-Care",
// "self_care", and "selfCare" all fold to "selfcare".
func foldLabel(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch r {
		case ' ', '-', '_', '/':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseCategory resolves any known category label, canonical or legacy, to
// the canonical StrategyCategory. Unknown labels return a *MappingError.
func ParseCategory(label string) (domain.StrategyCategory, error) {
	if cat, ok := legacyCategoryLabels[foldLabel(label)]; ok {
		return cat, nil
	}
	return "", &MappingError{Label: label}
}

// IntensityFromDuration reconciles the legacy duration bucket into the
// canonical intensity tier.
func IntensityFromDuration(d domain.StrategyDuration) domain.StrategyIntensity {
	switch d {
	case domain.DurationVeryShort, domain.DurationShort:
		return domain.IntensityQuick
	case domain.DurationLong:
		return domain.IntensityIntensive
	default:
		return domain.IntensityModerate
	}
}

// DurationFromEstimate buckets a human-readable time estimate into the legacy
// duration scale. This is the second of the two historical duration sources;
// it exists so estimates like "5 minutes" can be reconciled through
// IntensityFromDuration into the canonical tier. Unparseable estimates land
// in the medium bucket.
func DurationFromEstimate(estimate string) domain.StrategyDuration {
	lower := strings.ToLower(estimate)

	if strings.Contains(lower, "hour") || strings.Contains(lower, "day") {
		return domain.DurationLong
	}

	minutes := leadingNumber(lower)
	switch {
	case minutes <= 0:
		return domain.DurationMedium
	case minutes <= 5:
		return domain.DurationVeryShort
	case minutes <= 15:
		return domain.DurationShort
	case minutes <= 30:
		return domain.DurationMedium
	default:
		return domain.DurationLong
	}
}

// leadingNumber extracts the first integer in the string, or -1 if none.
func leadingNumber(s string) int {
	n := -1
	for _, r := range s {
		if r >= '0' && r <= '9' {
			if n < 0 {
				n = 0
			}
			n = n*10 + int(r-'0')
			continue
		}
		if n >= 0 {
			break
		}
	}
	return n
}

// DisplayName returns the human-readable name for a canonical category.
func DisplayName(cat domain.StrategyCategory) string {
	switch cat {
	case domain.CategoryMindfulness:
		return "Mindfulness"
	case domain.CategoryCognitive:
		return "Cognitive"
	case domain.CategoryPhysical:
		return "Physical"
	case domain.CategorySocial:
		return "Social"
	case domain.CategoryCreative:
		return "Creative"
	case domain.CategorySelfCare:
		return "Self-Care"
	default:
		return string(cat)
	}
}

// IconToken returns the glyph token the presentation layer renders for a
// canonical category.
func IconToken(cat domain.StrategyCategory) string {
	switch cat {
	case domain.CategoryMindfulness:
		return "🧘"
	case domain.CategoryCognitive:
		return "💭"
	case domain.CategoryPhysical:
		return "🏃"
	case domain.CategorySocial:
		return "💬"
	case domain.CategoryCreative:
		return "🎨"
	case domain.CategorySelfCare:
		return "🌱"
	default:
		return "•"
	}
}

// IntensityLabel returns the display label for an intensity tier.
func IntensityLabel(tier domain.StrategyIntensity) string {
	switch tier {
	case domain.IntensityQuick:
		return "Quick"
	case domain.IntensityModerate:
		return "Moderate"
	case domain.IntensityIntensive:
		return "Intensive"
	default:
		return string(tier)
	}
}
