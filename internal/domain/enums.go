package domain

type StrategyCategory string

const (
	CategoryMindfulness StrategyCategory = "mindfulness"
	CategoryCognitive   StrategyCategory = "cognitive"
	CategoryPhysical    StrategyCategory = "physical"
	CategorySocial      StrategyCategory = "social"
	CategoryCreative    StrategyCategory = "creative"
	CategorySelfCare    StrategyCategory = "self_care"
)

// Categories returns the canonical category set in its fixed declaration
// order. Matching and selection iterate this slice so their output order is
// deterministic.
func Categories() []StrategyCategory {
	return []StrategyCategory{
		CategoryMindfulness,
		CategoryCognitive,
		CategoryPhysical,
		CategorySocial,
		CategoryCreative,
		CategorySelfCare,
	}
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[StrategyCategory]bool{
	CategoryMindfulness: true,
	CategoryCognitive:   true,
	CategoryPhysical:    true,
	CategorySocial:      true,
	CategoryCreative:    true,
	CategorySelfCare:    true,
}

type StrategyIntensity string

const (
	IntensityQuick     StrategyIntensity = "quick"
	IntensityModerate  StrategyIntensity = "moderate"
	IntensityIntensive StrategyIntensity = "intensive"
)

// ValidIntensities is the canonical set of accepted intensity tier strings.
var ValidIntensities = map[StrategyIntensity]bool{
	IntensityQuick:     true,
	IntensityModerate:  true,
	IntensityIntensive: true,
}

// StrategyDuration is the legacy fine-grained duration bucket derived from
// human-readable time estimates. It survives only as an input format; the
// canonical effort model is StrategyIntensity.
type StrategyDuration string

const (
	DurationVeryShort StrategyDuration = "very_short"
	DurationShort     StrategyDuration = "short"
	DurationMedium    StrategyDuration = "medium"
	DurationLong      StrategyDuration = "long"
)

// MoodLabels is the suggested mood vocabulary offered by the CLI. Moods are
// stored as free text; this list only drives prompts and completion.
var MoodLabels = []string{
	"anxious", "sad", "angry", "stressed", "lonely",
	"overwhelmed", "numb", "hopeful", "calm", "happy",
}
