package recommend

import "github.com/solaceapp/solace/internal/domain"

// DefaultKeywordMap is the canonical emotion-keyword table. Each keyword maps
// to exactly one category; several keywords may share a category. The source
// history carried multiple conflicting tables ("rejected" appeared under both
// self_care and social); this table is the single adopted mapping, with
// rejection language going to self_care.
//
// Matching is case-insensitive substring containment, so entries should stay
// lowercase and reasonably distinctive ("rage" will also fire inside
// "outrageous" — an accepted limitation of the cheap matcher).
func DefaultKeywordMap() map[string]domain.StrategyCategory {
	return map[string]domain.StrategyCategory{
		// self_care: rejection, sadness, depletion
		"rejected":     domain.CategorySelfCare,
		"rejection":    domain.CategorySelfCare,
		"sad":          domain.CategorySelfCare,
		"down":         domain.CategorySelfCare,
		"hopeless":     domain.CategorySelfCare,
		"worthless":    domain.CategorySelfCare,
		"exhausted":    domain.CategorySelfCare,
		"drained":      domain.CategorySelfCare,
		"hurt":         domain.CategorySelfCare,
		"crying":       domain.CategorySelfCare,
		"heartbroken":  domain.CategorySelfCare,
		"disappointed": domain.CategorySelfCare,

		// mindfulness: anxiety, panic, racing thoughts
		"anxious":     domain.CategoryMindfulness,
		"anxiety":     domain.CategoryMindfulness,
		"panic":       domain.CategoryMindfulness,
		"nervous":     domain.CategoryMindfulness,
		"worried":     domain.CategoryMindfulness,
		"worrying":    domain.CategoryMindfulness,
		"racing":      domain.CategoryMindfulness,
		"restless":    domain.CategoryMindfulness,
		"tense":       domain.CategoryMindfulness,
		"overwhelmed": domain.CategoryMindfulness,

		// cognitive: harsh self-talk, catastrophizing
		"failure":     domain.CategoryCognitive,
		"stupid":      domain.CategoryCognitive,
		"ruined":      domain.CategoryCognitive,
		"catastrophe": domain.CategoryCognitive,
		"regret":      domain.CategoryCognitive,
		"should have": domain.CategoryCognitive,
		"my fault":    domain.CategoryCognitive,
		"never good":  domain.CategoryCognitive,

		// physical: anger, agitation
		"angry":      domain.CategoryPhysical,
		"furious":    domain.CategoryPhysical,
		"rage":       domain.CategoryPhysical,
		"frustrated": domain.CategoryPhysical,
		"irritated":  domain.CategoryPhysical,
		"agitated":   domain.CategoryPhysical,
		"stressed":   domain.CategoryPhysical,

		// social: loneliness, exclusion
		"lonely":    domain.CategorySocial,
		"alone":     domain.CategorySocial,
		"isolated":  domain.CategorySocial,
		"ignored":   domain.CategorySocial,
		"excluded":  domain.CategorySocial,
		"abandoned": domain.CategorySocial,
		"left out":  domain.CategorySocial,

		// creative: numbness, flatness
		"numb":  domain.CategoryCreative,
		"empty": domain.CategoryCreative,
		"stuck": domain.CategoryCreative,
		"bored": domain.CategoryCreative,
		"blank": domain.CategoryCreative,
	}
}

// DefaultCategories is the fallback category set used when no keyword
// matches, including for empty text.
func DefaultCategories() []domain.StrategyCategory {
	return []domain.StrategyCategory{
		domain.CategorySelfCare,
		domain.CategoryMindfulness,
	}
}
