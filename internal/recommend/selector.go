package recommend

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/solaceapp/solace/internal/domain"
	"github.com/solaceapp/solace/internal/strategy"
)

const (
	// PerCategoryLimit caps how many strategies one matched category may
	// contribute before deduplication.
	PerCategoryLimit = 2

	// MaxRecommendations bounds the final result length.
	MaxRecommendations = 5
)

// Options tunes a single selection. The zero value selects with no intensity
// context, no mood preference, and deterministic ordering.
type Options struct {
	// Intensity is the normalized 0-1 reaction strength, if known. At or
	// above domain.StrongReactionThreshold the intensive tier is preferred;
	// below it quick/moderate strategies are preferred and intensive ones
	// are used only to fill gaps.
	Intensity *float64

	// Mood, when set, ranks strategies targeting that mood ahead of the
	// rest of their category.
	Mood string

	// Rand shuffles the result before truncation when more than
	// MaxRecommendations strategies survive deduplication. A nil Rand skips
	// the shuffle entirely; there is no hidden global fallback, so a fixed
	// seed gives byte-identical results.
	Rand *rand.Rand
}

// Select turns matched categories into a bounded, deduplicated strategy list.
// It never fails: categories with no catalog entries simply contribute
// nothing, and the result may be empty.
func Select(catalog *strategy.Catalog, categories []domain.StrategyCategory, opts Options) []domain.Strategy {
	var picked []domain.Strategy
	seen := make(map[string]bool)

	for _, cat := range categories {
		for _, s := range pickForCategory(catalog, cat, opts) {
			if seen[s.ID] {
				continue
			}
			seen[s.ID] = true
			picked = append(picked, s)
		}
	}

	if len(picked) > MaxRecommendations {
		if opts.Rand != nil {
			opts.Rand.Shuffle(len(picked), func(i, j int) {
				picked[i], picked[j] = picked[j], picked[i]
			})
		}
		picked = picked[:MaxRecommendations]
	}

	return picked
}

// pickForCategory returns up to PerCategoryLimit strategies for one category,
// ranked by tier preference, then mood targeting, then declaration order.
func pickForCategory(catalog *strategy.Catalog, cat domain.StrategyCategory, opts Options) []domain.Strategy {
	candidates := catalog.ByCategory(cat)
	if len(candidates) == 0 {
		return nil
	}

	strong := opts.Intensity != nil && *opts.Intensity >= domain.StrongReactionThreshold

	sort.SliceStable(candidates, func(i, j int) bool {
		ri, rj := candidateRank(candidates[i], strong, opts.Mood), candidateRank(candidates[j], strong, opts.Mood)
		return ri < rj
	})

	if len(candidates) > PerCategoryLimit {
		candidates = candidates[:PerCategoryLimit]
	}
	return candidates
}

// candidateRank orders candidates within a category; lower sorts first.
func candidateRank(s domain.Strategy, strong bool, mood string) int {
	rank := 0

	intensive := s.Intensity == domain.IntensityIntensive
	if strong {
		// Strong reactions warrant the heavier interventions.
		if !intensive {
			rank += 2
		}
	} else if intensive {
		// Mild or unknown reactions stick to quick/moderate when possible.
		rank += 2
	}

	if mood != "" && !targetsMood(s, mood) {
		rank++
	}

	return rank
}

func targetsMood(s domain.Strategy, mood string) bool {
	for _, target := range s.MoodTargets {
		if strings.EqualFold(target, mood) {
			return true
		}
	}
	return false
}
