package recommend

import (
	"strings"

	"github.com/solaceapp/solace/internal/domain"
)

// Matcher derives candidate categories from free text by substring-testing a
// keyword table. It is a deliberately cheap stand-in for sentiment analysis;
// the selector only sees the resulting category set, so a smarter matcher is
// a drop-in replacement.
//
// Matching is not word-boundary aware: "sad" fires inside "saddle". That
// mirrors the established behavior and is accepted rather than silently
// fixed.
type Matcher struct {
	keywords map[string]domain.StrategyCategory
}

// NewMatcher builds a matcher over the given keyword table.
func NewMatcher(keywords map[string]domain.StrategyCategory) *Matcher {
	return &Matcher{keywords: keywords}
}

// NewDefaultMatcher builds a matcher over the canonical keyword table.
func NewDefaultMatcher() *Matcher {
	return NewMatcher(DefaultKeywordMap())
}

// Match returns the set of categories whose keywords occur in text. The
// result has set semantics but a deterministic order (canonical category
// order) so callers and tests see stable output. When nothing matches,
// including for empty text, Match returns DefaultCategories.
func (m *Matcher) Match(text string) []domain.StrategyCategory {
	lower := strings.ToLower(text)

	hit := make(map[domain.StrategyCategory]bool)
	for keyword, cat := range m.keywords {
		if strings.Contains(lower, keyword) {
			hit[cat] = true
		}
	}

	if len(hit) == 0 {
		return DefaultCategories()
	}

	var out []domain.StrategyCategory
	for _, cat := range domain.Categories() {
		if hit[cat] {
			out = append(out, cat)
		}
	}
	return out
}

// MatchedAny reports whether text contains at least one keyword, i.e.
// whether Match would return real matches rather than the default set.
func (m *Matcher) MatchedAny(text string) bool {
	lower := strings.ToLower(text)
	for keyword := range m.keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
