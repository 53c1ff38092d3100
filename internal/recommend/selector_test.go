package recommend

import (
	"math/rand"
	"testing"

	"github.com/solaceapp/solace/internal/domain"
	"github.com/solaceapp/solace/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStrategy(id string, cat domain.StrategyCategory, tier domain.StrategyIntensity, moods ...string) domain.Strategy {
	return domain.Strategy{
		ID:          id,
		Title:       id,
		Category:    cat,
		Intensity:   tier,
		Steps:       []string{"do the thing"},
		MoodTargets: moods,
	}
}

func testCatalog(t *testing.T, records ...domain.Strategy) *strategy.Catalog {
	t.Helper()
	cat, err := strategy.NewCatalog(records)
	require.NoError(t, err)
	return cat
}

func TestSelect_BoundedOutput(t *testing.T) {
	catalog := strategy.NewSeededCatalog()
	rng := rand.New(rand.NewSource(1))

	got := Select(catalog, domain.Categories(), Options{Rand: rng})
	assert.LessOrEqual(t, len(got), MaxRecommendations)
}

func TestSelect_NoDuplicates(t *testing.T) {
	shared := testStrategy("shared", domain.CategorySelfCare, domain.IntensityQuick)
	catalog := testCatalog(t,
		shared,
		testStrategy("mindful-a", domain.CategoryMindfulness, domain.IntensityQuick),
	)

	// The same category listed twice must not duplicate its picks.
	got := Select(catalog, []domain.StrategyCategory{
		domain.CategorySelfCare,
		domain.CategorySelfCare,
		domain.CategoryMindfulness,
	}, Options{})

	seen := make(map[string]bool)
	for _, s := range got {
		require.False(t, seen[s.ID], "duplicate strategy %s", s.ID)
		seen[s.ID] = true
	}
	assert.Len(t, got, 2)
}

func TestSelect_PerCategoryCap(t *testing.T) {
	catalog := testCatalog(t,
		testStrategy("sc-1", domain.CategorySelfCare, domain.IntensityQuick),
		testStrategy("sc-2", domain.CategorySelfCare, domain.IntensityQuick),
		testStrategy("sc-3", domain.CategorySelfCare, domain.IntensityQuick),
	)
	got := Select(catalog, []domain.StrategyCategory{domain.CategorySelfCare}, Options{})
	assert.Len(t, got, PerCategoryLimit)
}

func TestSelect_EmptyCategoryContributesNothing(t *testing.T) {
	catalog := testCatalog(t,
		testStrategy("mindful-a", domain.CategoryMindfulness, domain.IntensityQuick),
	)

	// Creative has no entries: not an error, just fewer results.
	got := Select(catalog, []domain.StrategyCategory{
		domain.CategoryCreative,
		domain.CategoryMindfulness,
	}, Options{})
	require.Len(t, got, 1)
	assert.Equal(t, "mindful-a", got[0].ID)

	// All-empty input degrades to an empty, non-nil-safe result.
	got = Select(catalog, []domain.StrategyCategory{domain.CategoryCreative}, Options{})
	assert.Empty(t, got)
}

func TestSelect_IntensityGatesIntensiveTier(t *testing.T) {
	catalog := testCatalog(t,
		testStrategy("quick-1", domain.CategorySelfCare, domain.IntensityQuick),
		testStrategy("moderate-1", domain.CategorySelfCare, domain.IntensityModerate),
		testStrategy("intensive-1", domain.CategorySelfCare, domain.IntensityIntensive),
	)
	cats := []domain.StrategyCategory{domain.CategorySelfCare}

	// Mild reaction (2 on a 1-10 scale): quick/moderate win.
	mild := domain.NormalizeIntensity(2, 10)
	got := Select(catalog, cats, Options{Intensity: &mild})
	require.Len(t, got, 2)
	for _, s := range got {
		assert.NotEqual(t, domain.IntensityIntensive, s.Intensity)
	}

	// Strong reaction (8 on a 1-10 scale): intensive ranks first.
	strong := domain.NormalizeIntensity(8, 10)
	got = Select(catalog, cats, Options{Intensity: &strong})
	require.Len(t, got, 2)
	assert.Equal(t, "intensive-1", got[0].ID)

	// No intensity context behaves like mild.
	got = Select(catalog, cats, Options{})
	require.Len(t, got, 2)
	for _, s := range got {
		assert.NotEqual(t, domain.IntensityIntensive, s.Intensity)
	}
}

func TestSelect_IntensiveFillsGapWhenNothingElse(t *testing.T) {
	catalog := testCatalog(t,
		testStrategy("only-intensive", domain.CategorySocial, domain.IntensityIntensive),
	)
	mild := domain.NormalizeIntensity(2, 10)
	got := Select(catalog, []domain.StrategyCategory{domain.CategorySocial}, Options{Intensity: &mild})
	require.Len(t, got, 1)
	assert.Equal(t, "only-intensive", got[0].ID)
}

func TestSelect_MoodTargetingPrefersMatchingStrategies(t *testing.T) {
	catalog := testCatalog(t,
		testStrategy("generic", domain.CategorySelfCare, domain.IntensityQuick),
		testStrategy("for-lonely", domain.CategorySelfCare, domain.IntensityQuick, "lonely"),
	)
	got := Select(catalog, []domain.StrategyCategory{domain.CategorySelfCare}, Options{Mood: "Lonely"})
	require.Len(t, got, 2)
	assert.Equal(t, "for-lonely", got[0].ID)
}

func TestSelect_SeededShuffleIsDeterministic(t *testing.T) {
	catalog := strategy.NewSeededCatalog()
	cats := domain.Categories() // 6 categories x 2 picks > 5, forces shuffle+truncate

	first := Select(catalog, cats, Options{Rand: rand.New(rand.NewSource(42))})
	second := Select(catalog, cats, Options{Rand: rand.New(rand.NewSource(42))})
	require.Equal(t, first, second)

	other := Select(catalog, cats, Options{Rand: rand.New(rand.NewSource(7))})
	assert.Len(t, other, MaxRecommendations)
}

func TestSelect_NilRandIsDeclarationOrderTruncation(t *testing.T) {
	catalog := strategy.NewSeededCatalog()
	got := Select(catalog, domain.Categories(), Options{})
	require.Len(t, got, MaxRecommendations)

	again := Select(catalog, domain.Categories(), Options{})
	assert.Equal(t, got, again)
}

func TestSelect_RejectionTextPicksSelfCare(t *testing.T) {
	catalog := strategy.NewSeededCatalog()
	matcher := NewDefaultMatcher()

	cats := matcher.Match("I felt so rejected and sad after the interview")
	require.Contains(t, cats, domain.CategorySelfCare)

	got := Select(catalog, cats, Options{Rand: rand.New(rand.NewSource(3))})
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), MaxRecommendations)

	perCategory := make(map[domain.StrategyCategory]int)
	seen := make(map[string]bool)
	for _, s := range got {
		require.False(t, seen[s.ID])
		seen[s.ID] = true
		perCategory[s.Category]++
	}
	for cat, n := range perCategory {
		assert.LessOrEqual(t, n, PerCategoryLimit, "category %s", cat)
	}
}
