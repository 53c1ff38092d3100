package strategy

import (
	"testing"

	"github.com/solaceapp/solace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeededCatalog_ValidAndCoversAllCategories(t *testing.T) {
	cat := NewSeededCatalog()
	require.Greater(t, cat.Len(), 20)

	seen := make(map[domain.StrategyCategory]bool)
	for _, s := range cat.All() {
		require.NoError(t, s.Validate(), "seed record %s", s.ID)
		seen[s.Category] = true
	}
	for _, c := range domain.Categories() {
		assert.True(t, seen[c], "no seed strategies for category %s", c)
	}
}

func TestNewSeededCatalog_EveryCategoryHasNonIntensiveOption(t *testing.T) {
	// The selector prefers quick/moderate below the strong-reaction
	// threshold, so each category needs at least one such record.
	cat := NewSeededCatalog()
	for _, c := range domain.Categories() {
		var nonIntensive int
		for _, s := range cat.ByCategory(c) {
			if s.Intensity != domain.IntensityIntensive {
				nonIntensive++
			}
		}
		assert.GreaterOrEqual(t, nonIntensive, 2, "category %s", c)
	}
}

func TestNewCatalog_RejectsInvalidRecords(t *testing.T) {
	_, err := NewCatalog([]domain.Strategy{
		{ID: "no-steps", Title: "No steps", Category: domain.CategoryPhysical, Intensity: domain.IntensityQuick},
	})
	assert.Error(t, err)

	_, err = NewCatalog([]domain.Strategy{
		{ID: "bad-cat", Title: "Bad", Category: "wellness", Intensity: domain.IntensityQuick, Steps: []string{"x"}},
	})
	assert.Error(t, err)
}

func TestNewCatalog_RejectsDuplicateIDs(t *testing.T) {
	rec := domain.Strategy{
		ID: "dup", Title: "Dup",
		Category:  domain.CategoryMindfulness,
		Intensity: domain.IntensityQuick,
		Steps:     []string{"step"},
	}
	_, err := NewCatalog([]domain.Strategy{rec, rec})
	assert.ErrorContains(t, err, "duplicate")
}

func TestCatalog_ByCategoryAndIntensity(t *testing.T) {
	cat := NewSeededCatalog()

	mindful := cat.ByCategory(domain.CategoryMindfulness)
	require.NotEmpty(t, mindful)
	for _, s := range mindful {
		assert.Equal(t, domain.CategoryMindfulness, s.Category)
	}

	quick := cat.ByIntensity(domain.IntensityQuick)
	require.NotEmpty(t, quick)
	for _, s := range quick {
		assert.Equal(t, domain.IntensityQuick, s.Intensity)
	}
}

func TestCatalog_AllReturnsStableOrderAndCopy(t *testing.T) {
	cat := NewSeededCatalog()
	first := cat.All()
	second := cat.All()
	require.Equal(t, first, second)

	// Mutating the returned slice must not touch the catalog.
	first[0].Title = "mutated"
	assert.NotEqual(t, "mutated", cat.All()[0].Title)
}

func TestCatalog_ByID(t *testing.T) {
	cat := NewSeededCatalog()
	s, ok := cat.ByID("box-breathing")
	require.True(t, ok)
	assert.Equal(t, "Box breathing", s.Title)

	_, ok = cat.ByID("does-not-exist")
	assert.False(t, ok)
}
