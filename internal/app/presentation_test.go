package app

import (
	"testing"

	"github.com/solaceapp/solace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentation_IdentityPerConstruction(t *testing.T) {
	result := []domain.Strategy{{ID: "box-breathing", Title: "Box breathing"}}

	a := NewRecommendationPresentation(result)
	b := NewRecommendationPresentation(result)

	// Identical strategies, distinct presentation events.
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, a.Strategies(), b.Strategies())
}

func TestPresentation_ReadOnly(t *testing.T) {
	result := []domain.Strategy{{ID: "tea-ritual", Title: "Tea ritual"}}
	p := NewRecommendationPresentation(result)

	// Mutating either the input or the accessor's return must not reach
	// the held result.
	result[0].Title = "changed input"
	got := p.Strategies()
	got[0].Title = "changed output"

	require.Equal(t, "Tea ritual", p.Strategies()[0].Title)
	assert.False(t, p.IsEmpty())
	assert.False(t, p.CreatedAt().IsZero())
}

func TestPresentation_Empty(t *testing.T) {
	p := NewRecommendationPresentation(nil)
	assert.True(t, p.IsEmpty())
	assert.Empty(t, p.Strategies())
	assert.NotEmpty(t, p.ID())
}
