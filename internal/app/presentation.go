package app

import (
	"time"

	"github.com/google/uuid"
	"github.com/solaceapp/solace/internal/domain"
)

// RecommendationPresentation is the seam between the engine and the
// presentation layer: a read-only holder of one recommendation result. Each
// construction gets a fresh identity, so two presentations over identical
// strategies are still distinct display events and a UI can show each exactly
// once.
type RecommendationPresentation struct {
	id         string
	strategies []domain.Strategy
	createdAt  time.Time
}

// NewRecommendationPresentation wraps a result for display. The input slice
// is copied; later mutation by the caller does not leak into the
// presentation.
func NewRecommendationPresentation(result []domain.Strategy) *RecommendationPresentation {
	strategies := make([]domain.Strategy, len(result))
	copy(strategies, result)
	return &RecommendationPresentation{
		id:         uuid.New().String(),
		strategies: strategies,
		createdAt:  time.Now().UTC(),
	}
}

// ID returns the presentation's unique identity.
func (p *RecommendationPresentation) ID() string {
	return p.id
}

// Strategies returns the recommended strategies in presentation order.
func (p *RecommendationPresentation) Strategies() []domain.Strategy {
	out := make([]domain.Strategy, len(p.strategies))
	copy(out, p.strategies)
	return out
}

// CreatedAt returns when the presentation was constructed.
func (p *RecommendationPresentation) CreatedAt() time.Time {
	return p.createdAt
}

// IsEmpty reports whether there is nothing to show.
func (p *RecommendationPresentation) IsEmpty() bool {
	return len(p.strategies) == 0
}
