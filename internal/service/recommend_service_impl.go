package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/solaceapp/solace/internal/app"
	"github.com/solaceapp/solace/internal/domain"
	"github.com/solaceapp/solace/internal/recommend"
	"github.com/solaceapp/solace/internal/strategy"
)

type recommendService struct {
	catalog *strategy.Catalog
	matcher *recommend.Matcher
	rng     *rand.Rand
}

// NewRecommendService wires the pipeline. rng is the shuffle source used when
// a request carries no explicit seed; pass nil for deterministic
// declaration-order selection (tests do, main seeds one from the clock).
func NewRecommendService(catalog *strategy.Catalog, matcher *recommend.Matcher, rng *rand.Rand) RecommendService {
	return &recommendService{catalog: catalog, matcher: matcher, rng: rng}
}

func (s *recommendService) Recommend(ctx context.Context, req app.RecommendRequest) (*app.RecommendResponse, error) {
	intensity, err := normalizeIntensity(req)
	if err != nil {
		return nil, err
	}

	categories, usedDefault := deriveCategories(s.matcher, req)

	rng := s.rng
	if req.Seed != nil {
		rng = rand.New(rand.NewSource(*req.Seed))
	}

	picked := recommend.Select(s.catalog, categories, recommend.Options{
		Intensity: intensity,
		Mood:      req.Mood,
		Rand:      rng,
	})
	if picked == nil {
		picked = []domain.Strategy{}
	}

	return &app.RecommendResponse{
		GeneratedAt: time.Now().UTC(),
		Matched:     categories,
		UsedDefault: usedDefault,
		Intensity:   intensity,
		Trigger:     req.Trigger,
		Strategies:  picked,
	}, nil
}

func (s *recommendService) ForEntry(ctx context.Context, e *domain.JournalEntry) (*app.RecommendResponse, error) {
	if !e.WantsRecommendation() {
		return nil, nil
	}
	req := app.NewRecommendRequest()
	req.Text = e.Content
	req.Mood = e.Mood
	req.Trigger = e.Trigger
	return s.Recommend(ctx, req)
}

func (s *recommendService) ForCheckin(ctx context.Context, c *domain.MoodCheckin) (*app.RecommendResponse, error) {
	if !c.IsStrongReaction() {
		return nil, nil
	}
	intensity := float64(c.Intensity)
	req := app.NewRecommendRequest()
	req.Text = c.Note
	req.Mood = c.Mood
	req.Intensity = &intensity
	req.Trigger = c.Trigger
	return s.Recommend(ctx, req)
}
