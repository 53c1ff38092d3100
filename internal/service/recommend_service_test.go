package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solaceapp/solace/internal/app"
	"github.com/solaceapp/solace/internal/domain"
	"github.com/solaceapp/solace/internal/recommend"
	"github.com/solaceapp/solace/internal/strategy"
	"github.com/solaceapp/solace/internal/testutil"
)

func newRecommender() RecommendService {
	return NewRecommendService(strategy.NewSeededCatalog(), recommend.NewDefaultMatcher(), nil)
}

func floatPtr(v float64) *float64 { return &v }

func int64Ptr(v int64) *int64 { return &v }

func TestRecommend_KeywordMatch(t *testing.T) {
	svc := newRecommender()

	req := app.NewRecommendRequest()
	req.Text = "I have been so anxious about the presentation"

	resp, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.False(t, resp.UsedDefault)
	assert.Equal(t, []domain.StrategyCategory{domain.CategoryMindfulness}, resp.Matched)
	require.NotEmpty(t, resp.Strategies)
	assert.LessOrEqual(t, len(resp.Strategies), recommend.PerCategoryLimit)
	for _, s := range resp.Strategies {
		assert.Equal(t, domain.CategoryMindfulness, s.Category)
	}
	assert.False(t, resp.GeneratedAt.IsZero())
}

func TestRecommend_EmptyRequestFallsBackToDefaults(t *testing.T) {
	svc := newRecommender()

	resp, err := svc.Recommend(context.Background(), app.NewRecommendRequest())
	require.NoError(t, err)

	assert.True(t, resp.UsedDefault)
	assert.Equal(t, recommend.DefaultCategories(), resp.Matched)
	require.NotEmpty(t, resp.Strategies)
	assert.LessOrEqual(t, len(resp.Strategies), 2*recommend.PerCategoryLimit)
	for _, s := range resp.Strategies {
		assert.Contains(t, recommend.DefaultCategories(), s.Category)
	}
}

func TestRecommend_NoKeywordHitUsesDefaults(t *testing.T) {
	svc := newRecommender()

	req := app.NewRecommendRequest()
	req.Text = "a completely neutral sentence about groceries"

	resp, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.UsedDefault)
	assert.Equal(t, recommend.DefaultCategories(), resp.Matched)
}

func TestRecommend_StrongIntensityPrefersIntensive(t *testing.T) {
	svc := newRecommender()

	req := app.NewRecommendRequest()
	req.Text = "I feel anxious"
	req.Intensity = floatPtr(8)

	resp, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.Intensity)
	assert.InDelta(t, 7.0/9.0, *resp.Intensity, 1e-9)
	require.NotEmpty(t, resp.Strategies)
	assert.Equal(t, "guided-meditation", resp.Strategies[0].ID)
	assert.Equal(t, domain.IntensityIntensive, resp.Strategies[0].Intensity)
}

func TestRecommend_MildIntensityAvoidsIntensive(t *testing.T) {
	svc := newRecommender()

	req := app.NewRecommendRequest()
	req.Text = "feeling anxious and a bit lonely today"
	req.Intensity = floatPtr(3)

	resp, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.Intensity)
	assert.InDelta(t, 2.0/9.0, *resp.Intensity, 1e-9)
	for _, s := range resp.Strategies {
		assert.NotEqual(t, domain.IntensityIntensive, s.Intensity, "strategy %s", s.ID)
	}
}

func TestRecommend_FivePointScale(t *testing.T) {
	svc := newRecommender()

	req := app.NewRecommendRequest()
	req.Text = "anxious"
	req.Intensity = floatPtr(4)
	req.Scale = 5

	resp, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.Intensity)
	assert.InDelta(t, 0.75, *resp.Intensity, 1e-9)
	// 0.75 clears the strong-reaction threshold, so the intensive pick leads.
	assert.Equal(t, "guided-meditation", resp.Strategies[0].ID)
}

func TestRecommend_InvalidScale(t *testing.T) {
	svc := newRecommender()

	req := app.NewRecommendRequest()
	req.Intensity = floatPtr(3)
	req.Scale = 7

	resp, err := svc.Recommend(context.Background(), req)
	require.Error(t, err)
	assert.Nil(t, resp)

	var recErr *app.RecommendError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, app.ErrInvalidScale, recErr.Code)
}

func TestRecommend_InvalidIntensity(t *testing.T) {
	svc := newRecommender()

	for _, v := range []float64{0, 11, -2} {
		req := app.NewRecommendRequest()
		req.Intensity = floatPtr(v)

		resp, err := svc.Recommend(context.Background(), req)
		require.Error(t, err, "intensity %v", v)
		assert.Nil(t, resp)

		var recErr *app.RecommendError
		require.True(t, errors.As(err, &recErr))
		assert.Equal(t, app.ErrInvalidIntensity, recErr.Code)
	}
}

func TestRecommend_CapsAndDeduplicates(t *testing.T) {
	svc := newRecommender()

	req := app.NewRecommendRequest()
	req.Text = "anxious and lonely and angry and numb and worthless, such a failure"

	resp, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.UsedDefault)
	assert.Len(t, resp.Matched, 6)
	assert.Len(t, resp.Strategies, recommend.MaxRecommendations)

	seen := make(map[string]bool)
	for _, s := range resp.Strategies {
		assert.False(t, seen[s.ID], "duplicate strategy %s", s.ID)
		seen[s.ID] = true
	}
}

func TestRecommend_SeededShuffleIsReproducible(t *testing.T) {
	svc := newRecommender()

	run := func() []string {
		req := app.NewRecommendRequest()
		req.Text = "anxious and lonely and angry and numb and worthless, such a failure"
		req.Seed = int64Ptr(42)

		resp, err := svc.Recommend(context.Background(), req)
		require.NoError(t, err)
		ids := make([]string, 0, len(resp.Strategies))
		for _, s := range resp.Strategies {
			ids = append(ids, s.ID)
		}
		return ids
	}

	first := run()
	assert.Len(t, first, recommend.MaxRecommendations)
	assert.Equal(t, first, run())
}

func TestRecommend_CarriesTrigger(t *testing.T) {
	svc := newRecommender()

	req := app.NewRecommendRequest()
	req.Text = "anxious"
	req.Trigger = "work deadline"

	resp, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "work deadline", resp.Trigger)
}

func TestForEntry_ShortEntryWithoutMoodSkipped(t *testing.T) {
	svc := newRecommender()

	entry := testutil.NewTestEntry("too short")

	resp, err := svc.ForEntry(context.Background(), entry)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestForEntry_LongContentRecommends(t *testing.T) {
	svc := newRecommender()

	entry := testutil.NewTestEntry("Today was rough, I have been anxious all afternoon and could not settle down.")

	resp, err := svc.ForEntry(context.Background(), entry)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.False(t, resp.IsEmpty())
	assert.Contains(t, resp.Matched, domain.CategoryMindfulness)
}

func TestForEntry_MoodAloneTriggers(t *testing.T) {
	svc := newRecommender()

	entry := testutil.NewTestEntry("brief note", testutil.WithMood("lonely"))

	resp, err := svc.ForEntry(context.Background(), entry)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Contains(t, resp.Matched, domain.CategorySocial)
}

func TestForCheckin_BelowThresholdSkipped(t *testing.T) {
	svc := newRecommender()

	checkin := testutil.NewTestCheckin("anxious", 7)

	resp, err := svc.ForCheckin(context.Background(), checkin)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestForCheckin_StrongReactionRecommends(t *testing.T) {
	svc := newRecommender()

	checkin := testutil.NewTestCheckin("anxious", 8, testutil.WithNote("heart racing before the meeting"))

	resp, err := svc.ForCheckin(context.Background(), checkin)
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.NotNil(t, resp.Intensity)
	assert.GreaterOrEqual(t, *resp.Intensity, domain.StrongReactionThreshold)
	assert.Contains(t, resp.Matched, domain.CategoryMindfulness)
	require.NotEmpty(t, resp.Strategies)
	assert.Equal(t, domain.IntensityIntensive, resp.Strategies[0].Intensity)
}
