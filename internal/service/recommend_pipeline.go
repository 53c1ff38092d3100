package service

import (
	"fmt"
	"strings"

	"github.com/solaceapp/solace/internal/app"
	"github.com/solaceapp/solace/internal/domain"
	"github.com/solaceapp/solace/internal/recommend"
)

// normalizeIntensity validates and converts the request's raw intensity onto
// the internal 0-1 fraction. A nil intensity passes through as nil.
func normalizeIntensity(req app.RecommendRequest) (*float64, error) {
	if req.Intensity == nil {
		return nil, nil
	}

	scale := req.Scale
	if scale == 0 {
		scale = 10
	}
	if scale != 5 && scale != 10 {
		return nil, &app.RecommendError{
			Code:    app.ErrInvalidScale,
			Message: fmt.Sprintf("intensity scale must be 5 or 10, got %d", scale),
		}
	}
	if *req.Intensity < 1 || *req.Intensity > float64(scale) {
		return nil, &app.RecommendError{
			Code:    app.ErrInvalidIntensity,
			Message: fmt.Sprintf("intensity %.1f out of range 1-%d", *req.Intensity, scale),
		}
	}

	frac := domain.NormalizeIntensity(*req.Intensity, float64(scale))
	return &frac, nil
}

// deriveCategories combines the request's free text and mood label into one
// matching pass. It reports whether the default fallback set was used, which
// the response distinguishes from real keyword matches.
func deriveCategories(matcher *recommend.Matcher, req app.RecommendRequest) ([]domain.StrategyCategory, bool) {
	combined := strings.TrimSpace(req.Text + " " + req.Mood)
	if combined == "" || !matcher.MatchedAny(combined) {
		return recommend.DefaultCategories(), true
	}
	return matcher.Match(combined), false
}
