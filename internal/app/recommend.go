package app

import (
	"time"

	"github.com/solaceapp/solace/internal/domain"
)

// RecommendRequest is the inbound contract of the recommendation pipeline.
// Text and Mood are both optional; with neither present the pipeline falls
// back to the default category set. Intensity is the caller's raw value on
// Scale (1-5 or 1-10); it is normalized to a 0-1 fraction at the boundary.
type RecommendRequest struct {
	Text      string
	Mood      string
	Intensity *float64
	Scale     int
	Trigger   string

	// Seed pins the selection shuffle for reproducible output. When nil the
	// caller-provided randomness source decides.
	Seed *int64
}

// NewRecommendRequest returns a request with the default 1-10 intensity scale.
func NewRecommendRequest() RecommendRequest {
	return RecommendRequest{Scale: 10}
}

// RecommendResponse is the outbound contract. Strategies is never nil; an
// empty slice means "nothing to show" and is a valid outcome, distinct from
// the default-category fallback (UsedDefault).
type RecommendResponse struct {
	GeneratedAt time.Time
	Matched     []domain.StrategyCategory
	UsedDefault bool
	Intensity   *float64
	Trigger     string
	Strategies  []domain.Strategy
}

// IsEmpty reports whether there is nothing to present.
func (r *RecommendResponse) IsEmpty() bool {
	return len(r.Strategies) == 0
}

type RecommendErrorCode string

const (
	ErrInvalidIntensity RecommendErrorCode = "INVALID_INTENSITY"
	ErrInvalidScale     RecommendErrorCode = "INVALID_SCALE"
)

// RecommendError is the only error class the pipeline returns: request
// validation. Matching and selection themselves never fail; they degrade to
// shorter or empty results.
type RecommendError struct {
	Code    RecommendErrorCode
	Message string
}

func (e *RecommendError) Error() string {
	return string(e.Code) + ": " + e.Message
}
