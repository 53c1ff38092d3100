package app

import (
	"context"

	"github.com/solaceapp/solace/internal/domain"
)

// RecommendUseCase is the inbound port of the recommendation engine. The TUI
// view and CLI commands depend on this rather than the concrete service.
type RecommendUseCase interface {
	Recommend(ctx context.Context, req RecommendRequest) (*RecommendResponse, error)
}

// LogCheckinUseCase records a mood check-in.
type LogCheckinUseCase interface {
	Log(ctx context.Context, c *domain.MoodCheckin) error
}

// SaveEntryUseCase persists a journal entry with its tags.
type SaveEntryUseCase interface {
	Create(ctx context.Context, e *domain.JournalEntry) error
}
