package repository

import (
	"context"

	"github.com/solaceapp/solace/internal/domain"
)

// MoodSummary is one row of the per-mood aggregate over a recent window.
type MoodSummary struct {
	Mood         string
	Count        int
	AvgIntensity float64
}

type EntryRepo interface {
	Create(ctx context.Context, e *domain.JournalEntry) error
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.JournalEntry, error)
	ListByTag(ctx context.Context, tag string) ([]*domain.JournalEntry, error)
	Search(ctx context.Context, query string) ([]*domain.JournalEntry, error)
	Update(ctx context.Context, e *domain.JournalEntry) error
	SetTags(ctx context.Context, entryID string, tags []string) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type CheckinRepo interface {
	Create(ctx context.Context, c *domain.MoodCheckin) error
	GetByID(ctx context.Context, id string) (*domain.MoodCheckin, error)
	ListRecent(ctx context.Context, days int) ([]*domain.MoodCheckin, error)
	ListAll(ctx context.Context) ([]*domain.MoodCheckin, error)
	SummaryByMood(ctx context.Context, days int) ([]MoodSummary, error)
	Delete(ctx context.Context, id string) error
}
