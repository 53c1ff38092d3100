package service

import (
	"context"

	"github.com/solaceapp/solace/internal/app"
	"github.com/solaceapp/solace/internal/domain"
	"github.com/solaceapp/solace/internal/importer"
	"github.com/solaceapp/solace/internal/repository"
)

// The services double as the app-layer use-case ports.
var (
	_ app.SaveEntryUseCase  = (EntryService)(nil)
	_ app.LogCheckinUseCase = (CheckinService)(nil)
	_ app.RecommendUseCase  = (RecommendService)(nil)
)

type EntryService interface {
	Create(ctx context.Context, e *domain.JournalEntry) error
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.JournalEntry, error)
	ListByTag(ctx context.Context, tag string) ([]*domain.JournalEntry, error)
	Search(ctx context.Context, query string) ([]*domain.JournalEntry, error)
	Update(ctx context.Context, e *domain.JournalEntry) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type CheckinService interface {
	Log(ctx context.Context, c *domain.MoodCheckin) error
	GetByID(ctx context.Context, id string) (*domain.MoodCheckin, error)
	ListRecent(ctx context.Context, days int) ([]*domain.MoodCheckin, error)
	Summary(ctx context.Context, days int) ([]repository.MoodSummary, error)
	Delete(ctx context.Context, id string) error
}

// ImportStats reports how many records an import persisted.
type ImportStats struct {
	Entries  int
	Checkins int
}

// BackupService moves the whole journal through the backup file format.
type BackupService interface {
	Export(ctx context.Context) (*importer.BackupSchema, error)
	Import(ctx context.Context, schema *importer.BackupSchema) (ImportStats, error)
}

// RecommendService runs the recommendation pipeline. Recommend serves direct
// requests; ForEntry and ForCheckin apply the save-time trigger rules and
// return (nil, nil) when the input does not warrant a recommendation.
type RecommendService interface {
	Recommend(ctx context.Context, req app.RecommendRequest) (*app.RecommendResponse, error)
	ForEntry(ctx context.Context, e *domain.JournalEntry) (*app.RecommendResponse, error)
	ForCheckin(ctx context.Context, c *domain.MoodCheckin) (*app.RecommendResponse, error)
}
