package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/solaceapp/solace/internal/db"
	"github.com/solaceapp/solace/internal/domain"
	"github.com/solaceapp/solace/internal/repository"
)

type entryService struct {
	entries repository.EntryRepo
	uow     db.UnitOfWork
}

func NewEntryService(entries repository.EntryRepo, uow db.UnitOfWork) EntryService {
	return &entryService{entries: entries, uow: uow}
}

func (s *entryService) Create(ctx context.Context, e *domain.JournalEntry) error {
	if strings.TrimSpace(e.Content) == "" {
		return fmt.Errorf("entry content is required")
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	e.Tags = normalizeTags(e.Tags)

	// Entry row and tag rows land in one transaction.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteEntryRepo(tx).Create(ctx, e)
	})
}

func (s *entryService) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *entryService) List(ctx context.Context, includeArchived bool) ([]*domain.JournalEntry, error) {
	return s.entries.List(ctx, includeArchived)
}

func (s *entryService) ListByTag(ctx context.Context, tag string) ([]*domain.JournalEntry, error) {
	return s.entries.ListByTag(ctx, tag)
}

func (s *entryService) Search(ctx context.Context, query string) ([]*domain.JournalEntry, error) {
	if strings.TrimSpace(query) == "" {
		return s.entries.List(ctx, false)
	}
	return s.entries.Search(ctx, query)
}

func (s *entryService) Update(ctx context.Context, e *domain.JournalEntry) error {
	if strings.TrimSpace(e.Content) == "" {
		return fmt.Errorf("entry content is required")
	}
	e.UpdatedAt = time.Now().UTC()
	e.Tags = normalizeTags(e.Tags)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteEntryRepo(tx).Update(ctx, e)
	})
}

func (s *entryService) Archive(ctx context.Context, id string) error {
	return s.entries.Archive(ctx, id)
}

func (s *entryService) Delete(ctx context.Context, id string) error {
	return s.entries.Delete(ctx, id)
}

// normalizeTags lowercases, trims, and deduplicates tags, preserving first
// occurrence order.
func normalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
