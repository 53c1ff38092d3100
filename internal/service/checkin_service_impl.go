package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/solaceapp/solace/internal/domain"
	"github.com/solaceapp/solace/internal/repository"
)

type checkinService struct {
	checkins repository.CheckinRepo
}

func NewCheckinService(checkins repository.CheckinRepo) CheckinService {
	return &checkinService{checkins: checkins}
}

func (s *checkinService) Log(ctx context.Context, c *domain.MoodCheckin) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return s.checkins.Create(ctx, c)
}

func (s *checkinService) GetByID(ctx context.Context, id string) (*domain.MoodCheckin, error) {
	return s.checkins.GetByID(ctx, id)
}

func (s *checkinService) ListRecent(ctx context.Context, days int) ([]*domain.MoodCheckin, error) {
	return s.checkins.ListRecent(ctx, days)
}

func (s *checkinService) Summary(ctx context.Context, days int) ([]repository.MoodSummary, error) {
	return s.checkins.SummaryByMood(ctx, days)
}

func (s *checkinService) Delete(ctx context.Context, id string) error {
	return s.checkins.Delete(ctx, id)
}
