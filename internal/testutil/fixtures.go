package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/solaceapp/solace/internal/domain"
)

// JournalEntry options

type EntryOption func(*domain.JournalEntry)

func WithTitle(title string) EntryOption {
	return func(e *domain.JournalEntry) {
		e.Title = title
	}
}

func WithMood(mood string) EntryOption {
	return func(e *domain.JournalEntry) {
		e.Mood = mood
	}
}

func WithTrigger(trigger string) EntryOption {
	return func(e *domain.JournalEntry) {
		e.Trigger = trigger
	}
}

func WithTags(tags ...string) EntryOption {
	return func(e *domain.JournalEntry) {
		e.Tags = tags
	}
}

func WithCreatedAt(ts time.Time) EntryOption {
	return func(e *domain.JournalEntry) {
		e.CreatedAt = ts
		e.UpdatedAt = ts
	}
}

func NewTestEntry(content string, opts ...EntryOption) *domain.JournalEntry {
	now := time.Now().UTC()
	e := &domain.JournalEntry{
		ID:        uuid.New().String(),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MoodCheckin options

type CheckinOption func(*domain.MoodCheckin)

func WithNote(note string) CheckinOption {
	return func(c *domain.MoodCheckin) {
		c.Note = note
	}
}

func WithCheckinTrigger(trigger string) CheckinOption {
	return func(c *domain.MoodCheckin) {
		c.Trigger = trigger
	}
}

func WithCheckinCreatedAt(ts time.Time) CheckinOption {
	return func(c *domain.MoodCheckin) {
		c.CreatedAt = ts
	}
}

func NewTestCheckin(mood string, intensity int, opts ...CheckinOption) *domain.MoodCheckin {
	c := &domain.MoodCheckin{
		ID:        uuid.New().String(),
		Mood:      mood,
		Intensity: intensity,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTestStrategy builds a minimal valid strategy record for catalog doubles.
func NewTestStrategy(id string, cat domain.StrategyCategory, tier domain.StrategyIntensity) domain.Strategy {
	return domain.Strategy{
		ID:        id,
		Title:     id,
		Category:  cat,
		Intensity: tier,
		Steps:     []string{"one step"},
	}
}
