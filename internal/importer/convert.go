package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/solaceapp/solace/internal/domain"
)

// ToDomain transforms a validated backup into domain objects ready for
// persistence. Call ValidateBackup first; ToDomain assumes the schema is
// valid. Missing IDs and timestamps are filled in.
func ToDomain(schema *BackupSchema) ([]*domain.JournalEntry, []*domain.MoodCheckin, error) {
	now := time.Now().UTC()

	entries := make([]*domain.JournalEntry, 0, len(schema.Entries))
	for i, e := range schema.Entries {
		createdAt, err := parseOrDefault(e.CreatedAt, now)
		if err != nil {
			return nil, nil, fmt.Errorf("entries[%d].created_at: %w", i, err)
		}
		updatedAt, err := parseOrDefault(e.UpdatedAt, createdAt)
		if err != nil {
			return nil, nil, fmt.Errorf("entries[%d].updated_at: %w", i, err)
		}

		var archivedAt *time.Time
		if e.ArchivedAt != nil {
			t, err := time.Parse(time.RFC3339, *e.ArchivedAt)
			if err != nil {
				return nil, nil, fmt.Errorf("entries[%d].archived_at: %w", i, err)
			}
			archivedAt = &t
		}

		entries = append(entries, &domain.JournalEntry{
			ID:         idOrNew(e.ID),
			Title:      e.Title,
			Content:    e.Content,
			Mood:       e.Mood,
			Trigger:    e.Trigger,
			Tags:       e.Tags,
			ArchivedAt: archivedAt,
			CreatedAt:  createdAt,
			UpdatedAt:  updatedAt,
		})
	}

	checkins := make([]*domain.MoodCheckin, 0, len(schema.Checkins))
	for i, c := range schema.Checkins {
		createdAt, err := parseOrDefault(c.CreatedAt, now)
		if err != nil {
			return nil, nil, fmt.Errorf("checkins[%d].created_at: %w", i, err)
		}

		checkins = append(checkins, &domain.MoodCheckin{
			ID:        idOrNew(c.ID),
			Mood:      c.Mood,
			Intensity: c.Intensity,
			Note:      c.Note,
			Trigger:   c.Trigger,
			CreatedAt: createdAt,
		})
	}

	return entries, checkins, nil
}

// FromDomain builds a backup schema from stored entries and check-ins.
func FromDomain(entries []*domain.JournalEntry, checkins []*domain.MoodCheckin) *BackupSchema {
	schema := &BackupSchema{
		Version:    CurrentVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:    make([]EntryBackup, 0, len(entries)),
		Checkins:   make([]CheckinBackup, 0, len(checkins)),
	}

	for _, e := range entries {
		backup := EntryBackup{
			ID:        e.ID,
			Title:     e.Title,
			Content:   e.Content,
			Mood:      e.Mood,
			Trigger:   e.Trigger,
			Tags:      e.Tags,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
			UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
		}
		if e.ArchivedAt != nil {
			archived := e.ArchivedAt.Format(time.RFC3339)
			backup.ArchivedAt = &archived
		}
		schema.Entries = append(schema.Entries, backup)
	}

	for _, c := range checkins {
		schema.Checkins = append(schema.Checkins, CheckinBackup{
			ID:        c.ID,
			Mood:      c.Mood,
			Intensity: c.Intensity,
			Note:      c.Note,
			Trigger:   c.Trigger,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		})
	}

	return schema
}

func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}

func parseOrDefault(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	return time.Parse(time.RFC3339, value)
}
