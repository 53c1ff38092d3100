package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBackup() *BackupSchema {
	return &BackupSchema{
		Version: CurrentVersion,
		Entries: []EntryBackup{
			{ID: "e1", Content: "a full entry", Mood: "calm", Tags: []string{"work"}, CreatedAt: "2026-08-01T10:00:00Z"},
			{Content: "an entry without an id"},
		},
		Checkins: []CheckinBackup{
			{ID: "c1", Mood: "anxious", Intensity: 8, CreatedAt: "2026-08-02T09:30:00Z"},
		},
	}
}

func TestValidateBackup_Valid(t *testing.T) {
	assert.Empty(t, ValidateBackup(validBackup()))
}

func TestValidateBackup_NewerVersion(t *testing.T) {
	schema := validBackup()
	schema.Version = CurrentVersion + 1

	errs := ValidateBackup(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "newer than this build")
}

func TestValidateBackup_MissingFields(t *testing.T) {
	schema := &BackupSchema{
		Entries:  []EntryBackup{{}},
		Checkins: []CheckinBackup{{Intensity: 11}},
	}

	errs := ValidateBackup(schema)
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}

	assert.Contains(t, messages, "entries[0]: content is required")
	assert.Contains(t, messages, "checkins[0]: mood is required")
	assert.Contains(t, messages, "checkins[0]: intensity 11 out of range 1-10")
}

func TestValidateBackup_DuplicateIDs(t *testing.T) {
	schema := validBackup()
	schema.Entries = append(schema.Entries, EntryBackup{ID: "e1", Content: "duplicate"})

	errs := ValidateBackup(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `duplicate id "e1"`)
}

func TestValidateBackup_BadTimestamp(t *testing.T) {
	schema := validBackup()
	schema.Entries[0].CreatedAt = "yesterday"

	errs := ValidateBackup(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "invalid timestamp")
}
