package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// CurrentVersion is the backup format version this build writes.
const CurrentVersion = 1

// BackupSchema is the top-level JSON structure for journal backups.
type BackupSchema struct {
	Version    int             `json:"version"`
	ExportedAt string          `json:"exported_at,omitempty"`
	Entries    []EntryBackup   `json:"entries"`
	Checkins   []CheckinBackup `json:"checkins,omitempty"`
}

// EntryBackup defines one journal entry in the backup file. Timestamps are
// RFC 3339; missing IDs and timestamps are regenerated on import.
type EntryBackup struct {
	ID         string   `json:"id,omitempty"`
	Title      string   `json:"title,omitempty"`
	Content    string   `json:"content"`
	Mood       string   `json:"mood,omitempty"`
	Trigger    string   `json:"trigger,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	ArchivedAt *string  `json:"archived_at,omitempty"`
	CreatedAt  string   `json:"created_at,omitempty"`
	UpdatedAt  string   `json:"updated_at,omitempty"`
}

// CheckinBackup defines one mood check-in in the backup file.
type CheckinBackup struct {
	ID        string `json:"id,omitempty"`
	Mood      string `json:"mood"`
	Intensity int    `json:"intensity"`
	Note      string `json:"note,omitempty"`
	Trigger   string `json:"trigger,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ReadFile loads and decodes a backup file.
func ReadFile(path string) (*BackupSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading backup file: %w", err)
	}

	var schema BackupSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing backup file: %w", err)
	}
	return &schema, nil
}

// WriteFile encodes and writes a backup file with indented JSON.
func WriteFile(path string, schema *BackupSchema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing backup file: %w", err)
	}
	return nil
}
