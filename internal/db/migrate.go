package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies all schema statements. Every statement is idempotent, so
// the whole list re-runs on each startup; ALTER TABLE statements that already
// took effect report "duplicate column name" and are skipped.
func Migrate(conn *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := conn.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS journal_entries (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL DEFAULT '',
		content     TEXT NOT NULL,
		mood        TEXT NOT NULL DEFAULT '',
		trigger_label TEXT NOT NULL DEFAULT '',
		archived_at TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS entry_tags (
		entry_id TEXT NOT NULL REFERENCES journal_entries(id) ON DELETE CASCADE,
		tag      TEXT NOT NULL,
		PRIMARY KEY (entry_id, tag)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entry_tags_tag ON entry_tags(tag)`,

	`CREATE TABLE IF NOT EXISTS mood_checkins (
		id         TEXT PRIMARY KEY,
		mood       TEXT NOT NULL,
		intensity  INTEGER NOT NULL CHECK(intensity BETWEEN 1 AND 10),
		note       TEXT NOT NULL DEFAULT '',
		trigger_label TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_mood_checkins_created ON mood_checkins(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_entries_created ON journal_entries(created_at)`,
}
