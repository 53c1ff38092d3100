package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/solaceapp/solace/internal/db"
	"github.com/solaceapp/solace/internal/domain"
)

// SQLiteEntryRepo implements EntryRepo over a SQLite database. It accepts a
// db.DBTX, so the same implementation serves both direct and transactional
// use.
type SQLiteEntryRepo struct {
	db db.DBTX
}

func NewSQLiteEntryRepo(conn db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: conn}
}

const entryColumns = `id, title, content, mood, trigger_label, archived_at, created_at, updated_at`

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.JournalEntry) error {
	query := `INSERT INTO journal_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		e.Content,
		e.Mood,
		e.Trigger,
		nullableTimeToString(e.ArchivedAt, time.RFC3339),
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting journal entry: %w", err)
	}
	if len(e.Tags) > 0 {
		if err := r.SetTags(ctx, e.ID, e.Tags); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteEntryRepo) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	e, err := r.scanEntry(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadTags(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *SQLiteEntryRepo) List(ctx context.Context, includeArchived bool) ([]*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries`
	if !includeArchived {
		query += ` WHERE archived_at IS NULL`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(ctx, rows)
}

func (r *SQLiteEntryRepo) ListByTag(ctx context.Context, tag string) ([]*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries e
		JOIN entry_tags t ON t.entry_id = e.id
		WHERE t.tag = ? COLLATE NOCASE AND e.archived_at IS NULL
		ORDER BY e.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, tag)
	if err != nil {
		return nil, fmt.Errorf("listing entries by tag: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(ctx, rows)
}

func (r *SQLiteEntryRepo) Search(ctx context.Context, q string) ([]*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries
		WHERE archived_at IS NULL AND (title LIKE ? OR content LIKE ?)
		ORDER BY created_at DESC`
	pattern := "%" + q + "%"
	rows, err := r.db.QueryContext(ctx, query, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("searching journal entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(ctx, rows)
}

func (r *SQLiteEntryRepo) Update(ctx context.Context, e *domain.JournalEntry) error {
	query := `UPDATE journal_entries
		SET title = ?, content = ?, mood = ?, trigger_label = ?, archived_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Title,
		e.Content,
		e.Mood,
		e.Trigger,
		nullableTimeToString(e.ArchivedAt, time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating journal entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("journal entry: %w", ErrNotFound)
	}
	return r.SetTags(ctx, e.ID, e.Tags)
}

// SetTags replaces the entry's tag set.
func (r *SQLiteEntryRepo) SetTags(ctx context.Context, entryID string, tags []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM entry_tags WHERE entry_id = ?`, entryID); err != nil {
		return fmt.Errorf("clearing entry tags: %w", err)
	}
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		_, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO entry_tags (entry_id, tag) VALUES (?, ?)`, entryID, tag)
		if err != nil {
			return fmt.Errorf("inserting entry tag: %w", err)
		}
	}
	return nil
}

func (r *SQLiteEntryRepo) Archive(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx,
		`UPDATE journal_entries SET archived_at = ?, updated_at = ? WHERE id = ? AND archived_at IS NULL`,
		now, now, id)
	if err != nil {
		return fmt.Errorf("archiving journal entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("journal entry: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteEntryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("journal entry: %w", ErrNotFound)
	}
	return nil
}

// scanEntry scans a single entry from a *sql.Row.
func (r *SQLiteEntryRepo) scanEntry(row *sql.Row) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	var archivedAt sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(&e.ID, &e.Title, &e.Content, &e.Mood, &e.Trigger, &archivedAt, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("journal entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}
	return r.populateEntry(&e, archivedAt, createdAtStr, updatedAtStr)
}

func (r *SQLiteEntryRepo) scanEntries(ctx context.Context, rows *sql.Rows) ([]*domain.JournalEntry, error) {
	var entries []*domain.JournalEntry
	for rows.Next() {
		var e domain.JournalEntry
		var archivedAt sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(&e.ID, &e.Title, &e.Content, &e.Mood, &e.Trigger, &archivedAt, &createdAtStr, &updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning journal entry row: %w", err)
		}
		entry, err := r.populateEntry(&e, archivedAt, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entries: %w", err)
	}

	for _, e := range entries {
		if err := r.loadTags(ctx, e); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (r *SQLiteEntryRepo) populateEntry(e *domain.JournalEntry, archivedAt sql.NullString, createdAtStr, updatedAtStr string) (*domain.JournalEntry, error) {
	e.ArchivedAt = parseNullableTime(archivedAt, time.RFC3339)

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing entry created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing entry updated_at: %w", err)
	}
	e.CreatedAt = createdAt
	e.UpdatedAt = updatedAt
	return e, nil
}

func (r *SQLiteEntryRepo) loadTags(ctx context.Context, e *domain.JournalEntry) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tag FROM entry_tags WHERE entry_id = ? ORDER BY tag`, e.ID)
	if err != nil {
		return fmt.Errorf("loading entry tags: %w", err)
	}
	defer rows.Close()

	e.Tags = nil
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return fmt.Errorf("scanning entry tag: %w", err)
		}
		e.Tags = append(e.Tags, tag)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating entry tags: %w", err)
	}
	return nil
}
