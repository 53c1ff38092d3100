package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/solaceapp/solace/internal/db"
	"github.com/solaceapp/solace/internal/domain"
)

// SQLiteCheckinRepo implements CheckinRepo over a SQLite database.
type SQLiteCheckinRepo struct {
	db db.DBTX
}

func NewSQLiteCheckinRepo(conn db.DBTX) *SQLiteCheckinRepo {
	return &SQLiteCheckinRepo{db: conn}
}

func (r *SQLiteCheckinRepo) Create(ctx context.Context, c *domain.MoodCheckin) error {
	query := `INSERT INTO mood_checkins (id, mood, intensity, note, trigger_label, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Mood,
		c.Intensity,
		c.Note,
		c.Trigger,
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting mood check-in: %w", err)
	}
	return nil
}

func (r *SQLiteCheckinRepo) GetByID(ctx context.Context, id string) (*domain.MoodCheckin, error) {
	query := `SELECT id, mood, intensity, note, trigger_label, created_at
		FROM mood_checkins WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanCheckin(row)
}

func (r *SQLiteCheckinRepo) ListRecent(ctx context.Context, days int) ([]*domain.MoodCheckin, error) {
	query := `SELECT id, mood, intensity, note, trigger_label, created_at
		FROM mood_checkins
		WHERE created_at >= date('now', ? || ' days')
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent check-ins: %w", err)
	}
	defer rows.Close()
	return r.scanCheckins(rows)
}

func (r *SQLiteCheckinRepo) ListAll(ctx context.Context) ([]*domain.MoodCheckin, error) {
	query := `SELECT id, mood, intensity, note, trigger_label, created_at
		FROM mood_checkins
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing check-ins: %w", err)
	}
	defer rows.Close()
	return r.scanCheckins(rows)
}

// SummaryByMood returns per-mood counts and average intensity over the
// last days days, most frequent mood first.
func (r *SQLiteCheckinRepo) SummaryByMood(ctx context.Context, days int) ([]MoodSummary, error) {
	query := `SELECT mood, COUNT(*), AVG(intensity)
		FROM mood_checkins
		WHERE created_at >= date('now', ? || ' days')
		GROUP BY mood
		ORDER BY COUNT(*) DESC, mood`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("summarizing check-ins: %w", err)
	}
	defer rows.Close()

	var out []MoodSummary
	for rows.Next() {
		var s MoodSummary
		if err := rows.Scan(&s.Mood, &s.Count, &s.AvgIntensity); err != nil {
			return nil, fmt.Errorf("scanning mood summary: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mood summaries: %w", err)
	}
	return out, nil
}

func (r *SQLiteCheckinRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mood_checkins WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting mood check-in: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("mood check-in: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteCheckinRepo) scanCheckin(row *sql.Row) (*domain.MoodCheckin, error) {
	var c domain.MoodCheckin
	var createdAtStr string

	err := row.Scan(&c.ID, &c.Mood, &c.Intensity, &c.Note, &c.Trigger, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("mood check-in: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning mood check-in: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing check-in created_at: %w", err)
	}
	c.CreatedAt = createdAt
	return &c, nil
}

func (r *SQLiteCheckinRepo) scanCheckins(rows *sql.Rows) ([]*domain.MoodCheckin, error) {
	var checkins []*domain.MoodCheckin
	for rows.Next() {
		var c domain.MoodCheckin
		var createdAtStr string

		if err := rows.Scan(&c.ID, &c.Mood, &c.Intensity, &c.Note, &c.Trigger, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning check-in row: %w", err)
		}
		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing check-in created_at: %w", err)
		}
		c.CreatedAt = createdAt
		checkins = append(checkins, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating check-ins: %w", err)
	}
	return checkins, nil
}
