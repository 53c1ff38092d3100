package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_AppliesMigrations(t *testing.T) {
	conn, err := Open(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	for _, table := range []string{"journal_entries", "entry_tags", "mood_checkins"} {
		var name string
		err := conn.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	conn, err := Open(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	// Running the full migration list again must be a no-op.
	require.NoError(t, Migrate(conn))
	require.NoError(t, Migrate(conn))
}

func TestOpen_EnforcesCheckinIntensityRange(t *testing.T) {
	conn, err := Open(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(
		`INSERT INTO mood_checkins (id, mood, intensity, created_at) VALUES (?, ?, ?, ?)`,
		"x", "sad", 11, "2026-01-01T00:00:00Z",
	)
	assert.Error(t, err)
}
