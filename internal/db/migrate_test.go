package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"sprints", "priority_targets", "daily_logs", "promise_logs", "yearly_reviews", "wizard_drafts"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_OnlyOneActiveSprint(t *testing.T) {
	db := openTestDB(t)

	insert := `INSERT INTO sprints (id, name, start_date, end_date, status, created_at, updated_at)
		VALUES (?, ?, '2025-01-01', '2025-03-01', ?, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`
	_, err := db.Exec(insert, "s1", "Q1", "active")
	require.NoError(t, err)
	_, err = db.Exec(insert, "s2", "Old", "completed")
	require.NoError(t, err)

	_, err = db.Exec(insert, "s3", "Q1 again", "active")
	assert.Error(t, err, "a second active sprint must violate the partial unique index")
}

func TestMigrate_EnergyCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO daily_logs (id, log_date, energy_level, created_at, updated_at)
		VALUES ('d1', '2025-01-01', 6, 'x', 'x')`)
	assert.Error(t, err)
}
