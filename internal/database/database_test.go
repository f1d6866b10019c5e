package database

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(Config{Path: filepath.Join(t.TempDir(), "nested", "flora.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen_AppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	applied, err := NewMigrationManager(db).GetAppliedMigrations()
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, applied)

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM records").Scan(&n))
	assert.Zero(t, n)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, NewMigrationManager(db).RunMigrations())

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&n))
	assert.Equal(t, 3, n)
}

func TestLoadMigrations_Sorted(t *testing.T) {
	migrations, err := NewMigrationManager(nil).LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 3)
	for i, m := range migrations {
		assert.Equal(t, i+1, m.Version)
	}
	assert.Equal(t, "001_create_records", migrations[0].Name)
}

func TestTransaction_RollsBack(t *testing.T) {
	db := openTestDB(t)
	boom := errors.New("boom")

	err := Transaction(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO import_runs (id, source_path, record_count, created_at) VALUES ('x', 'a.csv', 0, 0)`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM import_runs").Scan(&n))
	assert.Zero(t, n)
}
