package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSessionsTable(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))

	// the table must exist and accept the single session row
	_, err = db.Exec(`INSERT INTO sessions (id, access_token, refresh_token, remember, saved_at)
		VALUES (1, 'a', 'r', 1, CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	// the id=1 check constraint rejects additional rows
	_, err = db.Exec(`INSERT INTO sessions (id, access_token, refresh_token, remember, saved_at)
		VALUES (2, 'a', 'r', 0, CURRENT_TIMESTAMP)`)
	require.Error(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}
