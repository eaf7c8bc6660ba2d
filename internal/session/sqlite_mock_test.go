package session

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdngo/thesisdesk/internal/logger"
	"github.com/hdngo/thesisdesk/models"
)

func newMockedStore(t *testing.T) (*sqliteStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return &sqliteStore{db: db, log: logger.Nop()}, mock, db
}

func TestSQLiteStore_SaveUpsertsFixedRow(t *testing.T) {
	s, mock, db := newMockedStore(t)
	defer db.Close()

	sess := models.Session{
		Tokens:   models.TokenPair{AccessToken: "a", RefreshToken: "r"},
		Remember: true,
		SavedAt:  time.Now(),
	}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(sessionRowID, "a", "r", true, sess.SavedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Save(context.Background(), sess))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SavePropagatesExecError(t *testing.T) {
	s, mock, db := newMockedStore(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sessions").
		WillReturnError(errors.New("disk full"))

	err := s.Save(context.Background(), models.Session{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save session")
}

func TestSQLiteStore_LoadMapsNoRows(t *testing.T) {
	s, mock, db := newMockedStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT access_token, refresh_token, remember, saved_at FROM sessions").
		WithArgs(sessionRowID).
		WillReturnError(sql.ErrNoRows)

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSQLiteStore_LoadPropagatesQueryError(t *testing.T) {
	s, mock, db := newMockedStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT access_token, refresh_token, remember, saved_at FROM sessions").
		WillReturnError(errors.New("database is locked"))

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
	assert.Contains(t, err.Error(), "load session")
}

func TestSQLiteStore_ClearDeletesRow(t *testing.T) {
	s, mock, db := newMockedStore(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs(sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
