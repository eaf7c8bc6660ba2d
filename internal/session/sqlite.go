package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hdngo/thesisdesk/internal/logger"
	"github.com/hdngo/thesisdesk/migrations"
	"github.com/hdngo/thesisdesk/models"
)

// sessions is a single-row table; the fixed key keeps upserts trivial.
const sessionRowID = 1

type sqliteStore struct {
	db  *sql.DB
	log *logger.Logger
}

// NewSQLiteStore opens (creating if needed) the SQLite session database
// at path, runs pending migrations, and returns a persistent Store.
// Used for "remember me" sessions that must survive process restarts.
func NewSQLiteStore(ctx context.Context, path string, log *logger.Logger) (Store, error) {
	if err := createDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("path", path).Msg("error creating session database file")
		return nil, fmt.Errorf("create session database file: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping session database: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate session database: %w", err)
	}

	log.Debug().Str("path", path).Msg("session database ready")
	return &sqliteStore{db: db, log: log}, nil
}

func createDBFileIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		return f.Close()
	}
	return nil
}

func (s *sqliteStore) Save(ctx context.Context, sess models.Session) error {
	query, args, err := sq.Insert("sessions").
		Columns("id", "access_token", "refresh_token", "remember", "saved_at").
		Values(sessionRowID, sess.Tokens.AccessToken, sess.Tokens.RefreshToken, sess.Remember, sess.SavedAt).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			remember = excluded.remember,
			saved_at = excluded.saved_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build session upsert: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.log.Err(err).Msg("failed to save session")
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *sqliteStore) Load(ctx context.Context) (models.Session, error) {
	query, args, err := sq.Select("access_token", "refresh_token", "remember", "saved_at").
		From("sessions").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("build session select: %w", err)
	}

	var (
		sess    models.Session
		savedAt time.Time
	)
	row := s.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&sess.Tokens.AccessToken, &sess.Tokens.RefreshToken, &sess.Remember, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		s.log.Err(err).Msg("failed to load session")
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	sess.SavedAt = savedAt
	return sess, nil
}

func (s *sqliteStore) Clear(ctx context.Context) error {
	query, args, err := sq.Delete("sessions").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build session delete: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.log.Err(err).Msg("failed to clear session")
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
