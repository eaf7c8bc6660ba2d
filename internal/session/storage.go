// Package session provides the credential storage facility: where the
// token pair issued at login is kept between requests.
//
// Two implementations exist, selected by the "remember me" preference:
// an in-memory store scoped to the process lifetime, and a SQLite-backed
// store that survives restarts. The HTTP access layer reads and writes
// the stored session but does not care which backend holds it.
package session

import (
	"context"
	"errors"

	"github.com/hdngo/thesisdesk/models"
)

// ErrSessionNotFound is returned by Load when no session has been saved
// or the previous one was cleared.
var ErrSessionNotFound = errors.New("local session not found")

// Store persists the login session.
type Store interface {
	// Save writes the session, replacing any previous one.
	Save(ctx context.Context, s models.Session) error

	// Load returns the stored session or ErrSessionNotFound.
	Load(ctx context.Context) (models.Session, error)

	// Clear removes the stored session. Clearing an empty store is not
	// an error.
	Clear(ctx context.Context) error
}
