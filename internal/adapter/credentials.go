package adapter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hdngo/thesisdesk/internal/logger"
	"github.com/hdngo/thesisdesk/internal/session"
	"github.com/hdngo/thesisdesk/models"
)

// refreshFunc exchanges a refresh token for a new token pair. Supplied
// by the Adapter so the manager stays transport-agnostic.
type refreshFunc func(ctx context.Context, refreshToken string) (models.TokenPair, error)

// CredentialManager owns the process-wide credential pair. It is the
// only writer besides the login flow; everything else reads through
// AccessToken. Concurrent callers that observe an expired token coalesce
// into a single outstanding refresh via singleflight, so N racing
// requests trigger exactly one refresh call.
type CredentialManager struct {
	store   session.Store
	refresh refreshFunc
	leeway  time.Duration
	log     *logger.Logger

	sf singleflight.Group

	mu       sync.RWMutex
	pair     models.TokenPair
	remember bool
}

func newCredentialManager(store session.Store, refresh refreshFunc, leeway time.Duration, log *logger.Logger) *CredentialManager {
	return &CredentialManager{store: store, refresh: refresh, leeway: leeway, log: log}
}

// Bootstrap loads a previously persisted session into memory. A missing
// session is not an error; the client simply starts unauthenticated.
func (m *CredentialManager) Bootstrap(ctx context.Context) error {
	sess, err := m.store.Load(ctx)
	if errors.Is(err, session.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load stored session: %w", err)
	}

	m.mu.Lock()
	m.pair = sess.Tokens
	m.remember = sess.Remember
	m.mu.Unlock()

	m.log.Debug().Msg("restored stored session")
	return nil
}

// SetSession installs a freshly issued credential pair (login or
// refresh) and persists it.
func (m *CredentialManager) SetSession(ctx context.Context, pair models.TokenPair, remember bool) error {
	m.mu.Lock()
	m.pair = pair
	m.remember = remember
	m.mu.Unlock()

	sess := models.Session{Tokens: pair, Remember: remember, SavedAt: time.Now()}
	if err := m.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Pair returns the credential pair currently held.
func (m *CredentialManager) Pair() models.TokenPair {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pair
}

// Authenticated reports whether any credentials are held.
func (m *CredentialManager) Authenticated() bool {
	return !m.Pair().Empty()
}

// AccessToken returns a currently valid access token, refreshing first
// if the cached one is expired or absent. Returns ErrNoCredentials when
// there is nothing to refresh with.
func (m *CredentialManager) AccessToken(ctx context.Context) (string, error) {
	pair := m.Pair()
	if pair.Empty() {
		return "", ErrNoCredentials
	}

	if !pair.AccessExpired(m.leeway) {
		return pair.AccessToken, nil
	}

	return m.ForceRefresh(ctx)
}

// ForceRefresh exchanges the refresh token for a new pair regardless of
// the cached token's expiry. Concurrent calls share one outstanding
// refresh; every waiter receives the same new access token.
func (m *CredentialManager) ForceRefresh(ctx context.Context) (string, error) {
	token, err, _ := m.sf.Do("refresh", func() (interface{}, error) {
		pair := m.Pair()
		if pair.RefreshToken == "" {
			return "", ErrNoCredentials
		}

		// the coalesced refresh serves every waiter, so it must not be
		// cancelled along with whichever caller happened to start it
		refreshCtx := context.WithoutCancel(ctx)

		fresh, err := m.refresh(refreshCtx, pair.RefreshToken)
		if err != nil {
			return "", fmt.Errorf("refresh credentials: %w", err)
		}

		m.mu.RLock()
		remember := m.remember
		m.mu.RUnlock()

		if err = m.SetSession(refreshCtx, fresh, remember); err != nil {
			return "", err
		}

		m.log.Debug().Msg("credential pair refreshed")
		return fresh.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

// Clear drops the in-memory pair and wipes the stored session. Used on
// logout and when a refresh is rejected by the backend.
func (m *CredentialManager) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.pair = models.TokenPair{}
	m.remember = false
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear stored session: %w", err)
	}
	return nil
}
