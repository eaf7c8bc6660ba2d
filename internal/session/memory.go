package session

import (
	"context"
	"sync"

	"github.com/hdngo/thesisdesk/models"
)

type memoryStore struct {
	mu      sync.RWMutex
	session models.Session
	present bool
}

// NewMemoryStore returns a Store holding the session only for the
// lifetime of the process. Used when the user does not ask to be
// remembered.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (m *memoryStore) Save(_ context.Context, s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = s
	m.present = true
	return nil
}

func (m *memoryStore) Load(_ context.Context) (models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.present {
		return models.Session{}, ErrSessionNotFound
	}
	return m.session, nil
}

func (m *memoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = models.Session{}
	m.present = false
	return nil
}
