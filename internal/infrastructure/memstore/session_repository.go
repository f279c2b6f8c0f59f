// Package memstore provides an in-process string-keyed store mirroring the
// two-key persisted session layout. It backs tests and deployments that run
// without Redis.
package memstore

import (
	"context"
	"sync"

	"github.com/connectcapital/investor-crm/internal/core/domain"
)

// SessionRepository keeps the persisted session in a mutex-guarded map. The
// map is a single shared mutable resource, exactly like the key/value store
// it stands in for.
type SessionRepository struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{data: make(map[string]string)}
}

func (r *SessionRepository) Save(_ context.Context, user *domain.User) error {
	raw, err := domain.EncodeUser(user)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[domain.KeyCurrentUser] = string(raw)
	r.data[domain.KeyIsAuthenticated] = domain.AuthenticatedValue
	return nil
}

func (r *SessionRepository) Load(_ context.Context) (*domain.User, error) {
	r.mu.RLock()
	raw, hasUser := r.data[domain.KeyCurrentUser]
	flag, hasFlag := r.data[domain.KeyIsAuthenticated]
	r.mu.RUnlock()

	if !hasUser || !hasFlag || flag != domain.AuthenticatedValue {
		return nil, domain.ErrSessionNotFound
	}
	return domain.DecodeUser([]byte(raw))
}

func (r *SessionRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, domain.KeyCurrentUser)
	delete(r.data, domain.KeyIsAuthenticated)
	return nil
}

// Set writes a raw value, bypassing the codec. Tests use it to plant
// corrupted or partial records.
func (r *SessionRepository) Set(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = value
}

// Get reads a raw value; the second return reports presence.
func (r *SessionRepository) Get(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[key]
	return v, ok
}
