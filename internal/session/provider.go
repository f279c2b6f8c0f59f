// Package session bridges the imperative session service to reactive
// consumers: it maintains a snapshot of {user, authenticated, loading} and
// fans out change notifications to subscribers.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/core/ports"
)

// Snapshot is the read-only view handed to consumers.
type Snapshot struct {
	User            *domain.User
	IsAuthenticated bool
	// IsLoading is true until Start has settled the initial rehydration and
	// while a login/signup is in flight.
	IsLoading bool
}

const subscriberBuffer = 8

// Provider wraps a SessionService with reactive state. Construct once at
// bootstrap and call Start exactly once; subsequent Start calls are no-ops.
type Provider struct {
	svc ports.SessionService
	log zerolog.Logger

	mu   sync.RWMutex
	snap Snapshot
	subs []chan Snapshot

	startOnce sync.Once
}

func NewProvider(svc ports.SessionService, log zerolog.Logger) *Provider {
	return &Provider{
		svc:  svc,
		log:  log,
		snap: Snapshot{IsLoading: true},
	}
}

// Start performs the one-time rehydration from persisted storage and marks
// loading complete. It runs at most once per provider lifetime.
func (p *Provider) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		sess := p.svc.CheckAuth(ctx)
		p.update(Snapshot{
			User:            sess.CurrentUser,
			IsAuthenticated: sess.IsAuthenticated,
			IsLoading:       false,
		})
		p.log.Debug().Bool("authenticated", sess.IsAuthenticated).Msg("session provider started")
	})
}

// Login toggles the loading flag around the service call. On failure the
// flag is reset and the error is returned to the caller unswallowed; the
// previous session state is preserved.
func (p *Provider) Login(ctx context.Context, email, password string) (*domain.User, error) {
	p.setLoading(true)

	user, err := p.svc.Login(ctx, email, password)
	if err != nil {
		p.setLoading(false)
		return nil, err
	}

	p.update(Snapshot{User: user, IsAuthenticated: true, IsLoading: false})
	return user, nil
}

// Signup mirrors Login's loading semantics.
func (p *Provider) Signup(ctx context.Context, input ports.SignupInput, password string) (*domain.User, error) {
	p.setLoading(true)

	user, err := p.svc.Signup(ctx, input, password)
	if err != nil {
		p.setLoading(false)
		return nil, err
	}

	p.update(Snapshot{User: user, IsAuthenticated: true, IsLoading: false})
	return user, nil
}

// Logout clears reactive state synchronously. It does not use the loading
// flag.
func (p *Provider) Logout(ctx context.Context) {
	p.svc.Logout(ctx)

	p.mu.Lock()
	p.snap.User = nil
	p.snap.IsAuthenticated = false
	snap := p.snap
	p.mu.Unlock()

	p.notify(snap)
}

// Snapshot returns the current reactive state.
func (p *Provider) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap
}

// Subscribe registers a channel receiving every snapshot change. Slow
// subscribers miss intermediate updates rather than blocking the provider.
func (p *Provider) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, subscriberBuffer)

	p.mu.Lock()
	p.subs = append(p.subs, ch)
	p.mu.Unlock()

	return ch
}

func (p *Provider) setLoading(loading bool) {
	p.mu.Lock()
	p.snap.IsLoading = loading
	snap := p.snap
	p.mu.Unlock()

	p.notify(snap)
}

func (p *Provider) update(snap Snapshot) {
	p.mu.Lock()
	p.snap = snap
	p.mu.Unlock()

	p.notify(snap)
}

func (p *Provider) notify(snap Snapshot) {
	p.mu.RLock()
	subs := p.subs
	p.mu.RUnlock()

	for _, ch := range subs {
		select {
		case ch <- snap:
		default:
		}
	}
}
