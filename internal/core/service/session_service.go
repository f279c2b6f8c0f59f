package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/core/ports"
)

const defaultLoginLatency = 500 * time.Millisecond

// SessionService owns the single logical session. It is constructed once at
// bootstrap and handed to the session provider; tests build fresh instances
// for isolation.
//
// Login and Signup sleep for a fixed artificial latency to model a network
// round trip. The sleep is deliberate and not tied to ctx: a caller may stop
// waiting, but the session mutation still lands when the operation resolves.
type SessionService struct {
	creds   ports.CredentialStore
	repo    ports.SessionRepository
	latency time.Duration
	log     zerolog.Logger

	mu      sync.RWMutex
	current *domain.User
}

// NewSessionService builds a session service starting in the anonymous state.
// A negative latency selects the default (~500ms); pass 0 in tests.
func NewSessionService(creds ports.CredentialStore, repo ports.SessionRepository, latency time.Duration, log zerolog.Logger) *SessionService {
	if latency < 0 {
		latency = defaultLoginLatency
	}
	return &SessionService{
		creds:   creds,
		repo:    repo,
		latency: latency,
		log:     log,
	}
}

// Login authenticates by email against the credential store. The password is
// accepted but never verified; the demo credential store has nothing to
// verify it against. An unknown email fails with ErrInvalidCredentials and
// leaves any existing session untouched.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	_ = password

	s.simulateLatency()

	user, err := s.creds.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")
	return user, nil
}

// Signup synthesises a new account. Email, password, name, and role are all
// required; missing any of them fails with ErrMissingFields before any
// persistence side effect. Optional role-specific fields default to empty
// values; partial input is completed, not rejected.
func (s *SessionService) Signup(ctx context.Context, input ports.SignupInput, password string) (*domain.User, error) {
	s.simulateLatency()

	if input.Email == "" || password == "" || input.Name == "" || input.Role == "" {
		return nil, domain.ErrMissingFields
	}

	var user *domain.User
	now := time.Now().UTC()
	id := uuid.NewString()

	switch input.Role {
	case domain.RoleFounder:
		user = domain.NewFounder(id, input.Name, input.Email, now, domain.FounderProfile{
			CompanyName:  input.CompanyName,
			Industry:     input.Industry,
			FundingStage: input.FundingStage,
		})
	case domain.RoleFundraisingPro:
		user = domain.NewFundraisingPro(id, input.Name, input.Email, now, domain.FundraisingProProfile{
			Specialties: input.Specialties,
			Experience:  input.Experience,
		})
	default:
		return nil, domain.ErrInvalidRole
	}

	// The hash is stored for completeness but never compared at login; see
	// Login. Hashing failures are unrecoverable input errors.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("signup: hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("signup succeeded")
	return user, nil
}

// Logout clears persisted and in-memory state unconditionally. It is
// idempotent and never fails; a storage error is logged and otherwise
// ignored since the in-memory session is authoritative for the caller.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted session")
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.log.Info().Msg("logged out")
}

// CheckAuth rehydrates the session from persisted storage. The session
// becomes authenticated only when a valid serialized user and the explicit
// authenticated flag are both present; a missing or corrupt record fails
// open to anonymous, never to an error.
func (s *SessionService) CheckAuth(ctx context.Context) domain.Session {
	user, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrCorruptSession) {
			s.log.Warn().Err(err).Msg("discarding corrupt persisted session")
		}
		s.mu.Lock()
		s.current = nil
		s.mu.Unlock()
		return domain.Session{}
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	return domain.Session{CurrentUser: user, IsAuthenticated: true}
}

// Session returns a copy of the current session state.
func (s *SessionService) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return domain.Session{}
	}
	clone := *s.current
	return domain.Session{CurrentUser: &clone, IsAuthenticated: true}
}

// persist writes the user to durable storage and then to memory. Overlapping
// logins race here; the last write wins, there is no generation counter
// guarding against stale overwrites.
func (s *SessionService) persist(ctx context.Context, user *domain.User) error {
	if err := s.repo.Save(ctx, user); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	return nil
}

func (s *SessionService) simulateLatency() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}
