package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/connectcapital/investor-crm/internal/core/domain"
)

// SessionRepository persists the single logical session in Redis using the
// canonical two-key layout: currentUser (JSON user) and isAuthenticated
// (the literal "true").
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func (r *SessionRepository) Save(ctx context.Context, user *domain.User) error {
	raw, err := domain.EncodeUser(user)
	if err != nil {
		return err
	}

	if err := r.client.MSet(ctx,
		domain.KeyCurrentUser, string(raw),
		domain.KeyIsAuthenticated, domain.AuthenticatedValue,
	).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Load(ctx context.Context) (*domain.User, error) {
	raw, err := r.client.Get(ctx, domain.KeyCurrentUser).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	flag, err := r.client.Get(ctx, domain.KeyIsAuthenticated).Result()
	if errors.Is(err, redis.Nil) || (err == nil && flag != domain.AuthenticatedValue) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session flag: %w", err)
	}

	return domain.DecodeUser([]byte(raw))
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, domain.KeyCurrentUser, domain.KeyIsAuthenticated).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
