package ports

import (
	"context"

	"github.com/connectcapital/investor-crm/internal/core/domain"
)

// SessionRepository persists the single logical session as two string keys:
// domain.KeyCurrentUser (JSON user) and domain.KeyIsAuthenticated ("true").
//
// Load returns domain.ErrSessionNotFound when either key is absent or the
// authenticated flag holds anything but "true", and domain.ErrCorruptSession
// when the stored user fails the schema-validated decode.
type SessionRepository interface {
	Save(ctx context.Context, user *domain.User) error
	Load(ctx context.Context) (*domain.User, error)
	Clear(ctx context.Context) error
}
