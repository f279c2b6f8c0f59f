package ports

import (
	"context"

	"github.com/connectcapital/investor-crm/internal/core/domain"
)

// CredentialStore is the fixed set of demo accounts that login attempts are
// matched against. Email is the lookup key; lookups scan founders before
// fundraising pros and match on the exact string.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
