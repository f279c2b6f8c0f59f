package ports

import (
	"context"

	"github.com/connectcapital/investor-crm/internal/core/domain"
)

// SignupInput carries the data needed to create a new account. Email, Name,
// and Role are required (alongside a non-empty password); everything else is
// optional and defaulted by the role factory.
type SignupInput struct {
	Email string
	Name  string
	Role  domain.Role

	// Founder-role optionals.
	CompanyName  string
	Industry     string
	FundingStage string

	// Fundraising-pro-role optionals.
	Specialties []string
	Experience  string
}

// SessionService is the sole authority on who is logged in.
//
// Login and Signup simulate a network round trip with a fixed artificial
// delay before resolving; neither is cancellable once started; the session
// mutation lands even if the caller has stopped waiting. Logout is
// synchronous and never fails. CheckAuth rehydrates from persisted storage,
// treating a missing or corrupt record as anonymous.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Signup(ctx context.Context, input SignupInput, password string) (*domain.User, error)
	Logout(ctx context.Context)
	CheckAuth(ctx context.Context) domain.Session
	Session() domain.Session
}
