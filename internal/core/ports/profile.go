package ports

import (
	"context"

	"github.com/connectcapital/investor-crm/internal/core/domain"
)

// ProfilePatch is a partial profile update; nil fields are left untouched.
type ProfilePatch struct {
	StartupName        *string
	Industry           []string
	Stage              *string
	FundingGoal        *float64
	StartupDescription *string
	Website            *string
	OrganizationName   *string
	Focus              *string
	RaisingFor         *string
	FundSizeGoal       *float64
	EmailConnected     *bool
	EmailProvider      *string
	ProfilePicture     *string
}

// ProfileRepository defines persistence for extended user profiles and their
// uploaded assets.
type ProfileRepository interface {
	Fetch(ctx context.Context, userID string) (*domain.ProfileData, error)
	Upsert(ctx context.Context, profile *domain.ProfileData) error
	Update(ctx context.Context, userID string, patch ProfilePatch) error
	Delete(ctx context.Context, userID string) error
	// UploadFile stores the file bytes under path and returns a servable URL.
	UploadFile(ctx context.Context, path string, data []byte) (string, error)
}

// ProfileService exposes profile CRUD plus picture upload to the API layer.
type ProfileService interface {
	FetchProfile(ctx context.Context, userID string) (*domain.ProfileData, error)
	UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) error
	UploadProfilePicture(ctx context.Context, userID, filename string, data []byte) (string, error)
	DeleteProfile(ctx context.Context, userID string) error
}
