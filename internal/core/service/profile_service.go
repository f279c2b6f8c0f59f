package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/core/ports"
)

// ProfileService implements extended-profile CRUD on top of the profile
// repository. It never touches the session; profile state and session state
// are deliberately independent.
type ProfileService struct {
	repo ports.ProfileRepository
	log  zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, log zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, log: log}
}

func (s *ProfileService) FetchProfile(ctx context.Context, userID string) (*domain.ProfileData, error) {
	return s.repo.Fetch(ctx, userID)
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, patch ports.ProfilePatch) error {
	if err := s.repo.Update(ctx, userID, patch); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return nil
}

// UploadProfilePicture stores the picture bytes and records the resulting
// URL on the profile. The storage path is unique per upload so a re-upload
// never clobbers a previous asset.
func (s *ProfileService) UploadProfilePicture(ctx context.Context, userID, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("upload profile picture: %w", domain.ErrMissingFields)
	}

	ext := strings.ToLower(path.Ext(filename))
	storagePath := fmt.Sprintf("profile_pictures/%s-%s%s", userID, uuid.NewString(), ext)

	url, err := s.repo.UploadFile(ctx, storagePath, data)
	if err != nil {
		return "", fmt.Errorf("upload profile picture: %w", err)
	}

	if err := s.repo.Update(ctx, userID, ports.ProfilePatch{ProfilePicture: &url}); err != nil {
		return "", fmt.Errorf("upload profile picture: record url: %w", err)
	}

	s.log.Info().Str("user_id", userID).Str("url", url).Msg("profile picture uploaded")
	return url, nil
}

func (s *ProfileService) DeleteProfile(ctx context.Context, userID string) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Msg("profile deleted")
	return nil
}
