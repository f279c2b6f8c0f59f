package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// InvestorService implements the investor directory use cases.
type InvestorService struct {
	repo ports.InvestorRepository
	log  zerolog.Logger
}

func NewInvestorService(repo ports.InvestorRepository, log zerolog.Logger) *InvestorService {
	return &InvestorService{repo: repo, log: log}
}

// CreateInvestor adds an investor to the caller's pipeline in the initial
// "researched" status.
func (s *InvestorService) CreateInvestor(ctx context.Context, input ports.CreateInvestorInput) (*domain.Investor, error) {
	if input.Name == "" || input.OwnerID == "" {
		return nil, domain.ErrMissingFields
	}

	inv := &domain.Investor{
		ID:                     uuid.NewString(),
		OwnerID:                input.OwnerID,
		Name:                   input.Name,
		Firm:                   input.Firm,
		Email:                  input.Email,
		LinkedInURL:            input.LinkedInURL,
		InvestmentFocus:        emptyIfNil(input.InvestmentFocus),
		FundingStagePreference: emptyIfNil(input.FundingStagePreference),
		Location:               input.Location,
		CheckSize:              domain.CheckRange{Min: input.MinCheckSize, Max: input.MaxCheckSize},
		PortfolioCompanies:     input.PortfolioCompanies,
		Tags:                   input.Tags,
		Notes:                  input.Notes,
		Status:                 domain.StatusResearched,
		CreatedAt:              time.Now().UTC(),
		ContactHistory:         []domain.ContactRecord{},
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		s.log.Error().Err(err).Str("owner_id", input.OwnerID).Msg("failed to create investor")
		return nil, err
	}

	s.log.Info().Str("investor_id", inv.ID).Str("owner_id", inv.OwnerID).Msg("investor created")
	return inv, nil
}

// GetInvestor retrieves one investor. Non-admin callers only see their own
// records; a foreign record surfaces as ErrInvestorNotFound from the scoped
// repository query, never as a presence leak.
func (s *InvestorService) GetInvestor(ctx context.Context, input ports.GetInvestorInput) (*domain.Investor, error) {
	ownerScope := input.OwnerID
	if input.Role == domain.RoleAdmin {
		ownerScope = ""
	}
	return s.repo.FindByID(ctx, input.InvestorID, ownerScope)
}

// ListInvestors returns a filtered, paginated page of the caller's pipeline.
func (s *InvestorService) ListInvestors(ctx context.Context, input ports.ListInvestorsInput) (*ports.ListInvestorsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	ownerScope := input.OwnerID
	if input.Role == domain.RoleAdmin {
		ownerScope = ""
	}

	items, total, err := s.repo.List(ctx, ports.ListInvestorsFilter{
		OwnerID: ownerScope,
		Status:  input.Status,
		Focus:   input.Focus,
		Stage:   input.Stage,
		Search:  input.Search,
		From:    input.From,
		To:      input.To,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return &ports.ListInvestorsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
