package ports

import (
	"context"
	"time"

	"github.com/connectcapital/investor-crm/internal/core/domain"
)

// CreateInvestorInput carries the data needed to add an investor to the
// caller's pipeline.
type CreateInvestorInput struct {
	OwnerID                string
	Name                   string
	Firm                   string
	Email                  string
	LinkedInURL            string
	InvestmentFocus        []string
	FundingStagePreference []string
	Location               string
	MinCheckSize           float64
	MaxCheckSize           float64
	PortfolioCompanies     []string
	Tags                   []string
	Notes                  string
}

// GetInvestorInput identifies an investor together with the caller's RBAC
// context: non-admin roles only see their own records.
type GetInvestorInput struct {
	InvestorID string
	Role       domain.Role
	OwnerID    string
}

// ListInvestorsInput carries all parameters for the list endpoint.
type ListInvestorsInput struct {
	Role    domain.Role
	OwnerID string
	Status  string
	Focus   string
	Stage   string
	Search  string
	From    time.Time
	To      time.Time
	Page    int
	Limit   int
}

// ListInvestorsResult is returned by ListInvestors.
type ListInvestorsResult struct {
	Items      []*domain.Investor
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// InvestorService defines use-case operations for the investor directory.
type InvestorService interface {
	CreateInvestor(ctx context.Context, input CreateInvestorInput) (*domain.Investor, error)
	GetInvestor(ctx context.Context, input GetInvestorInput) (*domain.Investor, error)
	ListInvestors(ctx context.Context, input ListInvestorsInput) (*ListInvestorsResult, error)
}
