package ports

import (
	"context"
	"time"

	"github.com/connectcapital/investor-crm/internal/core/domain"
)

// ListInvestorsFilter carries all query parameters for listing investors.
// OwnerID is always enforced by the service layer for non-admin callers.
type ListInvestorsFilter struct {
	OwnerID string    // empty = no filter (admin); non-empty = scoped to owner
	Status  string    // optional: filter by outreach status
	Focus   string    // optional: investment focus contains this sector
	Stage   string    // optional: funding stage preference contains this stage
	Search  string    // optional: partial match on name or firm
	From    time.Time // optional: created_at >= From
	To      time.Time // optional: created_at <= To
	Page    int       // 1-based
	Limit   int       // max rows per page (capped at 100 by service)
}

// InvestorRepository defines persistence operations for investors.
type InvestorRepository interface {
	Create(ctx context.Context, inv *domain.Investor) error
	// FindByID retrieves an investor. When ownerID is non-empty the query is
	// additionally scoped to that owner.
	FindByID(ctx context.Context, id string, ownerID string) (*domain.Investor, error)
	List(ctx context.Context, filter ListInvestorsFilter) ([]*domain.Investor, int64, error)
	// ApplyContact atomically advances the pipeline status, stamps the last
	// contact date, and appends the contact record.
	ApplyContact(ctx context.Context, investorID string, status domain.OutreachStatus, record domain.ContactRecord) error
	// CountByStatus returns the number of investors per outreach status for
	// the given owner (all owners when empty).
	CountByStatus(ctx context.Context, ownerID string) (map[domain.OutreachStatus]int64, error)
}
