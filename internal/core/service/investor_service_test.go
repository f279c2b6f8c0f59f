package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubInvestorRepo struct {
	byID      map[string]*domain.Investor
	createErr error // if set, Create returns this error
	applyErr  error // if set, ApplyContact returns this error
	applied   []domain.ContactRecord
}

func newStubInvestorRepo() *stubInvestorRepo {
	return &stubInvestorRepo{byID: make(map[string]*domain.Investor)}
}

func (r *stubInvestorRepo) Create(_ context.Context, inv *domain.Investor) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *inv
	r.byID[inv.ID] = &clone
	return nil
}

func (r *stubInvestorRepo) FindByID(_ context.Context, id, ownerID string) (*domain.Investor, error) {
	inv, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrInvestorNotFound
	}
	// Enforce the owner scope (mirrors the real Mongo query).
	if ownerID != "" && inv.OwnerID != ownerID {
		return nil, domain.ErrInvestorNotFound
	}
	clone := *inv
	return &clone, nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubInvestorRepo) List(_ context.Context, f ports.ListInvestorsFilter) ([]*domain.Investor, int64, error) {
	var matched []*domain.Investor
	for _, inv := range r.byID {
		if f.OwnerID != "" && inv.OwnerID != f.OwnerID {
			continue
		}
		if f.Status != "" && string(inv.Status) != f.Status {
			continue
		}
		if f.Focus != "" && !containsFold(inv.InvestmentFocus, f.Focus) {
			continue
		}
		if f.Stage != "" && !containsFold(inv.FundingStagePreference, f.Stage) {
			continue
		}
		if f.Search != "" {
			nameMatch := strings.Contains(strings.ToLower(inv.Name), strings.ToLower(f.Search))
			firmMatch := strings.Contains(strings.ToLower(inv.Firm), strings.ToLower(f.Search))
			if !nameMatch && !firmMatch {
				continue
			}
		}
		if !f.From.IsZero() && inv.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && inv.CreatedAt.After(f.To) {
			continue
		}
		clone := *inv
		matched = append(matched, &clone)
	}

	total := int64(len(matched))

	limit := f.Limit
	if limit <= 0 {
		limit = len(matched)
	}
	skip := (f.Page - 1) * limit
	if skip < 0 {
		skip = 0
	}
	if skip > len(matched) {
		return []*domain.Investor{}, total, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubInvestorRepo) ApplyContact(_ context.Context, id string, status domain.OutreachStatus, record domain.ContactRecord) error {
	if r.applyErr != nil {
		return r.applyErr
	}
	inv, ok := r.byID[id]
	if !ok {
		return domain.ErrInvestorNotFound
	}
	inv.Status = status
	inv.LastContactDate = record.Date
	inv.ContactHistory = append(inv.ContactHistory, record)
	r.applied = append(r.applied, record)
	return nil
}

func (r *stubInvestorRepo) CountByStatus(_ context.Context, ownerID string) (map[domain.OutreachStatus]int64, error) {
	counts := make(map[domain.OutreachStatus]int64)
	for _, inv := range r.byID {
		if ownerID != "" && inv.OwnerID != ownerID {
			continue
		}
		counts[inv.Status]++
	}
	return counts, nil
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func seedInvestor(repo *stubInvestorRepo, id, ownerID string, status domain.OutreachStatus) *domain.Investor {
	inv := &domain.Investor{
		ID:              id,
		OwnerID:         ownerID,
		Name:            "Investor " + id,
		Firm:            "Firm " + id,
		InvestmentFocus: []string{"SaaS"},
		Status:          status,
		CreatedAt:       time.Now().UTC(),
	}
	repo.byID[id] = inv
	return inv
}

// ---------------------------------------------------------------------------
// CreateInvestor
// ---------------------------------------------------------------------------

func TestInvestorService_Create_Success(t *testing.T) {
	repo := newStubInvestorRepo()
	svc := NewInvestorService(repo, discardLogger)

	inv, err := svc.CreateInvestor(context.Background(), ports.CreateInvestorInput{
		OwnerID: "u1",
		Name:    "Alex Chen",
		Firm:    "Horizon Ventures",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.ID == "" {
		t.Error("expected generated id")
	}
	if inv.Status != domain.StatusResearched {
		t.Errorf("expected initial status %q, got %q", domain.StatusResearched, inv.Status)
	}
	if inv.OwnerID != "u1" {
		t.Errorf("owner not stamped: %q", inv.OwnerID)
	}
	if inv.InvestmentFocus == nil || inv.ContactHistory == nil {
		t.Error("slices must be initialised, not nil")
	}
}

func TestInvestorService_Create_MissingName(t *testing.T) {
	repo := newStubInvestorRepo()
	svc := NewInvestorService(repo, discardLogger)

	if _, err := svc.CreateInvestor(context.Background(), ports.CreateInvestorInput{OwnerID: "u1"}); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// GetInvestor / RBAC scoping
// ---------------------------------------------------------------------------

func TestInvestorService_Get_ScopedToOwner(t *testing.T) {
	repo := newStubInvestorRepo()
	seedInvestor(repo, "101", "u1", domain.StatusResearched)
	svc := NewInvestorService(repo, discardLogger)

	if _, err := svc.GetInvestor(context.Background(), ports.GetInvestorInput{
		InvestorID: "101", Role: domain.RoleFounder, OwnerID: "u1",
	}); err != nil {
		t.Fatalf("owner must see own investor: %v", err)
	}

	if _, err := svc.GetInvestor(context.Background(), ports.GetInvestorInput{
		InvestorID: "101", Role: domain.RoleFounder, OwnerID: "u2",
	}); err != domain.ErrInvestorNotFound {
		t.Fatalf("foreign investor must look absent, got %v", err)
	}
}

func TestInvestorService_Get_AdminSeesAll(t *testing.T) {
	repo := newStubInvestorRepo()
	seedInvestor(repo, "101", "u1", domain.StatusResearched)
	svc := NewInvestorService(repo, discardLogger)

	if _, err := svc.GetInvestor(context.Background(), ports.GetInvestorInput{
		InvestorID: "101", Role: domain.RoleAdmin, OwnerID: "admin-1",
	}); err != nil {
		t.Fatalf("admin must see all investors: %v", err)
	}
}

// ---------------------------------------------------------------------------
// ListInvestors
// ---------------------------------------------------------------------------

func TestInvestorService_List_FiltersAndPaginates(t *testing.T) {
	repo := newStubInvestorRepo()
	seedInvestor(repo, "101", "u1", domain.StatusResearched)
	seedInvestor(repo, "102", "u1", domain.StatusContacted)
	seedInvestor(repo, "103", "u2", domain.StatusContacted)
	svc := NewInvestorService(repo, discardLogger)

	res, err := svc.ListInvestors(context.Background(), ports.ListInvestorsInput{
		Role:    domain.RoleFounder,
		OwnerID: "u1",
		Status:  string(domain.StatusContacted),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 1 || len(res.Items) != 1 || res.Items[0].ID != "102" {
		t.Errorf("unexpected result: total=%d items=%d", res.Total, len(res.Items))
	}
}

func TestInvestorService_List_CapsLimit(t *testing.T) {
	repo := newStubInvestorRepo()
	svc := NewInvestorService(repo, discardLogger)

	res, err := svc.ListInvestors(context.Background(), ports.ListInvestorsInput{
		Role:    domain.RoleAdmin,
		OwnerID: "admin-1",
		Limit:   5000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Limit != maxPageLimit {
		t.Errorf("expected limit capped at %d, got %d", maxPageLimit, res.Limit)
	}
	if res.Page != 1 {
		t.Errorf("expected default page 1, got %d", res.Page)
	}
}

func TestInvestorService_List_SearchMatchesFirm(t *testing.T) {
	repo := newStubInvestorRepo()
	inv := seedInvestor(repo, "101", "u1", domain.StatusResearched)
	inv.Firm = "Horizon Ventures"
	svc := NewInvestorService(repo, discardLogger)

	res, err := svc.ListInvestors(context.Background(), ports.ListInvestorsInput{
		Role:    domain.RoleFounder,
		OwnerID: "u1",
		Search:  "horizon",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 1 {
		t.Errorf("expected firm search hit, got total=%d", res.Total)
	}
}
