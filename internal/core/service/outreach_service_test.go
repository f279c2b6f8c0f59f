package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubDedup struct {
	dupResult bool
	dupErr    error
	markErr   error
	marked    []string
}

func (d *stubDedup) IsDuplicate(_ context.Context, investorID, status string, _ time.Time) (bool, error) {
	return d.dupResult, d.dupErr
}

func (d *stubDedup) Mark(_ context.Context, investorID, status string, _ time.Time) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.marked = append(d.marked, investorID+":"+status)
	return nil
}

func newOutreachSvc(repo *stubInvestorRepo, dedup *stubDedup) ports.OutreachService {
	return NewOutreachService(repo, dedup, discardLogger)
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestOutreachService_Process_HappyPath(t *testing.T) {
	repo := newStubInvestorRepo()
	seedInvestor(repo, "101", "u1", domain.StatusResearched)
	dedup := &stubDedup{}

	svc := newOutreachSvc(repo, dedup)
	err := svc.Process(context.Background(), ports.ContactEventInput{
		InvestorID: "101",
		Status:     "contacted",
		Type:       "email",
		Timestamp:  time.Now(),
		Source:     "gmail_sync",
		Notes:      "sent intro deck",
	})

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(repo.applied) != 1 {
		t.Fatalf("expected one contact applied, got %d", len(repo.applied))
	}
	if repo.byID["101"].Status != domain.StatusContacted {
		t.Errorf("expected status advanced to contacted, got %s", repo.byID["101"].Status)
	}
	if repo.applied[0].ID == "" {
		t.Error("expected contact record to get an id")
	}
	if repo.applied[0].Notes != "sent intro deck" {
		t.Errorf("notes lost: %q", repo.applied[0].Notes)
	}
	if len(dedup.marked) != 1 {
		t.Errorf("expected dedup key marked")
	}
}

func TestOutreachService_Process_DuplicateSkipped(t *testing.T) {
	repo := newStubInvestorRepo()
	seedInvestor(repo, "101", "u1", domain.StatusResearched)
	dedup := &stubDedup{dupResult: true} // simulate already processed

	svc := newOutreachSvc(repo, dedup)
	err := svc.Process(context.Background(), ports.ContactEventInput{
		InvestorID: "101",
		Status:     "contacted",
		Timestamp:  time.Now(),
		Source:     "gmail_sync",
	})

	if err != nil {
		t.Fatalf("expected no error for duplicate, got: %v", err)
	}
	if len(repo.applied) != 0 {
		t.Errorf("expected no update for duplicate event")
	}
}

func TestOutreachService_Process_InvestorNotFound(t *testing.T) {
	repo := newStubInvestorRepo() // empty
	dedup := &stubDedup{}

	svc := newOutreachSvc(repo, dedup)
	err := svc.Process(context.Background(), ports.ContactEventInput{
		InvestorID: "ghost",
		Status:     "contacted",
		Timestamp:  time.Now(),
		Source:     "gmail_sync",
	})

	if !errors.Is(err, domain.ErrInvestorNotFound) {
		t.Errorf("expected ErrInvestorNotFound, got: %v", err)
	}
}

func TestOutreachService_Process_InvalidTransition(t *testing.T) {
	repo := newStubInvestorRepo()
	seedInvestor(repo, "101", "u1", domain.StatusResearched)
	dedup := &stubDedup{}

	svc := newOutreachSvc(repo, dedup)
	err := svc.Process(context.Background(), ports.ContactEventInput{
		InvestorID: "101",
		Status:     "interested", // invalid: researched → interested not allowed
		Timestamp:  time.Now(),
		Source:     "gmail_sync",
	})

	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got: %v", err)
	}
	if len(repo.applied) != 0 {
		t.Errorf("expected no update on invalid transition")
	}
}

func TestOutreachService_Process_TerminalStatusRejectsMoves(t *testing.T) {
	repo := newStubInvestorRepo()
	seedInvestor(repo, "101", "u1", domain.StatusPassed)
	dedup := &stubDedup{}

	svc := newOutreachSvc(repo, dedup)
	err := svc.Process(context.Background(), ports.ContactEventInput{
		InvestorID: "101",
		Status:     "contacted",
		Timestamp:  time.Now(),
		Source:     "manual",
	})

	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("passed is terminal, expected ErrInvalidTransition, got: %v", err)
	}
}

func TestOutreachService_Process_DedupCheckError_ProcessesAnyway(t *testing.T) {
	repo := newStubInvestorRepo()
	seedInvestor(repo, "101", "u1", domain.StatusResearched)
	dedup := &stubDedup{dupErr: errors.New("redis timeout")} // dedup check fails

	svc := newOutreachSvc(repo, dedup)
	err := svc.Process(context.Background(), ports.ContactEventInput{
		InvestorID: "101",
		Status:     "contacted",
		Timestamp:  time.Now(),
		Source:     "gmail_sync",
	})

	// Should still process despite dedup check failure
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(repo.applied) != 1 {
		t.Errorf("expected update to proceed when dedup check errors")
	}
}

func TestOutreachService_Process_UpdateFailureSurfaces(t *testing.T) {
	repo := newStubInvestorRepo()
	seedInvestor(repo, "101", "u1", domain.StatusResearched)
	repo.applyErr = errors.New("mongo unavailable")
	dedup := &stubDedup{}

	svc := newOutreachSvc(repo, dedup)
	err := svc.Process(context.Background(), ports.ContactEventInput{
		InvestorID: "101",
		Status:     "contacted",
		Timestamp:  time.Now(),
		Source:     "gmail_sync",
	})

	if err == nil {
		t.Fatal("expected persistence failure to surface")
	}
}
