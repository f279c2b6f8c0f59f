package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/connectcapital/investor-crm/internal/core/domain"
)

func seedPipeline(repo *stubInvestorRepo, ownerID string, counts map[domain.OutreachStatus]int) {
	i := 0
	for status, n := range counts {
		for k := 0; k < n; k++ {
			seedInvestor(repo, ownerID+"-"+strconv.Itoa(i), ownerID, status)
			i++
		}
	}
}

func TestDashboard_PipelineSummary(t *testing.T) {
	repo := newStubInvestorRepo()
	seedPipeline(repo, "u1", map[domain.OutreachStatus]int{
		domain.StatusResearched: 4,
		domain.StatusContacted:  3,
		domain.StatusMeeting:    2,
		domain.StatusInterested: 1,
	})
	// Another owner's pipeline must not leak into u1's summary.
	seedPipeline(repo, "u2", map[domain.OutreachStatus]int{
		domain.StatusPassed: 5,
	})

	svc := NewDashboardService(repo, discardLogger)
	summary, err := svc.PipelineSummary(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalInvestors != 10 {
		t.Errorf("expected 10 investors, got %d", summary.TotalInvestors)
	}
	if summary.Contacted != 6 {
		t.Errorf("expected 6 contacted (total minus researched), got %d", summary.Contacted)
	}
	// 2 meeting + 1 interested out of 6 contacted = 50%.
	if summary.ResponseRate != 50.0 {
		t.Errorf("expected response rate 50.0, got %v", summary.ResponseRate)
	}

	byStatus := make(map[string]int64)
	for _, slice := range summary.ByStatus {
		byStatus[slice.Status] = slice.Count
	}
	if byStatus["researched"] != 4 || byStatus["contacted"] != 3 {
		t.Errorf("unexpected per-status counts: %v", byStatus)
	}
	if byStatus["passed"] != 0 {
		t.Errorf("foreign owner's investors leaked: %v", byStatus)
	}
	if len(summary.ByStatus) != 6 {
		t.Errorf("expected all six statuses present, got %d", len(summary.ByStatus))
	}
}

func TestDashboard_PipelineSummary_PercentagesRounded(t *testing.T) {
	repo := newStubInvestorRepo()
	seedPipeline(repo, "u1", map[domain.OutreachStatus]int{
		domain.StatusResearched: 1,
		domain.StatusContacted:  2,
	})

	svc := NewDashboardService(repo, discardLogger)
	summary, err := svc.PipelineSummary(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, slice := range summary.ByStatus {
		switch slice.Status {
		case "researched":
			if slice.Percentage != 33.3 {
				t.Errorf("expected 33.3, got %v", slice.Percentage)
			}
		case "contacted":
			if slice.Percentage != 66.7 {
				t.Errorf("expected 66.7, got %v", slice.Percentage)
			}
		}
	}
}

func TestDashboard_PipelineSummary_EmptyPipeline(t *testing.T) {
	repo := newStubInvestorRepo()
	svc := NewDashboardService(repo, discardLogger)

	summary, err := svc.PipelineSummary(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalInvestors != 0 || summary.Contacted != 0 {
		t.Errorf("expected empty summary, got %+v", summary)
	}
	// No division by zero: rates settle at 0.
	if summary.ResponseRate != 0 {
		t.Errorf("expected 0 response rate, got %v", summary.ResponseRate)
	}
	for _, slice := range summary.ByStatus {
		if slice.Percentage != 0 {
			t.Errorf("expected 0%% for %s, got %v", slice.Status, slice.Percentage)
		}
	}
}
