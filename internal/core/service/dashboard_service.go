package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/core/ports"
)

// statusOrder fixes the display order of pipeline segments.
var statusOrder = []domain.OutreachStatus{
	domain.StatusResearched,
	domain.StatusContacted,
	domain.StatusMeeting,
	domain.StatusFollowingUp,
	domain.StatusInterested,
	domain.StatusPassed,
}

// DashboardService computes pipeline analytics from investor status counts.
type DashboardService struct {
	repo ports.InvestorRepository
	log  zerolog.Logger
}

func NewDashboardService(repo ports.InvestorRepository, log zerolog.Logger) *DashboardService {
	return &DashboardService{repo: repo, log: log}
}

// PipelineSummary aggregates the owner's pipeline: per-status counts and
// percentages (one-decimal rounding), how many investors have been contacted
// at all, and the share of contacted investors showing positive signal
// (interested or in a meeting).
func (s *DashboardService) PipelineSummary(ctx context.Context, ownerID string) (*ports.PipelineSummary, error) {
	counts, err := s.repo.CountByStatus(ctx, ownerID)
	if err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Msg("failed to aggregate pipeline")
		return nil, err
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	summary := &ports.PipelineSummary{
		TotalInvestors: total,
		ByStatus:       make([]ports.StatusSlice, 0, len(statusOrder)),
	}

	for _, status := range statusOrder {
		n := counts[status]
		summary.ByStatus = append(summary.ByStatus, ports.StatusSlice{
			Status:     string(status),
			Count:      n,
			Percentage: percentage(n, total),
		})
	}

	summary.Contacted = total - counts[domain.StatusResearched]
	positive := counts[domain.StatusInterested] + counts[domain.StatusMeeting]
	summary.ResponseRate = percentage(positive, summary.Contacted)

	return summary, nil
}

// percentage returns part/whole as a percentage rounded to one decimal.
// A zero whole yields 0 rather than NaN.
func percentage(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*1000) / 10
}
