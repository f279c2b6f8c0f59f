package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/connectcapital/investor-crm/internal/api/metrics"
	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, investorID, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, investorID, status string, ts time.Time) error
}

type outreachService struct {
	investors ports.InvestorRepository
	dedup     DedupChecker
	log       zerolog.Logger
}

// NewOutreachService returns an OutreachService implementation.
func NewOutreachService(investors ports.InvestorRepository, dedup DedupChecker, log zerolog.Logger) ports.OutreachService {
	return &outreachService{investors: investors, dedup: dedup, log: log}
}

// Process validates, deduplicates, and persists a single contact event.
func (s *outreachService) Process(ctx context.Context, in ports.ContactEventInput) error {
	start := time.Now()
	newStatus := domain.OutreachStatus(in.Status)

	// 1. Idempotency check; silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.InvestorID, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("investor_id", in.InvestorID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.OutreachDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("investor_id", in.InvestorID).Str("status", in.Status).Msg("duplicate event skipped")
		return nil
	}
	metrics.OutreachDedupTotal.WithLabelValues("miss").Inc()

	// 2. Find the investor (unscoped; events may come from connected
	// mailbox integrations, not just the owning user).
	inv, err := s.investors.FindByID(ctx, in.InvestorID, "")
	if err != nil {
		metrics.OutreachEventsErrorsTotal.WithLabelValues("investor_not_found").Inc()
		return fmt.Errorf("process contact event: %w", err)
	}

	// 3. Validate the pipeline transition.
	if !inv.Status.CanTransitionTo(newStatus) {
		metrics.OutreachEventsErrorsTotal.WithLabelValues("invalid_transition").Inc()
		return fmt.Errorf("process contact event: %w (from %s to %s)", domain.ErrInvalidTransition, inv.Status, newStatus)
	}

	// 4. Mark as processed before writing (prevents duplicate processing on retry).
	if markErr := s.dedup.Mark(ctx, in.InvestorID, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("investor_id", in.InvestorID).Msg("failed to set dedup key")
	}

	// 5. Atomically advance status and append the contact record.
	record := domain.ContactRecord{
		ID:    uuid.NewString(),
		Date:  in.Timestamp,
		Type:  domain.ContactType(in.Type),
		Notes: in.Notes,
	}
	if err := s.investors.ApplyContact(ctx, in.InvestorID, newStatus, record); err != nil {
		metrics.OutreachEventsErrorsTotal.WithLabelValues("update_failed").Inc()
		return fmt.Errorf("process contact event: apply contact: %w", err)
	}

	metrics.OutreachEventsProcessedTotal.WithLabelValues(in.Status, in.Source).Inc()
	metrics.OutreachProcessingDuration.WithLabelValues(in.Status).Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("investor_id", in.InvestorID).
		Str("status", in.Status).
		Str("source", in.Source).
		Msg("contact event processed")

	return nil
}
