package ports

import (
	"context"
	"time"
)

// ContactEventInput is the transport-agnostic DTO for one outreach touch.
type ContactEventInput struct {
	InvestorID string
	Status     string
	Type       string
	Timestamp  time.Time
	Source     string
	Notes      string
}

// OutreachService processes contact events against the investor pipeline:
// deduplication, status transition validation, and history persistence.
type OutreachService interface {
	Process(ctx context.Context, in ContactEventInput) error
}
