package ports

import "context"

// StatusSlice is one pipeline segment in the dashboard summary.
type StatusSlice struct {
	Status     string
	Count      int64
	Percentage float64
}

// PipelineSummary is the dashboard view of an owner's outreach pipeline.
type PipelineSummary struct {
	TotalInvestors int64
	ByStatus       []StatusSlice
	// Contacted counts investors in any status past "researched".
	Contacted int64
	// ResponseRate is interested+meeting over Contacted, as a percentage.
	ResponseRate float64
}

// DashboardService computes analytics over the investor pipeline.
type DashboardService interface {
	PipelineSummary(ctx context.Context, ownerID string) (*PipelineSummary, error)
}
