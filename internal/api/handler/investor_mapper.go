package handler

import (
	"time"

	"github.com/connectcapital/investor-crm/internal/core/domain"
)

const timeLayout = time.RFC3339

// toInvestorResponse maps the domain aggregate to its wire representation.
func toInvestorResponse(inv *domain.Investor) investorResponse {
	history := make([]contactRecordResponse, 0, len(inv.ContactHistory))
	for _, rec := range inv.ContactHistory {
		history = append(history, contactRecordResponse{
			ID:           rec.ID,
			Date:         rec.Date.UTC().Format(timeLayout),
			Type:         string(rec.Type),
			Notes:        rec.Notes,
			FollowUpDate: formatOptional(rec.FollowUpDate),
		})
	}

	return investorResponse{
		ID:                     inv.ID,
		Name:                   inv.Name,
		Firm:                   inv.Firm,
		Email:                  inv.Email,
		LinkedInURL:            inv.LinkedInURL,
		InvestmentFocus:        inv.InvestmentFocus,
		FundingStagePreference: inv.FundingStagePreference,
		Location:               inv.Location,
		CheckSize:              checkSizeRequest{Min: inv.CheckSize.Min, Max: inv.CheckSize.Max},
		PortfolioCompanies:     inv.PortfolioCompanies,
		Tags:                   inv.Tags,
		Notes:                  inv.Notes,
		Status:                 string(inv.Status),
		LastContactDate:        formatOptional(inv.LastContactDate),
		CreatedAt:              inv.CreatedAt.UTC().Format(timeLayout),
		ContactHistory:         history,
	}
}

// formatOptional renders a zero time as the empty string so omitempty drops it.
func formatOptional(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}
