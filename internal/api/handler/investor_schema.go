package handler

type checkSizeRequest struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type createInvestorRequest struct {
	Name                   string           `json:"name" validate:"required"`
	Firm                   string           `json:"firm,omitempty"`
	Email                  string           `json:"email,omitempty" validate:"omitempty,email"`
	LinkedInURL            string           `json:"linkedin_url,omitempty"`
	InvestmentFocus        []string         `json:"investment_focus,omitempty"`
	FundingStagePreference []string         `json:"funding_stage_preference,omitempty"`
	Location               string           `json:"location,omitempty"`
	CheckSize              checkSizeRequest `json:"check_size"`
	PortfolioCompanies     []string         `json:"portfolio_companies,omitempty"`
	Tags                   []string         `json:"tags,omitempty"`
	Notes                  string           `json:"notes,omitempty"`
}

type listInvestorsResponse struct {
	Items      []investorResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

type contactRecordResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Type         string `json:"type"`
	Notes        string `json:"notes,omitempty"`
	FollowUpDate string `json:"follow_up_date,omitempty"`
}

type investorResponse struct {
	ID                     string                  `json:"id"`
	Name                   string                  `json:"name"`
	Firm                   string                  `json:"firm,omitempty"`
	Email                  string                  `json:"email,omitempty"`
	LinkedInURL            string                  `json:"linkedin_url,omitempty"`
	InvestmentFocus        []string                `json:"investment_focus"`
	FundingStagePreference []string                `json:"funding_stage_preference"`
	Location               string                  `json:"location,omitempty"`
	CheckSize              checkSizeRequest        `json:"check_size"`
	PortfolioCompanies     []string                `json:"portfolio_companies,omitempty"`
	Tags                   []string                `json:"tags,omitempty"`
	Notes                  string                  `json:"notes,omitempty"`
	Status                 string                  `json:"status"`
	LastContactDate        string                  `json:"last_contact_date,omitempty"`
	CreatedAt              string                  `json:"created_at"`
	ContactHistory         []contactRecordResponse `json:"contact_history"`
}
