package domain

import (
	"errors"
	"time"
)

// OutreachStatus represents where an investor sits in the outreach pipeline.
type OutreachStatus string

const (
	StatusResearched  OutreachStatus = "researched"
	StatusContacted   OutreachStatus = "contacted"
	StatusMeeting     OutreachStatus = "meeting"
	StatusFollowingUp OutreachStatus = "following-up"
	StatusPassed      OutreachStatus = "passed"
	StatusInterested  OutreachStatus = "interested"
)

// validTransitions defines the allowed pipeline moves. "passed" and
// "interested" are terminal.
var validTransitions = map[OutreachStatus][]OutreachStatus{
	StatusResearched:  {StatusContacted},
	StatusContacted:   {StatusMeeting, StatusFollowingUp, StatusPassed},
	StatusMeeting:     {StatusFollowingUp, StatusInterested, StatusPassed},
	StatusFollowingUp: {StatusMeeting, StatusInterested, StatusPassed},
}

var ErrInvalidTransition = errors.New("invalid outreach status transition")
var ErrInvestorNotFound = errors.New("investor not found")
var ErrDuplicateInvestor = errors.New("investor already exists")

// CanTransitionTo reports whether moving from the current status to next is a
// valid pipeline transition.
func (s OutreachStatus) CanTransitionTo(next OutreachStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ContactType classifies a single outreach touch.
type ContactType string

const (
	ContactEmail    ContactType = "email"
	ContactLinkedIn ContactType = "linkedin"
	ContactCall     ContactType = "call"
	ContactMeeting  ContactType = "meeting"
	ContactOther    ContactType = "other"
)

// ContactRecord is one entry in an investor's outreach history.
type ContactRecord struct {
	ID           string      `json:"id" bson:"id"`
	Date         time.Time   `json:"date" bson:"date"`
	Type         ContactType `json:"type" bson:"type"`
	Notes        string      `json:"notes,omitempty" bson:"notes,omitempty"`
	FollowUpDate time.Time   `json:"follow_up_date,omitempty" bson:"follow_up_date,omitempty"`
}

// CheckRange is an investor's typical check size band, in USD.
type CheckRange struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

// Investor is the core aggregate of the outreach pipeline. OwnerID scopes an
// investor record to the founder or fundraising pro tracking it.
type Investor struct {
	ID                     string          `json:"id" bson:"_id,omitempty"`
	OwnerID                string          `json:"owner_id" bson:"owner_id"`
	Name                   string          `json:"name" bson:"name"`
	Firm                   string          `json:"firm,omitempty" bson:"firm,omitempty"`
	Email                  string          `json:"email,omitempty" bson:"email,omitempty"`
	LinkedInURL            string          `json:"linkedin_url,omitempty" bson:"linkedin_url,omitempty"`
	InvestmentFocus        []string        `json:"investment_focus" bson:"investment_focus"`
	FundingStagePreference []string        `json:"funding_stage_preference" bson:"funding_stage_preference"`
	Location               string          `json:"location" bson:"location"`
	CheckSize              CheckRange      `json:"check_size" bson:"check_size"`
	PortfolioCompanies     []string        `json:"portfolio_companies,omitempty" bson:"portfolio_companies,omitempty"`
	Tags                   []string        `json:"tags,omitempty" bson:"tags,omitempty"`
	Notes                  string          `json:"notes,omitempty" bson:"notes,omitempty"`
	Status                 OutreachStatus  `json:"status" bson:"status"`
	LastContactDate        time.Time       `json:"last_contact_date,omitempty" bson:"last_contact_date,omitempty"`
	CreatedAt              time.Time       `json:"created_at" bson:"created_at"`
	ContactHistory         []ContactRecord `json:"contact_history" bson:"contact_history"`
}

// ContactEvent records a single outreach touch against an investor, ingested
// asynchronously through the event pipeline.
type ContactEvent struct {
	InvestorID string
	Status     OutreachStatus
	Type       ContactType
	Timestamp  time.Time
	Source     string
	Notes      string
}
