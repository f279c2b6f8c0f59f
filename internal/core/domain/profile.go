package domain

import "errors"

var ErrProfileNotFound = errors.New("profile not found")

// ProfileData is the extended, editable profile stored separately from the
// session user. Founder-flavoured fields and pro-flavoured fields coexist as
// optionals; Role says which half is meaningful.
type ProfileData struct {
	UserID             string   `json:"user_id" bson:"_id"`
	Role               Role     `json:"role" bson:"role"`
	StartupName        string   `json:"startup_name,omitempty" bson:"startup_name,omitempty"`
	Industry           []string `json:"industry,omitempty" bson:"industry,omitempty"`
	Stage              string   `json:"stage,omitempty" bson:"stage,omitempty"`
	FundingGoal        float64  `json:"funding_goal,omitempty" bson:"funding_goal,omitempty"`
	StartupDescription string   `json:"startup_description,omitempty" bson:"startup_description,omitempty"`
	Website            string   `json:"website,omitempty" bson:"website,omitempty"`
	OrganizationName   string   `json:"organization_name,omitempty" bson:"organization_name,omitempty"`
	Focus              string   `json:"focus,omitempty" bson:"focus,omitempty"`
	RaisingFor         string   `json:"raising_for,omitempty" bson:"raising_for,omitempty"`
	FundSizeGoal       float64  `json:"fund_size_goal,omitempty" bson:"fund_size_goal,omitempty"`
	EmailConnected     bool     `json:"email_connected" bson:"email_connected"`
	EmailProvider      string   `json:"email_provider,omitempty" bson:"email_provider,omitempty"`
	ProfilePicture     string   `json:"profile_picture,omitempty" bson:"profile_picture,omitempty"`
}
