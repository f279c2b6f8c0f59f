package domain

import (
	"errors"
	"time"
)

// Role is the closed set of user roles. It is fixed at creation time and
// determines which variant profile a User carries.
type Role string

const (
	RoleFounder        Role = "founder"
	RoleFundraisingPro Role = "fundraisingPro"
	RoleAdmin          Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleFounder, RoleFundraisingPro, RoleAdmin:
		return true
	}
	return false
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingFields = errors.New("missing required fields")
var ErrInvalidRole = errors.New("invalid role")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")

// FounderProfile holds the fields populated when Role == RoleFounder.
type FounderProfile struct {
	CompanyName        string  `json:"company_name"`
	Industry           string  `json:"industry"`
	FundingStage       string  `json:"funding_stage"`
	FundingGoal        float64 `json:"funding_goal,omitempty"`
	CompanyDescription string  `json:"company_description,omitempty"`
	PitchDeck          string  `json:"pitch_deck,omitempty"`
}

// FundraisingProProfile holds the fields populated when Role == RoleFundraisingPro.
type FundraisingProProfile struct {
	Specialties        []string `json:"specialties"`
	Experience         string   `json:"experience"`
	SuccessfulRaises   int      `json:"successful_raises,omitempty"`
	AverageRaiseAmount float64  `json:"average_raise_amount,omitempty"`
	Bio                string   `json:"bio,omitempty"`
}

// User models an account in the CRM. Role selects which of the two variant
// profiles is non-nil: founders carry Founder, fundraising pros carry Pro,
// admins carry neither. Construct through NewFounder / NewFundraisingPro so
// the variant invariant holds.
type User struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	Role           Role                   `json:"role"`
	ProfilePicture string                 `json:"profile_picture,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	PasswordHash   string                 `json:"-"`
	Founder        *FounderProfile        `json:"founder,omitempty"`
	Pro            *FundraisingProProfile `json:"fundraising_pro,omitempty"`
}

// NewFounder builds a founder-role user, defaulting omitted profile fields to
// their zero values so partial signup input is completed rather than rejected.
func NewFounder(id, name, email string, createdAt time.Time, profile FounderProfile) *User {
	return &User{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      RoleFounder,
		CreatedAt: createdAt,
		Founder:   &profile,
	}
}

// NewFundraisingPro builds a fundraising-pro-role user. A nil Specialties
// slice is normalised to an empty one so the field always serialises as a
// JSON array.
func NewFundraisingPro(id, name, email string, createdAt time.Time, profile FundraisingProProfile) *User {
	if profile.Specialties == nil {
		profile.Specialties = []string{}
	}
	return &User{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      RoleFundraisingPro,
		CreatedAt: createdAt,
		Pro:       &profile,
	}
}

// consistent reports whether the variant pointers agree with the role.
func (u *User) consistent() bool {
	switch u.Role {
	case RoleFounder:
		return u.Founder != nil && u.Pro == nil
	case RoleFundraisingPro:
		return u.Pro != nil && u.Founder == nil
	case RoleAdmin:
		return u.Founder == nil && u.Pro == nil
	}
	return false
}
