// Package demo holds the fixture data the CRM runs on when no real identity
// provider is wired: a fixed set of demo accounts and a starter investor
// pipeline.
package demo

import (
	"context"
	"time"

	"github.com/connectcapital/investor-crm/internal/core/domain"
)

// CredentialStore matches login attempts against the seeded demo accounts.
// Founders are scanned before fundraising pros; email comparison is an exact
// string match.
type CredentialStore struct {
	founders []*domain.User
	pros     []*domain.User
}

// NewCredentialStore returns a store seeded with the demo accounts.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{
		founders: demoFounders(),
		pros:     demoFundraisingPros(),
	}
}

func (s *CredentialStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, f := range s.founders {
		if f.Email == email {
			clone := *f
			return &clone, nil
		}
	}
	for _, p := range s.pros {
		if p.Email == email {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func demoFounders() []*domain.User {
	john := domain.NewFounder("1", "John Doe", "john@startup.com",
		time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		domain.FounderProfile{
			CompanyName:        "TechNova",
			Industry:           "SaaS",
			FundingStage:       "Seed",
			FundingGoal:        1_500_000,
			CompanyDescription: "AI-powered customer service platform",
		})
	john.ProfilePicture = "https://randomuser.me/api/portraits/men/1.jpg"

	sarah := domain.NewFounder("4", "Sarah Johnson", "sarah@ecotech.com",
		time.Date(2023, 3, 20, 0, 0, 0, 0, time.UTC),
		domain.FounderProfile{
			CompanyName:        "EcoTech Solutions",
			Industry:           "CleanTech",
			FundingStage:       "Series A",
			FundingGoal:        5_000_000,
			CompanyDescription: "Sustainable energy solutions for residential buildings",
		})
	sarah.ProfilePicture = "https://randomuser.me/api/portraits/women/2.jpg"

	return []*domain.User{john, sarah}
}

func demoFundraisingPros() []*domain.User {
	jane := domain.NewFundraisingPro("2", "Jane Smith", "jane@fundraiser.com",
		time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC),
		domain.FundraisingProProfile{
			Specialties:        []string{"SaaS", "FinTech", "Early Stage"},
			Experience:         "10+ years",
			SuccessfulRaises:   15,
			AverageRaiseAmount: 2_500_000,
			Bio:                "Specialized in helping early-stage startups secure seed and Series A funding",
		})
	jane.ProfilePicture = "https://randomuser.me/api/portraits/women/1.jpg"

	michael := domain.NewFundraisingPro("5", "Michael Brown", "michael@capitaladvisors.com",
		time.Date(2023, 1, 25, 0, 0, 0, 0, time.UTC),
		domain.FundraisingProProfile{
			Specialties:        []string{"BioTech", "HealthTech", "Growth Stage"},
			Experience:         "8 years",
			SuccessfulRaises:   12,
			AverageRaiseAmount: 7_500_000,
			Bio:                "Former VC with deep connections in the healthcare and biotech spaces",
		})
	michael.ProfilePicture = "https://randomuser.me/api/portraits/men/2.jpg"

	return []*domain.User{jane, michael}
}
