package demo

import (
	"time"

	"github.com/connectcapital/investor-crm/internal/core/domain"
)

// Investors returns the starter pipeline seeded for the given owner. Each
// call returns fresh copies so callers can mutate freely.
func Investors(ownerID string) []*domain.Investor {
	created := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	return []*domain.Investor{
		{
			ID:                     ownerID + "-101",
			OwnerID:                ownerID,
			Name:                   "Alex Chen",
			Firm:                   "Horizon Ventures",
			Email:                  "alex@horizonvc.com",
			LinkedInURL:            "https://linkedin.com/in/alexchen",
			InvestmentFocus:        []string{"SaaS", "AI", "FinTech"},
			FundingStagePreference: []string{"Seed", "Series A"},
			Location:               "San Francisco, CA",
			CheckSize:              domain.CheckRange{Min: 250_000, Max: 2_000_000},
			PortfolioCompanies:     []string{"Stripe", "Notion", "Figma"},
			Tags:                   []string{"quick-response", "technical-background"},
			Status:                 domain.StatusResearched,
			CreatedAt:              created,
			ContactHistory:         []domain.ContactRecord{},
		},
		{
			ID:                     ownerID + "-102",
			OwnerID:                ownerID,
			Name:                   "Priya Sharma",
			Firm:                   "BlueSky Capital",
			Email:                  "priya@blueskycap.com",
			LinkedInURL:            "https://linkedin.com/in/priyasharma",
			InvestmentFocus:        []string{"HealthTech", "BioTech"},
			FundingStagePreference: []string{"Series A", "Series B"},
			Location:               "Boston, MA",
			CheckSize:              domain.CheckRange{Min: 1_000_000, Max: 5_000_000},
			PortfolioCompanies:     []string{"ModernHealth", "GenomicDx"},
			Tags:                   []string{"healthcare-specialist"},
			Status:                 domain.StatusContacted,
			CreatedAt:              created,
			ContactHistory:         []domain.ContactRecord{},
		},
		{
			ID:                     ownerID + "-103",
			OwnerID:                ownerID,
			Name:                   "Marcus Johnson",
			Firm:                   "Redwood Partners",
			Email:                  "marcus@redwoodpartners.com",
			LinkedInURL:            "https://linkedin.com/in/marcusjohnson",
			InvestmentFocus:        []string{"CleanTech", "Sustainability"},
			FundingStagePreference: []string{"Seed", "Series A", "Series B"},
			Location:               "New York, NY",
			CheckSize:              domain.CheckRange{Min: 500_000, Max: 7_000_000},
			Status:                 domain.StatusMeeting,
			CreatedAt:              created,
			ContactHistory:         []domain.ContactRecord{},
		},
		{
			ID:                     ownerID + "-104",
			OwnerID:                ownerID,
			Name:                   "Emma Wilson",
			Firm:                   "Foundation Capital",
			Email:                  "emma@foundationcap.com",
			LinkedInURL:            "https://linkedin.com/in/emmawilson",
			InvestmentFocus:        []string{"E-commerce", "Consumer Tech", "Marketplaces"},
			FundingStagePreference: []string{"Seed"},
			Location:               "Los Angeles, CA",
			CheckSize:              domain.CheckRange{Min: 100_000, Max: 1_500_000},
			Status:                 domain.StatusFollowingUp,
			CreatedAt:              created,
			ContactHistory:         []domain.ContactRecord{},
		},
		{
			ID:                     ownerID + "-105",
			OwnerID:                ownerID,
			Name:                   "David Kim",
			Firm:                   "Ascend Ventures",
			Email:                  "david@ascendvc.com",
			LinkedInURL:            "https://linkedin.com/in/davidkim",
			InvestmentFocus:        []string{"EdTech", "Future of Work", "SaaS"},
			FundingStagePreference: []string{"Series A"},
			Location:               "Chicago, IL",
			CheckSize:              domain.CheckRange{Min: 750_000, Max: 3_000_000},
			Status:                 domain.StatusInterested,
			CreatedAt:              created,
			ContactHistory:         []domain.ContactRecord{},
		},
		{
			ID:                     ownerID + "-106",
			OwnerID:                ownerID,
			Name:                   "Sarah Martinez",
			Firm:                   "Innovative Fund",
			Email:                  "sarah@innovative.vc",
			LinkedInURL:            "https://linkedin.com/in/sarahmartinez",
			InvestmentFocus:        []string{"AI", "ML", "Data Analytics"},
			FundingStagePreference: []string{"Seed", "Series A"},
			Location:               "Austin, TX",
			CheckSize:              domain.CheckRange{Min: 200_000, Max: 2_500_000},
			Status:                 domain.StatusPassed,
			CreatedAt:              created,
			ContactHistory:         []domain.ContactRecord{},
		},
	}
}
