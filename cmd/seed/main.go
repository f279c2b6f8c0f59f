// Seeds the demo dataset: fixture investors for each demo account, plus
// starter profiles. Safe to run repeatedly; existing records are skipped.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/infrastructure/config"
	mongodb "github.com/connectcapital/investor-crm/internal/infrastructure/db/mongo"
	"github.com/connectcapital/investor-crm/internal/infrastructure/demo"
	"github.com/connectcapital/investor-crm/pkg/logger"
)

var demoEmails = []string{
	"john@startup.com",
	"jane@fundraiser.com",
	"sarah@ecotech.com",
	"michael@capitaladvisors.com",
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	investorRepo := mongodb.NewInvestorRepository(db)
	if err := investorRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	bucket, err := mongodb.NewUploadsBucket(db)
	if err != nil {
		log.Fatal().Err(err).Msg("uploads bucket failed")
	}
	profileRepo := mongodb.NewProfileRepository(db, bucket)

	credentials := demo.NewCredentialStore()

	var investorsSeeded, investorsSkipped, profilesSeeded int
	for _, email := range demoEmails {
		user, err := credentials.FindByEmail(ctx, email)
		if err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("demo fixture missing")
		}

		for _, inv := range demo.Investors(user.ID) {
			if err := investorRepo.Create(ctx, inv); err != nil {
				if errors.Is(err, domain.ErrDuplicateInvestor) {
					investorsSkipped++
					continue
				}
				log.Fatal().Err(err).Str("investor", inv.Name).Msg("seed failed")
			}
			investorsSeeded++
		}

		if err := profileRepo.Upsert(ctx, profileFor(user)); err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("profile seed failed")
		}
		profilesSeeded++
	}

	log.Info().
		Int("investors_seeded", investorsSeeded).
		Int("investors_skipped", investorsSkipped).
		Int("profiles_seeded", profilesSeeded).
		Msg("seed completed")
}

// profileFor derives a starter extended profile from the session user.
func profileFor(user *domain.User) *domain.ProfileData {
	p := &domain.ProfileData{
		UserID: user.ID,
		Role:   user.Role,
	}
	switch {
	case user.Founder != nil:
		p.StartupName = user.Founder.CompanyName
		p.Industry = []string{user.Founder.Industry}
		p.Stage = user.Founder.FundingStage
		p.FundingGoal = user.Founder.FundingGoal
		p.StartupDescription = user.Founder.CompanyDescription
	case user.Pro != nil:
		p.Focus = firstOrEmpty(user.Pro.Specialties)
		p.RaisingFor = "clients"
	}
	return p
}

func firstOrEmpty(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
