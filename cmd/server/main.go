package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/connectcapital/investor-crm/internal/api"
	"github.com/connectcapital/investor-crm/internal/auth"
	"github.com/connectcapital/investor-crm/internal/core/service"
	"github.com/connectcapital/investor-crm/internal/infrastructure/config"
	mongodb "github.com/connectcapital/investor-crm/internal/infrastructure/db/mongo"
	redisdb "github.com/connectcapital/investor-crm/internal/infrastructure/db/redis"
	"github.com/connectcapital/investor-crm/internal/infrastructure/demo"
	"github.com/connectcapital/investor-crm/internal/infrastructure/queue"
	"github.com/connectcapital/investor-crm/internal/session"
	"github.com/connectcapital/investor-crm/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title ConnectCapital Investor CRM API
// @version 1.0
// @description Investor outreach CRM with session auth, pipeline tracking, and contact event ingestion.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	investorRepo := mongodb.NewInvestorRepository(db)
	if err := investorRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Session stack ---
	sessionRepo := redisdb.NewSessionRepository(rdb)
	credentials := demo.NewCredentialStore()
	sessionService := service.NewSessionService(
		credentials,
		sessionRepo,
		time.Duration(cfg.LoginDelayMs)*time.Millisecond,
		log,
	)
	provider := session.NewProvider(sessionService, log)
	provider.Start(ctx)

	// --- Outreach pipeline ---
	dedup := redisdb.NewDedupChecker(rdb)
	outreachService := service.NewOutreachService(investorRepo, dedup, log)
	dispatcher := queue.NewDispatcher(cfg.Workers, outreachService, log)
	dispatcher.Start(ctx)

	tokens := auth.NewTokenManager(cfg.JWTSecret, 24*time.Hour)

	e, err := api.NewRouter(api.Deps{
		DB:         db,
		Redis:      rdb,
		Provider:   provider,
		Dispatcher: dispatcher,
		Tokens:     tokens,
		Log:        log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
