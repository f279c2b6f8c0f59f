package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/v2/mongo"

	_ "github.com/connectcapital/investor-crm/docs" // swagger docs

	"github.com/connectcapital/investor-crm/internal/api/handler"
	"github.com/connectcapital/investor-crm/internal/api/middleware"
	"github.com/connectcapital/investor-crm/internal/auth"
	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/core/service"
	mongodb "github.com/connectcapital/investor-crm/internal/infrastructure/db/mongo"
	"github.com/connectcapital/investor-crm/internal/session"
)

// Deps carries the long-lived dependencies the router wires handlers onto.
// Anything with its own lifecycle (connections, the dispatcher, the session
// provider) is constructed and started by the caller.
type Deps struct {
	DB         *mongo.Database
	Redis      *redis.Client
	Provider   *session.Provider
	Dispatcher handler.OutreachDispatcher
	Tokens     *auth.TokenManager
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("investorcrm"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Repositories and services ---
	investorRepo := mongodb.NewInvestorRepository(d.DB)
	bucket, err := mongodb.NewUploadsBucket(d.DB)
	if err != nil {
		return nil, err
	}
	profileRepo := mongodb.NewProfileRepository(d.DB, bucket)

	investorService := service.NewInvestorService(investorRepo, d.Log)
	dashboardService := service.NewDashboardService(investorRepo, d.Log)
	profileService := service.NewProfileService(profileRepo, d.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Provider, d.Tokens)
	investorHandler := handler.NewInvestorHandler(investorService)
	outreachHandler := handler.NewOutreachHandler(d.Dispatcher)
	profileHandler := handler.NewProfileHandler(profileService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	seedHandler := handler.NewSeedHandler(investorRepo)
	filesHandler := handler.NewFilesHandler(bucket)

	// --- Auth routes (public) ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.DB, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Uploaded assets (public, unguessable IDs) ---
	e.GET("/v1/files/:id", filesHandler.Download)

	// --- Session-guarded routes (single-session demo flow) ---
	me := e.Group("/v1/me", middleware.SessionGuard(d.Provider))
	me.GET("", authHandler.Me)

	// --- Token-guarded API ---
	v1 := e.Group("/v1",
		middleware.Auth(d.Tokens),
		middleware.RBAC(domain.RoleFounder, domain.RoleFundraisingPro, domain.RoleAdmin),
	)

	v1.POST("/investors", investorHandler.Create)
	v1.GET("/investors", investorHandler.List)
	v1.GET("/investors/:id", investorHandler.Get)

	v1.POST("/outreach/events", outreachHandler.Receive)
	v1.POST("/outreach/events/batch", outreachHandler.ReceiveBatch)

	v1.GET("/profile", profileHandler.Get)
	v1.PATCH("/profile", profileHandler.Update)
	v1.POST("/profile/picture", profileHandler.UploadPicture)
	v1.DELETE("/profile", profileHandler.Delete)

	v1.GET("/dashboard/pipeline", dashboardHandler.Pipeline)

	v1.POST("/seed/demo", seedHandler.SeedDemo)

	return e, nil
}
