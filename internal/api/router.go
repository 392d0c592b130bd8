package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/hourlog/timetracking-system/docs"
	"github.com/hourlog/timetracking-system/internal/api/handler"
	"github.com/hourlog/timetracking-system/internal/api/middleware"
	"github.com/hourlog/timetracking-system/internal/core/service"
	mongodb "github.com/hourlog/timetracking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/hourlog/timetracking-system/internal/infrastructure/db/redis"
)

// Options carries the router's external dependencies and settings.
type Options struct {
	Mongo  *mongo.Database
	Redis  *redis.Client
	Tokens *service.TokenIssuer
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("timetracker"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(opts.Mongo)
	clientRepo := mongodb.NewClientRepository(opts.Mongo)
	entryRepo := mongodb.NewEntryRepository(opts.Mongo)
	dedup := redisdb.NewDedupChecker(opts.Redis)

	authService := service.NewAuthService(userRepo, opts.Tokens)
	trackingService := service.NewTrackingService(clientRepo, entryRepo, dedup, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(trackingService)
	entryHandler := handler.NewEntryHandler(trackingService)
	authRequired := middleware.Auth(opts.Tokens, userRepo)

	// --- Auth routes (the only operations reachable unauthenticated) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	clients := e.Group("/clients", authRequired)
	clients.GET("", clientHandler.List)
	clients.POST("", clientHandler.Create)
	clients.DELETE("/:id", clientHandler.Delete)
	clients.GET("/:id/entries", entryHandler.List)
	clients.POST("/:id/entries", entryHandler.Create)
	clients.DELETE("/:id/entries/:entry_id", entryHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.Mongo, opts.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
