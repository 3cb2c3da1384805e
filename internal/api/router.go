package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopfront/storefront-api/internal/api/handler"
	"github.com/shopfront/storefront-api/internal/api/middleware"
	"github.com/shopfront/storefront-api/internal/core/service"
	"github.com/shopfront/storefront-api/internal/infrastructure/config"
	mongodb "github.com/shopfront/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shopfront/storefront-api/internal/infrastructure/db/redis"
	"github.com/shopfront/storefront-api/internal/infrastructure/http/handlers"
	"github.com/shopfront/storefront-api/internal/infrastructure/notify"
	"github.com/shopfront/storefront-api/internal/infrastructure/queue"
	"github.com/shopfront/storefront-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// ctx bounds the lifetime of the background notification workers.
func NewRouter(ctx context.Context, cfg *config.Config, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	resetRepo := mongodb.NewResetTokenRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.SessionTTL)
	cartRepo := redisdb.NewCartRepository(rdb)

	mailer := notify.NewLogMailer(log)
	dispatcher := queue.NewDispatcher(0, mailer, log)
	dispatcher.Start(ctx)

	sessionService := service.NewSessionService(userRepo, sessionStore, cfg.SessionSecret, cfg.SessionTTL, log)
	resetService := service.NewPasswordResetService(userRepo, resetRepo, dispatcher, cfg.ResetTokenTTL, log)
	catalogService := service.NewCatalogService(catalogRepo, log)
	cartService := service.NewCartService(catalogRepo, cartRepo, log)

	authHandler := handler.NewAuthHandler(sessionService, cfg.SessionTTL, cfg.IsProduction())
	resetHandler := handler.NewResetHandler(resetService, cfg.IsProduction())
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	adminHandler := handler.NewAdminHandler()

	// --- Identity & recovery routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)
	e.POST("/auth/password-reset/request", resetHandler.Request)
	e.POST("/auth/password-reset/redeem", resetHandler.Redeem)

	// --- Storefront routes ---
	e.GET("/pages", catalogHandler.ListPages)
	e.GET("/pages/:slug", catalogHandler.GetPage)
	e.GET("/products/:slug", catalogHandler.GetProduct)
	e.POST("/cart/items", cartHandler.AddItem)
	e.GET("/cart", cartHandler.Get)

	// --- Admin routes (session + access gates) ---
	admin := e.Group("/admin", middleware.Session(sessionService))
	admin.GET("/dashboard", adminHandler.Dashboard, middleware.Gate(service.CanAccessDashboard))
	admin.GET("/settings", adminHandler.Settings, middleware.Gate(service.CanAccessSettings))

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
