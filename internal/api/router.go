package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodytravelers/booking/internal/api/handler"
	"github.com/foodytravelers/booking/internal/api/middleware"
	"github.com/foodytravelers/booking/internal/api/view"
	"github.com/foodytravelers/booking/internal/core/service"
	"github.com/foodytravelers/booking/internal/infrastructure/config"
	mongodb "github.com/foodytravelers/booking/internal/infrastructure/db/mongo"
	redisdb "github.com/foodytravelers/booking/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("build renderer: %w", err)
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("foody"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	ticketRepo := mongodb.NewTicketRepository(db)
	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL)
	authService := service.NewAuthService(userRepo, issuer)
	ticketService := service.NewTicketService(ticketRepo)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.LoginMaxAttempts, cfg.LoginWindow)

	authHandler := handler.NewAuthHandler(authService, ticketService, throttle, issuer.TTL())
	ticketHandler := handler.NewTicketHandler(ticketService)
	siteHandler := handler.NewSiteHandler()

	// Resolve the session cookie on every request; public pages render
	// differently for known users, so this is global rather than per-group.
	e.Use(middleware.Session(authService))

	// --- Public pages ---
	e.GET("/", siteHandler.Home)
	e.GET("/about", siteHandler.About)
	e.GET("/services", siteHandler.Services)
	e.GET("/contact", siteHandler.Contact)

	// --- Auth routes ---
	user := e.Group("/user")
	user.POST("/signup", authHandler.Signup)
	user.GET("/login", authHandler.LoginPage)
	user.POST("/login", authHandler.Login)

	guarded := user.Group("", middleware.RequireUser())
	guarded.GET("/logout", authHandler.Logout)
	guarded.GET("/account", authHandler.Account)
	guarded.GET("/secret", authHandler.Secret)

	// --- Ticket routes (login required) ---
	tickets := e.Group("/tickets", middleware.RequireUser())
	tickets.GET("", ticketHandler.List)
	tickets.POST("", ticketHandler.Create)
	tickets.GET("/:id", ticketHandler.Show)
	tickets.POST("/:id/cancel", ticketHandler.Cancel)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
