// Package api wires the HTTP surface: routes, middleware composition, and the
// translation of domain errors into the canonical response envelope.
package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/userhub/identity-api/internal/api/handler"
	"github.com/userhub/identity-api/internal/api/metrics"
	"github.com/userhub/identity-api/internal/api/middleware"
	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/ports"
)

// RouterConfig carries everything the router needs; all collaborators are
// constructed at startup and injected explicitly.
type RouterConfig struct {
	AppName      string
	APIPrefix    string
	CORSOrigins  []string
	DB           *mongo.Database
	Users        ports.UserRepository
	Tokens       ports.TokenCodec
	AuthService  ports.AuthService
	UserService  ports.UserService
	Logger       zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered. Protected
// routes compose the authorization guard per group: /auth/me admits any
// authenticated user, /users requires the ADMIN role.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	// Each router owns its registry so side-by-side instances never collide
	// on collector registration.
	registry := prometheus.NewRegistry()
	metrics.Register(registry)
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "identity",
		Registerer: registry,
	}))

	authHandler := handler.NewAuthHandler(cfg.AuthService)
	userHandler := handler.NewUserHandler(cfg.UserService)
	healthHandler := handler.NewHealthHandler(cfg.DB)

	// --- API routes under the configurable prefix ---
	root := e.Group(cfg.APIPrefix)

	auth := root.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, middleware.Authenticated(cfg.Tokens, cfg.Users, domain.RoleUser))

	users := root.Group("/users", middleware.Authenticated(cfg.Tokens, cfg.Users, domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)

	// --- Unprefixed operational endpoints ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to " + cfg.AppName})
	})
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: registry}))
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
