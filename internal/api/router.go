package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cbhud/trackrig/internal/api/handler"
	"github.com/cbhud/trackrig/internal/api/middleware"
	"github.com/cbhud/trackrig/internal/core/domain"
	"github.com/cbhud/trackrig/internal/core/ports"
	"github.com/cbhud/trackrig/internal/core/service"
	"github.com/cbhud/trackrig/internal/core/token"
)

// Dependencies carries everything the router needs wired in.
type Dependencies struct {
	Users        ports.UserRepository
	Components   ports.ComponentRepository
	Workstations ports.WorkstationRepository
	Maintenance  ports.MaintenanceRepository
	Codec        *token.Codec
	LoginLimiter ports.LoginLimiter // optional
	Log          zerolog.Logger

	// Raw connections, used only by the readiness probe. Either may be nil
	// (in tests); the probe route is registered only when both are present.
	Mongo *mongo.Database
	Redis *redis.Client
}

// accessPolicy is the route-level rule table. OPTIONS preflights are always
// public; unmatched paths require authentication.
func accessPolicy() *middleware.Policy {
	return middleware.NewPolicy(
		middleware.Rule{Prefix: "/api/auth/", Access: middleware.Public},
		middleware.Rule{Prefix: "/health", Access: middleware.Public},
		middleware.Rule{Method: http.MethodGet, Prefix: "/metrics", Access: middleware.Public},
		middleware.Rule{Prefix: "/api/", Access: middleware.AuthenticatedOnly},
	)
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// HTTP metrics get a registry per router instance so building several
	// routers in one process never collides on collector registration. The
	// /metrics endpoint gathers this registry plus the default one, which
	// holds the counters from the metrics package.
	httpMetrics := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "trackrig",
		Registerer: httpMetrics,
	}))

	// CORS runs before authentication so preflights never hit the token
	// path. The settings mirror the browser clients this API serves.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	policy := accessPolicy()
	e.Use(middleware.Authenticate(deps.Codec, deps.Users, policy))

	// --- Services and handlers ---
	authService := service.NewAuthService(deps.Users, deps.Codec, deps.LoginLimiter)
	componentService := service.NewComponentService(deps.Components, deps.Workstations)
	workstationService := service.NewWorkstationService(deps.Workstations)
	maintenanceService := service.NewMaintenanceService(deps.Maintenance, deps.Workstations)

	authHandler := handler.NewAuthHandler(authService)
	componentHandler := handler.NewComponentHandler(componentService)
	workstationHandler := handler.NewWorkstationHandler(workstationService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)

	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes (public per policy) ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Protected routes ---
	e.GET("/api/me", authHandler.Me)

	e.POST("/api/components", componentHandler.Create)
	e.GET("/api/components", componentHandler.List)
	e.GET("/api/components/:id", componentHandler.Get)
	e.PATCH("/api/components/:id", componentHandler.Update)
	e.DELETE("/api/components/:id", componentHandler.Delete, adminOnly)
	e.POST("/api/components/:id/assign", componentHandler.Assign)
	e.DELETE("/api/components/:id/assign", componentHandler.Unassign)

	e.POST("/api/workstations", workstationHandler.Create)
	e.GET("/api/workstations", workstationHandler.List)
	e.GET("/api/workstations/:id", workstationHandler.Get)
	e.PATCH("/api/workstations/:id", workstationHandler.Update)
	e.DELETE("/api/workstations/:id", workstationHandler.Delete, adminOnly)

	e.POST("/api/maintenance", maintenanceHandler.Record)
	e.GET("/api/maintenance", maintenanceHandler.List)
	e.GET("/api/maintenance/workstation/:id", maintenanceHandler.ListByWorkstation)

	// --- Health probes and metrics (public per policy) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	if deps.Mongo != nil && deps.Redis != nil {
		e.GET("/health/ready", handler.NewReadinessHandler(deps.Mongo, deps.Redis).Readiness)
	}
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{httpMetrics, prometheus.DefaultGatherer},
	}))

	return e
}
