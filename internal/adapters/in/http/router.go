package http

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig wires the router. Doc, Idempotency and Readiness are optional.
type RouterConfig struct {
	Server      *Server
	JWTSecret   string
	Log         zerolog.Logger
	Doc         *APIDoc
	Idempotency IdempotencyStore
	Readiness   map[string]Pinger
	// Registry receives the HTTP request metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	// --- Global middleware ---
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(cfg.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "backoffice",
		Registerer: registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", Liveness)
	e.GET("/health/ready", Readiness(cfg.Readiness))
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, registry},
	}))
	if cfg.Doc != nil {
		cfg.Doc.register()
		e.GET("/openapi.json", cfg.Doc.ServeJSON)
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	// --- API ---
	s := cfg.Server
	v2 := e.Group("/v2", Auth(cfg.JWTSecret))

	v2.GET("/shipments", s.ListShipments)
	v2.POST("/shipments", s.CreateShipment)
	v2.GET("/shipments/:id", s.GetShipment)
	v2.PUT("/shipments/:id", s.UpdateShipment)
	v2.DELETE("/shipments/:id", s.DeleteShipment)

	v2.POST("/overpacks", s.CreateOverpack)
	v2.GET("/overpacks/:id", s.GetOverpack)
	v2.PUT("/overpacks/:id", s.UpdateOverpack)
	v2.PATCH("/overpacks/:id", s.PatchOverpack)
	v2.DELETE("/overpacks/:id", s.DeleteOverpack)

	v2.POST("/manifests", s.CreateManifest, Idempotent(cfg.Idempotency, cfg.Log))
	v2.GET("/manifests/:id", s.GetManifest)

	v2.GET("/orders", s.ListOrders)
	v2.POST("/orders", s.CreateOrder)
	v2.PATCH("/orders/status", s.PatchOrderStatuses)
	v2.GET("/orders/:id", s.GetOrder)
	v2.PUT("/orders/:id", s.UpdateOrder)
	v2.DELETE("/orders/:id", s.DeleteOrder)

	return e
}
