// Package server provides the HTTP API with routing and lifecycle management.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/travelpal/travelpal/internal/auth"
	"github.com/travelpal/travelpal/internal/concierge"
	"github.com/travelpal/travelpal/internal/geo"
	"github.com/travelpal/travelpal/internal/metrics"
	"github.com/travelpal/travelpal/internal/models"
)

// Conversing runs one conversational turn.
type Conversing interface {
	Converse(ctx context.Context, message string, history []models.Turn, prefs models.Preferences) (*concierge.Result, error)
}

// Options configures the HTTP server.
type Options struct {
	AllowedOrigin string
	DevMode       bool
	RequireAuth   bool
	HotelRadiusM  int
}

// Server wires handlers, middleware and dependencies.
type Server struct {
	echo        *echo.Echo
	auth        *auth.Service
	tokens      *auth.TokenIssuer
	concierge   Conversing
	hotels      concierge.HotelFinder
	metrics     *metrics.Collector
	logger      *slog.Logger
	devMode     bool
	hotelRadius int
}

// New creates the HTTP server and registers all routes.
func New(authSvc *auth.Service, tokens *auth.TokenIssuer, conciergeSvc Conversing, hotels concierge.HotelFinder, collector *metrics.Collector, logger *slog.Logger, opts Options) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.HotelRadiusM == 0 {
		opts.HotelRadiusM = geo.DefaultHotelRadius
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:        e,
		auth:        authSvc,
		tokens:      tokens,
		concierge:   conciergeSvc,
		hotels:      hotels,
		metrics:     collector,
		logger:      logger,
		devMode:     opts.DevMode,
		hotelRadius: opts.HotelRadiusM,
	}

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{opts.AllowedOrigin},
		AllowCredentials: true,
	}))

	api := e.Group("/api")
	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)
	api.GET("/health", s.handleHealth)
	api.GET("/stats", s.handleStats)

	// Session tokens are bearer credentials; enforcement is opt-in so the
	// API stays usable without the auth flow during development.
	protected := api.Group("")
	if opts.RequireAuth {
		protected.Use(RequireToken(tokens))
	}
	protected.POST("/chat", s.handleChat)
	protected.GET("/hotels", s.handleHotels)

	return s
}

// Handler returns the root http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start begins serving on the given address and blocks.
func (s *Server) Start(addr string) error {
	s.logger.Info("starting HTTP server", "addr", addr)

	s.echo.Server.ReadTimeout = 5 * time.Second
	// Long write timeout: chat turns block on the generative model.
	s.echo.Server.WriteTimeout = 60 * time.Second
	s.echo.Server.IdleTimeout = 120 * time.Second

	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
