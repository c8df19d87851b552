// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cardHTTP "github.com/allisson/cardengine/internal/card/http"
	"github.com/allisson/cardengine/internal/config"
	"github.com/allisson/cardengine/internal/httputil"
	"github.com/allisson/cardengine/internal/metrics"
)

// Server represents the HTTP server
type Server struct {
	server       *http.Server
	router       *gin.Engine
	logger       *slog.Logger
	shuttingDown atomic.Bool
}

// NewServer creates a new HTTP server
func NewServer(
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		logger: logger,
		server: newHTTPServer(host, port, nil),
	}
}

// SetupRouter registers middleware and routes. The rate limiter cleanup goroutine
// stops when ctx is done.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	cardHandler *cardHTTP.CardHandler,
	metricsProvider *metrics.Provider,
) {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	router.NoRoute(func(c *gin.Context) {
		httputil.HandleErrorGin(c, httputil.ErrRouteNotFound, nil)
	})

	v1 := router.Group("/v1")
	cards := v1.Group("/cards")
	if cfg.RateLimitEnabled {
		cards.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	{
		cards.GET("/validate/:number", cardHandler.ValidatePathHandler)
		cards.POST("/validate", cardHandler.ValidateHandler)
		cards.GET("/classify/:number", cardHandler.ClassifyHandler)
		cards.GET("/generate/:prefix", cardHandler.GeneratePathHandler)
		cards.GET("/generate/:prefix/batch", cardHandler.GenerateBatchHandler)
		cards.POST("/generate", cardHandler.GenerateHandler)
	}

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	if s.server.Handler == nil {
		s.server.Handler = s.router
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.shuttingDown.Store(true)
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can take card requests.
// Returns 503 once shutdown has begun.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.shuttingDown.Load() {
		components["server"] = "shutting_down"
		ready = false
	} else {
		components["server"] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
