// Package server provides the HTTP REST API for cleaned workforce data and reports.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/jonathan/hr-analytics/internal/db"
	"github.com/jonathan/hr-analytics/internal/types"
)

// EmployeeSource supplies the cleaned snapshot the API serves.
// *db.DB satisfies it; tests use an in-memory stub.
type EmployeeSource interface {
	LoadEmployees(ctx context.Context) ([]types.Employee, error)
	LatestRun(ctx context.Context) (*db.CleaningRun, error)
}

// Config holds server configuration
type Config struct {
	Addr string
	AsOf time.Time
}

// Server represents the HTTP server
type Server struct {
	echo   *echo.Echo
	source EmployeeSource
	logger *zap.Logger
	addr   string
	asOf   time.Time
}

// New creates a new server instance backed by the given source.
func New(cfg Config, source EmployeeSource, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.AsOf.IsZero() {
		cfg.AsOf = time.Now().UTC().Truncate(24 * time.Hour)
	}

	s := &Server{
		source: source,
		logger: logger,
		addr:   cfg.Addr,
		asOf:   cfg.AsOf,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
			)
			return err
		},
	}))
	e.Use(s.requestLogger)

	e.GET("/health", s.handleHealth)

	api := e.Group("/api/v1")
	api.GET("/reports", s.handleListReports)
	api.GET("/reports/:name", s.handleGetReport)
	api.GET("/employees", s.handleListEmployees)
	api.GET("/runs/latest", s.handleLatestRun)

	s.echo = e
	return s
}

// Handler exposes the underlying HTTP handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start begins listening for requests and blocks until interrupted.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.addr))
		if err := s.echo.Start(s.addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	s.logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.echo.Shutdown(ctx)
}

// requestLogger logs each request with method, path, status and latency.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		s.logger.Info("request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}

// handleHealth returns server health status
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
