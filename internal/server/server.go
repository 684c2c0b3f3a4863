package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/DjordjeVuckovic/ordercalc/internal/apperr"
	mw "github.com/DjordjeVuckovic/ordercalc/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/ordercalc/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
	healthPath              = "/health"
)

type Server struct {
	Echo *echo.Echo

	cfg    *Config
	health pkgserver.HealthChecker
}

func New(cfg *Config, health pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.DisableHTTP2 = !cfg.UseHttp2
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()

	return &Server{
		Echo:   e,
		cfg:    cfg,
		health: health,
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(mw.Logger(mw.WithSkipper(func(c echo.Context) bool {
		return c.Path() == healthPath
	})))
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.BodyLimit(bodyLimit(s.cfg.MaxBodyBytes)))
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
	return s
}

func (s *Server) SetupHealthChecks() *Server {
	s.Echo.GET(healthPath, func(c echo.Context) error {
		if !s.health.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "port", s.cfg.Port)
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutdown started")
	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	return s.Echo.Shutdown(ctx)
}

func bodyLimit(n int64) string {
	if n <= 0 {
		return "1M"
	}
	return strconv.FormatInt(n, 10)
}
