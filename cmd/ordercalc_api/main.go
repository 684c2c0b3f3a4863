package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/DjordjeVuckovic/ordercalc/internal/expr"
	"github.com/DjordjeVuckovic/ordercalc/internal/router"
	"github.com/DjordjeVuckovic/ordercalc/internal/server"
	"github.com/DjordjeVuckovic/ordercalc/internal/worksheet"
	pkgserver "github.com/DjordjeVuckovic/ordercalc/pkg/server"
	"github.com/labstack/echo/v4"
)

// probe is evaluated on every health check; it exercises both regimes.
const (
	probeExpression    = "2 * 3 + (4 * 5)"
	probeSequential    = 26
	probeAdditionFirst = 46
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	evaluators, err := expr.NewSet(expr.AllRegimes, expr.WithMaxDepth(cfg.MaxDepth))
	if err != nil {
		slog.Error("Failed to create evaluators", "error", err)
		os.Exit(1)
	}

	solver, err := worksheet.New(worksheet.Config{
		Regimes:  expr.AllRegimes,
		OnError:  worksheet.Skip,
		MaxDepth: cfg.MaxDepth,
	})
	if err != nil {
		slog.Error("Failed to create worksheet solver", "error", err)
		os.Exit(1)
	}

	health := pkgserver.NewProbeHealthChecker("self-test", selfTest(evaluators))

	s := server.New(cfg.Server, health).
		SetupMiddlewares().
		SetupHealthChecks()

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ordercalc API is running")
	})

	router.NewEvalRouter(s.Echo, evaluators, solver).Bind()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func selfTest(evaluators []expr.Evaluator) func(ctx context.Context) error {
	want := map[expr.Regime]int64{
		expr.Sequential:    probeSequential,
		expr.AdditionFirst: probeAdditionFirst,
	}

	return func(ctx context.Context) error {
		for _, ev := range evaluators {
			got, err := expr.EvaluateLine(ev, probeExpression)
			if err != nil {
				return fmt.Errorf("%s: %w", ev.Regime(), err)
			}
			if got != want[ev.Regime()] {
				return fmt.Errorf("%s: %q = %d, want %d", ev.Regime(), probeExpression, got, want[ev.Regime()])
			}
		}
		return nil
	}
}
