package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/ordercalc/internal/apperr"
	"github.com/DjordjeVuckovic/ordercalc/internal/expr"
	"github.com/DjordjeVuckovic/ordercalc/internal/report"
	"github.com/DjordjeVuckovic/ordercalc/internal/suite"
	"github.com/DjordjeVuckovic/ordercalc/internal/worksheet"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	cfg, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level, err := cfg.slogLevel()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		return 2
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	regimes, err := cfg.regimes()
	if err != nil {
		slog.Error("Invalid regime", "error", err)
		return 2
	}

	switch cfg.Mode {
	case "solve":
		return runSolve(ctx, cfg, regimes)
	case "check":
		return runCheck(cfg, regimes)
	default:
		slog.Error("Unknown mode", "mode", cfg.Mode)
		return 2
	}
}

func runSolve(ctx context.Context, cfg cliConfig, regimes []expr.Regime) int {
	policy, err := cfg.errorPolicy()
	if err != nil {
		slog.Error("Invalid error policy", "error", err)
		return 2
	}

	solver, err := worksheet.New(worksheet.Config{
		Regimes:  regimes,
		OnError:  policy,
		MaxDepth: cfg.MaxDepth,
	})
	if err != nil {
		slog.Error("Failed to create solver", "error", err)
		return 1
	}

	res, err := solver.SolveFile(ctx, cfg.InputPath)
	if err != nil {
		var missing *apperr.MissingInputError
		if errors.As(err, &missing) {
			slog.Error("Input file not found", "path", cfg.InputPath)
			return 1
		}
		slog.Error("Failed to solve worksheet", "path", cfg.InputPath, "error", err)
		return 1
	}

	rpt := report.FromWorksheet(res, cfg.Verbose)
	rpt.WriteTable(os.Stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(rpt, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			return 1
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	return 0
}

func runCheck(cfg cliConfig, regimes []expr.Regime) int {
	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		return 1
	}

	var opts []expr.Option
	if cfg.MaxDepth != 0 {
		opts = append(opts, expr.WithMaxDepth(cfg.MaxDepth))
	}
	evs, err := expr.NewSet(regimes, opts...)
	if err != nil {
		slog.Error("Failed to create evaluators", "error", err)
		return 1
	}

	results := suite.Check(s, evs)
	rpt := report.FromSuite(s, results)
	rpt.WriteTable(os.Stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(rpt, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			return 1
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if rpt.Failed > 0 {
		return 1
	}
	return 0
}
