package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/ordercalc/internal/expr"
	"github.com/DjordjeVuckovic/ordercalc/internal/worksheet"
	"github.com/DjordjeVuckovic/ordercalc/pkg/config/env"
)

type cliConfig struct {
	Mode      string
	InputPath string
	SuitePath string
	Regime    string
	OnError   string
	MaxDepth  int
	Verbose   bool
	Output    string
	LogLevel  string
}

// parseFlags reads defaults from the environment (optionally via .env) and lets flags override them.
func parseFlags(args []string) (cliConfig, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/ordercalc/.env"); err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	cfg := cliConfig{}
	fs := flag.NewFlagSet("ordercalc", flag.ContinueOnError)

	fs.StringVar(&cfg.Mode, "mode", "solve", "Run mode: solve or check")
	fs.StringVar(&cfg.InputPath, "input", env.String("ORDERCALC_INPUT", "input.txt"), "Path to the expression file (solve mode)")
	fs.StringVar(&cfg.SuitePath, "suite", env.String("ORDERCALC_SUITE", "configs/suite/operation_order.yaml"), "Path to the example suite YAML (check mode)")
	fs.StringVar(&cfg.Regime, "regime", "both", "Precedence regime: a (sequential), b (addition-first) or both")
	fs.StringVar(&cfg.OnError, "on-error", env.String("ORDERCALC_ON_ERROR", string(worksheet.Abort)), "What to do with a bad line: abort or skip")
	fs.IntVar(&cfg.MaxDepth, "max-depth", env.Int("ORDERCALC_MAX_DEPTH", expr.DefaultMaxDepth), "Maximum parenthesis nesting, negative for no limit")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Print the value of every line")
	fs.StringVar(&cfg.Output, "output", "", "Optional path for a JSON report")
	fs.StringVar(&cfg.LogLevel, "log-level", env.String("LOG_LEVEL", "info"), "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	return cfg, nil
}

func (c cliConfig) regimes() ([]expr.Regime, error) {
	return expr.ParseRegimes(c.Regime)
}

func (c cliConfig) errorPolicy() (worksheet.ErrorPolicy, error) {
	return worksheet.ParseErrorPolicy(c.OnError)
}

func (c cliConfig) slogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
