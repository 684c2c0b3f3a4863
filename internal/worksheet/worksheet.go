package worksheet

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/ordercalc/internal/apperr"
	"github.com/DjordjeVuckovic/ordercalc/internal/expr"
	"github.com/DjordjeVuckovic/ordercalc/pkg/utils"
	"github.com/google/uuid"
)

// ErrorPolicy decides what happens to a line that fails to evaluate.
type ErrorPolicy string

const (
	Abort ErrorPolicy = "abort"
	Skip  ErrorPolicy = "skip"
)

func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch ErrorPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", Abort:
		return Abort, nil
	case Skip:
		return Skip, nil
	default:
		return "", apperr.NewValidation(fmt.Sprintf("unknown error policy %q", s))
	}
}

// Config for a Solver. A zero MaxDepth keeps expr.DefaultMaxDepth,
// a negative one disables the nesting ceiling.
type Config struct {
	Regimes  []expr.Regime
	OnError  ErrorPolicy
	MaxDepth int
}

type LineResult struct {
	Line       int
	Expression string
	Values     map[expr.Regime]int64
	Err        error
}

type Result struct {
	RunID   uuid.UUID
	Source  string
	Regimes []expr.Regime
	Lines   []LineResult
	Totals  map[expr.Regime]int64
	Skipped int
	Elapsed time.Duration
}

type Solver struct {
	cfg        Config
	evaluators []expr.Evaluator
}

func New(cfg Config) (*Solver, error) {
	if len(cfg.Regimes) == 0 {
		cfg.Regimes = expr.AllRegimes
	}
	if cfg.OnError == "" {
		cfg.OnError = Abort
	}

	var opts []expr.Option
	if cfg.MaxDepth != 0 {
		opts = append(opts, expr.WithMaxDepth(cfg.MaxDepth))
	}

	evs, err := expr.NewSet(cfg.Regimes, opts...)
	if err != nil {
		return nil, err
	}

	return &Solver{cfg: cfg, evaluators: evs}, nil
}

// SolveFile evaluates every line of the file at path.
func (s *Solver) SolveFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &apperr.MissingInputError{Path: path}
		}
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return s.Solve(ctx, f, path)
}

// Solve evaluates every non-blank line read from r and sums the values per regime.
func (s *Solver) Solve(ctx context.Context, r io.Reader, source string) (*Result, error) {
	start := time.Now()

	res := &Result{
		RunID:   uuid.New(),
		Source:  source,
		Regimes: s.cfg.Regimes,
		Totals:  make(map[expr.Regime]int64, len(s.evaluators)),
	}
	for _, ev := range s.evaluators {
		res.Totals[ev.Regime()] = 0
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			slog.Debug("Skipping blank line", "source", source, "line", lineNo)
			continue
		}

		lr := s.solveLine(lineNo, line)
		if lr.Err != nil {
			if s.cfg.OnError == Abort {
				return nil, fmt.Errorf("line %d: %w", lineNo, lr.Err)
			}
			slog.Warn("Skipping line", "source", source, "line", lineNo, "error", lr.Err)
			res.Skipped++
			res.Lines = append(res.Lines, lr)
			continue
		}

		for regime, v := range lr.Values {
			total, ok := utils.AddInt64(res.Totals[regime], v)
			if !ok {
				return nil, fmt.Errorf("line %d: total for %s: %w", lineNo, regime,
					&apperr.OverflowError{Op: "+", A: res.Totals[regime], B: v})
			}
			res.Totals[regime] = total
		}
		res.Lines = append(res.Lines, lr)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	res.Elapsed = time.Since(start)
	slog.Info("Worksheet solved",
		"run_id", res.RunID,
		"source", source,
		"lines", len(res.Lines),
		"skipped", res.Skipped,
		"elapsed", res.Elapsed,
	)

	return res, nil
}

func (s *Solver) solveLine(lineNo int, line string) LineResult {
	lr := LineResult{Line: lineNo, Expression: line}

	tokens, err := expr.Tokenize(line)
	if err != nil {
		lr.Err = err
		return lr
	}

	values := make(map[expr.Regime]int64, len(s.evaluators))
	for _, ev := range s.evaluators {
		v, err := ev.Evaluate(tokens)
		if err != nil {
			lr.Err = fmt.Errorf("%s: %w", ev.Regime(), err)
			return lr
		}
		values[ev.Regime()] = v
	}
	lr.Values = values

	return lr
}
