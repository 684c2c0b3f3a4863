package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/ordercalc/internal/apperr"
	"github.com/DjordjeVuckovic/ordercalc/internal/expr"
	"github.com/DjordjeVuckovic/ordercalc/internal/report"
	"github.com/DjordjeVuckovic/ordercalc/internal/token"
	"github.com/DjordjeVuckovic/ordercalc/internal/worksheet"
	"github.com/labstack/echo/v4"
)

type EvaluateRequest struct {
	Expression string `json:"expression"`
	Regime     string `json:"regime"`
}

type EvaluateResponse struct {
	Expression string           `json:"expression"`
	Values     map[string]int64 `json:"values"`
	Grouping   string           `json:"grouping,omitempty"`
}

// grouper is implemented by evaluators that build an explicit group tree.
type grouper interface {
	Group(tokens []token.Token) (*expr.Node, error)
}

type EvalRouter struct {
	e          *echo.Echo
	evaluators map[expr.Regime]expr.Evaluator
	solver     *worksheet.Solver
}

func NewEvalRouter(e *echo.Echo, evaluators []expr.Evaluator, solver *worksheet.Solver) *EvalRouter {
	byRegime := make(map[expr.Regime]expr.Evaluator, len(evaluators))
	for _, ev := range evaluators {
		byRegime[ev.Regime()] = ev
	}

	return &EvalRouter{
		e:          e,
		evaluators: byRegime,
		solver:     solver,
	}
}

func (r *EvalRouter) Bind() {
	r.e.POST("/evaluate", r.evaluateHandler)
	r.e.POST("/worksheet", r.worksheetHandler)
}

func (r *EvalRouter) evaluateHandler(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Expression == "" {
		return apperr.NewValidation("expression is required")
	}

	regimes, err := expr.ParseRegimes(req.Regime)
	if err != nil {
		return err
	}

	tokens, err := expr.Tokenize(req.Expression)
	if err != nil {
		return err
	}

	resp := EvaluateResponse{
		Expression: token.Render(tokens),
		Values:     make(map[string]int64, len(regimes)),
	}
	for _, regime := range regimes {
		ev, ok := r.evaluators[regime]
		if !ok {
			return apperr.NewValidation("regime " + regime.String() + " is not enabled")
		}

		v, err := ev.Evaluate(tokens)
		if err != nil {
			return err
		}
		resp.Values[regime.String()] = v

		if g, ok := ev.(grouper); ok {
			tree, err := g.Group(tokens)
			if err != nil {
				return err
			}
			resp.Grouping = tree.String()
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func (r *EvalRouter) worksheetHandler(c echo.Context) error {
	res, err := r.solver.Solve(c.Request().Context(), c.Request().Body, "request")
	if err != nil {
		return err
	}
	if len(res.Lines) == 0 {
		return apperr.NewValidation("worksheet is empty")
	}

	verbose := c.QueryParam("verbose") == "true"
	return c.JSON(http.StatusOK, report.FromWorksheet(res, verbose))
}
