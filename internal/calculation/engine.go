package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cicalc/compound-calculator/internal/domain"
)

// Engine runs investment projections and goal-seeking solves. It holds no
// state between calls, so a single Engine is safe to share across goroutines.
type Engine struct {
	Logger Logger
}

// NewEngine creates a new projection engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Solve resolves the unknown named by the request's mode, then simulates the
// full projection with all four quantities known. Warnings accompany a usable
// (possibly degraded) result; a non-nil error means no result was produced.
func (e *Engine) Solve(req domain.Request) (*domain.SolvedResult, []domain.Warning, error) {
	switch r := req.(type) {
	case domain.FutureValueRequest:
		return e.solveFutureValue(r)
	case domain.ContributionRequest:
		return e.solveContribution(r)
	case domain.RateRequest:
		return e.solveRate(r)
	case domain.DurationRequest:
		return e.solveDuration(r)
	default:
		return nil, nil, fmt.Errorf("unsupported request type %T", req)
	}
}

func (e *Engine) solveFutureValue(req domain.FutureValueRequest) (*domain.SolvedResult, []domain.Warning, error) {
	input := domain.ProjectionInput{
		InitialCapital:       req.InitialCapital,
		PeriodicContribution: req.PeriodicContribution,
		AnnualRatePercent:    req.AnnualRatePercent,
		DurationYears:        req.DurationYears,
		Frequency:            req.Frequency,
	}
	projection, warnings, err := e.Simulate(input)
	if err != nil {
		return nil, nil, err
	}
	return &domain.SolvedResult{
		Mode:       domain.ModeFutureValue,
		Input:      input,
		Projection: *projection,
	}, warnings, nil
}

// roundToCents rounds a solved value to two decimal places, matching realistic
// currency and rate precision before it is fed back into the simulator.
func roundToCents(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
