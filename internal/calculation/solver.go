package calculation

import (
	"fmt"
	"math"

	"github.com/cicalc/compound-calculator/internal/domain"
)

// Solver tolerances. The exact values are tunable, not load-bearing: they were
// chosen to match realistic currency precision and a bounded search.
const (
	// maxAnnualRatePercent bounds the interest-rate search bracket.
	maxAnnualRatePercent = 500.0

	// maxBisectionIterations caps the rate search so it terminates in bounded
	// time regardless of input.
	maxBisectionIterations = 100

	// futureValueTolerance is the absolute future-value error, in currency
	// units, at which the rate search is considered converged.
	futureValueTolerance = 0.01

	// rateBracketTolerance stops the search once the annual-rate-percent
	// bracket is narrower than this.
	rateBracketTolerance = 1e-7

	// relaxedToleranceFactor widens futureValueTolerance for the single final
	// evaluation performed before declaring divergence.
	relaxedToleranceFactor = 100.0

	// denominatorEpsilon guards the annuity denominator against catastrophic
	// cancellation near zero rates.
	denominatorEpsilon = 1e-9
)

// discretePeriods resolves a frequency and duration into per-period terms.
// Continuous compounding has no discrete periods, so every solving mode
// rejects it as degenerate.
func discretePeriods(frequency domain.CompoundingFrequency, durationYears float64) (periodsPerYear, totalPeriods int, err error) {
	p, ok := frequency.PeriodsPerYear()
	if !ok {
		return 0, 0, fmt.Errorf("cannot solve under continuous compounding: %w", ErrDegenerateSolve)
	}
	return p, int(math.Round(durationYears * float64(p))), nil
}

// futureValueAtRate evaluates the discrete-path closed form
// FV = C*(1+r)^n + P*((1+r)^n - 1)/r, with the zero-rate limit C + P*n.
func futureValueAtRate(capital, contribution, annualRatePercent float64, periodsPerYear, totalPeriods int) float64 {
	r := annualRatePercent / 100 / float64(periodsPerYear)
	if r == 0 {
		return capital + contribution*float64(totalPeriods)
	}
	growth := math.Pow(1+r, float64(totalPeriods))
	return capital*growth + contribution*(growth-1)/r
}

// solveContribution derives the periodic contribution that grows the initial
// capital to the target, then simulates the full schedule with it.
func (e *Engine) solveContribution(req domain.ContributionRequest) (*domain.SolvedResult, []domain.Warning, error) {
	periodsPerYear, totalPeriods, err := discretePeriods(req.Frequency, req.DurationYears)
	if err != nil {
		return nil, nil, err
	}
	if totalPeriods == 0 {
		return nil, nil, fmt.Errorf("zero total periods: %w", ErrDegenerateSolve)
	}

	ratePerPeriod := req.AnnualRatePercent / 100 / float64(periodsPerYear)

	var contribution float64
	if ratePerPeriod == 0 {
		contribution = (req.TargetFutureValue - req.InitialCapital) / float64(totalPeriods)
	} else {
		growth := math.Pow(1+ratePerPeriod, float64(totalPeriods))
		denominator := growth - 1
		if math.Abs(denominator) < denominatorEpsilon {
			return nil, nil, fmt.Errorf("annuity denominator vanishes: %w", ErrDegenerateSolve)
		}
		contribution = (req.TargetFutureValue - req.InitialCapital*growth) * ratePerPeriod / denominator
	}

	var warnings []domain.Warning
	if math.IsNaN(contribution) || math.IsInf(contribution, 0) || contribution < 0 {
		warnings = append(warnings, e.unreachableWarning("required contribution is negative or undefined"))
		contribution = 0
	}
	contribution = roundToCents(contribution)

	input := domain.ProjectionInput{
		InitialCapital:       req.InitialCapital,
		PeriodicContribution: contribution,
		AnnualRatePercent:    req.AnnualRatePercent,
		DurationYears:        req.DurationYears,
		Frequency:            req.Frequency,
	}
	projection, simWarnings, err := e.Simulate(input)
	if err != nil {
		return nil, nil, err
	}
	warnings = append(warnings, simWarnings...)

	target := req.TargetFutureValue
	return &domain.SolvedResult{
		Mode:               domain.ModeContributionAmount,
		Input:              input,
		Projection:         *projection,
		SolvedContribution: &contribution,
		TargetFutureValue:  &target,
	}, warnings, nil
}

// solveDuration derives the investment duration in years that grows the
// initial capital to the target, then simulates the full schedule with it.
func (e *Engine) solveDuration(req domain.DurationRequest) (*domain.SolvedResult, []domain.Warning, error) {
	periodsPerYear, ok := req.Frequency.PeriodsPerYear()
	if !ok {
		return nil, nil, fmt.Errorf("cannot solve under continuous compounding: %w", ErrDegenerateSolve)
	}

	ratePerPeriod := req.AnnualRatePercent / 100 / float64(periodsPerYear)

	var warnings []domain.Warning
	var years float64
	switch {
	case req.TargetFutureValue <= req.InitialCapital && req.PeriodicContribution <= 0:
		// Already at or past the target with nothing further invested.
		years = 0
	case ratePerPeriod == 0:
		if req.PeriodicContribution <= 0 {
			return nil, nil, fmt.Errorf("target above capital with no growth and no contributions: %w", ErrDegenerateSolve)
		}
		periods := (req.TargetFutureValue - req.InitialCapital) / req.PeriodicContribution
		years = periods / float64(periodsPerYear)
	default:
		denominator := req.InitialCapital*ratePerPeriod + req.PeriodicContribution
		if denominator <= 0 {
			return nil, nil, fmt.Errorf("non-positive log argument: %w", ErrDegenerateSolve)
		}
		logArgument := (req.TargetFutureValue*ratePerPeriod + req.PeriodicContribution) / denominator
		if logArgument <= 0 {
			return nil, nil, fmt.Errorf("non-positive log argument: %w", ErrDegenerateSolve)
		}
		periods := math.Log(logArgument) / math.Log(1+ratePerPeriod)
		years = periods / float64(periodsPerYear)
	}

	if math.IsNaN(years) || math.IsInf(years, 0) || years < 0 {
		warnings = append(warnings, e.unreachableWarning("required duration is negative or undefined"))
		years = 0
	}
	years = roundToCents(years)

	input := domain.ProjectionInput{
		InitialCapital:       req.InitialCapital,
		PeriodicContribution: req.PeriodicContribution,
		AnnualRatePercent:    req.AnnualRatePercent,
		DurationYears:        years,
		Frequency:            req.Frequency,
	}
	projection, simWarnings, err := e.Simulate(input)
	if err != nil {
		return nil, nil, err
	}
	warnings = append(warnings, simWarnings...)

	target := req.TargetFutureValue
	return &domain.SolvedResult{
		Mode:                domain.ModeInvestmentDuration,
		Input:               input,
		Projection:          *projection,
		SolvedDurationYears: &years,
		TargetFutureValue:   &target,
	}, warnings, nil
}

// solveRate derives the annual interest rate that grows the initial capital to
// the target via bisection over [0, maxAnnualRatePercent], then simulates the
// full schedule with it.
func (e *Engine) solveRate(req domain.RateRequest) (*domain.SolvedResult, []domain.Warning, error) {
	periodsPerYear, totalPeriods, err := discretePeriods(req.Frequency, req.DurationYears)
	if err != nil {
		return nil, nil, err
	}
	if totalPeriods == 0 {
		return nil, nil, fmt.Errorf("zero total periods: %w", ErrDegenerateSolve)
	}

	totalContributions := req.InitialCapital + req.PeriodicContribution*float64(totalPeriods)

	var warnings []domain.Warning
	var rate float64
	switch {
	case req.TargetFutureValue < totalContributions-futureValueTolerance:
		// No non-negative rate undershoots the contributions alone.
		warnings = append(warnings, e.unreachableWarning("target is below total contributions; no non-negative rate reaches it"))
		rate = 0
	case math.Abs(req.TargetFutureValue-totalContributions) <= futureValueTolerance:
		rate = 0
	default:
		rate, err = bisectRate(req.InitialCapital, req.PeriodicContribution, req.TargetFutureValue, periodsPerYear, totalPeriods)
		if err != nil {
			return nil, nil, err
		}
	}

	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 || rate > maxAnnualRatePercent {
		return nil, nil, fmt.Errorf("solved rate %v outside [0, %v]: %w", rate, maxAnnualRatePercent, ErrDegenerateSolve)
	}
	rate = roundToCents(rate)

	input := domain.ProjectionInput{
		InitialCapital:       req.InitialCapital,
		PeriodicContribution: req.PeriodicContribution,
		AnnualRatePercent:    rate,
		DurationYears:        req.DurationYears,
		Frequency:            req.Frequency,
	}
	projection, simWarnings, err := e.Simulate(input)
	if err != nil {
		return nil, nil, err
	}
	warnings = append(warnings, simWarnings...)

	target := req.TargetFutureValue
	return &domain.SolvedResult{
		Mode:              domain.ModeInterestRate,
		Input:             input,
		Projection:        *projection,
		SolvedRatePercent: &rate,
		TargetFutureValue: &target,
	}, warnings, nil
}

// bisectRate narrows the annual-rate bracket toward the half containing the
// target future value. It terminates when the future-value error drops below
// futureValueTolerance or the bracket narrows below rateBracketTolerance,
// capped at maxBisectionIterations. If neither converged, the current bracket
// midpoint gets one final evaluation at a relaxed tolerance before the search
// is declared divergent.
func bisectRate(capital, contribution, target float64, periodsPerYear, totalPeriods int) (float64, error) {
	low, high := 0.0, maxAnnualRatePercent

	for i := 0; i < maxBisectionIterations; i++ {
		mid := (low + high) / 2
		futureValue := futureValueAtRate(capital, contribution, mid, periodsPerYear, totalPeriods)
		if math.Abs(futureValue-target) < futureValueTolerance {
			return mid, nil
		}
		if futureValue < target {
			low = mid
		} else {
			high = mid
		}
		if high-low < rateBracketTolerance {
			break
		}
	}

	mid := (low + high) / 2
	futureValue := futureValueAtRate(capital, contribution, mid, periodsPerYear, totalPeriods)
	if math.Abs(futureValue-target) < futureValueTolerance*relaxedToleranceFactor {
		return mid, nil
	}
	return 0, fmt.Errorf("rate search did not converge after %d iterations: %w", maxBisectionIterations, ErrNumericDivergence)
}

func (e *Engine) unreachableWarning(detail string) domain.Warning {
	w := domain.Warning{
		Code:    domain.WarnTargetUnreachable,
		Message: "target unreachable, clamped to 0: " + detail,
	}
	e.Logger.Warnf("%s", w.Message)
	return w
}
