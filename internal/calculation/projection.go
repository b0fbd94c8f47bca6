package calculation

import (
	"fmt"
	"math"

	"github.com/cicalc/compound-calculator/internal/domain"
)

// Simulate runs the period-by-period projection for a fully resolved input and
// returns the yearly amortization schedule plus aggregate totals. Identical
// inputs always produce identical output; the simulator keeps no hidden state.
func (e *Engine) Simulate(input domain.ProjectionInput) (*domain.ProjectionResult, []domain.Warning, error) {
	if !input.Frequency.IsValid() {
		return nil, nil, fmt.Errorf("unknown compounding frequency %q", input.Frequency)
	}
	periods, ok := input.Frequency.PeriodsPerYear()
	if !ok {
		return e.simulateContinuous(input)
	}
	return e.simulateDiscrete(input, periods), nil, nil
}

// simulateDiscrete iterates every compounding period, accruing interest on the
// running balance and then adding the contribution. A year's bucket closes
// after periodsPerYear periods or at the final period, so a duration that is
// not a whole number of years still emits one record for the partial year.
func (e *Engine) simulateDiscrete(input domain.ProjectionInput, periodsPerYear int) *domain.ProjectionResult {
	ratePerPeriod := input.AnnualRatePercent / 100 / float64(periodsPerYear)
	totalPeriods := int(math.Round(input.DurationYears * float64(periodsPerYear)))

	balance := input.InitialCapital
	totalContributions := input.InitialCapital

	var schedule []domain.YearlyRecord
	year := 1
	yearStart := balance
	var yearInterest, yearContributions float64
	periodsThisYear := 0

	for p := 1; p <= totalPeriods; p++ {
		interest := balance * ratePerPeriod
		balance += interest
		yearInterest += interest

		if input.PeriodicContribution > 0 {
			balance += input.PeriodicContribution
			yearContributions += input.PeriodicContribution
			totalContributions += input.PeriodicContribution
		}

		periodsThisYear++
		if periodsThisYear == periodsPerYear || p == totalPeriods {
			schedule = append(schedule, domain.YearlyRecord{
				Year:            year,
				StartingBalance: yearStart,
				Contributions:   yearContributions,
				InterestEarned:  yearInterest,
				EndingBalance:   balance,
			})
			year++
			yearStart = balance
			yearInterest = 0
			yearContributions = 0
			periodsThisYear = 0
		}
	}

	return &domain.ProjectionResult{
		FutureValue:        balance,
		TotalInterest:      balance - totalContributions,
		TotalContributions: totalContributions,
		Schedule:           schedule,
	}
}

// simulateContinuous applies the closed-form exponential growth formula
// FV = C * e^(r*t). Periodic contributions are not modeled under continuous
// compounding; a positive contribution degrades to a warning and the
// projection proceeds on the initial capital alone. Yearly records apportion
// interest as the delta between successive exponential evaluations and report
// zero contributions throughout.
func (e *Engine) simulateContinuous(input domain.ProjectionInput) (*domain.ProjectionResult, []domain.Warning, error) {
	var warnings []domain.Warning
	if input.PeriodicContribution > 0 {
		w := domain.Warning{
			Code:    domain.WarnContributionsIgnored,
			Message: "continuous compounding does not model periodic contributions; projecting initial capital only",
		}
		warnings = append(warnings, w)
		e.Logger.Warnf("%s", w.Message)
	}

	rate := input.AnnualRatePercent / 100
	years := input.DurationYears
	futureValue := input.InitialCapital * math.Exp(rate*years)

	var schedule []domain.YearlyRecord
	previous := input.InitialCapital
	for y := 1; y <= int(math.Ceil(years)); y++ {
		elapsed := math.Min(float64(y), years)
		value := input.InitialCapital * math.Exp(rate*elapsed)
		schedule = append(schedule, domain.YearlyRecord{
			Year:            y,
			StartingBalance: previous,
			Contributions:   0,
			InterestEarned:  value - previous,
			EndingBalance:   value,
		})
		previous = value
	}

	return &domain.ProjectionResult{
		FutureValue:        futureValue,
		TotalInterest:      futureValue - input.InitialCapital,
		TotalContributions: input.InitialCapital,
		Schedule:           schedule,
	}, warnings, nil
}
