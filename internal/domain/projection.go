package domain

// ProjectionInput is a fully resolved simulation input. The simulator never
// runs with an unresolved field; goal solving happens before this is built.
type ProjectionInput struct {
	InitialCapital       float64              `json:"initial_capital"`
	PeriodicContribution float64              `json:"periodic_contribution"`
	AnnualRatePercent    float64              `json:"annual_rate_percent"`
	DurationYears        float64              `json:"duration_years"`
	Frequency            CompoundingFrequency `json:"frequency"`
}

// YearlyRecord is one row of the amortization schedule.
// EndingBalance equals StartingBalance + Contributions + InterestEarned, and
// the next record's StartingBalance equals this record's EndingBalance.
type YearlyRecord struct {
	Year            int     `json:"year"`
	StartingBalance float64 `json:"starting_balance"`
	Contributions   float64 `json:"contributions"`
	InterestEarned  float64 `json:"interest_earned"`
	EndingBalance   float64 `json:"ending_balance"`
}

// ProjectionResult is the simulator's complete output for one input set.
// TotalContributions includes the initial capital. Results are created fresh
// per call and never mutated after being returned.
type ProjectionResult struct {
	FutureValue        float64        `json:"future_value"`
	TotalInterest      float64        `json:"total_interest"`
	TotalContributions float64        `json:"total_contributions"`
	Schedule           []YearlyRecord `json:"schedule"`
}

// SolvedResult couples a projection with the value the goal solver derived.
// Exactly one of the Solved* fields is set for the non-trivial modes; all are
// nil when the mode was future value. TargetFutureValue is the caller's
// original target, present whenever a value was solved for.
type SolvedResult struct {
	Mode                CalculationMode  `json:"mode"`
	Input               ProjectionInput  `json:"input"`
	Projection          ProjectionResult `json:"projection"`
	SolvedContribution  *float64         `json:"solved_contribution,omitempty"`
	SolvedRatePercent   *float64         `json:"solved_rate_percent,omitempty"`
	SolvedDurationYears *float64         `json:"solved_duration_years,omitempty"`
	TargetFutureValue   *float64         `json:"target_future_value,omitempty"`
}

// WarningCode classifies non-fatal degradations surfaced alongside a result.
type WarningCode string

const (
	// WarnContributionsIgnored is raised when continuous compounding drops a
	// positive periodic contribution from the projection.
	WarnContributionsIgnored WarningCode = "contributions_ignored"

	// WarnTargetUnreachable is raised when the mathematically valid solution
	// was negative or infeasible and the solver clamped it to zero.
	WarnTargetUnreachable WarningCode = "target_unreachable"
)

// Warning is a non-fatal signal. The result it accompanies is usable but
// degraded; callers should surface the message rather than discard the result.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// ChartPoint is one year of the chart-ready series derived from a schedule:
// cumulative amount invested versus cumulative interest accumulated.
type ChartPoint struct {
	Year                int     `json:"year"`
	TotalInvested       float64 `json:"total_invested"`
	InterestAccumulated float64 `json:"interest_accumulated"`
	EndingBalance       float64 `json:"ending_balance"`
}
