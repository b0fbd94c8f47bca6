package domain

// CalculationMode names the single unknown the goal solver resolves.
type CalculationMode string

const (
	ModeFutureValue        CalculationMode = "future_value"
	ModeContributionAmount CalculationMode = "contribution_amount"
	ModeInterestRate       CalculationMode = "interest_rate"
	ModeInvestmentDuration CalculationMode = "investment_duration"
)

// IsValid reports whether the mode is one of the supported values.
func (m CalculationMode) IsValid() bool {
	switch m {
	case ModeFutureValue, ModeContributionAmount, ModeInterestRate, ModeInvestmentDuration:
		return true
	}
	return false
}

// Request is the tagged union over calculation modes. Each concrete request
// carries only the fields that are known for its mode; the remaining quantity
// is the one the solver derives.
type Request interface {
	Mode() CalculationMode
}

// FutureValueRequest carries a fully specified projection; nothing is solved.
type FutureValueRequest struct {
	InitialCapital       float64
	PeriodicContribution float64
	AnnualRatePercent    float64
	DurationYears        float64
	Frequency            CompoundingFrequency
}

func (FutureValueRequest) Mode() CalculationMode { return ModeFutureValue }

// ContributionRequest asks for the periodic contribution that reaches the
// target future value.
type ContributionRequest struct {
	InitialCapital    float64
	AnnualRatePercent float64
	DurationYears     float64
	Frequency         CompoundingFrequency
	TargetFutureValue float64
}

func (ContributionRequest) Mode() CalculationMode { return ModeContributionAmount }

// RateRequest asks for the annual interest rate that reaches the target
// future value.
type RateRequest struct {
	InitialCapital       float64
	PeriodicContribution float64
	DurationYears        float64
	Frequency            CompoundingFrequency
	TargetFutureValue    float64
}

func (RateRequest) Mode() CalculationMode { return ModeInterestRate }

// DurationRequest asks for the investment duration in years that reaches the
// target future value.
type DurationRequest struct {
	InitialCapital       float64
	PeriodicContribution float64
	AnnualRatePercent    float64
	Frequency            CompoundingFrequency
	TargetFutureValue    float64
}

func (DurationRequest) Mode() CalculationMode { return ModeInvestmentDuration }
