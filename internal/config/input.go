package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cicalc/compound-calculator/internal/calculation"
	"github.com/cicalc/compound-calculator/internal/domain"
)

// Documented input bounds. Values are validated here so the engine can assume
// bounds are pre-enforced.
const (
	MaxInitialCapital       = 1e9
	MaxPeriodicContribution = 1e6
	MaxAnnualRatePercent    = 100.0
	MaxDurationYears        = 100.0
)

// CalculationInput is the flat, partially specified input as it arrives from a
// scenario file, CLI flags, or an HTTP request body. Pointer fields distinguish
// "absent" from zero; which fields are required is a function of the mode.
type CalculationInput struct {
	Mode                 string   `yaml:"mode" json:"mode"`
	Frequency            string   `yaml:"frequency" json:"frequency"`
	InitialCapital       *float64 `yaml:"initial_capital" json:"initial_capital,omitempty"`
	PeriodicContribution *float64 `yaml:"periodic_contribution" json:"periodic_contribution,omitempty"`
	AnnualRatePercent    *float64 `yaml:"annual_rate_percent" json:"annual_rate_percent,omitempty"`
	DurationYears        *float64 `yaml:"duration_years" json:"duration_years,omitempty"`
	TargetFutureValue    *float64 `yaml:"target_future_value" json:"target_future_value,omitempty"`
}

// InputParser handles parsing and validation of calculation inputs.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculation input from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*CalculationInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input CalculationInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// Validate checks every supplied field against its documented bounds. Field
// presence is not checked here; BuildRequest decides what the mode requires.
func (ip *InputParser) Validate(input *CalculationInput) error {
	if !domain.CalculationMode(input.Mode).IsValid() {
		return fmt.Errorf("unknown calculation mode %q", input.Mode)
	}
	if !domain.CompoundingFrequency(input.Frequency).IsValid() {
		return fmt.Errorf("unknown compounding frequency %q", input.Frequency)
	}
	if input.InitialCapital != nil {
		if *input.InitialCapital < 0 || *input.InitialCapital > MaxInitialCapital {
			return fmt.Errorf("initial capital must be between 0 and %.0f", MaxInitialCapital)
		}
	}
	if input.PeriodicContribution != nil {
		if *input.PeriodicContribution < 0 || *input.PeriodicContribution > MaxPeriodicContribution {
			return fmt.Errorf("periodic contribution must be between 0 and %.0f", MaxPeriodicContribution)
		}
	}
	if input.AnnualRatePercent != nil {
		if *input.AnnualRatePercent < 0 || *input.AnnualRatePercent > MaxAnnualRatePercent {
			return fmt.Errorf("annual rate must be between 0%% and %.0f%%", MaxAnnualRatePercent)
		}
	}
	if input.DurationYears != nil {
		if *input.DurationYears < 0 || *input.DurationYears > MaxDurationYears {
			return fmt.Errorf("duration must be between 0 and %.0f years", MaxDurationYears)
		}
	}
	if input.TargetFutureValue != nil && *input.TargetFutureValue <= 0 {
		return fmt.Errorf("target future value must be positive")
	}
	return nil
}

// BuildRequest converts a validated flat input into the typed request for its
// mode. A field the mode requires but the input lacks is reported as
// calculation.ErrMissingInput.
func (ip *InputParser) BuildRequest(input *CalculationInput) (domain.Request, error) {
	frequency := domain.CompoundingFrequency(input.Frequency)

	switch domain.CalculationMode(input.Mode) {
	case domain.ModeFutureValue:
		if err := requireFields(input.Mode, "initial_capital", input.InitialCapital, "periodic_contribution", input.PeriodicContribution, "annual_rate_percent", input.AnnualRatePercent, "duration_years", input.DurationYears); err != nil {
			return nil, err
		}
		return domain.FutureValueRequest{
			InitialCapital:       *input.InitialCapital,
			PeriodicContribution: *input.PeriodicContribution,
			AnnualRatePercent:    *input.AnnualRatePercent,
			DurationYears:        *input.DurationYears,
			Frequency:            frequency,
		}, nil

	case domain.ModeContributionAmount:
		if err := requireFields(input.Mode, "initial_capital", input.InitialCapital, "annual_rate_percent", input.AnnualRatePercent, "duration_years", input.DurationYears, "target_future_value", input.TargetFutureValue); err != nil {
			return nil, err
		}
		return domain.ContributionRequest{
			InitialCapital:    *input.InitialCapital,
			AnnualRatePercent: *input.AnnualRatePercent,
			DurationYears:     *input.DurationYears,
			Frequency:         frequency,
			TargetFutureValue: *input.TargetFutureValue,
		}, nil

	case domain.ModeInterestRate:
		if err := requireFields(input.Mode, "initial_capital", input.InitialCapital, "periodic_contribution", input.PeriodicContribution, "duration_years", input.DurationYears, "target_future_value", input.TargetFutureValue); err != nil {
			return nil, err
		}
		return domain.RateRequest{
			InitialCapital:       *input.InitialCapital,
			PeriodicContribution: *input.PeriodicContribution,
			DurationYears:        *input.DurationYears,
			Frequency:            frequency,
			TargetFutureValue:    *input.TargetFutureValue,
		}, nil

	case domain.ModeInvestmentDuration:
		if err := requireFields(input.Mode, "initial_capital", input.InitialCapital, "periodic_contribution", input.PeriodicContribution, "annual_rate_percent", input.AnnualRatePercent, "target_future_value", input.TargetFutureValue); err != nil {
			return nil, err
		}
		return domain.DurationRequest{
			InitialCapital:       *input.InitialCapital,
			PeriodicContribution: *input.PeriodicContribution,
			AnnualRatePercent:    *input.AnnualRatePercent,
			Frequency:            frequency,
			TargetFutureValue:    *input.TargetFutureValue,
		}, nil
	}

	return nil, fmt.Errorf("unknown calculation mode %q", input.Mode)
}

// requireFields checks alternating name/value pairs and reports the first absent one.
func requireFields(mode string, pairs ...any) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		name := pairs[i].(string)
		value := pairs[i+1].(*float64)
		if value == nil {
			return fmt.Errorf("mode %s requires %s: %w", mode, name, calculation.ErrMissingInput)
		}
	}
	return nil
}
