package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cicalc/compound-calculator/internal/calculation"
	"github.com/cicalc/compound-calculator/internal/domain"
)

func f(v float64) *float64 { return &v }

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testInput := "mode: interest_rate\n" +
		"frequency: monthly\n" +
		"initial_capital: 1000\n" +
		"periodic_contribution: 100\n" +
		"duration_years: 10\n" +
		"target_future_value: 50000\n"

	tmpfile, err := os.CreateTemp("", "scenario_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString(testInput)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	input, err := NewInputParser().LoadFromFile(tmpfile.Name())
	require.NoError(t, err)
	assert.Equal(t, "interest_rate", input.Mode)
	assert.Equal(t, "monthly", input.Frequency)
	require.NotNil(t, input.InitialCapital)
	assert.Equal(t, 1000.0, *input.InitialCapital)
	assert.Nil(t, input.AnnualRatePercent)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile("does_not_exist.yaml")
	assert.Error(t, err)
}

func TestValidate_Bounds(t *testing.T) {
	parser := NewInputParser()

	base := func() *CalculationInput {
		return &CalculationInput{
			Mode:                 string(domain.ModeFutureValue),
			Frequency:            string(domain.FrequencyMonthly),
			InitialCapital:       f(1000),
			PeriodicContribution: f(100),
			AnnualRatePercent:    f(5),
			DurationYears:        f(10),
		}
	}

	assert.NoError(t, parser.Validate(base()))

	tooMuchCapital := base()
	tooMuchCapital.InitialCapital = f(2e9)
	assert.Error(t, parser.Validate(tooMuchCapital))

	negativeContribution := base()
	negativeContribution.PeriodicContribution = f(-1)
	assert.Error(t, parser.Validate(negativeContribution))

	rateAboveRawBound := base()
	rateAboveRawBound.AnnualRatePercent = f(150)
	assert.Error(t, parser.Validate(rateAboveRawBound))

	tooLong := base()
	tooLong.DurationYears = f(101)
	assert.Error(t, parser.Validate(tooLong))

	badTarget := base()
	badTarget.TargetFutureValue = f(0)
	assert.Error(t, parser.Validate(badTarget))

	badMode := base()
	badMode.Mode = "present_value"
	assert.Error(t, parser.Validate(badMode))

	badFrequency := base()
	badFrequency.Frequency = "hourly"
	assert.Error(t, parser.Validate(badFrequency))
}

func TestBuildRequest_AllModes(t *testing.T) {
	parser := NewInputParser()

	full := &CalculationInput{
		Mode:                 string(domain.ModeFutureValue),
		Frequency:            string(domain.FrequencyMonthly),
		InitialCapital:       f(1000),
		PeriodicContribution: f(100),
		AnnualRatePercent:    f(5),
		DurationYears:        f(10),
		TargetFutureValue:    f(50000),
	}

	req, err := parser.BuildRequest(full)
	require.NoError(t, err)
	assert.IsType(t, domain.FutureValueRequest{}, req)

	full.Mode = string(domain.ModeContributionAmount)
	req, err = parser.BuildRequest(full)
	require.NoError(t, err)
	assert.IsType(t, domain.ContributionRequest{}, req)

	full.Mode = string(domain.ModeInterestRate)
	req, err = parser.BuildRequest(full)
	require.NoError(t, err)
	assert.IsType(t, domain.RateRequest{}, req)

	full.Mode = string(domain.ModeInvestmentDuration)
	req, err = parser.BuildRequest(full)
	require.NoError(t, err)
	assert.IsType(t, domain.DurationRequest{}, req)
}

func TestBuildRequest_MissingInput(t *testing.T) {
	parser := NewInputParser()

	// Interest-rate mode with no target.
	input := &CalculationInput{
		Mode:                 string(domain.ModeInterestRate),
		Frequency:            string(domain.FrequencyMonthly),
		InitialCapital:       f(1000),
		PeriodicContribution: f(100),
		DurationYears:        f(10),
	}
	_, err := parser.BuildRequest(input)
	assert.ErrorIs(t, err, calculation.ErrMissingInput)

	// Future-value mode requires all four quantities.
	input = &CalculationInput{
		Mode:           string(domain.ModeFutureValue),
		Frequency:      string(domain.FrequencyMonthly),
		InitialCapital: f(1000),
	}
	_, err = parser.BuildRequest(input)
	assert.ErrorIs(t, err, calculation.ErrMissingInput)
}
