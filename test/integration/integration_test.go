package integration

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cicalc/compound-calculator/internal/calculation"
	"github.com/cicalc/compound-calculator/internal/config"
	"github.com/cicalc/compound-calculator/internal/output"
)

// Load a scenario file, solve it, and render every registered format.
func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile("../testdata/example_scenario.yaml")
	require.NoError(t, err)
	require.NotNil(t, input)

	request, err := parser.BuildRequest(input)
	require.NoError(t, err)

	engine := calculation.NewEngine()
	result, warnings, err := engine.Solve(request)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, warnings)

	require.NotNil(t, result.SolvedRatePercent)
	assert.Greater(t, *result.SolvedRatePercent, 0.0)

	// The rate is rounded for display before re-simulation, so allow the
	// resulting precision loss against the 50000 target.
	assert.Less(t, math.Abs(result.Projection.FutureValue-50000), 25.0)

	report := output.BuildReport(result, warnings)
	assert.Len(t, report.Series, 10)

	for _, name := range output.FormatterNames() {
		formatter := output.GetFormatterByName(name)
		require.NotNil(t, formatter)
		data, err := formatter.Format(report)
		require.NoError(t, err, "formatter %s", name)
		assert.NotEmpty(t, data, "formatter %s", name)
	}
}

func TestScenarioValidationRejectsBadFiles(t *testing.T) {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile("../testdata/example_scenario.yaml")
	require.NoError(t, err)

	bad := *input
	capital := 2e9
	bad.InitialCapital = &capital
	assert.Error(t, parser.Validate(&bad))
}
