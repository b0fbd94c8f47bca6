package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cicalc/compound-calculator/internal/domain"
)

func sampleResult() *domain.SolvedResult {
	return &domain.SolvedResult{
		Mode: domain.ModeFutureValue,
		Input: domain.ProjectionInput{
			InitialCapital:       1000,
			PeriodicContribution: 100,
			AnnualRatePercent:    5,
			DurationYears:        2,
			Frequency:            domain.FrequencyAnnually,
		},
		Projection: domain.ProjectionResult{
			FutureValue:        1307.25,
			TotalInterest:      107.25,
			TotalContributions: 1200,
			Schedule: []domain.YearlyRecord{
				{Year: 1, StartingBalance: 1000, Contributions: 100, InterestEarned: 50, EndingBalance: 1150},
				{Year: 2, StartingBalance: 1150, Contributions: 100, InterestEarned: 57.25, EndingBalance: 1307.25},
			},
		},
	}
}

func TestBuildChartSeries_Cumulative(t *testing.T) {
	series := BuildChartSeries(sampleResult())
	require.Len(t, series, 2)

	assert.Equal(t, 1, series[0].Year)
	assert.InDelta(t, 1100, series[0].TotalInvested, 1e-9)
	assert.InDelta(t, 50, series[0].InterestAccumulated, 1e-9)

	assert.Equal(t, 2, series[1].Year)
	assert.InDelta(t, 1200, series[1].TotalInvested, 1e-9)
	assert.InDelta(t, 107.25, series[1].InterestAccumulated, 1e-9)
	assert.InDelta(t, 1307.25, series[1].EndingBalance, 1e-9)
}

// Floating-point noise can push ending balance a hair under cumulative
// invested near year zero; the series floors interest at 0.
func TestBuildChartSeries_FloorsNegativeInterest(t *testing.T) {
	result := sampleResult()
	result.Projection.Schedule = []domain.YearlyRecord{
		{Year: 1, StartingBalance: 1000, Contributions: 100, InterestEarned: 0, EndingBalance: 1100 - 1e-10},
	}

	series := BuildChartSeries(result)
	require.Len(t, series, 1)
	assert.Equal(t, 0.0, series[0].InterestAccumulated)
}

func TestBuildReport(t *testing.T) {
	warnings := []domain.Warning{{Code: domain.WarnTargetUnreachable, Message: "clamped"}}
	report := BuildReport(sampleResult(), warnings)

	require.NotNil(t, report.Result)
	assert.Len(t, report.Series, 2)
	assert.Equal(t, warnings, report.Warnings)
}
