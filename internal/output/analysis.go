package output

import (
	"github.com/cicalc/compound-calculator/internal/domain"
)

// Report packages a solved result with its display-only derivations: the
// chart-ready time series and any warnings the engine surfaced. Purely
// derived, no failure modes.
type Report struct {
	Result   *domain.SolvedResult `json:"result"`
	Series   []domain.ChartPoint  `json:"chart_series"`
	Warnings []domain.Warning     `json:"warnings,omitempty"`
}

// BuildReport assembles the report for a solved result.
func BuildReport(result *domain.SolvedResult, warnings []domain.Warning) *Report {
	return &Report{
		Result:   result,
		Series:   BuildChartSeries(result),
		Warnings: warnings,
	}
}

// BuildChartSeries walks the yearly schedule and computes, per year, the
// cumulative amount invested (initial capital plus all contributions so far)
// and the cumulative interest (ending balance minus cumulative invested,
// floored at 0 to absorb floating-point noise near year zero).
func BuildChartSeries(result *domain.SolvedResult) []domain.ChartPoint {
	invested := result.Input.InitialCapital
	series := make([]domain.ChartPoint, 0, len(result.Projection.Schedule))
	for _, record := range result.Projection.Schedule {
		invested += record.Contributions
		interest := record.EndingBalance - invested
		if interest < 0 {
			interest = 0
		}
		series = append(series, domain.ChartPoint{
			Year:                record.Year,
			TotalInvested:       invested,
			InterestAccumulated: interest,
			EndingBalance:       record.EndingBalance,
		})
	}
	return series
}
