package output

import (
	"bytes"
	"fmt"

	"github.com/cicalc/compound-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console summary plus the yearly
// schedule via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	result := report.Result

	fmt.Fprintln(&buf, "INVESTMENT PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Mode:                %s\n", result.Mode)
	fmt.Fprintf(&buf, "Frequency:           %s\n", result.Input.Frequency)
	fmt.Fprintf(&buf, "Initial Capital:     %s\n", FormatCurrency(result.Input.InitialCapital))
	fmt.Fprintf(&buf, "Contribution:        %s\n", FormatCurrency(result.Input.PeriodicContribution))
	fmt.Fprintf(&buf, "Annual Rate:         %s\n", FormatPercent(result.Input.AnnualRatePercent))
	fmt.Fprintf(&buf, "Duration:            %s years\n", FormatYears(result.Input.DurationYears))
	if result.TargetFutureValue != nil {
		fmt.Fprintf(&buf, "Target Future Value: %s\n", FormatCurrency(*result.TargetFutureValue))
	}

	switch {
	case result.SolvedContribution != nil:
		fmt.Fprintf(&buf, "Solved Contribution: %s\n", FormatCurrency(*result.SolvedContribution))
	case result.SolvedRatePercent != nil:
		fmt.Fprintf(&buf, "Solved Annual Rate:  %s\n", FormatPercent(*result.SolvedRatePercent))
	case result.SolvedDurationYears != nil:
		fmt.Fprintf(&buf, "Solved Duration:     %s years\n", FormatYears(*result.SolvedDurationYears))
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Future Value:        %s\n", FormatCurrency(result.Projection.FutureValue))
	fmt.Fprintf(&buf, "Total Contributions: %s\n", FormatCurrency(result.Projection.TotalContributions))
	fmt.Fprintf(&buf, "Total Interest:      %s\n", FormatCurrency(result.Projection.TotalInterest))

	if len(result.Projection.Schedule) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%-6s %15s %15s %15s %15s\n", "Year", "Start", "Contributions", "Interest", "End")
		for _, record := range result.Projection.Schedule {
			fmt.Fprintf(&buf, "%-6d %15s %15s %15s %15s\n",
				record.Year,
				FormatCurrency(record.StartingBalance),
				FormatCurrency(record.Contributions),
				FormatCurrency(record.InterestEarned),
				FormatCurrency(record.EndingBalance),
			)
		}
	}

	printWarnings(&buf, report.Warnings)
	return buf.Bytes(), nil
}

func printWarnings(buf *bytes.Buffer, warnings []domain.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(buf)
	for _, w := range warnings {
		fmt.Fprintf(buf, "WARNING [%s]: %s\n", w.Code, w.Message)
	}
}
