package advisor

import (
	"fmt"

	"github.com/cicalc/compound-calculator/internal/domain"
)

// FallbackTip builds deterministic commentary from the aggregates alone, used
// whenever generation is unavailable or fails.
func FallbackTip(result *domain.SolvedResult) string {
	projection := result.Projection

	var interestShare float64
	if projection.FutureValue > 0 {
		interestShare = projection.TotalInterest / projection.FutureValue * 100
	}

	switch {
	case projection.TotalInterest <= 0:
		return "This projection earns no interest, so the outcome depends entirely on what you put in. " +
			"Even a modest rate would let compounding work for you."
	case interestShare >= 50:
		return fmt.Sprintf(
			"Over %.1f years, compound interest contributes %.0f%% of your projected %.2f. "+
				"Time in the market is doing the heavy lifting here; staying invested matters more than the exact contribution.",
			result.Input.DurationYears, interestShare, projection.FutureValue)
	default:
		return fmt.Sprintf(
			"Your contributions make up most of the projected %.2f, with interest adding %.0f%%. "+
				"A longer horizon or more frequent compounding would shift more of the growth to interest.",
			projection.FutureValue, interestShare)
	}
}
