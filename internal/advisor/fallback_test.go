package advisor

import (
	"context"
	"strings"
	"testing"

	"github.com/cicalc/compound-calculator/internal/domain"
)

func result(futureValue, totalInterest, years float64) *domain.SolvedResult {
	return &domain.SolvedResult{
		Mode: domain.ModeFutureValue,
		Input: domain.ProjectionInput{
			InitialCapital: 1000,
			DurationYears:  years,
			Frequency:      domain.FrequencyMonthly,
		},
		Projection: domain.ProjectionResult{
			FutureValue:        futureValue,
			TotalInterest:      totalInterest,
			TotalContributions: futureValue - totalInterest,
		},
	}
}

func TestFallbackTip_NoInterest(t *testing.T) {
	tip := FallbackTip(result(13000, 0, 10))
	if !strings.Contains(tip, "no interest") {
		t.Fatalf("expected the no-interest branch, got %q", tip)
	}
}

func TestFallbackTip_InterestDominant(t *testing.T) {
	tip := FallbackTip(result(100000, 60000, 30))
	if !strings.Contains(tip, "60%") {
		t.Fatalf("expected the interest share in the tip, got %q", tip)
	}
}

func TestFallbackTip_ContributionDominant(t *testing.T) {
	tip := FallbackTip(result(20000, 4000, 5))
	if !strings.Contains(tip, "contributions") {
		t.Fatalf("expected the contribution-dominant branch, got %q", tip)
	}
}

// With no client configured the advisor must answer without touching the
// network.
func TestTip_NilClientUsesFallback(t *testing.T) {
	a := New(nil)
	tip := a.Tip(context.Background(), result(20000, 4000, 5))
	if tip != FallbackTip(result(20000, 4000, 5)) {
		t.Fatalf("expected fallback tip, got %q", tip)
	}
}
