// Package advisor generates free-text investment commentary from solved
// projection aggregates. It sits outside the engine boundary: the engine hands
// over plain numbers and never learns what happens to them. Tip generation is
// best-effort; any failure degrades to canned fallback text.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/cicalc/compound-calculator/internal/calculation"
	"github.com/cicalc/compound-calculator/internal/domain"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// TipAdvisor produces short investment tips for a solved result. With a nil
// client it always answers with fallback text, which keeps the calculator
// fully usable without an API key.
type TipAdvisor struct {
	client *genai.Client
	Model  string
	Logger calculation.Logger
}

// New creates a tip advisor. client may be nil.
func New(client *genai.Client) *TipAdvisor {
	return &TipAdvisor{
		client: client,
		Model:  DefaultModel,
		Logger: calculation.NopLogger{},
	}
}

// Tip returns commentary for the solved result. It never fails the caller's
// flow: on any generation error it logs at warn level and returns the
// fallback text.
func (a *TipAdvisor) Tip(ctx context.Context, result *domain.SolvedResult) string {
	if a.client == nil {
		return FallbackTip(result)
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.Model, genai.Text(a.buildPrompt(result)), nil)
	if err != nil {
		a.Logger.Warnf("tip generation failed, using fallback: %v", err)
		return FallbackTip(result)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		a.Logger.Warnf("tip generation returned no text, using fallback")
		return FallbackTip(result)
	}
	return text
}

// buildPrompt renders the prompt template with the resolved aggregates. The
// advisor only ever sees opaque numeric fields.
func (a *TipAdvisor) buildPrompt(result *domain.SolvedResult) string {
	var b strings.Builder
	b.WriteString("You are a personal-finance assistant. In at most three short sentences, ")
	b.WriteString("comment on this compound-interest projection and offer one practical tip. ")
	b.WriteString("Do not give regulated financial advice.\n\n")
	fmt.Fprintf(&b, "Initial capital: %.2f\n", result.Input.InitialCapital)
	fmt.Fprintf(&b, "Periodic contribution: %.2f\n", result.Input.PeriodicContribution)
	fmt.Fprintf(&b, "Annual rate: %.2f%%\n", result.Input.AnnualRatePercent)
	fmt.Fprintf(&b, "Duration: %.2f years (%s compounding)\n", result.Input.DurationYears, result.Input.Frequency)
	fmt.Fprintf(&b, "Future value: %.2f\n", result.Projection.FutureValue)
	fmt.Fprintf(&b, "Total contributions: %.2f\n", result.Projection.TotalContributions)
	fmt.Fprintf(&b, "Total interest: %.2f\n", result.Projection.TotalInterest)
	if result.TargetFutureValue != nil {
		fmt.Fprintf(&b, "Target future value: %.2f\n", *result.TargetFutureValue)
	}
	return b.String()
}
