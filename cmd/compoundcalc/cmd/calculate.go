package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"github.com/cicalc/compound-calculator/internal/advisor"
	"github.com/cicalc/compound-calculator/internal/calculation"
	"github.com/cicalc/compound-calculator/internal/config"
	"github.com/cicalc/compound-calculator/internal/domain"
	"github.com/cicalc/compound-calculator/internal/output"
)

var (
	inputFile string
	format    string
	withTip   bool

	flagMode         string
	flagFrequency    string
	flagCapital      float64
	flagContribution float64
	flagRate         float64
	flagYears        float64
	flagTarget       float64
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Solve a scenario and print the projection",
	Long: `Solve a scenario from a YAML file (--input) or from flags, then print
the amortization schedule and aggregates in the chosen format.`,
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "scenario YAML file")
	calculateCmd.Flags().StringVarP(&format, "format", "f", "console", "output format: "+strings.Join(output.FormatterNames(), ", "))
	calculateCmd.Flags().BoolVar(&withTip, "tip", false, "append AI-generated commentary (uses fallback text without GEMINI_API_KEY)")

	calculateCmd.Flags().StringVar(&flagMode, "mode", string(domain.ModeFutureValue), "calculation mode")
	calculateCmd.Flags().StringVar(&flagFrequency, "frequency", "monthly", "compounding frequency")
	calculateCmd.Flags().Float64Var(&flagCapital, "capital", 0, "initial capital")
	calculateCmd.Flags().Float64Var(&flagContribution, "contribution", 0, "periodic contribution")
	calculateCmd.Flags().Float64Var(&flagRate, "rate", 0, "annual rate percent")
	calculateCmd.Flags().Float64Var(&flagYears, "years", 0, "duration in years")
	calculateCmd.Flags().Float64Var(&flagTarget, "target", 0, "target future value")

	rootCmd.AddCommand(calculateCmd)
}

func runCalculate(cobraCmd *cobra.Command, _ []string) error {
	parser := config.NewInputParser()

	var input *config.CalculationInput
	var err error
	if inputFile != "" {
		input, err = parser.LoadFromFile(inputFile)
		if err != nil {
			return err
		}
	} else {
		input = inputFromFlags(cobraCmd)
		if err := parser.Validate(input); err != nil {
			return err
		}
	}

	request, err := parser.BuildRequest(input)
	if err != nil {
		return err
	}

	engine := calculation.NewEngine()
	engine.SetLogger(newStderrLogger())

	result, warnings, err := engine.Solve(request)
	if err != nil {
		return err
	}

	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(output.FormatterNames(), ", "))
	}

	data, err := formatter.Format(output.BuildReport(result, warnings))
	if err != nil {
		return err
	}
	os.Stdout.Write(data)

	if withTip {
		fmt.Println()
		fmt.Println(tipFor(cobraCmd.Context(), result))
	}
	return nil
}

// inputFromFlags builds a flat input from the flags the user actually set, so
// an untouched flag reads as absent rather than zero.
func inputFromFlags(cobraCmd *cobra.Command) *config.CalculationInput {
	input := &config.CalculationInput{
		Mode:      flagMode,
		Frequency: flagFrequency,
	}
	if cobraCmd.Flags().Changed("capital") {
		input.InitialCapital = &flagCapital
	}
	if cobraCmd.Flags().Changed("contribution") {
		input.PeriodicContribution = &flagContribution
	}
	if cobraCmd.Flags().Changed("rate") {
		input.AnnualRatePercent = &flagRate
	}
	if cobraCmd.Flags().Changed("years") {
		input.DurationYears = &flagYears
	}
	if cobraCmd.Flags().Changed("target") {
		input.TargetFutureValue = &flagTarget
	}
	return input
}

func tipFor(ctx context.Context, result *domain.SolvedResult) string {
	if ctx == nil {
		ctx = context.Background()
	}
	tipAdvisor := advisor.New(newGenAIClient(ctx))
	tipAdvisor.Logger = newStderrLogger()
	return tipAdvisor.Tip(ctx, result)
}

// newGenAIClient returns nil when no API key is configured; the advisor then
// falls back to canned text.
func newGenAIClient(ctx context.Context) *genai.Client {
	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		return nil
	}
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		newStderrLogger().Warnf("genai client unavailable: %v", err)
		return nil
	}
	return client
}
