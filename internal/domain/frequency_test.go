package domain

import "testing"

func TestPeriodsPerYear_Mapping(t *testing.T) {
	cases := []struct {
		frequency CompoundingFrequency
		periods   int
	}{
		{FrequencyAnnually, 1},
		{FrequencySemiannually, 2},
		{FrequencyQuarterly, 4},
		{FrequencyMonthly, 12},
		{FrequencySemimonthly, 24},
		{FrequencyBiweekly, 26},
		{FrequencyWeekly, 52},
		{FrequencyDaily, 365},
	}

	for _, tc := range cases {
		periods, ok := tc.frequency.PeriodsPerYear()
		if !ok {
			t.Fatalf("%s: expected a discrete period count", tc.frequency)
		}
		if periods != tc.periods {
			t.Fatalf("%s: expected %d periods per year, got %d", tc.frequency, tc.periods, periods)
		}
	}
}

func TestPeriodsPerYear_ContinuousSentinel(t *testing.T) {
	if _, ok := FrequencyContinuously.PeriodsPerYear(); ok {
		t.Fatalf("continuous compounding must not report a discrete period count")
	}
	if !FrequencyContinuously.IsContinuous() {
		t.Fatalf("expected IsContinuous to be true")
	}
	if !FrequencyContinuously.IsValid() {
		t.Fatalf("continuous must still be a valid frequency")
	}
}

func TestFrequency_Validity(t *testing.T) {
	for _, f := range Frequencies() {
		if !f.IsValid() {
			t.Fatalf("%s should be valid", f)
		}
	}
	if CompoundingFrequency("hourly").IsValid() {
		t.Fatalf("unknown frequency should be invalid")
	}
}

func TestCalculationMode_Validity(t *testing.T) {
	for _, m := range []CalculationMode{ModeFutureValue, ModeContributionAmount, ModeInterestRate, ModeInvestmentDuration} {
		if !m.IsValid() {
			t.Fatalf("%s should be valid", m)
		}
	}
	if CalculationMode("net_worth").IsValid() {
		t.Fatalf("unknown mode should be invalid")
	}
}

func TestRequest_Modes(t *testing.T) {
	cases := []struct {
		request Request
		mode    CalculationMode
	}{
		{FutureValueRequest{}, ModeFutureValue},
		{ContributionRequest{}, ModeContributionAmount},
		{RateRequest{}, ModeInterestRate},
		{DurationRequest{}, ModeInvestmentDuration},
	}
	for _, tc := range cases {
		if tc.request.Mode() != tc.mode {
			t.Fatalf("expected mode %s, got %s", tc.mode, tc.request.Mode())
		}
	}
}
