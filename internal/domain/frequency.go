package domain

// CompoundingFrequency identifies how often interest is compounded within a year.
type CompoundingFrequency string

const (
	FrequencyAnnually     CompoundingFrequency = "annually"
	FrequencySemiannually CompoundingFrequency = "semiannually"
	FrequencyQuarterly    CompoundingFrequency = "quarterly"
	FrequencyMonthly      CompoundingFrequency = "monthly"
	FrequencySemimonthly  CompoundingFrequency = "semimonthly"
	FrequencyBiweekly     CompoundingFrequency = "biweekly"
	FrequencyWeekly       CompoundingFrequency = "weekly"
	FrequencyDaily        CompoundingFrequency = "daily"
	FrequencyContinuously CompoundingFrequency = "continuously"
)

// periodsPerYear maps each discrete frequency to its compounding interval count.
var periodsPerYear = map[CompoundingFrequency]int{
	FrequencyAnnually:     1,
	FrequencySemiannually: 2,
	FrequencyQuarterly:    4,
	FrequencyMonthly:      12,
	FrequencySemimonthly:  24,
	FrequencyBiweekly:     26,
	FrequencyWeekly:       52,
	FrequencyDaily:        365,
}

// PeriodsPerYear returns the number of compounding periods in a year.
// ok is false for continuous compounding, which has no discrete period count
// and must take the closed-form exponential growth path instead.
func (f CompoundingFrequency) PeriodsPerYear() (periods int, ok bool) {
	p, ok := periodsPerYear[f]
	return p, ok
}

// IsContinuous reports whether the frequency selects continuous compounding.
func (f CompoundingFrequency) IsContinuous() bool {
	return f == FrequencyContinuously
}

// IsValid reports whether the frequency is one of the supported values.
func (f CompoundingFrequency) IsValid() bool {
	if f == FrequencyContinuously {
		return true
	}
	_, ok := periodsPerYear[f]
	return ok
}

// Frequencies lists all supported compounding frequencies in ascending
// period-count order, with continuous last.
func Frequencies() []CompoundingFrequency {
	return []CompoundingFrequency{
		FrequencyAnnually,
		FrequencySemiannually,
		FrequencyQuarterly,
		FrequencyMonthly,
		FrequencySemimonthly,
		FrequencyBiweekly,
		FrequencyWeekly,
		FrequencyDaily,
		FrequencyContinuously,
	}
}
