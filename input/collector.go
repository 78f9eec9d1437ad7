// Package input turns raw form or flag values into loan inputs.
package input

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"loan-amortizer/domain"
)

// Fields holds the raw text of every calculator field.
type Fields struct {
	OriginalAmount string
	Balance        string
	RatePercent    string
	TermYears      string
	StartDate      string
	TaxAmount      string
	TaxFrequency   string
	ExtraAmount    string
	ExtraFrequency string
	ExtraStartDate string
}

// Defaults returns the sample loan the calculator opens with.
func Defaults(now time.Time) Fields {
	month := domain.YearMonthOf(now).String()
	return Fields{
		OriginalAmount: "300000",
		Balance:        "275000",
		RatePercent:    "6.5",
		TermYears:      "30",
		StartDate:      month,
		TaxAmount:      "3600",
		TaxFrequency:   string(domain.FrequencyAnnual),
		ExtraAmount:    "200",
		ExtraFrequency: string(domain.FrequencyMonthly),
		ExtraStartDate: month,
	}
}

// Collect converts f into LoanInputs. It never fails: numbers that do not
// parse become 0 and dates that do not parse fall back to the current month
// (loan start) or to the loan start (extra payments start).
func Collect(f Fields, now time.Time) domain.LoanInputs {
	start, err := domain.ParseYearMonth(strings.TrimSpace(f.StartDate))
	if err != nil {
		start = domain.YearMonthOf(now)
	}
	extraStart, err := domain.ParseYearMonth(strings.TrimSpace(f.ExtraStartDate))
	if err != nil {
		extraStart = start
	}

	return domain.LoanInputs{
		OriginalAmount: Number(f.OriginalAmount),
		Principal:      Number(f.Balance),
		AnnualRate:     Percent(f.RatePercent),
		TermYears:      Number(f.TermYears),
		StartDate:      start,
		TaxAmount:      Number(f.TaxAmount),
		TaxFrequency:   frequencyOr(f.TaxFrequency, domain.FrequencyAnnual),
		ExtraAmount:    Number(f.ExtraAmount),
		ExtraFrequency: frequencyOr(f.ExtraFrequency, domain.FrequencyMonthly),
		ExtraStartDate: extraStart,
	}
}

var numberNoise = strings.NewReplacer("$", "", ",", "", "_", "", " ", "")

// Number parses a user-typed amount such as "$275,000.50". Anything that is
// not a finite number yields 0.
func Number(s string) float64 {
	s = strings.TrimSuffix(numberNoise.Replace(strings.TrimSpace(s)), "%")
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	v := d.InexactFloat64()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Percent parses a rate typed in percent and returns it as a fraction.
func Percent(s string) float64 {
	return Number(s) / 100
}

func frequencyOr(s string, fallback domain.Frequency) domain.Frequency {
	f, err := domain.ParseFrequency(s)
	if err != nil {
		return fallback
	}
	return f
}
