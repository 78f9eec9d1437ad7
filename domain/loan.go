package domain

import (
	"fmt"
	"strings"
)

type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyAnnual  Frequency = "annual"
)

// ParseFrequency accepts the usual spellings of monthly and annual.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "month", "mo", "m":
		return FrequencyMonthly, nil
	case "annual", "annually", "yearly", "year", "y", "a":
		return FrequencyAnnual, nil
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

// Monthly normalizes an amount paid at this frequency to a monthly figure.
func (f Frequency) Monthly(amount float64) float64 {
	if f == FrequencyAnnual {
		return amount / 12
	}
	return amount
}

// LoanInputs is the full set of values a schedule is computed from.
// It is passed by value and never mutated by the engine.
type LoanInputs struct {
	OriginalAmount float64   `json:"original_amount"`
	Principal      float64   `json:"principal"`
	AnnualRate     float64   `json:"annual_rate"` // fraction, 0.065 for 6.5%
	TermYears      float64   `json:"term_years"`
	StartDate      YearMonth `json:"start_date"`

	TaxAmount    float64   `json:"tax_amount"`
	TaxFrequency Frequency `json:"tax_frequency"`

	ExtraAmount    float64   `json:"extra_amount"`
	ExtraFrequency Frequency `json:"extra_frequency"`
	ExtraStartDate YearMonth `json:"extra_start_date"`
}

func (in LoanInputs) MonthlyTax() float64 {
	return in.TaxFrequency.Monthly(in.TaxAmount)
}

func (in LoanInputs) MonthlyExtra() float64 {
	return in.ExtraFrequency.Monthly(in.ExtraAmount)
}

func (in LoanInputs) HasExtraPayment() bool {
	return in.ExtraAmount > 0
}

// Baseline returns the same loan with extra payments removed.
func (in LoanInputs) Baseline() LoanInputs {
	in.ExtraAmount = 0
	in.ExtraFrequency = FrequencyMonthly
	in.ExtraStartDate = YearMonth{}
	return in
}

// AmortizationRow is one monthly payment of a schedule.
type AmortizationRow struct {
	Number             int       `json:"number"`
	Date               YearMonth `json:"date"`
	BeginningBalance   float64   `json:"beginning_balance"`
	ScheduledPayment   float64   `json:"scheduled_payment"` // level P&I; on the payoff row, balance plus interest
	ExtraPayment       float64   `json:"extra_payment"`
	TotalPayment       float64   `json:"total_payment"`
	Principal          float64   `json:"principal"` // scheduled principal plus extra
	Interest           float64   `json:"interest"`
	EndingBalance      float64   `json:"ending_balance"`
	CumulativeInterest float64   `json:"cumulative_interest"`
}

type PayoffDuration struct {
	Years  int `json:"years"`
	Months int `json:"months"`
}

func DurationFromMonths(months int) PayoffDuration {
	return PayoffDuration{Years: months / 12, Months: months % 12}
}

func (d PayoffDuration) TotalMonths() int {
	return d.Years*12 + d.Months
}

type ScheduleResult struct {
	OriginalAmount      float64           `json:"original_amount"`
	Principal           float64           `json:"principal"`
	MonthlyPayment      float64           `json:"monthly_payment"`
	MonthlyTax          float64           `json:"monthly_tax"`
	MonthlyExtra        float64           `json:"monthly_extra"`
	TotalMonthlyPayment float64           `json:"total_monthly_payment"`
	TotalInterest       float64           `json:"total_interest"`
	TotalTax            float64           `json:"total_tax"`
	TotalPaid           float64           `json:"total_paid"`
	PayoffDate          YearMonth         `json:"payoff_date"`
	Payoff              PayoffDuration    `json:"payoff"`
	ExtraStart          YearMonth         `json:"extra_start"`
	Converged           bool              `json:"converged"` // false when the iteration cap cut the schedule short
	Rows                []AmortizationRow `json:"rows"`
}

// PaidDown is how much of the original amount has already been repaid.
func (r ScheduleResult) PaidDown() float64 {
	return r.OriginalAmount - r.Principal
}
