package service

import (
	"math"

	"loan-amortizer/domain"
)

// LevelPayment is the fixed monthly principal and interest payment that
// retires principal in exactly periods payments at monthlyRate.
func LevelPayment(principal, monthlyRate float64, periods int) float64 {
	if monthlyRate == 0 {
		return principal / float64(periods)
	}
	// Same as P·r·(1+r)^n / ((1+r)^n − 1), but stays finite when (1+r)^n
	// overflows: the payment then degrades to interest only.
	return principal * (monthlyRate /
		(1 - math.Pow(1+monthlyRate, -float64(periods))))
}

// TotalPeriods converts a term in years to a whole number of monthly payments,
// rounding partial months up.
func TotalPeriods(termYears float64) int {
	return int(math.Ceil(termYears * MonthsPerYear))
}

// ValidInputs reports whether in can be amortized: principal and rate must
// be positive and finite, and the term positive and at most MaxTermMonths.
func ValidInputs(in domain.LoanInputs) bool {
	if !(in.Principal > 0) || !(in.AnnualRate > 0) || !(in.TermYears > 0) {
		return false
	}
	if math.IsInf(in.Principal, 0) || math.IsInf(in.AnnualRate, 0) {
		return false
	}
	return in.TermYears*MonthsPerYear <= MaxTermMonths
}

// ComputeSchedule walks the loan forward one month at a time and returns the
// full schedule with its totals. ok is false when ValidInputs rejects in;
// that means the inputs are incomplete, not that anything failed.
//
// When the scheduled principal plus the extra payment covers what is left, the
// last row pays exactly the balance plus interest from the scheduled portion
// and the extra payment for that month is dropped.
func ComputeSchedule(in domain.LoanInputs) (domain.ScheduleResult, bool) {
	if !ValidInputs(in) {
		return domain.ScheduleResult{}, false
	}

	monthlyTax := in.MonthlyTax()
	monthlyExtra := in.MonthlyExtra()

	monthlyRate := in.AnnualRate / MonthsPerYear
	totalPeriods := TotalPeriods(in.TermYears)
	payment := LevelPayment(in.Principal, monthlyRate, totalPeriods)
	maxPeriods := totalPeriods * MaxPeriodsFactor

	rows := make([]domain.AmortizationRow, 0, min(totalPeriods, maxPreallocatedRows))
	balance := in.Principal
	cumulativeInterest := 0.0

	// At least one row is produced, so a balance already within the
	// tolerance still gets a closing payment.
	for n := 1; n <= maxPeriods; n++ {
		interest := balance * monthlyRate
		principal := payment - interest
		date := in.StartDate.AddMonths(n - 1)

		extra := 0.0
		if monthlyExtra > 0 && !date.Before(in.ExtraStartDate) {
			extra = monthlyExtra
		}

		scheduled := payment
		if principal+extra >= balance-PaidOffTolerance {
			principal = balance
			extra = 0
			scheduled = balance + interest
		}

		ending := math.Max(0, balance-principal-extra)
		cumulativeInterest += interest

		rows = append(rows, domain.AmortizationRow{
			Number:             n,
			Date:               date,
			BeginningBalance:   balance,
			ScheduledPayment:   scheduled,
			ExtraPayment:       extra,
			TotalPayment:       scheduled + extra,
			Principal:          principal + extra,
			Interest:           interest,
			EndingBalance:      ending,
			CumulativeInterest: cumulativeInterest,
		})

		balance = ending
		if balance <= PaidOffTolerance {
			break
		}
	}

	totalInterest, totalPayments := 0.0, 0.0
	for _, row := range rows {
		totalInterest += row.Interest
		totalPayments += row.TotalPayment
	}
	totalTax := monthlyTax * float64(len(rows))

	return domain.ScheduleResult{
		OriginalAmount:      in.OriginalAmount,
		Principal:           in.Principal,
		MonthlyPayment:      payment,
		MonthlyTax:          monthlyTax,
		MonthlyExtra:        monthlyExtra,
		TotalMonthlyPayment: payment + monthlyTax + monthlyExtra,
		TotalInterest:       totalInterest,
		TotalTax:            totalTax,
		TotalPaid:           totalPayments + totalTax,
		PayoffDate:          in.StartDate.AddMonths(len(rows) - 1),
		Payoff:              domain.DurationFromMonths(len(rows)),
		ExtraStart:          in.ExtraStartDate,
		Converged:           balance <= PaidOffTolerance,
		Rows:                rows,
	}, true
}
