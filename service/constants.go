package service

const (
	MonthsPerYear = 12

	// Remaining balance at or below which a loan counts as paid off.
	PaidOffTolerance = 0.01

	// The schedule is cut after this many times the nominal number of
	// payments; reaching it means the loan never amortizes.
	MaxPeriodsFactor = 2

	// Longest accepted term. Together with MaxPeriodsFactor it bounds a
	// schedule to 2400 rows.
	MaxTermMonths = 100 * MonthsPerYear

	maxPreallocatedRows = 50 * MonthsPerYear
)
