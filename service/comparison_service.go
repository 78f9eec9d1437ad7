package service

import (
	"context"
	"math"

	"loan-amortizer/domain"
	"loan-amortizer/logging"
)

type ComparisonService struct {
	amortization *AmortizationService
	logger       *logging.Logger
}

func NewComparisonService(amortization *AmortizationService, logger *logging.Logger) *ComparisonService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ComparisonService{
		amortization: amortization,
		logger:       logger.WithComponent(logging.ComponentComparison),
	}
}

// Compare calculates in next to the same loan without extra payments.
// ok is false when either schedule has no result.
func (s *ComparisonService) Compare(ctx context.Context, in domain.LoanInputs) (domain.Comparison, bool) {
	scenario, ok := s.amortization.Calculate(ctx, in)
	if !ok {
		return domain.Comparison{}, false
	}
	baseline, ok := s.amortization.Calculate(ctx, in.Baseline())
	if !ok {
		return domain.Comparison{}, false
	}

	cmp := Savings(scenario, baseline)

	s.logger.DebugContext(ctx, "Compared schedule with baseline",
		logging.FieldOperation, logging.OpCompare,
		"interest_saved", cmp.Savings.InterestSaved,
		"months_saved", cmp.Savings.MonthsSaved)

	return cmp, true
}

// Savings derives what scenario saves against baseline. Savings are never
// reported below zero.
func Savings(scenario, baseline domain.ScheduleResult) domain.Comparison {
	months := max(0, len(baseline.Rows)-len(scenario.Rows))

	return domain.Comparison{
		Scenario: scenario,
		Baseline: baseline,
		Savings: domain.Savings{
			InterestSaved:  math.Max(0, baseline.TotalInterest-scenario.TotalInterest),
			TotalPaidSaved: math.Max(0, baseline.TotalPaid-scenario.TotalPaid),
			MonthsSaved:    months,
			TimeSaved:      domain.DurationFromMonths(months),
		},
	}
}
