package service

import (
	"context"

	"golang.org/x/sync/singleflight"

	"loan-amortizer/domain"
	"loan-amortizer/logging"
	"loan-amortizer/repository"
)

type AmortizationService struct {
	cache  *repository.ScheduleCache
	group  singleflight.Group
	logger *logging.Logger
}

// NewAmortizationService creates a service that memoizes schedules in cache.
// cache may be nil to always compute.
func NewAmortizationService(cache *repository.ScheduleCache, logger *logging.Logger) *AmortizationService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &AmortizationService{
		cache:  cache,
		logger: logger.WithComponent(logging.ComponentAmortization),
	}
}

type calculation struct {
	result domain.ScheduleResult
	ok     bool
}

// Calculate returns the schedule for in, from the cache when the exact same
// inputs were seen before. ok is false when the inputs are incomplete.
// Cache failures are logged and never affect the result.
func (s *AmortizationService) Calculate(ctx context.Context, in domain.LoanInputs) (domain.ScheduleResult, bool) {
	if !ValidInputs(in) {
		return domain.ScheduleResult{}, false
	}

	key := repository.ScheduleKey(in)
	v, _, _ := s.group.Do(key, func() (any, error) {
		return s.calculate(ctx, key, in), nil
	})
	c := v.(calculation)
	return c.result, c.ok
}

func (s *AmortizationService) calculate(ctx context.Context, key string, in domain.LoanInputs) calculation {
	cached, found, err := s.cache.Get(ctx, in)
	if err != nil {
		s.logger.WarnErr(ctx, "Failed to read cached schedule", err,
			logging.FieldOperation, logging.OpCacheGet, logging.FieldCacheKey, key)
	}
	if found {
		s.logger.DebugContext(ctx, "Schedule served from cache", logging.FieldCacheKey, key)
		return calculation{result: cached, ok: true}
	}

	result, ok := ComputeSchedule(in)
	if !ok {
		return calculation{}
	}

	s.logger.DebugContext(ctx, "Computed schedule",
		logging.FieldOperation, logging.OpCalculate,
		logging.FieldPayments, len(result.Rows),
		logging.FieldConverged, result.Converged)

	if !result.Converged {
		s.logger.WarnContext(ctx, "Schedule did not pay off within the iteration limit",
			logging.FieldOperation, logging.OpCalculate,
			logging.FieldPrincipal, in.Principal,
			logging.FieldRate, in.AnnualRate,
			logging.FieldTermYears, in.TermYears,
			logging.FieldPayments, len(result.Rows))
	}

	// Not critical if it fails
	if err := s.cache.Set(ctx, in, result); err != nil {
		s.logger.WarnErr(ctx, "Failed to cache schedule", err,
			logging.FieldOperation, logging.OpCacheSet, logging.FieldCacheKey, key)
	}

	return calculation{result: result, ok: true}
}
