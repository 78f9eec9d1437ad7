package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"loan-amortizer/domain"
)

type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("backend down")
}

func (failingCache) Set(context.Context, string, []byte) error {
	return errors.New("backend down")
}

func sampleInputs() domain.LoanInputs {
	start := domain.NewYearMonth(2025, time.March)
	return domain.LoanInputs{
		OriginalAmount: 300000,
		Principal:      275000,
		AnnualRate:     0.065,
		TermYears:      30,
		StartDate:      start,
		TaxAmount:      3600,
		TaxFrequency:   domain.FrequencyAnnual,
		ExtraAmount:    200,
		ExtraFrequency: domain.FrequencyMonthly,
		ExtraStartDate: start,
	}
}

func TestScheduleKey(t *testing.T) {
	in := sampleInputs()
	key := ScheduleKey(in)

	if key != ScheduleKey(sampleInputs()) {
		t.Fatalf("expected stable key")
	}

	changed := []func(*domain.LoanInputs){
		func(in *domain.LoanInputs) { in.Principal += 0.01 },
		func(in *domain.LoanInputs) { in.AnnualRate = 0.0651 },
		func(in *domain.LoanInputs) { in.TermYears = 15 },
		func(in *domain.LoanInputs) { in.TaxFrequency = domain.FrequencyMonthly },
		func(in *domain.LoanInputs) { in.ExtraStartDate = in.ExtraStartDate.AddMonths(1) },
		func(in *domain.LoanInputs) { in.StartDate = in.StartDate.AddMonths(-12) },
		func(in *domain.LoanInputs) { in.OriginalAmount = 0 },
	}
	for i, mutate := range changed {
		other := sampleInputs()
		mutate(&other)
		if ScheduleKey(other) == key {
			t.Errorf("case %d: expected a different key", i)
		}
	}

	blank := sampleInputs()
	blank.ExtraFrequency = ""
	if ScheduleKey(blank) != key {
		t.Errorf("an unset frequency behaves as monthly and should share the key")
	}
}

func TestScheduleCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := NewScheduleCache(NewMemoryCache(8, time.Hour))
	in := sampleInputs()

	if _, found, err := cache.Get(ctx, in); found || err != nil {
		t.Fatalf("expected clean miss, got found=%v err=%v", found, err)
	}

	want := domain.ScheduleResult{
		Principal:      in.Principal,
		MonthlyPayment: 1738.1870646056548,
		TotalInterest:  0.1 + 0.2,
		PayoffDate:     in.StartDate.AddMonths(270),
		Payoff:         domain.DurationFromMonths(271),
		ExtraStart:     in.ExtraStartDate,
		Converged:      true,
		Rows: []domain.AmortizationRow{
			{Number: 1, Date: in.StartDate, BeginningBalance: 275000, Interest: 1489.5833333333333},
		},
	}
	if err := cache.Set(ctx, in, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, found, err := cache.Get(ctx, in)
	if err != nil || !found {
		t.Fatalf("expected hit, got found=%v err=%v", found, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("cached schedule differs:\n got %+v\nwant %+v", got, want)
	}
}

func TestScheduleCache_Disabled(t *testing.T) {
	var cache *ScheduleCache
	ctx := context.Background()

	if err := cache.Set(ctx, sampleInputs(), domain.ScheduleResult{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found, err := cache.Get(ctx, sampleInputs()); found || err != nil {
		t.Errorf("expected disabled cache to miss silently")
	}
}

func TestScheduleCache_BackendErrors(t *testing.T) {
	ctx := context.Background()
	cache := NewScheduleCache(failingCache{})

	if _, _, err := cache.Get(ctx, sampleInputs()); err == nil {
		t.Errorf("expected get error")
	}
	if err := cache.Set(ctx, sampleInputs(), domain.ScheduleResult{}); err == nil {
		t.Errorf("expected set error")
	}
}

func TestScheduleCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCache(8, 0)
	in := sampleInputs()
	store.Set(ctx, ScheduleKey(in), []byte("{not json"))

	_, found, err := NewScheduleCache(store).Get(ctx, in)
	if err == nil || found {
		t.Errorf("expected decode error, got found=%v err=%v", found, err)
	}
}
