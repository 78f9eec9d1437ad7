package repository

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"loan-amortizer/domain"
)

const scheduleKeyPrefix = "schedule:v1:"

// ScheduleCache memoizes schedules by their exact input tuple on top of a
// byte-oriented CacheRepository. A nil store disables caching.
type ScheduleCache struct {
	store CacheRepository
}

func NewScheduleCache(store CacheRepository) *ScheduleCache {
	return &ScheduleCache{store: store}
}

// ScheduleKey hashes every field that influences the computed schedule.
// Floats are hashed by their bit pattern, so only bit-identical inputs share
// a key.
func ScheduleKey(in domain.LoanInputs) string {
	buf := make([]byte, 0, 128)
	for _, v := range []float64{
		in.OriginalAmount, in.Principal, in.AnnualRate, in.TermYears,
		in.TaxAmount, in.ExtraAmount,
	} {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	for _, ym := range []domain.YearMonth{in.StartDate, in.ExtraStartDate} {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(ym.Year)))
		buf = append(buf, byte(ym.Month))
	}
	buf = append(buf, frequencyByte(in.TaxFrequency), frequencyByte(in.ExtraFrequency))

	return scheduleKeyPrefix + strconv.FormatUint(xxhash.Sum64(buf), 16)
}

func frequencyByte(f domain.Frequency) byte {
	if f == domain.FrequencyAnnual {
		return 'a'
	}
	return 'm'
}

func (c *ScheduleCache) enabled() bool {
	return c != nil && c.store != nil
}

// Get returns the cached schedule for in. found is false on a miss; err is
// only set for backend or decoding failures.
func (c *ScheduleCache) Get(ctx context.Context, in domain.LoanInputs) (res domain.ScheduleResult, found bool, err error) {
	if !c.enabled() {
		return res, false, nil
	}

	raw, err := c.store.Get(ctx, ScheduleKey(in))
	if errors.Is(err, ErrCacheMiss) {
		return res, false, nil
	}
	if err != nil {
		return res, false, err
	}

	if err := json.Unmarshal(raw, &res); err != nil {
		return domain.ScheduleResult{}, false, fmt.Errorf("decode cached schedule: %w", err)
	}
	return res, true, nil
}

func (c *ScheduleCache) Set(ctx context.Context, in domain.LoanInputs, res domain.ScheduleResult) error {
	if !c.enabled() {
		return nil
	}

	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	return c.store.Set(ctx, ScheduleKey(in), raw)
}
