package rates

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

// BaseRate is the IDR per USD the simulated source fluctuates around
const BaseRate = 15780

// RandomSource simulates a rate feed: BaseRate ± 50 IDR and a change between -1% and +1%.
type RandomSource struct {
	rnd *rand.Rand
	now func() time.Time
}

var _ domain.RateSource = (*RandomSource)(nil)

// NewRandomSource uses rnd when given, otherwise the process-wide generator
func NewRandomSource(rnd *rand.Rand) *RandomSource {
	return &RandomSource{rnd: rnd, now: time.Now}
}

func (s *RandomSource) Fetch(ctx context.Context) (domain.ExchangeRateSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.ExchangeRateSnapshot{}, err
	}

	offset := int64(s.float()*100) - 50
	change := (s.float() - 0.5) * 2

	return domain.ExchangeRateSnapshot{
		Rate:          decimal.NewFromInt(BaseRate + offset),
		ChangePercent: decimal.NewFromFloat(change).Round(4),
		CapturedAt:    s.now(),
	}, nil
}

func (s *RandomSource) float() float64 {
	if s.rnd != nil {
		return s.rnd.Float64()
	}
	return rand.Float64()
}
