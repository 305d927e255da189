// Package rates keeps the current USD→IDR snapshot fresh.
package rates

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/observability"
	"github.com/simaogato/kirimuang-backend/internal/usecase/notification"
)

const (
	TriggerInitial = "initial"
	TriggerTimer   = "timer"
	TriggerManual  = "manual"
)

// Options tunes the service; zero values take the defaults
type Options struct {
	Interval      time.Duration // periodic refresh, default 30s
	ManualLatency time.Duration // simulated latency of a manual refresh, default 1s, negative for none
	ManualBurst   int           // manual refreshes allowed back to back, default 1
	ManualEvery   time.Duration // refill of the manual budget, default 5s
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = 30 * time.Second
	}
	if o.ManualLatency < 0 {
		o.ManualLatency = 0
	} else if o.ManualLatency == 0 {
		o.ManualLatency = time.Second
	}
	if o.ManualBurst <= 0 {
		o.ManualBurst = 1
	}
	if o.ManualEvery <= 0 {
		o.ManualEvery = 5 * time.Second
	}
	return o
}

// Service owns the current snapshot. Every fetch takes a sequence number when it starts;
// a result that finishes after a newer one was accepted is discarded.
type Service struct {
	source  domain.RateSource
	history domain.RateHistoryRepository
	notices *notification.Notices

	opts    Options
	limiter *rate.Limiter
	seq     atomic.Uint64

	mu          sync.RWMutex
	current     domain.ExchangeRateSnapshot
	subscribers map[chan domain.ExchangeRateSnapshot]struct{}

	logger zerolog.Logger
}

// NewService creates a new rates service. history and notices are optional.
func NewService(
	source domain.RateSource,
	history domain.RateHistoryRepository,
	notices *notification.Notices,
	opts Options,
	logger zerolog.Logger,
) *Service {
	opts = opts.withDefaults()
	return &Service{
		source:      source,
		history:     history,
		notices:     notices,
		opts:        opts,
		limiter:     rate.NewLimiter(rate.Every(opts.ManualEvery), opts.ManualBurst),
		subscribers: make(map[chan domain.ExchangeRateSnapshot]struct{}),
		logger:      logger.With().Str("component", "rates").Logger(),
	}
}

// Current returns the accepted snapshot, zero before the first refresh
func (s *Service) Current() domain.ExchangeRateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Latest is Current with a fallback to the last recorded snapshot
func (s *Service) Latest(ctx context.Context) (domain.ExchangeRateSnapshot, error) {
	if cur := s.Current(); !cur.IsZero() {
		return cur, nil
	}
	if s.history == nil {
		return domain.ExchangeRateSnapshot{}, domain.ErrNoRateSnapshot
	}
	return s.history.GetLatest(ctx)
}

// Convert returns the IDR value of usd at the current rate
func (s *Service) Convert(usd decimal.Decimal) decimal.Decimal {
	return s.Current().Convert(usd)
}

// Refresh fetches a new reading right away. accepted is false when a newer reading won the race.
func (s *Service) Refresh(ctx context.Context) (snap domain.ExchangeRateSnapshot, accepted bool, err error) {
	return s.fetch(ctx, TriggerTimer, 0)
}

// ManualRefresh is the user-facing refresh: throttled, slowed down by the simulated latency,
// and announced with an "exchange rate updated" toast in lang.
func (s *Service) ManualRefresh(ctx context.Context, lang domain.Language) (domain.ExchangeRateSnapshot, error) {
	if !s.limiter.Allow() {
		observability.RateRefreshes.WithLabelValues(TriggerManual, "throttled").Inc()
		return s.Current(), domain.ErrRefreshThrottled
	}

	before := s.Current()
	snap, accepted, err := s.fetch(ctx, TriggerManual, s.opts.ManualLatency)
	if err != nil {
		return before, err
	}
	if !accepted {
		return s.Current(), nil
	}

	if s.notices != nil && !before.IsZero() {
		if _, err := s.notices.ExchangeRateUpdated(lang, before.Rate, snap.Rate); err != nil {
			s.logger.Warn().Err(err).Msg("failed to raise rate update notification")
		}
	}
	return snap, nil
}

// Run refreshes immediately and then on every interval until ctx is done
func (s *Service) Run(ctx context.Context) error {
	if _, _, err := s.fetch(ctx, TriggerInitial, 0); err != nil && ctx.Err() == nil {
		s.logger.Error().Err(err).Msg("initial exchange rate fetch failed")
	}

	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, _, err := s.fetch(ctx, TriggerTimer, 0); err != nil && ctx.Err() == nil {
				s.logger.Error().Err(err).Msg("periodic exchange rate fetch failed")
			}
		}
	}
}

// Subscribe delivers every accepted snapshot until cancel is called.
// A slow subscriber misses readings rather than blocking the refresh.
func (s *Service) Subscribe() (<-chan domain.ExchangeRateSnapshot, func()) {
	ch := make(chan domain.ExchangeRateSnapshot, 1)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, ch)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (s *Service) fetch(ctx context.Context, trigger string, latency time.Duration) (domain.ExchangeRateSnapshot, bool, error) {
	seq := s.seq.Add(1)

	if latency > 0 {
		timer := time.NewTimer(latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			observability.RateRefreshes.WithLabelValues(trigger, "error").Inc()
			return domain.ExchangeRateSnapshot{}, false, ctx.Err()
		case <-timer.C:
		}
	}

	snap, err := s.source.Fetch(ctx)
	if err != nil {
		observability.RateRefreshes.WithLabelValues(trigger, "error").Inc()
		return domain.ExchangeRateSnapshot{}, false, fmt.Errorf("failed to fetch exchange rate: %w", err)
	}
	snap.Seq = seq

	if !s.accept(snap) {
		observability.RateRefreshes.WithLabelValues(trigger, "stale").Inc()
		s.logger.Debug().Uint64("seq", seq).Str("trigger", trigger).Msg("discarded stale exchange rate")
		return snap, false, nil
	}

	observability.RateRefreshes.WithLabelValues(trigger, "accepted").Inc()
	rateValue, _ := snap.Rate.Float64()
	observability.CurrentRate.Set(rateValue)

	if s.history != nil {
		if err := s.history.Add(ctx, snap); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Warn().Err(err).Uint64("seq", seq).Msg("failed to record exchange rate snapshot")
		}
	}

	return snap, true, nil
}

func (s *Service) accept(snap domain.ExchangeRateSnapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Seq < s.current.Seq {
		return false
	}
	s.current = snap

	for ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
		}
	}
	return true
}
