package memory

import (
	"context"
	"sync"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

// RateHistoryRepository keeps the last accepted snapshots, bounded by capacity
type RateHistoryRepository struct {
	mu       sync.Mutex
	capacity int
	snaps    []domain.ExchangeRateSnapshot
}

// NewRateHistoryRepository keeps at most capacity snapshots (100 when capacity <= 0)
func NewRateHistoryRepository(capacity int) *RateHistoryRepository {
	if capacity <= 0 {
		capacity = 100
	}
	return &RateHistoryRepository{capacity: capacity}
}

func (r *RateHistoryRepository) Add(ctx context.Context, snapshot domain.ExchangeRateSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snaps = append(r.snaps, snapshot)
	if over := len(r.snaps) - r.capacity; over > 0 {
		r.snaps = append([]domain.ExchangeRateSnapshot(nil), r.snaps[over:]...)
	}
	return nil
}

// GetLatest returns the snapshot with the highest sequence number
func (r *RateHistoryRepository) GetLatest(ctx context.Context) (domain.ExchangeRateSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.snaps) == 0 {
		return domain.ExchangeRateSnapshot{}, domain.ErrNoRateSnapshot
	}
	latest := r.snaps[0]
	for _, s := range r.snaps[1:] {
		if s.Seq >= latest.Seq {
			latest = s
		}
	}
	return latest, nil
}
