package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

// rateHistoryRepository implements domain.RateHistoryRepository
type rateHistoryRepository struct {
	db *DB
}

// NewRateHistoryRepository creates a new rate history repository
func NewRateHistoryRepository(db *DB) domain.RateHistoryRepository {
	return &rateHistoryRepository{db: db}
}

// Add creates a new rate snapshot entry
func (r *rateHistoryRepository) Add(ctx context.Context, snapshot domain.ExchangeRateSnapshot) error {
	query := `
		INSERT INTO rate_snapshots (seq, rate, change_percent, captured_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query,
		int64(snapshot.Seq),
		snapshot.Rate.String(),
		snapshot.ChangePercent.String(),
		snapshot.CapturedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert rate snapshot: %w", err)
	}

	return nil
}

// GetLatest retrieves the most recently captured snapshot
func (r *rateHistoryRepository) GetLatest(ctx context.Context) (domain.ExchangeRateSnapshot, error) {
	query := `
		SELECT seq, rate, change_percent, captured_at
		FROM rate_snapshots
		ORDER BY captured_at DESC, id DESC
		LIMIT 1
	`

	var snap domain.ExchangeRateSnapshot
	var seq int64
	var rateStr, changeStr string

	err := r.db.QueryRowContext(ctx, query).Scan(&seq, &rateStr, &changeStr, &snap.CapturedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ExchangeRateSnapshot{}, domain.ErrNoRateSnapshot
		}
		return domain.ExchangeRateSnapshot{}, fmt.Errorf("failed to get latest rate snapshot: %w", err)
	}
	snap.Seq = uint64(seq)

	// Parse rate and change_percent (NUMERIC)
	if snap.Rate, err = decimal.NewFromString(rateStr); err != nil {
		return domain.ExchangeRateSnapshot{}, fmt.Errorf("failed to parse rate: %w", err)
	}
	if snap.ChangePercent, err = decimal.NewFromString(changeStr); err != nil {
		return domain.ExchangeRateSnapshot{}, fmt.Errorf("failed to parse change_percent: %w", err)
	}

	return snap, nil
}
