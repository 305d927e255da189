package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

func sampleTx(id string, daysAgo int) *domain.Transaction {
	return &domain.Transaction{
		ID:             id,
		Amount:         decimal.NewFromInt(100),
		Currency:       "USD",
		Recipient:      "Budi Santoso",
		Bank:           "Bank BNI",
		AccountSuffix:  "****9876",
		Status:         domain.StatusCompleted,
		Date:           time.Now().AddDate(0, 0, -daysAgo),
		Fee:            decimal.RequireFromString("4.99"),
		ExchangeRate:   decimal.NewFromInt(15785),
		ReceivedAmount: decimal.NewFromInt(1578500),
	}
}

func TestTransactionRepository_CreateGetList(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()

	require.NoError(t, repo.Create(ctx, sampleTx("TXN-OLD", 10)))
	require.NoError(t, repo.Create(ctx, sampleTx("TXN-NEW", 1)))

	got, err := repo.GetByID(ctx, "TXN-OLD")
	require.NoError(t, err)
	assert.Equal(t, "TXN-OLD", got.ID)

	got.Recipient = "changed"
	again, _ := repo.GetByID(ctx, "TXN-OLD")
	assert.Equal(t, "Budi Santoso", again.Recipient, "callers get copies")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "TXN-NEW", list[0].ID)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	assert.Error(t, repo.Create(ctx, sampleTx("TXN-NEW", 1)), "duplicate id")
}

func TestTransactionRepository_RejectsInvalid(t *testing.T) {
	tx := sampleTx("TXN-BAD", 1)
	tx.Status = "lost"

	assert.Error(t, NewTransactionRepository().Create(context.Background(), tx))
}

func TestRateHistoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRateHistoryRepository(2)

	_, err := repo.GetLatest(ctx)
	assert.ErrorIs(t, err, domain.ErrNoRateSnapshot)

	for seq := uint64(1); seq <= 3; seq++ {
		require.NoError(t, repo.Add(ctx, domain.ExchangeRateSnapshot{Rate: decimal.NewFromInt(15780), Seq: seq}))
	}

	latest, err := repo.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), latest.Seq)
	assert.Len(t, repo.snaps, 2)
}

func TestPreferenceStore_MissingIsNotAnError(t *testing.T) {
	ctx := context.Background()
	store := NewPreferenceStore()

	_, ok, err := store.Get(ctx, domain.PrefLanguage)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, domain.PrefLanguage, "en"))
	v, ok, err := store.Get(ctx, domain.PrefLanguage)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "en", v)
}
