//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

var db *DB

// TestMain connects to the database named by DB_CONN_STR (or DB_* parts) and applies the schema
func TestMain(m *testing.M) {
	var err error
	db, err = NewDB(getDBConnectionString())
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	if err := db.Migrate(context.Background()); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}

	code := m.Run()
	db.Close()
	os.Exit(code)
}

func TestTransactionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(db)

	id := "TXN-IT-" + uuid.NewString()
	tx := &domain.Transaction{
		ID:             id,
		Amount:         decimal.NewFromInt(400),
		Currency:       "USD",
		Recipient:      "Fitri Rahmawati",
		Bank:           "Bank Danamon",
		AccountSuffix:  "****5555",
		Status:         domain.StatusFailed,
		Date:           time.Now().UTC().Truncate(time.Microsecond),
		Fee:            domain.TransferFee,
		ExchangeRate:   decimal.NewFromInt(15782),
		ReceivedAmount: decimal.Zero,
		FailureReason:  "Nomor rekening tidak valid",
	}
	require.NoError(t, repo.Create(ctx, tx))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(got.Amount))
	assert.Equal(t, tx.FailureReason, got.FailureReason)
	assert.True(t, tx.Date.Equal(got.Date))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, list)

	_, err = repo.GetByID(ctx, "TXN-IT-missing")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestRateHistoryRepository_Latest(t *testing.T) {
	ctx := context.Background()
	repo := NewRateHistoryRepository(db)

	now := time.Now().UTC()
	require.NoError(t, repo.Add(ctx, domain.ExchangeRateSnapshot{Rate: decimal.NewFromInt(15770), ChangePercent: decimal.RequireFromString("-0.25"), CapturedAt: now, Seq: 1}))
	require.NoError(t, repo.Add(ctx, domain.ExchangeRateSnapshot{Rate: decimal.NewFromInt(15790), ChangePercent: decimal.RequireFromString("0.5"), CapturedAt: now.Add(time.Second), Seq: 2}))

	latest, err := repo.GetLatest(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15790).Equal(latest.Rate))
	assert.Equal(t, uint64(2), latest.Seq)
}

func TestPreferenceStore_Upsert(t *testing.T) {
	ctx := context.Background()
	store := NewPreferenceStore(db)
	key := "it_" + uuid.NewString()

	_, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, key, "id"))
	require.NoError(t, store.Set(ctx, key, "en"))

	v, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "en", v)
}

func getDBConnectionString() string {
	connStr := os.Getenv("DB_CONN_STR")
	if connStr != "" {
		return connStr
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}

	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}

	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		password = "postgres"
	}

	dbname := os.Getenv("DB_NAME")
	if dbname == "" {
		dbname = "kirimuang"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}
