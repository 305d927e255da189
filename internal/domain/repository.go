package domain

import (
	"context"
)

// TransactionRepository defines the interface for history record persistence operations
type TransactionRepository interface {
	// GetByID retrieves a transaction by its ID
	// Returns ErrTransactionNotFound when absent
	GetByID(ctx context.Context, id string) (*Transaction, error)

	// Create stores a new transaction record (used by seeding only)
	Create(ctx context.Context, tx *Transaction) error

	// List retrieves all transactions, newest first
	List(ctx context.Context) ([]*Transaction, error)
}

// RateHistoryRepository defines the interface for exchange rate snapshot persistence operations
type RateHistoryRepository interface {
	// Add appends an accepted snapshot
	Add(ctx context.Context, snapshot ExchangeRateSnapshot) error

	// GetLatest retrieves the most recent snapshot
	// Returns ErrNoRateSnapshot when none was recorded
	GetLatest(ctx context.Context) (ExchangeRateSnapshot, error)
}

// PreferenceStore is a durable key-value store for user preferences.
// A missing key is reported as ok=false, never as an error.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// RateSource supplies exchange rate readings
type RateSource interface {
	Fetch(ctx context.Context) (ExchangeRateSnapshot, error)
}

// SubmissionResult is what the payment backend answers for an accepted transfer
type SubmissionResult struct {
	TransactionID string // server-assigned, may be empty
}

// SubmissionService hands a completed draft to the payment backend.
// It is called once per user action; it has no retry policy of its own.
type SubmissionService interface {
	Submit(ctx context.Context, draft TransferDraft) (SubmissionResult, error)
}

// PlatformNotifier mirrors toasts to an out-of-app channel (desktop/OS/messenger)
type PlatformNotifier interface {
	Permission() PlatformPermission
	RequestPermission(ctx context.Context) (PlatformPermission, error)
	Notify(ctx context.Context, n Notification) error
}

// EventPublisher publishes integration events
type EventPublisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body interface{}) error
}
