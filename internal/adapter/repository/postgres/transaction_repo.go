package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

// transactionRepository implements domain.TransactionRepository
type transactionRepository struct {
	db *DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *DB) domain.TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionColumns = `id, amount, currency, recipient, bank, account_suffix, status, date, fee, exchange_rate, received_amount, failure_reason`

// GetByID retrieves a transaction by its ID
func (r *transactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by ID: %w", err)
	}
	return tx, nil
}

// Create inserts a history record
func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	var failureReason sql.NullString
	if tx.FailureReason != "" {
		failureReason = sql.NullString{String: tx.FailureReason, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		tx.ID,
		tx.Amount.String(),
		tx.Currency,
		tx.Recipient,
		tx.Bank,
		tx.AccountSuffix,
		string(tx.Status),
		tx.Date,
		tx.Fee.String(),
		tx.ExchangeRate.String(),
		tx.ReceivedAmount.String(),
		failureReason,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// List retrieves all transactions, newest first
func (r *transactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var out []*domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		out = append(out, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return out, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var tx domain.Transaction
	var status string
	var amountStr, feeStr, rateStr, receivedStr string
	var failureReason sql.NullString

	err := row.Scan(
		&tx.ID,
		&amountStr,
		&tx.Currency,
		&tx.Recipient,
		&tx.Bank,
		&tx.AccountSuffix,
		&status,
		&tx.Date,
		&feeStr,
		&rateStr,
		&receivedStr,
		&failureReason,
	)
	if err != nil {
		return nil, err
	}

	tx.Status = domain.TransactionStatus(status)
	tx.FailureReason = failureReason.String

	// Parse NUMERIC columns
	for _, col := range []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"amount", amountStr, &tx.Amount},
		{"fee", feeStr, &tx.Fee},
		{"exchange_rate", rateStr, &tx.ExchangeRate},
		{"received_amount", receivedStr, &tx.ReceivedAmount},
	} {
		v, err := decimal.NewFromString(col.raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", col.name, err)
		}
		*col.dst = v
	}

	return &tx, nil
}
