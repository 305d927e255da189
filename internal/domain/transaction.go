package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the settlement state of a past transfer
type TransactionStatus string

const (
	StatusCompleted  TransactionStatus = "completed"
	StatusProcessing TransactionStatus = "processing"
	StatusFailed     TransactionStatus = "failed"
)

// Valid reports whether the status is one of the known values
func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusProcessing, StatusFailed:
		return true
	default:
		return false
	}
}

// Transaction is a read-only history record shown on the dashboard and the history list.
// The wizard never creates one.
type Transaction struct {
	ID             string
	Amount         decimal.Decimal // USD sent
	Currency       string
	Recipient      string
	Bank           string
	AccountSuffix  string // masked, e.g. "****7890"
	Status         TransactionStatus
	Date           time.Time
	Fee            decimal.Decimal // USD
	ExchangeRate   decimal.Decimal // IDR per USD at send time
	ReceivedAmount decimal.Decimal // IDR, zero when failed
	FailureReason  string
}

// Validate ensures the record is internally consistent
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return errors.New("transaction id cannot be empty")
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("transaction amount must be positive")
	}
	if t.Fee.LessThan(decimal.Zero) {
		return errors.New("transaction fee cannot be negative")
	}
	if !t.Status.Valid() {
		return errors.New("transaction status must be completed, processing or failed")
	}
	if t.Status == StatusFailed && t.FailureReason == "" {
		return errors.New("failed transaction must have a failure reason")
	}
	if t.Status != StatusFailed && t.FailureReason != "" {
		return errors.New("only failed transactions carry a failure reason")
	}
	return nil
}

// TotalCost is what the sender paid: amount plus fee
func (t *Transaction) TotalCost() decimal.Decimal {
	return t.Amount.Add(t.Fee)
}

// Matches reports whether query is a case-insensitive substring of the recipient, id or bank.
// An empty query matches everything.
func (t *Transaction) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Recipient), q) ||
		strings.Contains(strings.ToLower(t.ID), q) ||
		strings.Contains(strings.ToLower(t.Bank), q)
}

// MaskAccount keeps the last four digits of an account number
func MaskAccount(account string) string {
	if len(account) <= 4 {
		return "****" + account
	}
	return "****" + account[len(account)-4:]
}
