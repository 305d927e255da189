package history

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/i18n"
)

// StatusAll disables the status filter
const StatusAll = "all"

// Filter narrows the history list
type Filter struct {
	Query  string // case-insensitive substring of recipient, id or bank
	Status string // "all", "" or a domain.TransactionStatus
}

// Stats summarises the history for the profile screen
type Stats struct {
	TotalTransactions int
	Completed         int
	TotalSent         decimal.Decimal // USD, completed transfers only
}

// HistoryService handles transaction history operations.
// The history is read-only sample data; wizard submissions never appear in it.
type HistoryService struct {
	TransactionRepo domain.TransactionRepository
	translator      *i18n.Translator
}

// NewHistoryService creates a new HistoryService instance
func NewHistoryService(transactionRepo domain.TransactionRepository, translator *i18n.Translator) *HistoryService {
	return &HistoryService{
		TransactionRepo: transactionRepo,
		translator:      translator,
	}
}

// List returns the matching transactions, newest first
func (s *HistoryService) List(ctx context.Context, filter Filter) ([]*domain.Transaction, error) {
	status := strings.ToLower(strings.TrimSpace(filter.Status))
	if status != "" && status != StatusAll && !domain.TransactionStatus(status).Valid() {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidFilter, filter.Status)
	}

	all, err := s.TransactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	out := make([]*domain.Transaction, 0, len(all))
	for _, tx := range all {
		if status != "" && status != StatusAll && string(tx.Status) != status {
			continue
		}
		if !tx.Matches(filter.Query) {
			continue
		}
		out = append(out, tx)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

// Recent returns at most n transactions, newest first
func (s *HistoryService) Recent(ctx context.Context, n int) ([]*domain.Transaction, error) {
	all, err := s.List(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}

// Get returns one transaction
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	tx, err := s.TransactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", id, err)
	}
	return tx, nil
}

// Stats counts every transaction and sums what was sent successfully
func (s *HistoryService) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.TransactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	stats := &Stats{TotalTransactions: len(all), TotalSent: decimal.Zero}
	for _, tx := range all {
		if tx.Status == domain.StatusCompleted {
			stats.Completed++
			stats.TotalSent = stats.TotalSent.Add(tx.Amount)
		}
	}
	return stats, nil
}
