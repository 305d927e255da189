package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

// SampleTransaction defines a history row to be seeded. Dates are relative to the seeding time.
type SampleTransaction struct {
	ID            string
	Amount        string
	Recipient     string
	Bank          string
	AccountSuffix string
	Status        domain.TransactionStatus
	DaysAgo       int
	ExchangeRate  int64
	Received      int64
	FailureReason string
}

// SampleHistory is the demo history shown on the dashboard and the history screen
var SampleHistory = []SampleTransaction{
	{ID: "TXN-2024-008", Amount: "500", Recipient: "Ibu Siti Aminah", Bank: "Bank Mandiri", AccountSuffix: "****7890", Status: domain.StatusCompleted, DaysAgo: 1, ExchangeRate: 15780, Received: 7890000},
	{ID: "TXN-2024-007", Amount: "300", Recipient: "Bapak Ahmad Hidayat", Bank: "Bank BCA", AccountSuffix: "****5432", Status: domain.StatusProcessing, DaysAgo: 2, ExchangeRate: 15775, Received: 4732500},
	{ID: "TXN-2024-006", Amount: "750", Recipient: "Sari Dewi Lestari", Bank: "Bank BRI", AccountSuffix: "****1234", Status: domain.StatusCompleted, DaysAgo: 5, ExchangeRate: 15790, Received: 11842500},
	{ID: "TXN-2024-005", Amount: "200", Recipient: "Budi Santoso", Bank: "Bank BNI", AccountSuffix: "****9876", Status: domain.StatusCompleted, DaysAgo: 10, ExchangeRate: 15785, Received: 3157000},
	{ID: "TXN-2024-004", Amount: "400", Recipient: "Fitri Rahmawati", Bank: "Bank Danamon", AccountSuffix: "****5555", Status: domain.StatusFailed, DaysAgo: 12, ExchangeRate: 15782, Received: 0, FailureReason: "Nomor rekening tidak valid"},
	{ID: "TXN-2024-003", Amount: "600", Recipient: "Rina Kusuma", Bank: "Bank CIMB Niaga", AccountSuffix: "****2468", Status: domain.StatusCompleted, DaysAgo: 15, ExchangeRate: 15788, Received: 9472800},
}

// HistorySeeder handles seeding of the demo transaction history
type HistorySeeder struct {
	repo domain.TransactionRepository
	now  func() time.Time
}

// NewHistorySeeder creates a new HistorySeeder instance
func NewHistorySeeder(repo domain.TransactionRepository) *HistorySeeder {
	return &HistorySeeder{
		repo: repo,
		now:  time.Now,
	}
}

// Seed ensures every sample transaction exists in the repository
// If a transaction doesn't exist, it creates it
func (s *HistorySeeder) Seed(ctx context.Context) error {
	now := s.now()

	for _, sample := range SampleHistory {
		// Try to get the transaction by ID
		_, err := s.repo.GetByID(ctx, sample.ID)
		if err == nil {
			// Already seeded, no action needed
			continue
		}
		if !errors.Is(err, domain.ErrTransactionNotFound) {
			return fmt.Errorf("failed to look up sample transaction %s: %w", sample.ID, err)
		}

		tx := sample.Transaction(now)

		// Validate before creating
		if err := tx.Validate(); err != nil {
			return err
		}

		if err := s.repo.Create(ctx, tx); err != nil {
			return fmt.Errorf("failed to seed transaction %s: %w", sample.ID, err)
		}
	}

	return nil
}

// Transaction builds the domain record dated relative to now
func (st SampleTransaction) Transaction(now time.Time) *domain.Transaction {
	return &domain.Transaction{
		ID:             st.ID,
		Amount:         decimal.RequireFromString(st.Amount),
		Currency:       "USD",
		Recipient:      st.Recipient,
		Bank:           st.Bank,
		AccountSuffix:  st.AccountSuffix,
		Status:         st.Status,
		Date:           now.Add(-time.Duration(st.DaysAgo) * 24 * time.Hour),
		Fee:            domain.TransferFee,
		ExchangeRate:   decimal.NewFromInt(st.ExchangeRate),
		ReceivedAmount: decimal.NewFromInt(st.Received),
		FailureReason:  st.FailureReason,
	}
}
