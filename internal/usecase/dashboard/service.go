package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/money"
	"github.com/simaogato/kirimuang-backend/internal/usecase/history"
	"github.com/simaogato/kirimuang-backend/internal/usecase/preferences"
)

// RecentCount is how many transactions the dashboard shows
const RecentCount = 3

// HiddenBalance replaces the balance until the user reveals it
const HiddenBalance = "••••••"

// MockBalance is the demo account balance in USD
var MockBalance = decimal.RequireFromString("2450.00")

// RateReader is the part of the rates service the dashboard needs
type RateReader interface {
	Current() domain.ExchangeRateSnapshot
	Latest(ctx context.Context) (domain.ExchangeRateSnapshot, error)
}

// SummaryResult represents everything the home screen shows
type SummaryResult struct {
	Rate            domain.ExchangeRateSnapshot
	Recent          []*domain.Transaction
	Balance         string
	BalanceVisible  bool
	NeedsOnboarding bool
	Language        domain.Language
}

// CalculationResult is the output of the exchange rate calculator
type CalculationResult struct {
	USD  decimal.Decimal
	IDR  decimal.Decimal
	Rate decimal.Decimal
}

// DashboardService handles dashboard-related operations
type DashboardService struct {
	History     *history.HistoryService
	Rates       RateReader
	Preferences *preferences.Service
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	historyService *history.HistoryService,
	rates RateReader,
	prefs *preferences.Service,
) *DashboardService {
	return &DashboardService{
		History:     historyService,
		Rates:       rates,
		Preferences: prefs,
	}
}

// GetSummary assembles the home screen
// Logic:
//   - Rate: the current snapshot, or the last recorded one
//   - Recent: the three newest history records
//   - Balance: masked unless showBalance is set
//   - NeedsOnboarding: true until onboarding was completed once
func (s *DashboardService) GetSummary(ctx context.Context, showBalance bool) (*SummaryResult, error) {
	// 1. Current exchange rate
	snap, err := s.Rates.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}

	// 2. Recent transactions
	recent, err := s.History.Recent(ctx, RecentCount)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}

	// 3. Preferences
	done, err := s.Preferences.OnboardingCompleted(ctx)
	if err != nil {
		return nil, err
	}
	lang, err := s.Preferences.Language(ctx)
	if err != nil {
		return nil, err
	}

	balance := HiddenBalance
	if showBalance {
		balance = money.USD(MockBalance)
	}

	return &SummaryResult{
		Rate:            snap,
		Recent:          recent,
		Balance:         balance,
		BalanceVisible:  showBalance,
		NeedsOnboarding: !done,
		Language:        lang,
	}, nil
}

// Calculate converts a USD amount for the calculator. Unparseable or negative input yields zero.
func (s *DashboardService) Calculate(usd string) CalculationResult {
	amount, err := decimal.NewFromString(usd)
	if err != nil || amount.IsNegative() {
		amount = decimal.Zero
	}
	snap := s.Rates.Current()

	return CalculationResult{USD: amount, IDR: snap.Convert(amount), Rate: snap.Rate}
}
