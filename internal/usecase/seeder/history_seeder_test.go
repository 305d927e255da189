package seeder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func TestHistorySeeder_Seed_TransactionsMissing(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTransactionRepository)
	seeder := NewHistorySeeder(mockRepo)
	now := time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC)
	seeder.now = func() time.Time { return now }

	// Mock GetByID to return "not found" for every sample
	mockRepo.On("GetByID", ctx, mock.AnythingOfType("string")).Return(nil, domain.ErrTransactionNotFound)

	// The failed sample carries its reason and no received amount
	mockRepo.On("Create", ctx, mock.MatchedBy(func(tx *domain.Transaction) bool {
		return tx.ID == "TXN-2024-004" &&
			tx.Status == domain.StatusFailed &&
			tx.FailureReason == "Nomor rekening tidak valid" &&
			tx.ReceivedAmount.IsZero()
	})).Return(nil).Once()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(tx *domain.Transaction) bool {
		return tx.ID == "TXN-2024-008" &&
			tx.Amount.Equal(decimal.NewFromInt(500)) &&
			tx.ReceivedAmount.Equal(decimal.NewFromInt(7890000)) &&
			tx.Date.Equal(now.Add(-24*time.Hour))
	})).Return(nil).Once()

	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	// Execute
	err := seeder.Seed(ctx)

	// Assert
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "Create", len(SampleHistory))
}

func TestHistorySeeder_Seed_TransactionsExist(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTransactionRepository)
	seeder := NewHistorySeeder(mockRepo)

	mockRepo.On("GetByID", ctx, mock.AnythingOfType("string")).Return(&domain.Transaction{ID: "TXN-2024-008"}, nil)

	// Execute
	err := seeder.Seed(ctx)

	// Assert
	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHistorySeeder_Seed_LookupError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTransactionRepository)
	seeder := NewHistorySeeder(mockRepo)

	mockRepo.On("GetByID", ctx, "TXN-2024-008").Return(nil, errors.New("connection refused"))

	// Execute
	err := seeder.Seed(ctx)

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHistorySeeder_Seed_CreateError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTransactionRepository)
	seeder := NewHistorySeeder(mockRepo)

	mockRepo.On("GetByID", ctx, mock.AnythingOfType("string")).Return(nil, domain.ErrTransactionNotFound)
	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))

	// Execute
	err := seeder.Seed(ctx)

	// Assert
	assert.Error(t, err)
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestSampleHistory_IsValid(t *testing.T) {
	now := time.Now()
	for _, sample := range SampleHistory {
		assert.NoError(t, sample.Transaction(now).Validate(), sample.ID)
	}
}
