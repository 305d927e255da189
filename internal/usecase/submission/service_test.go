package submission

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

// MockEventPublisher is a mock implementation of EventPublisher for testing
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, exchange, routingKey string, body interface{}) error {
	args := m.Called(ctx, exchange, routingKey, body)
	return args.Error(0)
}

var txnIDPattern = regexp.MustCompile(`^TXN-\d{13}-[0-9a-f]{8}$`)

func validDraft() domain.TransferDraft {
	return domain.TransferDraft{
		Amount:         "500",
		RecipientName:  "Ibu Siti Aminah",
		RecipientPhone: "0812-3456-789",
		BankName:       "Bank Mandiri",
		AccountNumber:  "1234567890",
	}
}

func TestNewTransactionID(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	a := NewTransactionID(now)
	b := NewTransactionID(now)

	assert.Regexp(t, txnIDPattern, a)
	assert.Contains(t, a, "TXN-1700000000000-")
	assert.NotEqual(t, a, b, "ids of the same millisecond must differ")
}

func TestSubmit_Success_PublishesEvent(t *testing.T) {
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, domain.TransferEventsExchange, domain.RoutingTransferAccepted,
		mock.MatchedBy(func(e domain.TransferEvent) bool {
			return e.Amount == "500" && e.AccountSuffix == "****7890" && e.Status == "processing"
		}),
	).Return(nil).Once()

	svc := NewSimulatedService(0, publisher, zerolog.New(io.Discard))

	res, err := svc.Submit(context.Background(), validDraft())

	require.NoError(t, err)
	assert.Regexp(t, txnIDPattern, res.TransactionID)
	publisher.AssertExpectations(t)
}

func TestSubmit_RejectedAccount(t *testing.T) {
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, domain.TransferEventsExchange, domain.RoutingTransferRejected, mock.Anything).
		Return(nil).Once()

	svc := NewSimulatedService(0, publisher, zerolog.New(io.Discard))
	draft := validDraft()
	draft.AccountNumber = "1234560000"

	res, err := svc.Submit(context.Background(), draft)

	assert.ErrorIs(t, err, ErrInvalidAccount)
	assert.Empty(t, res.TransactionID)
	publisher.AssertExpectations(t)
}

func TestSubmit_PublishFailureDoesNotFailTransfer(t *testing.T) {
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("channel closed"))

	svc := NewSimulatedService(0, publisher, zerolog.New(io.Discard))

	res, err := svc.Submit(context.Background(), validDraft())

	require.NoError(t, err)
	assert.NotEmpty(t, res.TransactionID)
}

func TestSubmit_WaitsForDelay(t *testing.T) {
	svc := NewSimulatedService(50*time.Millisecond, nil, zerolog.New(io.Discard))

	start := time.Now()
	_, err := svc.Submit(context.Background(), validDraft())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestSubmit_CancelledContextResolvesAsFailure(t *testing.T) {
	svc := NewSimulatedService(time.Minute, nil, zerolog.New(io.Discard))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Submit(ctx, validDraft())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
