package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

// MockChannel is a mock implementation of Channel for testing
type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestPublish_JSONPersistent(t *testing.T) {
	ch := new(MockChannel)
	var sent amqp.Publishing
	ch.On("PublishWithContext", mock.Anything, domain.TransferEventsExchange, domain.RoutingTransferAccepted, false, false, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(5).(amqp.Publishing) }).
		Return(nil).Once()

	p := NewPublisher(ch, zerolog.New(io.Discard))
	event := domain.TransferEvent{
		TransactionID: "TXN-1-abcdef01",
		Amount:        "500",
		Currency:      "USD",
		Status:        "processing",
		OccurredAt:    time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}

	// Execute
	err := p.Publish(context.Background(), domain.TransferEventsExchange, domain.RoutingTransferAccepted, event)

	// Assert
	require.NoError(t, err)
	ch.AssertExpectations(t)
	assert.Equal(t, "application/json", sent.ContentType)
	assert.Equal(t, amqp.Persistent, sent.DeliveryMode)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(sent.Body, &decoded))
	assert.Equal(t, "TXN-1-abcdef01", decoded["transaction_id"])
	assert.Equal(t, "USD", decoded["currency"])
}

func TestPublish_ChannelError(t *testing.T) {
	ch := new(MockChannel)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
		Return(errors.New("channel closed"))

	p := NewPublisher(ch, zerolog.New(io.Discard))

	err := p.Publish(context.Background(), domain.TransferEventsExchange, domain.RoutingTransferRejected, domain.TransferEvent{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish message")
}

func TestPublish_UnmarshalableBody(t *testing.T) {
	ch := new(MockChannel)
	p := NewPublisher(ch, zerolog.New(io.Discard))

	err := p.Publish(context.Background(), domain.TransferEventsExchange, "x", make(chan int))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal event")
	ch.AssertNotCalled(t, "PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
