// Package submission simulates the payment backend the transfer wizard submits to.
package submission

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

// DefaultDelay is the simulated round trip to the payment backend
const DefaultDelay = 2 * time.Second

// rejectedAccountSuffix marks test accounts the simulated backend refuses
const rejectedAccountSuffix = "0000"

// ErrInvalidAccount is the reason given for rejected accounts
var ErrInvalidAccount = errors.New("invalid account number")

// SimulatedService accepts every well-formed draft after a fixed delay
type SimulatedService struct {
	delay     time.Duration
	publisher domain.EventPublisher
	now       func() time.Time
	logger    zerolog.Logger
}

var _ domain.SubmissionService = (*SimulatedService)(nil)

// NewSimulatedService creates the simulated backend. publisher may be nil.
func NewSimulatedService(delay time.Duration, publisher domain.EventPublisher, logger zerolog.Logger) *SimulatedService {
	if delay < 0 {
		delay = 0
	}
	return &SimulatedService{
		delay:     delay,
		publisher: publisher,
		now:       time.Now,
		logger:    logger.With().Str("component", "submission").Logger(),
	}
}

// Submit waits out the delay and answers. A cancelled ctx resolves as a failure; Submit never hangs.
// The wizard detaches its callers' cancellation before calling it.
func (s *SimulatedService) Submit(ctx context.Context, draft domain.TransferDraft) (domain.SubmissionResult, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return domain.SubmissionResult{}, ctx.Err()
	case <-timer.C:
	}

	if strings.HasSuffix(strings.TrimSpace(draft.AccountNumber), rejectedAccountSuffix) {
		s.publish(ctx, domain.RoutingTransferRejected, s.event(draft, "", "failed", ErrInvalidAccount.Error()))
		return domain.SubmissionResult{}, ErrInvalidAccount
	}

	id := NewTransactionID(s.now())
	s.publish(ctx, domain.RoutingTransferAccepted, s.event(draft, id, string(domain.StatusProcessing), ""))

	s.logger.Info().Str("transaction_id", id).Str("bank", draft.BankName).Msg("transfer accepted")
	return domain.SubmissionResult{TransactionID: id}, nil
}

func (s *SimulatedService) event(draft domain.TransferDraft, id, status, reason string) domain.TransferEvent {
	return domain.TransferEvent{
		TransactionID: id,
		Amount:        strings.TrimSpace(draft.Amount),
		Currency:      "USD",
		Recipient:     draft.RecipientName,
		Bank:          draft.BankName,
		AccountSuffix: domain.MaskAccount(draft.AccountNumber),
		Status:        status,
		Reason:        reason,
		OccurredAt:    s.now(),
	}
}

// publish only logs failures; the transfer outcome does not depend on the event bus
func (s *SimulatedService) publish(ctx context.Context, routingKey string, event domain.TransferEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, domain.TransferEventsExchange, routingKey, event); err != nil {
		s.logger.Error().Err(err).Str("routing_key", routingKey).Msg("failed to publish transfer event")
	}
}
