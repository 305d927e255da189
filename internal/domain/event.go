package domain

import "time"

// Topic exchange and routing keys for transfer events
const (
	TransferEventsExchange  = "kirimuang_events"
	RoutingTransferAccepted = "transfer.submitted"
	RoutingTransferRejected = "transfer.rejected"
)

// TransferEvent is the payload published for every submission outcome
type TransferEvent struct {
	TransactionID string    `json:"transaction_id,omitempty"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	Recipient     string    `json:"recipient"`
	Bank          string    `json:"bank"`
	AccountSuffix string    `json:"account_suffix"`
	Status        string    `json:"status"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
