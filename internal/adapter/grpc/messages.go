package grpc

import (
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Empty is the request or response of calls that carry nothing
type Empty struct{}

// StartTransferRequest opens a wizard session
type StartTransferRequest struct {
	Language string `json:"language,omitempty"`
}

// SessionRequest addresses an open wizard session
type SessionRequest struct {
	SessionId string `json:"session_id"`
}

type SetTransferFieldRequest struct {
	SessionId string `json:"session_id"`
	Field     string `json:"field"`
	Value     string `json:"value"`
}

// Quote amounts are decimal strings: USD except ReceiveAmount (IDR)
type Quote struct {
	Amount        string `json:"amount"`
	Fee           string `json:"fee"`
	Total         string `json:"total"`
	Rate          string `json:"rate"`
	ReceiveAmount string `json:"receive_amount"`
}

type TransferDraft struct {
	Amount         string `json:"amount"`
	RecipientName  string `json:"recipient_name"`
	RecipientPhone string `json:"recipient_phone"`
	BankName       string `json:"bank_name"`
	AccountNumber  string `json:"account_number"`
}

// TransferState is the wizard as the client renders it.
// Errors holds localized messages keyed by field name.
type TransferState struct {
	SessionId         string            `json:"session_id"`
	Language          string            `json:"language"`
	Step              string            `json:"step"`
	StepNumber        int32             `json:"step_number"`
	Draft             *TransferDraft    `json:"draft"`
	Errors            map[string]string `json:"errors,omitempty"`
	Quote             *Quote            `json:"quote"`
	Submitting        bool              `json:"submitting"`
	LastTransactionId string            `json:"last_transaction_id,omitempty"`
	Route             string            `json:"route"`
}

type ExchangeRate struct {
	Rate          string                 `json:"rate"`
	ChangePercent string                 `json:"change_percent"`
	CapturedAt    *timestamppb.Timestamp `json:"captured_at"`
	Seq           uint64                 `json:"seq"`
}

type RefreshExchangeRateRequest struct {
	Language string `json:"language,omitempty"`
}

type ListTransactionsRequest struct {
	Query  string `json:"query,omitempty"`
	Status string `json:"status,omitempty"`
}

type Transaction struct {
	Id             string                 `json:"id"`
	Amount         string                 `json:"amount"`
	Currency       string                 `json:"currency"`
	Recipient      string                 `json:"recipient"`
	Bank           string                 `json:"bank"`
	AccountNumber  string                 `json:"account_number"`
	Status         string                 `json:"status"`
	Date           *timestamppb.Timestamp `json:"date"`
	Fee            string                 `json:"fee"`
	ExchangeRate   string                 `json:"exchange_rate"`
	ReceivedAmount string                 `json:"received_amount"`
	FailureReason  string                 `json:"failure_reason,omitempty"`
}

type ListTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
	TotalCount   int32          `json:"total_count"`
}

type GetReceiptRequest struct {
	TransactionId string `json:"transaction_id"`
	Language      string `json:"language,omitempty"`
}

type GetReceiptResponse struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
}

type GetDashboardRequest struct {
	ShowBalance bool `json:"show_balance"`
}

type GetDashboardResponse struct {
	ExchangeRate    *ExchangeRate  `json:"exchange_rate"`
	Recent          []*Transaction `json:"recent"`
	Balance         string         `json:"balance"`
	BalanceVisible  bool           `json:"balance_visible"`
	NeedsOnboarding bool           `json:"needs_onboarding"`
	Language        string         `json:"language"`
}

type Notification struct {
	Id          string                 `json:"id"`
	Kind        string                 `json:"kind"`
	Title       string                 `json:"title,omitempty"`
	Message     string                 `json:"message,omitempty"`
	CreatedAt   *timestamppb.Timestamp `json:"created_at"`
	ActionLabel string                 `json:"action_label,omitempty"`
	AutoHide    bool                   `json:"auto_hide"`
	DurationMs  int64                  `json:"duration_ms"`
}

type ListNotificationsResponse struct {
	Notifications []*Notification `json:"notifications"`
}

type NotificationRequest struct {
	Id string `json:"id"`
}

type Preferences struct {
	Language            string `json:"language"`
	Theme               string `json:"theme"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
	StartRoute          string `json:"start_route"`
}

// UpdatePreferencesRequest changes only the fields that are set
type UpdatePreferencesRequest struct {
	Language           string `json:"language,omitempty"`
	Theme              string `json:"theme,omitempty"`
	CompleteOnboarding bool   `json:"complete_onboarding,omitempty"`
}

type NotificationSettings struct {
	Email     bool `json:"email"`
	Push      bool `json:"push"`
	SMS       bool `json:"sms"`
	Marketing bool `json:"marketing"`
}

type Profile struct {
	Name              string                 `json:"name"`
	Initials          string                 `json:"initials"`
	Email             string                 `json:"email"`
	Phone             string                 `json:"phone"`
	Address           string                 `json:"address"`
	JoinedAt          *timestamppb.Timestamp `json:"joined_at"`
	Settings          *NotificationSettings  `json:"settings"`
	TotalTransactions int32                  `json:"total_transactions"`
	TotalSent         string                 `json:"total_sent"`
}

// UpdateProfileRequest edits one field, or the notification opt-ins when Settings is set
type UpdateProfileRequest struct {
	Field    string                `json:"field,omitempty"`
	Value    string                `json:"value,omitempty"`
	Settings *NotificationSettings `json:"settings,omitempty"`
}
