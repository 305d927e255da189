package domain

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Field names a single input of the transfer form
type Field string

const (
	FieldAmount         Field = "amount"
	FieldRecipientName  Field = "recipientName"
	FieldRecipientPhone Field = "recipientPhone"
	FieldBankName       Field = "bankName"
	FieldAccountNumber  Field = "accountNumber"
)

// Transfer limits and the flat fee charged on top of the sent amount (USD)
var (
	MinTransferAmount = decimal.NewFromInt(10)
	MaxTransferAmount = decimal.NewFromInt(10000)
	TransferFee       = decimal.RequireFromString("4.99")
)

const (
	minRecipientNameLength = 3
	minAccountNumberLength = 8
)

// Validation message keys, resolved to text through the translation tables
const (
	MsgAmountInvalid         = "validation.amount.invalid"
	MsgAmountMin             = "validation.amount.min"
	MsgAmountMax             = "validation.amount.max"
	MsgRecipientNameRequired = "validation.recipientName.required"
	MsgRecipientNameShort    = "validation.recipientName.short"
	MsgPhoneRequired         = "validation.recipientPhone.required"
	MsgPhoneInvalid          = "validation.recipientPhone.invalid"
	MsgBankRequired          = "validation.bankName.required"
	MsgAccountRequired       = "validation.accountNumber.required"
	MsgAccountShort          = "validation.accountNumber.short"
	MsgAccountDigits         = "validation.accountNumber.digits"
)

// Step is a state of the transfer wizard
type Step int

const (
	StepAmount Step = iota + 1
	StepRecipient
	StepConfirmation
	StepSubmitting
	StepSuccess
)

func (s Step) String() string {
	switch s {
	case StepAmount:
		return "AMOUNT"
	case StepRecipient:
		return "RECIPIENT"
	case StepConfirmation:
		return "CONFIRMATION"
	case StepSubmitting:
		return "SUBMITTING"
	case StepSuccess:
		return "SUCCESS"
	default:
		return "UNKNOWN"
	}
}

// Fields returns the inputs that are editable while the wizard is on this step
func (s Step) Fields() []Field {
	switch s {
	case StepAmount:
		return []Field{FieldAmount}
	case StepRecipient:
		return []Field{FieldRecipientName, FieldRecipientPhone, FieldBankName, FieldAccountNumber}
	default:
		return nil
	}
}

// Owns reports whether the field belongs to this step
func (s Step) Owns(f Field) bool {
	for _, field := range s.Fields() {
		if field == f {
			return true
		}
	}
	return false
}

// TransferDraft is the in-progress, not yet submitted transfer form
type TransferDraft struct {
	Amount         string
	RecipientName  string
	RecipientPhone string
	BankName       string
	AccountNumber  string
}

// Get returns the raw value of a field
func (d TransferDraft) Get(f Field) (string, error) {
	switch f {
	case FieldAmount:
		return d.Amount, nil
	case FieldRecipientName:
		return d.RecipientName, nil
	case FieldRecipientPhone:
		return d.RecipientPhone, nil
	case FieldBankName:
		return d.BankName, nil
	case FieldAccountNumber:
		return d.AccountNumber, nil
	default:
		return "", ErrUnknownField
	}
}

// Set replaces the raw value of a field
func (d *TransferDraft) Set(f Field, value string) error {
	switch f {
	case FieldAmount:
		d.Amount = value
	case FieldRecipientName:
		d.RecipientName = value
	case FieldRecipientPhone:
		d.RecipientPhone = value
	case FieldBankName:
		d.BankName = value
	case FieldAccountNumber:
		d.AccountNumber = value
	default:
		return ErrUnknownField
	}
	return nil
}

// ParsedAmount parses the entered amount. ok is false for empty or non-numeric input.
func (d TransferDraft) ParsedAmount() (decimal.Decimal, bool) {
	raw := strings.TrimSpace(d.Amount)
	if raw == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// ValidationErrors maps a field to its (message key or translated) error message
type ValidationErrors map[Field]string

// Error implements error so a failed step can be returned directly
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[Field(f)])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Clone returns an independent copy
func (v ValidationErrors) Clone() ValidationErrors {
	out := make(ValidationErrors, len(v))
	for f, msg := range v {
		out[f] = msg
	}
	return out
}

// ValidateStep validates the fields owned by step. Steps without inputs always pass.
func ValidateStep(step Step, d TransferDraft) ValidationErrors {
	switch step {
	case StepAmount:
		return ValidateAmountStep(d)
	case StepRecipient:
		return ValidateRecipientStep(d)
	default:
		return ValidationErrors{}
	}
}

// ValidateAmountStep checks the amount is numeric, positive and within the transfer limits
func ValidateAmountStep(d TransferDraft) ValidationErrors {
	errs := ValidationErrors{}

	amount, ok := d.ParsedAmount()
	switch {
	case !ok || amount.LessThanOrEqual(decimal.Zero):
		errs[FieldAmount] = MsgAmountInvalid
	case amount.LessThan(MinTransferAmount):
		errs[FieldAmount] = MsgAmountMin
	case amount.GreaterThan(MaxTransferAmount):
		errs[FieldAmount] = MsgAmountMax
	}

	return errs
}

// ValidateRecipientStep records one message per violated recipient field
func ValidateRecipientStep(d TransferDraft) ValidationErrors {
	errs := ValidationErrors{}

	name := strings.TrimSpace(d.RecipientName)
	if name == "" {
		errs[FieldRecipientName] = MsgRecipientNameRequired
	} else if utf8.RuneCountInString(name) < minRecipientNameLength {
		errs[FieldRecipientName] = MsgRecipientNameShort
	}

	if strings.TrimSpace(d.RecipientPhone) == "" {
		errs[FieldRecipientPhone] = MsgPhoneRequired
	} else if !ValidIndonesianPhone(d.RecipientPhone) {
		errs[FieldRecipientPhone] = MsgPhoneInvalid
	}

	if strings.TrimSpace(d.BankName) == "" {
		errs[FieldBankName] = MsgBankRequired
	}

	// only the required check ignores surrounding spaces; the raw value is what gets submitted
	account := d.AccountNumber
	if strings.TrimSpace(account) == "" {
		errs[FieldAccountNumber] = MsgAccountRequired
	} else if len(account) < minAccountNumberLength {
		errs[FieldAccountNumber] = MsgAccountShort
	} else if !isDigits(account) {
		errs[FieldAccountNumber] = MsgAccountDigits
	}

	return errs
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Quote holds the monetary values derived from a draft and a rate snapshot
type Quote struct {
	Amount        decimal.Decimal // USD sent
	Fee           decimal.Decimal // USD
	Total         decimal.Decimal // USD charged: Amount + Fee
	Rate          decimal.Decimal // IDR per USD
	ReceiveAmount decimal.Decimal // IDR: Amount * Rate
}

// NewQuote derives the quote. An unparseable amount quotes zero, the fee is independent of the rate.
func NewQuote(d TransferDraft, rate decimal.Decimal) Quote {
	amount, ok := d.ParsedAmount()
	if !ok {
		return Quote{
			Amount:        decimal.Zero,
			Fee:           TransferFee,
			Total:         decimal.Zero,
			Rate:          rate,
			ReceiveAmount: decimal.Zero,
		}
	}

	return Quote{
		Amount:        amount,
		Fee:           TransferFee,
		Total:         amount.Add(TransferFee),
		Rate:          rate,
		ReceiveAmount: amount.Mul(rate),
	}
}

// IndonesianBanks is the suggestion list offered while typing a bank name
var IndonesianBanks = []string{
	"Bank Mandiri",
	"Bank BCA",
	"Bank BRI",
	"Bank BNI",
	"Bank BTN",
	"Bank CIMB Niaga",
	"Bank Danamon",
	"Bank Permata",
	"Bank Maybank",
	"Bank OCBC NISP",
	"Bank Panin",
	"Bank Mega",
}

// SuggestBanks filters the bank list by a case-insensitive substring
func SuggestBanks(input string) []string {
	needle := strings.ToLower(input)
	out := make([]string, 0, len(IndonesianBanks))
	for _, bank := range IndonesianBanks {
		if strings.Contains(strings.ToLower(bank), needle) {
			out = append(out, bank)
		}
	}
	return out
}
