package domain

import "errors"

var (
	ErrUnknownField         = errors.New("invalid field name")
	ErrFieldNotOnStep       = errors.New("field is not editable on the current step")
	ErrInvalidTransition    = errors.New("invalid wizard transition")
	ErrSubmitInProgress     = errors.New("submission already in progress")
	ErrWizardClosed         = errors.New("wizard session is closed")
	ErrSessionNotFound      = errors.New("wizard session not found")
	ErrSubmissionFailed     = errors.New("transfer submission failed")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNoNotificationAction = errors.New("notification has no action")
	ErrRefreshThrottled     = errors.New("exchange rate refresh throttled")
	ErrNoRateSnapshot       = errors.New("no exchange rate snapshot found")
	ErrInvalidPreference    = errors.New("invalid preference value")
	ErrInvalidProfileField  = errors.New("invalid profile field")
	ErrInvalidFilter        = errors.New("invalid history filter")
)
