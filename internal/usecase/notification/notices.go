package notification

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/i18n"
	"github.com/simaogato/kirimuang-backend/internal/money"
)

const rateNoticeDuration = 3000 * time.Millisecond

// Notices raises the localized transfer and rate toasts used across the app
type Notices struct {
	center     *Center
	translator *i18n.Translator
}

func NewNotices(center *Center, translator *i18n.Translator) *Notices {
	return &Notices{center: center, translator: translator}
}

// Center exposes the underlying center, e.g. to list what was raised
func (n *Notices) Center() *Center {
	return n.center
}

// TransferStarted stays visible until dismissed
func (n *Notices) TransferStarted(lang domain.Language, amount decimal.Decimal, recipient string) (domain.Notification, error) {
	return n.center.Add(domain.NotificationSpec{
		Kind:     domain.NotificationInfo,
		Title:    n.translator.T(lang, "notify.transfer.started.title"),
		Message:  n.translator.Tf(lang, "notify.transfer.started.message", amount.StringFixed(2), recipient),
		AutoHide: domain.Sticky(),
	})
}

func (n *Notices) TransferSucceeded(lang domain.Language, amount decimal.Decimal, recipient, txnID string, viewReceipt func()) (domain.Notification, error) {
	return n.center.Add(domain.NotificationSpec{
		Kind:    domain.NotificationSuccess,
		Title:   n.translator.T(lang, "notify.transfer.success.title"),
		Message: n.translator.Tf(lang, "notify.transfer.success.message", amount.StringFixed(2), recipient, txnID),
		Action:  n.action(lang, "notify.transfer.success.action", viewReceipt),
	})
}

// TransferFailed is sticky and offers retry when one is given. An empty reason uses the generic hint.
func (n *Notices) TransferFailed(lang domain.Language, amount decimal.Decimal, recipient, reason string, retry func()) (domain.Notification, error) {
	if reason == "" {
		reason = n.translator.T(lang, "notify.transfer.failed.retryHint")
	}
	return n.center.Add(domain.NotificationSpec{
		Kind:     domain.NotificationError,
		Title:    n.translator.T(lang, "notify.transfer.failed.title"),
		Message:  n.translator.Tf(lang, "notify.transfer.failed.message", amount.StringFixed(2), recipient, reason),
		Action:   n.action(lang, "notify.transfer.failed.action", retry),
		AutoHide: domain.Sticky(),
	})
}

// ExchangeRateUpdated reports the relative move between two rates for 3 seconds
func (n *Notices) ExchangeRateUpdated(lang domain.Language, oldRate, newRate decimal.Decimal) (domain.Notification, error) {
	change := decimal.Zero
	if !oldRate.IsZero() {
		change = newRate.Sub(oldRate).Div(oldRate).Mul(decimal.NewFromInt(100))
	}
	direction := n.translator.T(lang, "notify.rate.down")
	if change.IsPositive() {
		direction = n.translator.T(lang, "notify.rate.up")
	}

	return n.center.Add(domain.NotificationSpec{
		Kind:     domain.NotificationInfo,
		Title:    n.translator.T(lang, "notify.rate.title"),
		Message:  n.translator.Tf(lang, "notify.rate.message", direction, money.Percent(change), money.IDR(newRate)),
		Duration: rateNoticeDuration,
	})
}

func (n *Notices) LowBalance(lang domain.Language, balance decimal.Decimal, topUp func()) (domain.Notification, error) {
	return n.center.Add(domain.NotificationSpec{
		Kind:     domain.NotificationWarning,
		Title:    n.translator.T(lang, "notify.balance.low.title"),
		Message:  n.translator.Tf(lang, "notify.balance.low.message", money.USD(balance)),
		Action:   n.action(lang, "notify.balance.low.action", topUp),
		AutoHide: domain.Sticky(),
	})
}

func (n *Notices) action(lang domain.Language, labelKey string, run func()) *domain.NotificationAction {
	if run == nil {
		return nil
	}
	return &domain.NotificationAction{Label: n.translator.T(lang, labelKey), Run: run}
}
