package notification

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/i18n"
)

func newTestNotices() *Notices {
	return NewNotices(newTestCenter(nil), i18n.MustLoad())
}

func TestNotices_TransferSucceeded(t *testing.T) {
	n := newTestNotices()
	defer n.Center().Clear()

	got, err := n.TransferSucceeded(domain.LanguageEnglish, decimal.NewFromInt(500), "Ibu Siti Aminah", "TXN-1700000000000-ab12", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.NotificationSuccess, got.Kind)
	assert.True(t, got.AutoHide)
	assert.Contains(t, got.Message, "TXN-1700000000000-ab12")
	assert.Contains(t, got.Message, "$500.00")
	assert.Nil(t, got.Action)
}

func TestNotices_TransferFailed_StickyWithRetry(t *testing.T) {
	n := newTestNotices()
	defer n.Center().Clear()

	retried := false
	got, err := n.TransferFailed(domain.LanguageEnglish, decimal.NewFromInt(500), "Ibu Siti", "", func() { retried = true })
	require.NoError(t, err)

	assert.Equal(t, domain.NotificationError, got.Kind)
	assert.False(t, got.AutoHide)
	assert.Contains(t, got.Message, "Please try again.")
	require.NotNil(t, got.Action)
	assert.Equal(t, "Try Again", got.Action.Label)

	require.NoError(t, n.Center().InvokeAction(got.ID))
	assert.True(t, retried)
}

func TestNotices_ExchangeRateUpdated(t *testing.T) {
	tests := []struct {
		name      string
		oldRate   string
		newRate   string
		direction string
		percent   string
	}{
		{name: "rise", oldRate: "15780", newRate: "15800", direction: "rose", percent: "0.13%"},
		{name: "fall", oldRate: "15800", newRate: "15780", direction: "fell", percent: "0.13%"},
		{name: "zero base", oldRate: "0", newRate: "15780", direction: "fell", percent: "0.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newTestNotices()
			defer n.Center().Clear()

			got, err := n.ExchangeRateUpdated(domain.LanguageEnglish, decimal.RequireFromString(tt.oldRate), decimal.RequireFromString(tt.newRate))
			require.NoError(t, err)

			assert.Equal(t, rateNoticeDuration, got.Duration)
			assert.Contains(t, got.Message, tt.direction)
			assert.Contains(t, got.Message, tt.percent)
		})
	}
}

func TestNotices_TransferStarted_Indonesian(t *testing.T) {
	n := newTestNotices()
	defer n.Center().Clear()

	got, err := n.TransferStarted(domain.LanguageIndonesian, decimal.NewFromInt(100), "Budi")
	require.NoError(t, err)

	assert.Equal(t, "Transfer Dimulai", got.Title)
	assert.False(t, got.AutoHide)
}

func TestNotices_LowBalance(t *testing.T) {
	n := newTestNotices()
	defer n.Center().Clear()

	got, err := n.LowBalance(domain.LanguageEnglish, decimal.RequireFromString("2450"), func() {})
	require.NoError(t, err)

	assert.Equal(t, domain.NotificationWarning, got.Kind)
	assert.Equal(t, "Low Balance", got.Title)
	assert.Contains(t, got.Message, "$2,450.00")
	assert.False(t, got.AutoHide)
	require.NotNil(t, got.Action)
	assert.Equal(t, "Top Up", got.Action.Label)
}
