package profile

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/kirimuang-backend/internal/adapter/repository/memory"
	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/i18n"
	"github.com/simaogato/kirimuang-backend/internal/usecase/history"
	"github.com/simaogato/kirimuang-backend/internal/usecase/seeder"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	repo := memory.NewTransactionRepository()
	require.NoError(t, seeder.NewHistorySeeder(repo).Seed(context.Background()))
	return NewService(history.NewHistoryService(repo, i18n.MustLoad()))
}

func TestGet_MockUser(t *testing.T) {
	p := newTestService(t).Get()

	assert.Equal(t, "Ahmad Hidayat", p.Name)
	assert.Equal(t, "AH", p.Initials())
	assert.Equal(t, 2023, p.JoinedAt.Year())
}

func TestUpdateField(t *testing.T) {
	tests := []struct {
		name    string
		field   domain.ProfileField
		value   string
		wantErr bool
	}{
		{name: "valid email", field: domain.ProfileEmail, value: "ahmad@example.co.id"},
		{name: "invalid email", field: domain.ProfileEmail, value: "ahmad-at-example", wantErr: true},
		{name: "indonesian mobile", field: domain.ProfilePhone, value: "08123456789"},
		{name: "foreign phone", field: domain.ProfilePhone, value: "+1-555-1234", wantErr: true},
		{name: "name too short", field: domain.ProfileName, value: "Al", wantErr: true},
		{name: "name trimmed", field: domain.ProfileName, value: "  Ahmad H.  "},
		{name: "empty address", field: domain.ProfileAddress, value: "   ", wantErr: true},
		{name: "unknown field", field: "avatar", value: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)

			got, err := svc.UpdateField(tt.field, tt.value)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidProfileField)
				assert.Equal(t, MockUser, got, "rejected edits leave the profile untouched")
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, MockUser, got)
		})
	}
}

func TestReset(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.UpdateField(domain.ProfileAddress, "Jl. Thamrin 1")
	require.NoError(t, err)

	assert.Equal(t, MockUser, svc.Reset())
	assert.Equal(t, MockUser, svc.Get())
}

func TestNotificationSettings(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, domain.DefaultNotificationSettings(), svc.NotificationSettings())

	updated := svc.UpdateNotificationSettings(domain.NotificationSettings{SMS: true})

	assert.True(t, updated.SMS)
	assert.False(t, svc.NotificationSettings().Email)
}

func TestStats(t *testing.T) {
	stats, err := newTestService(t).Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, stats.TotalTransactions)
	assert.True(t, decimal.NewFromInt(2050).Equal(stats.TotalSent))
}
