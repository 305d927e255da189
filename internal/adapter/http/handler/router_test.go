package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/kirimuang-backend/internal/adapter/repository/memory"
	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/i18n"
	"github.com/simaogato/kirimuang-backend/internal/usecase/dashboard"
	"github.com/simaogato/kirimuang-backend/internal/usecase/history"
	"github.com/simaogato/kirimuang-backend/internal/usecase/preferences"
	"github.com/simaogato/kirimuang-backend/internal/usecase/rates"
	"github.com/simaogato/kirimuang-backend/internal/usecase/seeder"
)

type fixedSource struct{}

func (fixedSource) Fetch(ctx context.Context) (domain.ExchangeRateSnapshot, error) {
	return domain.ExchangeRateSnapshot{
		Rate:          decimal.NewFromInt(15780),
		ChangePercent: decimal.RequireFromString("0.25"),
		CapturedAt:    time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}, nil
}

// newTestRouter builds the router; refresh controls whether a rate was read yet
func newTestRouter(t *testing.T, refresh bool) http.Handler {
	t.Helper()
	ctx := context.Background()
	logger := zerolog.Nop()
	translator := i18n.MustLoad()

	repo := memory.NewTransactionRepository()
	require.NoError(t, seeder.NewHistorySeeder(repo).Seed(ctx))

	rateService := rates.NewService(fixedSource{}, nil, nil, rates.Options{ManualLatency: -1}, logger)
	if refresh {
		_, _, err := rateService.Refresh(ctx)
		require.NoError(t, err)
	}

	historyService := history.NewHistoryService(repo, translator)
	prefs := preferences.NewService(memory.NewPreferenceStore())
	dashboardService := dashboard.NewDashboardService(historyService, rateService, prefs)

	return NewRouter(
		NewRateHandler(rateService, dashboardService, logger),
		NewHistoryHandler(historyService, prefs, logger),
		logger,
	)
}

func serve(router http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := serve(newTestRouter(t, true), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestMetrics(t *testing.T) {
	rec := serve(newTestRouter(t, true), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "kirimuang_rates_usd_idr")
}

func TestCurrentRate(t *testing.T) {
	tests := []struct {
		name         string
		refresh      bool
		expectedCode int
	}{
		{name: "After First Read", refresh: true, expectedCode: http.StatusOK},
		{name: "Before First Read", refresh: false, expectedCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newTestRouter(t, tt.refresh), "/rates/current")

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			var body RateResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "15780", body.Rate)
			assert.Equal(t, "0.25", body.ChangePercent)
			assert.EqualValues(t, 1, body.Seq)
		})
	}
}

func TestConvert(t *testing.T) {
	rec := serve(newTestRouter(t, true), "/rates/convert?usd=500")

	require.Equal(t, http.StatusOK, rec.Code)
	var body ConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "500.00", body.USD)
	assert.Equal(t, "7890000", body.IDR)
}

func TestListTransactions(t *testing.T) {
	router := newTestRouter(t, true)

	rec := serve(router, "/transactions?query=bank%20b&status=all")
	require.Equal(t, http.StatusOK, rec.Code)
	var body []TransactionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 3)
	assert.Equal(t, "TXN-2024-007", body[0].ID)

	rec = serve(router, "/transactions?status=refunded")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReceipt(t *testing.T) {
	router := newTestRouter(t, true)

	rec := serve(router, "/transactions/TXN-2024-004/receipt?lang=en")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="transfer-receipt-TXN-2024-004.txt"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "Nomor rekening tidak valid")

	rec = serve(router, "/transactions/TXN-2024-004/receipt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "bukti-transfer-TXN-2024-004.txt")

	rec = serve(router, "/transactions/TXN-404/receipt")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, "/transactions/TXN-2024-004/receipt?lang=fr")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
