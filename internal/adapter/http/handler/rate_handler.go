package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/usecase/dashboard"
	"github.com/simaogato/kirimuang-backend/internal/usecase/rates"
)

// RateHandler serves the current exchange rate and the calculator
type RateHandler struct {
	rates     *rates.Service
	dashboard *dashboard.DashboardService
	logger    zerolog.Logger
}

func NewRateHandler(rateService *rates.Service, dashboardService *dashboard.DashboardService, logger zerolog.Logger) *RateHandler {
	return &RateHandler{
		rates:     rateService,
		dashboard: dashboardService,
		logger:    logger,
	}
}

type RateResponse struct {
	Rate          string    `json:"rate"`
	ChangePercent string    `json:"change_percent"`
	CapturedAt    time.Time `json:"captured_at"`
	Seq           uint64    `json:"seq"`
}

type ConvertResponse struct {
	USD  string `json:"usd"`
	IDR  string `json:"idr"`
	Rate string `json:"rate"`
}

// Current handles GET /rates/current
func (h *RateHandler) Current(w http.ResponseWriter, r *http.Request) {
	snap, err := h.rates.Latest(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoRateSnapshot) {
			respondError(w, h.logger, http.StatusServiceUnavailable, "exchange rate not available yet")
			return
		}
		h.logger.Error().Err(err).Msg("failed to read exchange rate")
		respondError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, RateResponse{
		Rate:          snap.Rate.String(),
		ChangePercent: snap.ChangePercent.String(),
		CapturedAt:    snap.CapturedAt,
		Seq:           snap.Seq,
	})
}

// Convert handles GET /rates/convert?usd=500
func (h *RateHandler) Convert(w http.ResponseWriter, r *http.Request) {
	result := h.dashboard.Calculate(r.URL.Query().Get("usd"))

	respondJSON(w, h.logger, http.StatusOK, ConvertResponse{
		USD:  result.USD.StringFixed(2),
		IDR:  result.IDR.StringFixed(0),
		Rate: result.Rate.String(),
	})
}
