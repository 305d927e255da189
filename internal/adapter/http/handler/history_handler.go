package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/usecase/history"
	"github.com/simaogato/kirimuang-backend/internal/usecase/preferences"
)

// HistoryHandler serves the transaction history and receipt downloads
type HistoryHandler struct {
	history *history.HistoryService
	prefs   *preferences.Service
	logger  zerolog.Logger
}

func NewHistoryHandler(historyService *history.HistoryService, prefs *preferences.Service, logger zerolog.Logger) *HistoryHandler {
	return &HistoryHandler{
		history: historyService,
		prefs:   prefs,
		logger:  logger,
	}
}

type TransactionResponse struct {
	ID             string    `json:"id"`
	Amount         string    `json:"amount"`
	Currency       string    `json:"currency"`
	Recipient      string    `json:"recipient"`
	Bank           string    `json:"bank"`
	AccountNumber  string    `json:"account_number"`
	Status         string    `json:"status"`
	Date           time.Time `json:"date"`
	Fee            string    `json:"fee"`
	ExchangeRate   string    `json:"exchange_rate"`
	ReceivedAmount string    `json:"received_amount"`
	FailureReason  string    `json:"failure_reason,omitempty"`
}

// List handles GET /transactions?query=&status=
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	transactions, err := h.history.List(r.Context(), history.Filter{
		Query:  q.Get("query"),
		Status: q.Get("status"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFilter) {
			respondError(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("failed to list transactions")
		respondError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, TransactionResponse{
			ID:             tx.ID,
			Amount:         tx.Amount.StringFixed(2),
			Currency:       tx.Currency,
			Recipient:      tx.Recipient,
			Bank:           tx.Bank,
			AccountNumber:  tx.AccountSuffix,
			Status:         string(tx.Status),
			Date:           tx.Date,
			Fee:            tx.Fee.StringFixed(2),
			ExchangeRate:   tx.ExchangeRate.String(),
			ReceivedAmount: tx.ReceivedAmount.StringFixed(0),
			FailureReason:  tx.FailureReason,
		})
	}
	respondJSON(w, h.logger, http.StatusOK, out)
}

// Receipt handles GET /transactions/{id}/receipt?lang=en as a file download
func (h *HistoryHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lang := domain.Language(r.URL.Query().Get("lang"))
	if lang == "" {
		var err error
		if lang, err = h.prefs.Language(r.Context()); err != nil {
			h.logger.Warn().Err(err).Msg("falling back to the default language")
		}
	}
	if !lang.Valid() {
		respondError(w, h.logger, http.StatusBadRequest, fmt.Sprintf("unsupported language %q", lang))
		return
	}

	receipt, err := h.history.Receipt(r.Context(), id, lang)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			respondError(w, h.logger, http.StatusNotFound, "transaction not found")
			return
		}
		h.logger.Error().Err(err).Str("transaction_id", id).Msg("failed to render receipt")
		respondError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", receipt.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", receipt.FileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(receipt.Body); err != nil {
		h.logger.Error().Err(err).Msg("failed to write receipt")
	}
}
