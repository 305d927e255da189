package history

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/kirimuang-backend/internal/adapter/repository/memory"
	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/i18n"
	"github.com/simaogato/kirimuang-backend/internal/usecase/seeder"
)

func newSeededService(t *testing.T) *HistoryService {
	t.Helper()

	repo := memory.NewTransactionRepository()
	require.NoError(t, seeder.NewHistorySeeder(repo).Seed(context.Background()))
	return NewHistoryService(repo, i18n.MustLoad())
}

func ids(txs []*domain.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.ID)
	}
	return out
}

func TestList_Filters(t *testing.T) {
	svc := newSeededService(t)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "everything newest first",
			filter: Filter{},
			want:   []string{"TXN-2024-008", "TXN-2024-007", "TXN-2024-006", "TXN-2024-005", "TXN-2024-004", "TXN-2024-003"},
		},
		{
			name:   "recipient substring is case-insensitive",
			filter: Filter{Query: "siti"},
			want:   []string{"TXN-2024-008"},
		},
		{
			name:   "bank substring",
			filter: Filter{Query: "bca"},
			want:   []string{"TXN-2024-007"},
		},
		{
			name:   "id substring",
			filter: Filter{Query: "2024-00"},
			want:   []string{"TXN-2024-008", "TXN-2024-007", "TXN-2024-006", "TXN-2024-005", "TXN-2024-004", "TXN-2024-003"},
		},
		{
			name:   "status only",
			filter: Filter{Status: "failed"},
			want:   []string{"TXN-2024-004"},
		},
		{
			name:   "status all",
			filter: Filter{Status: StatusAll, Query: "Bank B"},
			want:   []string{"TXN-2024-007", "TXN-2024-006", "TXN-2024-005"},
		},
		{
			name:   "query and status combine",
			filter: Filter{Query: "bank", Status: "processing"},
			want:   []string{"TXN-2024-007"},
		},
		{
			name:   "no match",
			filter: Filter{Query: "paypal"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestList_InvalidStatus(t *testing.T) {
	_, err := newSeededService(t).List(context.Background(), Filter{Status: "refunded"})
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestRecent(t *testing.T) {
	got, err := newSeededService(t).Recent(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"TXN-2024-008", "TXN-2024-007", "TXN-2024-006"}, ids(got))
}

func TestGet_NotFound(t *testing.T) {
	_, err := newSeededService(t).Get(context.Background(), "TXN-0")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestStats(t *testing.T) {
	stats, err := newSeededService(t).Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, stats.TotalTransactions)
	assert.Equal(t, 4, stats.Completed)
	assert.True(t, decimal.NewFromInt(2050).Equal(stats.TotalSent), "got %s", stats.TotalSent)
}

func TestReceipt_Indonesian(t *testing.T) {
	receipt, err := newSeededService(t).Receipt(context.Background(), "TXN-2024-008", domain.LanguageIndonesian)
	require.NoError(t, err)

	body := string(receipt.Body)
	assert.Equal(t, "bukti-transfer-TXN-2024-008.txt", receipt.FileName)
	assert.True(t, strings.HasPrefix(body, "BUKTI TRANSFER\n"))
	assert.Contains(t, body, "ID Transaksi: TXN-2024-008")
	assert.Contains(t, body, "Jumlah Kirim: $500.00")
	assert.Contains(t, body, "Biaya Transfer: $4.99")
	assert.Contains(t, body, "Total Bayar: $504.99")
	assert.Contains(t, body, "Rekening: ****7890")
	assert.Contains(t, body, "Jumlah Diterima: Rp 7.890.000")
	assert.Contains(t, body, "1 USD = Rp 15.780")
	assert.Contains(t, body, "STATUS: SELESAI")
	assert.NotContains(t, body, "Alasan Gagal")
	assert.Contains(t, body, "KirimUang - Transfer Aman & Terpercaya")
}

func TestReceipt_FailedCarriesReason(t *testing.T) {
	receipt, err := newSeededService(t).Receipt(context.Background(), "TXN-2024-004", domain.LanguageEnglish)
	require.NoError(t, err)

	body := string(receipt.Body)
	assert.Equal(t, "transfer-receipt-TXN-2024-004.txt", receipt.FileName)
	assert.Contains(t, body, "STATUS: FAILED")
	assert.Contains(t, body, ": Nomor rekening tidak valid")
}
