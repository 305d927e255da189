package history

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/money"
)

//go:embed receipt.tmpl
var receiptSource string

var receiptTemplate = template.Must(template.New("receipt").Parse(receiptSource))

// Receipt is a downloadable text proof of a transfer
type Receipt struct {
	FileName    string
	ContentType string
	Body        []byte
}

type receiptLine struct {
	Label string
	Value string
}

type receiptView struct {
	Title     string
	Header    []receiptLine
	Sender    string
	SenderRow []receiptLine
	Recipient string
	RecipRow  []receiptLine
	RateLabel string
	RateLine  string
	Status    string
	Failure   *receiptLine
	Footer    string
}

var receiptDateLayouts = map[domain.Language][2]string{
	domain.LanguageIndonesian: {"2/1/2006", "15.04.05"},
	domain.LanguageEnglish:    {"1/2/2006", "3:04:05 PM"},
}

// Receipt renders the text receipt of one transaction in lang
func (s *HistoryService) Receipt(ctx context.Context, id string, lang domain.Language) (*Receipt, error) {
	tx, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	body, err := s.renderReceipt(tx, lang)
	if err != nil {
		return nil, err
	}

	return &Receipt{
		FileName:    fmt.Sprintf("%s-%s.txt", s.translator.T(lang, "receipt.filePrefix"), tx.ID),
		ContentType: "text/plain; charset=utf-8",
		Body:        body,
	}, nil
}

func (s *HistoryService) renderReceipt(tx *domain.Transaction, lang domain.Language) ([]byte, error) {
	t := func(key string) string { return s.translator.T(lang, key) }

	layouts, ok := receiptDateLayouts[lang]
	if !ok {
		layouts = receiptDateLayouts[domain.DefaultLanguage]
	}
	local := tx.Date.Local()

	view := receiptView{
		Title: t("receipt.title"),
		Header: []receiptLine{
			{t("receipt.transactionId"), tx.ID},
			{t("receipt.date"), local.Format(layouts[0])},
			{t("receipt.time"), local.Format(layouts[1])},
		},
		Sender: t("receipt.sender"),
		SenderRow: []receiptLine{
			{t("receipt.amountSent"), money.USD(tx.Amount)},
			{t("receipt.fee"), money.USD(tx.Fee)},
			{t("receipt.total"), money.USD(tx.TotalCost())},
		},
		Recipient: t("receipt.recipient"),
		RecipRow: []receiptLine{
			{t("receipt.name"), tx.Recipient},
			{t("receipt.bank"), tx.Bank},
			{t("receipt.account"), tx.AccountSuffix},
			{t("receipt.received"), money.IDR(tx.ReceivedAmount)},
		},
		RateLabel: t("receipt.rate"),
		RateLine:  "1 USD = " + money.IDR(tx.ExchangeRate),
		Status:    t("receipt.status") + ": " + strings.ToUpper(t("status."+string(tx.Status))),
		Footer:    t("receipt.footer"),
	}
	if tx.FailureReason != "" {
		view.Failure = &receiptLine{t("receipt.failureReason"), tx.FailureReason}
	}

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
