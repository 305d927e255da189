package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/money"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
			Background(lipgloss.AdaptiveColor{Light: "#0055AA", Dark: "#1E90FF"})

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#A0A0A0"})
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"})

	toastColors = map[domain.NotificationKind]lipgloss.AdaptiveColor{
		domain.NotificationSuccess: {Light: "#00AA00", Dark: "#00FF00"},
		domain.NotificationInfo:    {Light: "#0055AA", Dark: "#1E90FF"},
		domain.NotificationWarning: {Light: "#AA8800", Dark: "#FFD700"},
		domain.NotificationError:   {Light: "#CC0000", Dark: "#FF5555"},
	}

	statusColors = map[domain.TransactionStatus]lipgloss.AdaptiveColor{
		domain.StatusCompleted:  {Light: "#00AA00", Dark: "#00FF00"},
		domain.StatusProcessing: {Light: "#AA8800", Dark: "#FFD700"},
		domain.StatusFailed:     {Light: "#CC0000", Dark: "#FF5555"},
	}
)

// renderToast draws one notification as a bordered box
func renderToast(n domain.Notification) string {
	color := toastColors[n.Kind]
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(60)

	var b strings.Builder
	if n.Title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(color).Render(n.Title))
	}
	if n.Message != "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(n.Message)
	}
	if n.Action != nil {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("[" + n.Action.Label + "]"))
	}
	return box.Render(b.String())
}

// renderTransaction is one history row
func renderTransaction(tx *domain.Transaction) string {
	status := lipgloss.NewStyle().Foreground(statusColors[tx.Status]).Render(string(tx.Status))
	return fmt.Sprintf("%s  %-10s  %-22s  %-16s  %12s  %s",
		tx.ID,
		tx.Date.Local().Format("2006-01-02"),
		tx.Recipient,
		tx.Bank,
		money.USD(tx.Amount),
		status,
	)
}

func renderQuote(q domain.Quote) string {
	rows := [][2]string{
		{"Amount", money.USD(q.Amount)},
		{"Fee", money.USD(q.Fee)},
		{"Total", money.USD(q.Total)},
		{"Rate", "1 USD = " + money.IDR(q.Rate)},
		{"Recipient gets", money.IDR(q.ReceiveAmount)},
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-15s", row[0]+":")), row[1])
	}
	return b.String()
}

func renderErrors(errs domain.ValidationErrors) string {
	var b strings.Builder
	for _, field := range domain.StepRecipient.Fields() {
		if msg, ok := errs[field]; ok {
			b.WriteString(errorStyle.Render("✗ "+msg) + "\n")
		}
	}
	if msg, ok := errs[domain.FieldAmount]; ok {
		b.WriteString(errorStyle.Render("✗ "+msg) + "\n")
	}
	return b.String()
}
