// Package telegram mirrors toasts to a Telegram chat.
package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

// Sender is the part of *tgbotapi.BotAPI the notifier needs
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier implements domain.PlatformNotifier. A configured chat counts as granted permission.
type Notifier struct {
	bot    Sender
	chatID int64
}

var _ domain.PlatformNotifier = (*Notifier)(nil)

func NewNotifier(bot Sender, chatID int64) *Notifier {
	return &Notifier{bot: bot, chatID: chatID}
}

// Dial authenticates the bot token against the Telegram API
func Dial(token string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect telegram bot: %w", err)
	}
	return NewNotifier(bot, chatID), nil
}

func (n *Notifier) Permission() domain.PlatformPermission {
	if n.bot == nil || n.chatID == 0 {
		return domain.PermissionDenied
	}
	return domain.PermissionGranted
}

// RequestPermission has nothing to ask: the chat is either configured or not
func (n *Notifier) RequestPermission(ctx context.Context) (domain.PlatformPermission, error) {
	return n.Permission(), nil
}

func (n *Notifier) Notify(ctx context.Context, note domain.Notification) error {
	if n.Permission() != domain.PermissionGranted {
		return fmt.Errorf("telegram notifier has no chat configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, formatText(note))
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

var kindIcons = map[domain.NotificationKind]string{
	domain.NotificationSuccess: "✅",
	domain.NotificationInfo:    "ℹ️",
	domain.NotificationWarning: "⚠️",
	domain.NotificationError:   "❌",
}

func formatText(note domain.Notification) string {
	var b strings.Builder
	b.WriteString(kindIcons[note.Kind])
	if note.Title != "" {
		b.WriteString(" ")
		b.WriteString(note.Title)
	}
	if note.Message != "" {
		b.WriteString("\n")
		b.WriteString(note.Message)
	}
	return b.String()
}
