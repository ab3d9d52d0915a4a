package notify

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers a text message to a staff member's chat.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier sends HTML formatted messages through the Bot API.
type TelegramNotifier struct {
	sender messageSender
}

func NewTelegramNotifier(token string) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &TelegramNotifier{sender: api}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := n.sender.Send(msg); err != nil {
		return fmt.Errorf("failed to send message to %d: %w", chatID, err)
	}
	return nil
}

// NopNotifier drops every message. It is used when no bot token is configured.
type NopNotifier struct{}

func (NopNotifier) Notify(_ context.Context, chatID int64, _ string) error {
	slog.Debug("notification skipped", slog.Int64("chat_id", chatID))
	return nil
}

func PenaltyText(reason string) string {
	return fmt.Sprintf("<b>🛑 Вы получили штраф по причине:</b> %s", html.EscapeString(reason))
}

func SurchargeText(reason string, amount int) string {
	return fmt.Sprintf("<b>💰 Вы получили доплату в размере %d по причине:</b> %s", amount, html.EscapeString(reason))
}
