package notify

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type chattableSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramSender posts orders to an admin chat through the notification bot (MESSAGE_TOKEN).
type TelegramSender struct {
	api chattableSender
}

func NewTelegramSender(token string) (*TelegramSender, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &TelegramSender{api: api}, nil
}

// Send treats destination as a numeric chat id and returns the Telegram message id.
func (s *TelegramSender) Send(_ context.Context, message, destination string) (string, error) {
	chatID, err := strconv.ParseInt(destination, 10, 64)
	if err != nil {
		return "", fmt.Errorf("telegram chat id %q: %w", destination, err)
	}
	sent, err := s.api.Send(tgbotapi.NewMessage(chatID, message))
	if err != nil {
		return "", fmt.Errorf("telegram send: %w", err)
	}
	return strconv.Itoa(sent.MessageID), nil
}
