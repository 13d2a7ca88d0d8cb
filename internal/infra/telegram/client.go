package telegram

import (
	"context"
	"fmt"

	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the notify.Client interface using the
// gopkg.in/telebot.v3 library. The bot handle is send-only: no poller is ever
// started, each run publishes exactly one message to the configured chat.
type TelebotAdapter struct {
	bot    *telebot.Bot
	chatID int64
}

func NewTelebotAdapter(b *telebot.Bot, chatID int64) *TelebotAdapter {
	return &TelebotAdapter{bot: b, chatID: chatID}
}

// Publish sends the run report text to the configured chat. A delivery
// failure is returned to the caller rather than swallowed.
func (tba *TelebotAdapter) Publish(_ context.Context, text string) error {
	if _, err := tba.bot.Send(telebot.ChatID(tba.chatID), text); err != nil {
		return fmt.Errorf("error sending message to chat %d: %w", tba.chatID, err)
	}
	return nil
}
