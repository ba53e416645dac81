package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/3lokai/Booking-system/internal/domain"
)

const sessionTimeFormat = "Mon, Jan 2 15:04"

// TelegramNotifier posts booking events to the organizers' channel.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram not configured, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, slot *domain.Slot) {
	text := fmt.Sprintf(
		"*New review booked*\n\n"+"Account: %s\n"+"Client Partner: %s (%s)\n"+"Window (UTC): %s – %s",
		slot.AccountName.ValueOrZero(),
		slot.BookerName.ValueOrZero(),
		slot.BookerEmail.ValueOrZero(),
		slot.TimeSlot.UTC().Format(sessionTimeFormat),
		slot.End().UTC().Format("15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyUpcomingSession(ctx context.Context, slot *domain.Slot) {
	text := fmt.Sprintf(
		"*Upcoming review session*\n\n"+"Account: %s\n"+"Client Partner: %s (%s)\n"+"Starts (UTC): %s\n"+"Make sure the account documentation is in the Teams channel.",
		slot.AccountName.ValueOrZero(),
		slot.BookerName.ValueOrZero(),
		slot.BookerEmail.ValueOrZero(),
		slot.TimeSlot.UTC().Format(sessionTimeFormat),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
