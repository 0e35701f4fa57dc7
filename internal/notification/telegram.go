package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/carlosallexandre/gostack-gobarber/internal/domain"
)

const slotTimeLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyAppointmentCreated(ctx context.Context, provider, requester *domain.User, a *domain.Appointment) {
	text := fmt.Sprintf(
		"*New appointment!*\n\n"+"Client: %s\n"+"Slot (time in UTC): %s",
		requester.Name, a.ScheduledAt.Format(slotTimeLayout),
	)
	n.send(ctx, provider.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReminder(ctx context.Context, requester *domain.User, a *domain.Appointment) {
	text := fmt.Sprintf(
		"*Appointment reminder*\n\n"+"Your appointment starts at %s (time in UTC).",
		a.ScheduledAt.Format(slotTimeLayout),
	)
	n.send(ctx, requester.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
