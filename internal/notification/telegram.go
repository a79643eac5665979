package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/TicketHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts ticket activity to a single operator chat.
type TelegramNotifier struct {
	bot    messageSender
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyTicketIssued(ctx context.Context, ticket domain.Ticket) {
	text := fmt.Sprintf(
		"*Билет выпущен*\n\n"+"Мероприятие: `%s`\n"+"Билет: `%s`\n"+"Владелец: %s",
		ticket.EventID, ticket.ID, tgbotapi.EscapeText(tgbotapi.ModeMarkdown, ticket.Owner),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyTicketRedeemed(ctx context.Context, ticket domain.Ticket) {
	text := fmt.Sprintf(
		"*Билет использован*\n\n"+"Мероприятие: `%s`\n"+"Билет: `%s`\n"+"Владелец: %s",
		ticket.EventID, ticket.ID, tgbotapi.EscapeText(tgbotapi.ModeMarkdown, ticket.Owner),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
