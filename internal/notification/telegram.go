package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/glhf52/zapis-bot/internal/domain"
)

const dateLayout = "02.01.2006"

// TelegramNotifier рассылает уведомления клиенту, админу и в канал.
// Каждая отправка независима и best-effort: ошибки логируются и глотаются.
type TelegramNotifier struct {
	bot           *tgbotapi.BotAPI
	adminChatID   int64
	channelChatID int64
	logger        logger.Logger
}

func NewTelegramNotifier(token string, adminChatID, channelChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{
			bot:           nil,
			adminChatID:   adminChatID,
			channelChatID: channelChatID,
			logger:        logger,
		}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{
		bot:           bot,
		adminChatID:   adminChatID,
		channelChatID: channelChatID,
		logger:        logger,
	}, nil
}

func (n *TelegramNotifier) NotifyReservationConfirmed(ctx context.Context, chatID int64, conf *domain.Confirmation) {
	n.send(ctx, chatID, fmt.Sprintf(
		"*Запись успешно создана!*\n\n"+
			"Дата: %s\nВремя: %s\nИмя: %s\nТелефон: %s\n\nДо встречи!",
		conf.Date.Format(dateLayout), conf.Time, conf.Name, conf.Phone,
	))
	n.send(ctx, n.adminChatID, fmt.Sprintf(
		"*Новая запись*\n\nКлиент: %s\nТелефон: %s\nДата: %s\nВремя: %s",
		conf.Name, conf.Phone, conf.Date.Format(dateLayout), conf.Time,
	))
	n.send(ctx, n.channelChatID, fmt.Sprintf(
		"*Запись подтверждена*\nДата: %s\nВремя: %s",
		conf.Date.Format(dateLayout), conf.Time,
	))
}

func (n *TelegramNotifier) NotifyCancelledByClient(ctx context.Context, date time.Time, timeOfDay string) {
	n.send(ctx, n.adminChatID, fmt.Sprintf(
		"*Запись отменена клиентом*\nДата: %s\nВремя: %s",
		date.Format(dateLayout), timeOfDay,
	))
	n.send(ctx, n.channelChatID, fmt.Sprintf(
		"*Запись отменена*\nДата: %s\nВремя: %s\nСлот снова свободен.",
		date.Format(dateLayout), timeOfDay,
	))
}

func (n *TelegramNotifier) NotifyCancelledByAdmin(ctx context.Context, chatID int64, date time.Time, timeOfDay string) {
	n.send(ctx, chatID, fmt.Sprintf(
		"Ваша запись на %s в %s была отменена администратором.\n"+
			"Если нужно, вы можете записаться снова.",
		date.Format(dateLayout), timeOfDay,
	))
	n.send(ctx, n.channelChatID, fmt.Sprintf(
		"*Запись отменена администратором*\nДата: %s\nВремя: %s",
		date.Format(dateLayout), timeOfDay,
	))
}

func (n *TelegramNotifier) SendReminder(ctx context.Context, chatID int64, date time.Time, timeOfDay string) {
	n.send(ctx, chatID, fmt.Sprintf(
		"Напоминаем, что вы записаны %s в %s.\nЖдём вас!",
		date.Format(dateLayout), timeOfDay,
	))
}

// IsSubscribed проверяет подписку на канал. Если проверить не удалось
// (например, бот не админ канала), считаем, что подписка есть.
func (n *TelegramNotifier) IsSubscribed(ctx context.Context, chatID int64) bool {
	if n.bot == nil || n.channelChatID == 0 {
		return true
	}

	member, err := n.bot.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: n.channelChatID,
			UserID: chatID,
		},
	})
	if err != nil {
		n.logger.Debug("subscription check failed, assuming subscribed",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
		return true
	}

	switch member.Status {
	case "member", "administrator", "creator":
		return true
	default:
		return false
	}
}

func (n *TelegramNotifier) send(ctx context.Context, chatID int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
	}
}
