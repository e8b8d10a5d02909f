package ports

import (
	"context"
	"time"

	"github.com/glhf52/zapis-bot/internal/domain"
)

// Notifier выполняет best-effort рассылку. Ошибки отправки не возвращаются:
// реализация логирует их и молчит, состояние записи они не откатывают.
type Notifier interface {
	NotifyReservationConfirmed(ctx context.Context, chatID int64, conf *domain.Confirmation)
	NotifyCancelledByClient(ctx context.Context, date time.Time, timeOfDay string)
	NotifyCancelledByAdmin(ctx context.Context, chatID int64, date time.Time, timeOfDay string)
	SendReminder(ctx context.Context, chatID int64, date time.Time, timeOfDay string)
}
