package ports

import (
	"context"
	"time"

	"github.com/glhf52/zapis-bot/internal/domain"
)

type ReminderRepo interface {
	Save(ctx context.Context, rem *domain.Reminder) error
	Delete(ctx context.Context, reservationID string) (string, error)
	List(ctx context.Context) ([]*domain.ReminderState, error)
}

// ReminderBridge связывает оркестратор с планировщиком напоминаний.
type ReminderBridge interface {
	ScheduleFor(ctx context.Context, reservationID string, chatID int64, date time.Time, timeOfDay string) error
	CancelFor(ctx context.Context, reservationID string) error
}
