package ports

import (
	"context"
	"time"

	"github.com/glhf52/zapis-bot/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, date time.Time, timeOfDay string) (*domain.Slot, error)
	Delete(ctx context.Context, id string) error
	CloseDay(ctx context.Context, date time.Time) error
	AvailableDays(ctx context.Context, from time.Time, horizonDays int, excludeWeekends bool) ([]time.Time, error)
	AvailableTimes(ctx context.Context, date time.Time) ([]*domain.Slot, error)
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
}
