package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/glhf52/zapis-bot/internal/domain"
	"github.com/glhf52/zapis-bot/internal/service/ports"
)

// InventoryService отвечает за админские операции над слотами и просмотр расписания.
type InventoryService struct {
	slots        ports.SlotRepo
	reservations ports.ReservationRepo

	horizonDays     int
	excludeWeekends bool

	logger logger.Logger
}

func NewInventoryService(
	slots ports.SlotRepo,
	reservations ports.ReservationRepo,
	horizonDays int,
	excludeWeekends bool,
	logger logger.Logger,
) *InventoryService {
	return &InventoryService{
		slots:           slots,
		reservations:    reservations,
		horizonDays:     horizonDays,
		excludeWeekends: excludeWeekends,
		logger:          logger,
	}
}

// AddDay создаёт слоты на дату по списку времён. Некорректные времена
// пропускаются, не прерывая пакет; возвращается число созданных слотов.
func (s *InventoryService) AddDay(ctx context.Context, date time.Time, times []string) (int, error) {
	created := 0
	for _, raw := range times {
		timeOfDay := strings.TrimSpace(raw)
		if timeOfDay == "" {
			continue
		}
		if _, err := time.Parse(domain.TimeLayout, timeOfDay); err != nil {
			s.logger.Debug("invalid slot time skipped",
				logger.String("time", timeOfDay),
			)
			continue
		}

		if _, err := s.slots.Create(ctx, date, timeOfDay); err != nil {
			return created, fmt.Errorf("create slot: %w", err)
		}
		created++
	}

	s.logger.Info("inventory day added",
		logger.String("date", date.Format(time.DateOnly)),
		logger.Int("created", created),
	)

	return created, nil
}

func (s *InventoryService) CloseDay(ctx context.Context, date time.Time) error {
	if err := s.slots.CloseDay(ctx, date); err != nil {
		return fmt.Errorf("close day: %w", err)
	}

	s.logger.Info("day closed", logger.String("date", date.Format(time.DateOnly)))

	return nil
}

func (s *InventoryService) RemoveSlot(ctx context.Context, slotID string) error {
	return s.slots.Delete(ctx, slotID)
}

func (s *InventoryService) AvailableDays(ctx context.Context) ([]time.Time, error) {
	return s.slots.AvailableDays(ctx, time.Now(), s.horizonDays, s.excludeWeekends)
}

func (s *InventoryService) AvailableTimes(ctx context.Context, date time.Time) ([]*domain.Slot, error) {
	return s.slots.AvailableTimes(ctx, date)
}

func (s *InventoryService) ListByDay(ctx context.Context, date time.Time) ([]*domain.DayReservation, error) {
	return s.reservations.ListByDay(ctx, date)
}
