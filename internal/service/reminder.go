package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/glhf52/zapis-bot/internal/domain"
	"github.com/glhf52/zapis-bot/internal/service/ports"
)

// ReminderService синхронизирует durable-записи напоминаний с живым
// планировщиком: постановка при подтверждении, снятие при отмене,
// сверка после рестарта.
type ReminderService struct {
	reminders ports.ReminderRepo
	scheduler ports.JobScheduler
	notifier  ports.Notifier
	lead      time.Duration
	logger    logger.Logger
}

func NewReminderService(
	reminders ports.ReminderRepo,
	scheduler ports.JobScheduler,
	notifier ports.Notifier,
	lead time.Duration,
	logger logger.Logger,
) *ReminderService {
	return &ReminderService{
		reminders: reminders,
		scheduler: scheduler,
		notifier:  notifier,
		lead:      lead,
		logger:    logger,
	}
}

func reminderJobID(reservationID string) string {
	return "reminder_" + reservationID
}

// ScheduleFor ставит напоминание за lead до начала слота. Записи ближе,
// чем за lead, напоминания не получают: молча, без ошибки.
func (s *ReminderService) ScheduleFor(ctx context.Context, reservationID string, chatID int64, date time.Time, timeOfDay string) error {
	startsAt, err := domain.SlotStartsAt(date, timeOfDay)
	if err != nil {
		return fmt.Errorf("slot starts at: %w", err)
	}

	fireAt := startsAt.Add(-s.lead)
	if !fireAt.After(time.Now()) {
		s.logger.Debug("reminder skipped, slot is too close",
			logger.String("reservation_id", reservationID),
		)
		return nil
	}

	jobID := reminderJobID(reservationID)
	s.scheduler.Schedule(jobID, fireAt, s.reminderJob(reservationID, chatID, date, timeOfDay))

	if err = s.reminders.Save(ctx, &domain.Reminder{
		ReservationID: reservationID,
		FireAt:        fireAt,
		JobID:         jobID,
	}); err != nil {
		return fmt.Errorf("save reminder: %w", err)
	}

	s.logger.Info("reminder scheduled",
		logger.String("reservation_id", reservationID),
		logger.String("fire_at", fireAt.Format(time.RFC3339)),
	)

	return nil
}

func (s *ReminderService) reminderJob(reservationID string, chatID int64, date time.Time, timeOfDay string) func(ctx context.Context) {
	return func(ctx context.Context) {
		s.notifier.SendReminder(ctx, chatID, date, timeOfDay)

		// Сработавшее напоминание больше не нужно, подчищаем durable-запись
		if _, err := s.reminders.Delete(ctx, reservationID); err != nil &&
			!errors.Is(err, domain.ErrReminderNotFound) {
			s.logger.Error("failed to delete fired reminder",
				logger.String("reservation_id", reservationID),
				logger.String("error", err.Error()),
			)
		}
	}
}

// CancelFor удаляет durable-запись и best-effort снимает живую задачу.
// Отсутствие напоминания не ошибка: запись могла быть сделана ближе,
// чем за lead, или напоминание уже сработало.
func (s *ReminderService) CancelFor(ctx context.Context, reservationID string) error {
	jobID, err := s.reminders.Delete(ctx, reservationID)
	if err != nil {
		if errors.Is(err, domain.ErrReminderNotFound) {
			return nil
		}
		return fmt.Errorf("delete reminder: %w", err)
	}

	s.scheduler.Cancel(jobID)

	return nil
}

// Reconcile выполняется один раз при старте, до приёма запросов:
// протухшие записи удаляются, живые задачи перевзводятся на сохранённое время.
func (s *ReminderService) Reconcile(ctx context.Context) error {
	states, err := s.reminders.List(ctx)
	if err != nil {
		return fmt.Errorf("list reminders: %w", err)
	}

	now := time.Now()
	var restored, purged int
	for _, st := range states {
		if st.Status != domain.ReservationStatusActive || !st.FireAt.After(now) {
			if _, err := s.reminders.Delete(ctx, st.ReservationID); err != nil &&
				!errors.Is(err, domain.ErrReminderNotFound) {
				s.logger.Error("failed to purge stale reminder",
					logger.String("reservation_id", st.ReservationID),
					logger.String("error", err.Error()),
				)
				continue
			}
			purged++
			continue
		}

		s.scheduler.Schedule(st.JobID, st.FireAt, s.reminderJob(st.ReservationID, st.ClientChatID, st.Date, st.Time))
		restored++
	}

	s.logger.Info("reminders reconciled",
		logger.Int("restored", restored),
		logger.Int("purged", purged),
	)

	return nil
}
