package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/wb-go/wbf/logger"

	"github.com/glhf52/zapis-bot/internal/domain"
	"github.com/glhf52/zapis-bot/internal/service/ports"
)

// BookingService реализует сценарии подтверждения и отмены записи,
// собранные из леджера, хранилища слотов и моста напоминаний.
type BookingService struct {
	clients      ports.ClientRepo
	slots        ports.SlotRepo
	reservations ports.ReservationRepo
	reminders    ports.ReminderBridge
	notifier     ports.Notifier
	logger       logger.Logger
}

func NewBookingService(
	clients ports.ClientRepo,
	slots ports.SlotRepo,
	reservations ports.ReservationRepo,
	reminders ports.ReminderBridge,
	notifier ports.Notifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		clients:      clients,
		slots:        slots,
		reservations: reservations,
		reminders:    reminders,
		notifier:     notifier,
		logger:       logger,
	}
}

// ConfirmReservation сохраняет контакты, занимает слот, ставит напоминание
// и рассылает уведомления. Сбой напоминания или рассылки не откатывает
// уже созданную запись.
func (s *BookingService) ConfirmReservation(ctx context.Context, externalID int64, slotID, name, phone string) (*domain.Confirmation, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}

	client, err := s.clients.GetOrCreate(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("get or create client: %w", err)
	}

	if err = s.clients.UpdateContact(ctx, externalID, name, phone); err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}

	// Слот читаем до резервирования: сбой чтения после коммита
	// оставил бы подтверждённую запись без напоминания и уведомлений
	slot, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	res, err := s.reservations.Reserve(ctx, client.ID, slotID)
	if err != nil {
		return nil, fmt.Errorf("reserve slot: %w", err)
	}

	conf := &domain.Confirmation{
		ReservationID: res.ID,
		Date:          slot.Date,
		Time:          slot.Time,
		Name:          name,
		Phone:         phone,
	}

	s.logger.Info("reservation confirmed",
		logger.String("reservation_id", res.ID),
		logger.String("slot_id", slotID),
		logger.Int64("chat_id", externalID),
	)

	if err = s.reminders.ScheduleFor(ctx, res.ID, externalID, slot.Date, slot.Time); err != nil {
		s.logger.Error("failed to schedule reminder",
			logger.String("reservation_id", res.ID),
			logger.String("error", err.Error()),
		)
	}

	go s.notifier.NotifyReservationConfirmed(context.WithoutCancel(ctx), externalID, conf)

	return conf, nil
}

// CancelByClient снимает напоминание и отменяет запись, освобождая слот.
func (s *BookingService) CancelByClient(ctx context.Context, reservationID string) (*domain.Cancellation, error) {
	if err := s.reminders.CancelFor(ctx, reservationID); err != nil {
		s.logger.Error("failed to cancel reminder",
			logger.String("reservation_id", reservationID),
			logger.String("error", err.Error()),
		)
	}

	slot, err := s.reservations.Cancel(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	s.logger.Info("reservation cancelled by client",
		logger.String("reservation_id", reservationID),
	)

	go s.notifier.NotifyCancelledByClient(context.WithoutCancel(ctx), slot.Date, slot.Time)

	return &domain.Cancellation{
		ReservationID: reservationID,
		Date:          slot.Date,
		Time:          slot.Time,
	}, nil
}

// CancelByAdmin делает то же, что CancelByClient, плюс уведомляет клиента.
func (s *BookingService) CancelByAdmin(ctx context.Context, reservationID string) (*domain.Cancellation, error) {
	detail, err := s.reservations.GetDetail(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation detail: %w", err)
	}

	if err = s.reminders.CancelFor(ctx, reservationID); err != nil {
		s.logger.Error("failed to cancel reminder",
			logger.String("reservation_id", reservationID),
			logger.String("error", err.Error()),
		)
	}

	slot, err := s.reservations.Cancel(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	s.logger.Info("reservation cancelled by admin",
		logger.String("reservation_id", reservationID),
		logger.Int64("chat_id", detail.Client.ExternalID),
	)

	go s.notifier.NotifyCancelledByAdmin(
		context.WithoutCancel(ctx),
		detail.Client.ExternalID, slot.Date, slot.Time,
	)

	return &domain.Cancellation{
		ReservationID: reservationID,
		ClientChatID:  detail.Client.ExternalID,
		ClientName:    detail.Client.Name,
		Date:          slot.Date,
		Time:          slot.Time,
	}, nil
}

func (s *BookingService) ActiveByClient(ctx context.Context, externalID int64) (*domain.ActiveReservation, error) {
	return s.reservations.ActiveByExternalID(ctx, externalID)
}

func (s *BookingService) Detail(ctx context.Context, reservationID string) (*domain.ReservationDetail, error) {
	return s.reservations.GetDetail(ctx, reservationID)
}

// SetMenuMessage запоминает id последнего сообщения с меню. Строку клиента
// не создаём: меню без известного клиента не бывает.
func (s *BookingService) SetMenuMessage(ctx context.Context, externalID, messageID int64) error {
	if _, err := s.clients.GetByExternalID(ctx, externalID); err != nil {
		return fmt.Errorf("get client: %w", err)
	}

	if err := s.clients.SetLastMenuMessage(ctx, externalID, messageID); err != nil {
		return fmt.Errorf("set menu message: %w", err)
	}

	return nil
}

func (s *BookingService) MenuMessage(ctx context.Context, externalID int64) (*int64, error) {
	return s.clients.LastMenuMessage(ctx, externalID)
}
