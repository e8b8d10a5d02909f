package ports

import (
	"context"
	"time"

	"github.com/glhf52/zapis-bot/internal/domain"
)

type ReservationRepo interface {
	Reserve(ctx context.Context, clientID, slotID string) (*domain.Reservation, error)
	Cancel(ctx context.Context, reservationID string) (*domain.Slot, error)
	ActiveByExternalID(ctx context.Context, externalID int64) (*domain.ActiveReservation, error)
	ListByDay(ctx context.Context, date time.Time) ([]*domain.DayReservation, error)
	GetDetail(ctx context.Context, reservationID string) (*domain.ReservationDetail, error)
}
