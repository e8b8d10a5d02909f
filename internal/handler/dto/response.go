package dto

import (
	"time"

	"github.com/glhf52/zapis-bot/internal/domain"
)

type SlotTimeResponse struct {
	SlotID string `json:"slot_id"`
	Time   string `json:"time"`
}

type ConfirmationResponse struct {
	ReservationID string `json:"reservation_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
}

type ReservationResponse struct {
	ReservationID string `json:"reservation_id"`
	SlotID        string `json:"slot_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type ReservationDetailResponse struct {
	ReservationID string  `json:"reservation_id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Status        string  `json:"status"`
	ExternalID    int64   `json:"external_id"`
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	CreatedAt     string  `json:"created_at"`
}

type DayReservationResponse struct {
	ReservationID string  `json:"reservation_id"`
	Time          string  `json:"time"`
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	ExternalID    int64   `json:"external_id"`
}

type CancellationResponse struct {
	ReservationID string `json:"reservation_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

type AddDayResponse struct {
	Created int `json:"created"`
}

type SubscriptionResponse struct {
	Subscribed bool `json:"subscribed"`
}

type MenuMessageResponse struct {
	MessageID *int64 `json:"message_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSlotTimeResponse(s *domain.Slot) SlotTimeResponse {
	return SlotTimeResponse{
		SlotID: s.ID,
		Time:   s.Time,
	}
}

func ToConfirmationResponse(c *domain.Confirmation) ConfirmationResponse {
	return ConfirmationResponse{
		ReservationID: c.ReservationID,
		Date:          c.Date.Format(time.DateOnly),
		Time:          c.Time,
		Name:          c.Name,
		Phone:         c.Phone,
	}
}

func ToReservationResponse(a *domain.ActiveReservation) ReservationResponse {
	return ReservationResponse{
		ReservationID: a.Reservation.ID,
		SlotID:        a.Slot.ID,
		Date:          a.Slot.Date.Format(time.DateOnly),
		Time:          a.Slot.Time,
		Status:        string(a.Reservation.Status),
		CreatedAt:     a.Reservation.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationDetailResponse(d *domain.ReservationDetail) ReservationDetailResponse {
	return ReservationDetailResponse{
		ReservationID: d.Reservation.ID,
		Date:          d.Slot.Date.Format(time.DateOnly),
		Time:          d.Slot.Time,
		Status:        string(d.Reservation.Status),
		ExternalID:    d.Client.ExternalID,
		Name:          d.Client.Name,
		Phone:         d.Client.Phone,
		CreatedAt:     d.Reservation.CreatedAt.Format(time.RFC3339),
	}
}

func ToDayReservationResponse(d *domain.DayReservation) DayReservationResponse {
	return DayReservationResponse{
		ReservationID: d.ReservationID,
		Time:          d.Time,
		Name:          d.Name,
		Phone:         d.Phone,
		ExternalID:    d.ExternalID,
	}
}

func ToCancellationResponse(c *domain.Cancellation) CancellationResponse {
	return CancellationResponse{
		ReservationID: c.ReservationID,
		Date:          c.Date.Format(time.DateOnly),
		Time:          c.Time,
	}
}
