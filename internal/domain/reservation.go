package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID        string            `json:"id"`
	ClientID  string            `json:"client_id"`
	SlotID    string            `json:"slot_id"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

type ActiveReservation struct {
	Reservation Reservation `json:"reservation"`
	Slot        Slot        `json:"slot"`
}

type ReservationDetail struct {
	Reservation Reservation `json:"reservation"`
	Client      Client      `json:"client"`
	Slot        Slot        `json:"slot"`
}

type DayReservation struct {
	ReservationID string  `json:"reservation_id"`
	Time          string  `json:"time"`
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	ExternalID    int64   `json:"external_id"`
}

type Confirmation struct {
	ReservationID string    `json:"reservation_id"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
}

type Cancellation struct {
	ReservationID string    `json:"reservation_id"`
	ClientChatID  int64     `json:"client_chat_id"`
	ClientName    *string   `json:"client_name,omitempty"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
}
