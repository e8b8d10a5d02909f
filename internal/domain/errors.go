package domain

import "errors"

var (
	ErrSlotNotFound        = errors.New("slot not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReminderNotFound    = errors.New("reminder not found")
)

var (
	ErrAlreadyBooked   = errors.New("client already has an active reservation")
	ErrSlotUnavailable = errors.New("slot is unavailable")
)

var (
	ErrValidation = errors.New("validation error")
)
