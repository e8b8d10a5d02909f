package domain

import (
	"fmt"
	"time"
)

// Формат времени слота (HH:MM).
const TimeLayout = "15:04"

type Slot struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

// StartsAt возвращает момент начала слота (дата + время дня).
func (s *Slot) StartsAt() (time.Time, error) {
	return SlotStartsAt(s.Date, s.Time)
}

func SlotStartsAt(date time.Time, timeOfDay string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse slot time %q: %w", timeOfDay, err)
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, time.Local,
	), nil
}
