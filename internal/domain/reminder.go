package domain

import "time"

// Reminder живёт, пока активна его запись и время срабатывания в будущем.
type Reminder struct {
	ReservationID string    `json:"reservation_id"`
	FireAt        time.Time `json:"fire_at"`
	JobID         string    `json:"job_id"`
}

// Снимок напоминания вместе с состоянием родительской записи и данными
// для повторной постановки. Материал сверки при старте.
type ReminderState struct {
	ReservationID string
	FireAt        time.Time
	JobID         string
	Status        ReservationStatus
	ClientChatID  int64
	Date          time.Time
	Time          string
}
