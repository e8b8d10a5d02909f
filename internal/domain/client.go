package domain

import "time"

// Client создаётся лениво при первом обращении; имя и телефон появляются
// при первой подтверждённой записи.
type Client struct {
	ID                string    `json:"id"`
	ExternalID        int64     `json:"external_id"`
	Name              *string   `json:"name"`
	Phone             *string   `json:"phone"`
	LastMenuMessageID *int64    `json:"last_menu_message_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
