package dto

type ConfirmReservationRequest struct {
	ExternalID int64  `json:"external_id" binding:"required"`
	SlotID     string `json:"slot_id" binding:"required,uuid"`
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}

type SetMenuMessageRequest struct {
	MessageID int64 `json:"message_id" binding:"required"`
}

type AddDayRequest struct {
	Date  string   `json:"date" binding:"required"`
	Times []string `json:"times" binding:"required"`
}
