package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/glhf52/zapis-bot/internal/domain"
	"github.com/glhf52/zapis-bot/internal/handler/dto"
)

type BookingSvc interface {
	ConfirmReservation(ctx context.Context, externalID int64, slotID, name, phone string) (*domain.Confirmation, error)
	CancelByClient(ctx context.Context, reservationID string) (*domain.Cancellation, error)
	CancelByAdmin(ctx context.Context, reservationID string) (*domain.Cancellation, error)
	ActiveByClient(ctx context.Context, externalID int64) (*domain.ActiveReservation, error)
	Detail(ctx context.Context, reservationID string) (*domain.ReservationDetail, error)
	SetMenuMessage(ctx context.Context, externalID, messageID int64) error
	MenuMessage(ctx context.Context, externalID int64) (*int64, error)
}

type InventorySvc interface {
	AddDay(ctx context.Context, date time.Time, times []string) (int, error)
	CloseDay(ctx context.Context, date time.Time) error
	AvailableDays(ctx context.Context) ([]time.Time, error)
	AvailableTimes(ctx context.Context, date time.Time) ([]*domain.Slot, error)
	ListByDay(ctx context.Context, date time.Time) ([]*domain.DayReservation, error)
}

type SubscriptionSvc interface {
	IsSubscribed(ctx context.Context, chatID int64) bool
}

type Handler struct {
	bookingService   BookingSvc
	inventoryService InventorySvc
	subscriptions    SubscriptionSvc
}

func NewHandler(bookingService BookingSvc, inventoryService InventorySvc, subscriptions SubscriptionSvc) *Handler {
	return &Handler{
		bookingService:   bookingService,
		inventoryService: inventoryService,
		subscriptions:    subscriptions,
	}
}

// Days

func (h *Handler) ListDays(c *ginext.Context) {
	days, err := h.inventoryService.AvailableDays(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]string, 0, len(days))
	for _, d := range days {
		resp = append(resp, d.Format(time.DateOnly))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListTimes(c *ginext.Context) {
	date, ok := h.parseDate(c)
	if !ok {
		return
	}

	slots, err := h.inventoryService.AvailableTimes(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotTimeResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotTimeResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Reservations

func (h *Handler) ConfirmReservation(c *ginext.Context) {
	var req dto.ConfirmReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	conf, err := h.bookingService.ConfirmReservation(
		c.Request.Context(),
		req.ExternalID, req.SlotID, req.Name, req.Phone,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToConfirmationResponse(conf))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	detail, err := h.bookingService.Detail(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationDetailResponse(detail))
}

func (h *Handler) CancelByClient(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	res, err := h.bookingService.CancelByClient(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCancellationResponse(res))
}

func (h *Handler) CancelByAdmin(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	res, err := h.bookingService.CancelByAdmin(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCancellationResponse(res))
}

// Clients

func (h *Handler) GetActiveReservation(c *ginext.Context) {
	externalID, ok := h.parseExternalID(c)
	if !ok {
		return
	}

	active, err := h.bookingService.ActiveByClient(c.Request.Context(), externalID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(active))
}

func (h *Handler) CheckSubscription(c *ginext.Context) {
	externalID, ok := h.parseExternalID(c)
	if !ok {
		return
	}

	subscribed := h.subscriptions.IsSubscribed(c.Request.Context(), externalID)

	c.JSON(http.StatusOK, dto.SubscriptionResponse{Subscribed: subscribed})
}

func (h *Handler) SetMenuMessage(c *ginext.Context) {
	externalID, ok := h.parseExternalID(c)
	if !ok {
		return
	}

	var req dto.SetMenuMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.SetMenuMessage(c.Request.Context(), externalID, req.MessageID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func (h *Handler) GetMenuMessage(c *ginext.Context) {
	externalID, ok := h.parseExternalID(c)
	if !ok {
		return
	}

	messageID, err := h.bookingService.MenuMessage(c.Request.Context(), externalID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MenuMessageResponse{MessageID: messageID})
}

// Admin

func (h *Handler) AddDay(c *ginext.Context) {
	var req dto.AddDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	created, err := h.inventoryService.AddDay(c.Request.Context(), date, req.Times)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AddDayResponse{Created: created})
}

func (h *Handler) CloseDay(c *ginext.Context) {
	date, ok := h.parseDate(c)
	if !ok {
		return
	}

	if err := h.inventoryService.CloseDay(c.Request.Context(), date); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "closed"})
}

func (h *Handler) ListDayReservations(c *ginext.Context) {
	date, ok := h.parseDate(c)
	if !ok {
		return
	}

	list, err := h.inventoryService.ListByDay(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.DayReservationResponse, 0, len(list))
	for _, d := range list {
		resp = append(resp, dto.ToDayReservationResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) parseDate(c *ginext.Context) (time.Time, bool) {
	date, err := time.Parse(time.DateOnly, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return date, true
}

func (h *Handler) parseExternalID(c *ginext.Context) (int64, bool) {
	externalID, err := strconv.ParseInt(c.Param("external_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid external id"})
		return 0, false
	}
	return externalID, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrReminderNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
