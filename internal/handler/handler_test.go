package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/glhf52/zapis-bot/internal/domain"
	"github.com/glhf52/zapis-bot/internal/handler/dto"
	hmocks "github.com/glhf52/zapis-bot/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockInventorySvc, *hmocks.MockSubscriptionSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	inventorySvc := hmocks.NewMockInventorySvc(t)
	subscriptionSvc := hmocks.NewMockSubscriptionSvc(t)

	h := NewHandler(bookingSvc, inventorySvc, subscriptionSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/days", h.ListDays)
		api.GET("/days/:date/times", h.ListTimes)
		api.POST("/reservations", h.ConfirmReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.DELETE("/reservations/:id", h.CancelByClient)
		api.GET("/clients/:external_id/reservation", h.GetActiveReservation)
		api.GET("/clients/:external_id/subscription", h.CheckSubscription)
		api.POST("/clients/:external_id/menu", h.SetMenuMessage)
		api.GET("/clients/:external_id/menu", h.GetMenuMessage)
		api.POST("/admin/days", h.AddDay)
		api.POST("/admin/days/:date/close", h.CloseDay)
		api.GET("/admin/days/:date/reservations", h.ListDayReservations)
		api.POST("/admin/reservations/:id/cancel", h.CancelByAdmin)
	}

	return bookingSvc, inventorySvc, subscriptionSvc, r
}

// --- Календарь ---

func TestHandler_ListDays(t *testing.T) {
	_, inventorySvc, _, r := setupRouter(t)

	days := []time.Time{
		time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	}
	inventorySvc.EXPECT().AvailableDays(mock.Anything).Return(days, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/days", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2026-09-14", "2026-09-15"}, resp)
}

func TestHandler_ListTimes(t *testing.T) {
	_, inventorySvc, _, r := setupRouter(t)

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	slots := []*domain.Slot{
		{ID: "s1", Date: date, Time: "10:00", Available: true},
		{ID: "s2", Date: date, Time: "12:30", Available: true},
	}
	inventorySvc.EXPECT().AvailableTimes(mock.Anything, date).Return(slots, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/days/2026-09-14/times", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SlotTimeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "10:00", resp[0].Time)
}

func TestHandler_ListTimes_BadDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/days/14.09.2026/times", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Записи ---

func TestHandler_ConfirmReservation(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	slotID := uuid.New().String()
	conf := &domain.Confirmation{
		ReservationID: uuid.New().String(),
		Date:          time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Time:          "14:00",
		Name:          "Анна",
		Phone:         "+79990001122",
	}

	bookingSvc.EXPECT().
		ConfirmReservation(mock.Anything, int64(42), slotID, "Анна", "+79990001122").
		Return(conf, nil)

	body, _ := json.Marshal(dto.ConfirmReservationRequest{
		ExternalID: 42,
		SlotID:     slotID,
		Name:       "Анна",
		Phone:      "+79990001122",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ConfirmationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, conf.ReservationID, resp.ReservationID)
	assert.Equal(t, "2026-09-14", resp.Date)
	assert.Equal(t, "14:00", resp.Time)
}

func TestHandler_ConfirmReservation_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"external_id":42}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ConfirmReservation_SlotTaken(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	slotID := uuid.New().String()
	bookingSvc.EXPECT().
		ConfirmReservation(mock.Anything, int64(42), slotID, "Анна", "+79990001122").
		Return(nil, domain.ErrSlotUnavailable)

	body, _ := json.Marshal(dto.ConfirmReservationRequest{
		ExternalID: 42,
		SlotID:     slotID,
		Name:       "Анна",
		Phone:      "+79990001122",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ConfirmReservation_AlreadyBooked(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	slotID := uuid.New().String()
	bookingSvc.EXPECT().
		ConfirmReservation(mock.Anything, int64(42), slotID, "Анна", "+79990001122").
		Return(nil, domain.ErrAlreadyBooked)

	body, _ := json.Marshal(dto.ConfirmReservationRequest{
		ExternalID: 42,
		SlotID:     slotID,
		Name:       "Анна",
		Phone:      "+79990001122",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetReservation(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	name := "Анна"
	detail := &domain.ReservationDetail{
		Reservation: domain.Reservation{ID: id, Status: domain.ReservationStatusActive},
		Client:      domain.Client{ExternalID: 42, Name: &name},
		Slot:        domain.Slot{Date: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), Time: "14:00"},
	}

	bookingSvc.EXPECT().Detail(mock.Anything, id).Return(detail, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ReservationID)
	assert.Equal(t, int64(42), resp.ExternalID)
}

func TestHandler_GetReservation_BadID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelByClient(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	cancellation := &domain.Cancellation{
		ReservationID: id,
		Date:          time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Time:          "14:00",
	}

	bookingSvc.EXPECT().CancelByClient(mock.Anything, id).Return(cancellation, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancellationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ReservationID)
}

func TestHandler_CancelByClient_NotFound(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().CancelByClient(mock.Anything, id).Return(nil, domain.ErrReservationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Клиенты ---

func TestHandler_GetActiveReservation(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	active := &domain.ActiveReservation{
		Reservation: domain.Reservation{ID: "r1", Status: domain.ReservationStatusActive},
		Slot:        domain.Slot{ID: "s1", Date: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), Time: "14:00"},
	}

	bookingSvc.EXPECT().ActiveByClient(mock.Anything, int64(42)).Return(active, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients/42/reservation", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "r1", resp.ReservationID)
	assert.Equal(t, "14:00", resp.Time)
}

func TestHandler_GetActiveReservation_None(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().ActiveByClient(mock.Anything, int64(42)).Return(nil, domain.ErrReservationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients/42/reservation", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetActiveReservation_BadID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients/abc/reservation", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckSubscription(t *testing.T) {
	_, _, subscriptionSvc, r := setupRouter(t)

	subscriptionSvc.EXPECT().IsSubscribed(mock.Anything, int64(42)).Return(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients/42/subscription", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SubscriptionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Subscribed)
}

func TestHandler_SetMenuMessage(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().SetMenuMessage(mock.Anything, int64(42), int64(777)).Return(nil)

	body, _ := json.Marshal(dto.SetMenuMessageRequest{MessageID: 777})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/clients/42/menu", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SetMenuMessage_UnknownClient(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().
		SetMenuMessage(mock.Anything, int64(42), int64(777)).
		Return(domain.ErrClientNotFound)

	body, _ := json.Marshal(dto.SetMenuMessageRequest{MessageID: 777})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/clients/42/menu", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SetMenuMessage_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/clients/42/menu", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetMenuMessage(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	messageID := int64(777)
	bookingSvc.EXPECT().MenuMessage(mock.Anything, int64(42)).Return(&messageID, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients/42/menu", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MenuMessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.MessageID)
	assert.Equal(t, int64(777), *resp.MessageID)
}

func TestHandler_GetMenuMessage_UnknownClient(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().MenuMessage(mock.Anything, int64(42)).Return(nil, domain.ErrClientNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients/42/menu", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Админ ---

func TestHandler_AddDay(t *testing.T) {
	_, inventorySvc, _, r := setupRouter(t)

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	inventorySvc.EXPECT().AddDay(mock.Anything, date, []string{"10:00", "12:30"}).Return(2, nil)

	body, _ := json.Marshal(dto.AddDayRequest{
		Date:  "2026-09-14",
		Times: []string{"10:00", "12:30"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/days", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AddDayResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Created)
}

func TestHandler_AddDay_BadDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"date":"14.09.2026","times":["10:00"]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/days", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CloseDay(t *testing.T) {
	_, inventorySvc, _, r := setupRouter(t)

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	inventorySvc.EXPECT().CloseDay(mock.Anything, date).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/days/2026-09-14/close", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListDayReservations(t *testing.T) {
	_, inventorySvc, _, r := setupRouter(t)

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	name := "Анна"
	phone := "+79990001122"
	rows := []*domain.DayReservation{
		{ReservationID: "r1", Time: "10:00", Name: &name, Phone: &phone, ExternalID: 42},
	}

	inventorySvc.EXPECT().ListByDay(mock.Anything, date).Return(rows, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/days/2026-09-14/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.DayReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "r1", resp[0].ReservationID)
	assert.Equal(t, int64(42), resp[0].ExternalID)
}

func TestHandler_CancelByAdmin(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	name := "Анна"
	cancellation := &domain.Cancellation{
		ReservationID: id,
		ClientChatID:  42,
		ClientName:    &name,
		Date:          time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Time:          "14:00",
	}

	bookingSvc.EXPECT().CancelByAdmin(mock.Anything, id).Return(cancellation, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/reservations/"+id+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelByAdmin_BadID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/reservations/not-a-uuid/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
