package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glhf52/zapis-bot/internal/domain"
	"github.com/glhf52/zapis-bot/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInventoryService(t *testing.T) (*InventoryService, *mocks.MockSlotRepo, *mocks.MockReservationRepo) {
	t.Helper()
	slots := mocks.NewMockSlotRepo(t)
	reservations := mocks.NewMockReservationRepo(t)
	svc := NewInventoryService(slots, reservations, 31, true, newTestLogger(t))
	return svc, slots, reservations
}

func TestInventoryService_AddDay(t *testing.T) {
	svc, slots, _ := newInventoryService(t)

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	slots.EXPECT().Create(mock.Anything, date, "10:00").Return(&domain.Slot{ID: "s1"}, nil)
	slots.EXPECT().Create(mock.Anything, date, "12:30").Return(&domain.Slot{ID: "s2"}, nil)

	created, err := svc.AddDay(context.Background(), date, []string{"10:00", "12:30"})

	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestInventoryService_AddDay_SkipsInvalidTimes(t *testing.T) {
	svc, slots, _ := newInventoryService(t)

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	slots.EXPECT().Create(mock.Anything, date, "10:00").Return(&domain.Slot{ID: "s1"}, nil)
	slots.EXPECT().Create(mock.Anything, date, "12:30").Return(&domain.Slot{ID: "s2"}, nil)

	created, err := svc.AddDay(context.Background(), date, []string{"10:00", "25:70", "", "  ", "12:30"})

	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestInventoryService_AddDay_RepoError(t *testing.T) {
	svc, slots, _ := newInventoryService(t)

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	slots.EXPECT().Create(mock.Anything, date, "10:00").Return(&domain.Slot{ID: "s1"}, nil)
	slots.EXPECT().Create(mock.Anything, date, "11:00").Return(nil, errors.New("db down"))

	created, err := svc.AddDay(context.Background(), date, []string{"10:00", "11:00", "12:00"})

	require.Error(t, err)
	assert.Equal(t, 1, created)
}

func TestInventoryService_CloseDay(t *testing.T) {
	svc, slots, _ := newInventoryService(t)

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	slots.EXPECT().CloseDay(mock.Anything, date).Return(nil)

	require.NoError(t, svc.CloseDay(context.Background(), date))
}

func TestInventoryService_RemoveSlot_NotFound(t *testing.T) {
	svc, slots, _ := newInventoryService(t)

	slots.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrSlotNotFound)

	err := svc.RemoveSlot(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestInventoryService_AvailableDays(t *testing.T) {
	svc, slots, _ := newInventoryService(t)

	days := []time.Time{
		time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	}

	slots.EXPECT().AvailableDays(mock.Anything, mock.Anything, 31, true).Return(days, nil)

	got, err := svc.AvailableDays(context.Background())

	require.NoError(t, err)
	assert.Equal(t, days, got)
}

func TestInventoryService_ListByDay(t *testing.T) {
	svc, _, reservations := newInventoryService(t)

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	name := "Анна"
	rows := []*domain.DayReservation{
		{ReservationID: "r1", Time: "10:00", Name: &name, ExternalID: 42},
	}

	reservations.EXPECT().ListByDay(mock.Anything, date).Return(rows, nil)

	got, err := svc.ListByDay(context.Background(), date)

	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
