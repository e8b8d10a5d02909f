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

func newReminderService(t *testing.T, lead time.Duration) (
	*ReminderService,
	*mocks.MockReminderRepo,
	*mocks.MockJobScheduler,
	*mocks.MockNotifier,
) {
	t.Helper()
	reminders := mocks.NewMockReminderRepo(t)
	scheduler := mocks.NewMockJobScheduler(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewReminderService(reminders, scheduler, notifier, lead, newTestLogger(t))
	return svc, reminders, scheduler, notifier
}

func TestReminderService_ScheduleFor(t *testing.T) {
	svc, reminders, scheduler, _ := newReminderService(t, 24*time.Hour)

	date := time.Now().AddDate(0, 0, 7)
	startsAt, err := domain.SlotStartsAt(date, "14:00")
	require.NoError(t, err)
	wantFireAt := startsAt.Add(-24 * time.Hour)

	var gotFireAt time.Time
	scheduler.EXPECT().Schedule("reminder_r1", mock.Anything, mock.Anything).
		Run(func(jobID string, fireAt time.Time, job func(context.Context)) {
			gotFireAt = fireAt
		}).
		Return()

	var saved *domain.Reminder
	reminders.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, rem *domain.Reminder) {
			saved = rem
		}).
		Return(nil)

	err = svc.ScheduleFor(context.Background(), "r1", 42, date, "14:00")

	require.NoError(t, err)
	assert.True(t, gotFireAt.Equal(wantFireAt))
	require.NotNil(t, saved)
	assert.Equal(t, "r1", saved.ReservationID)
	assert.Equal(t, "reminder_r1", saved.JobID)
	assert.True(t, saved.FireAt.Equal(wantFireAt))
}

func TestReminderService_ScheduleFor_SlotTooClose(t *testing.T) {
	// до начала слота меньше lead: ни живой задачи, ни durable-записи
	svc, _, _, _ := newReminderService(t, 24*time.Hour)

	date := time.Now()

	err := svc.ScheduleFor(context.Background(), "r1", 42, date, "23:59")

	require.NoError(t, err)
}

func TestReminderService_ScheduleFor_BadTime(t *testing.T) {
	svc, _, _, _ := newReminderService(t, 24*time.Hour)

	err := svc.ScheduleFor(context.Background(), "r1", 42, time.Now().AddDate(0, 0, 7), "25:99")

	require.Error(t, err)
}

func TestReminderService_FiredReminderCleansUp(t *testing.T) {
	svc, reminders, scheduler, notifier := newReminderService(t, 24*time.Hour)

	date := time.Now().AddDate(0, 0, 7)

	var job func(context.Context)
	scheduler.EXPECT().Schedule("reminder_r1", mock.Anything, mock.Anything).
		Run(func(jobID string, fireAt time.Time, j func(context.Context)) {
			job = j
		}).
		Return()
	reminders.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.ScheduleFor(context.Background(), "r1", 42, date, "14:00"))
	require.NotNil(t, job)

	notifier.EXPECT().SendReminder(mock.Anything, int64(42), date, "14:00").Return()
	reminders.EXPECT().Delete(mock.Anything, "r1").Return("reminder_r1", nil)

	job(context.Background())
}

func TestReminderService_CancelFor(t *testing.T) {
	svc, reminders, scheduler, _ := newReminderService(t, 24*time.Hour)

	reminders.EXPECT().Delete(mock.Anything, "r1").Return("reminder_r1", nil)
	scheduler.EXPECT().Cancel("reminder_r1").Return(true)

	err := svc.CancelFor(context.Background(), "r1")

	require.NoError(t, err)
}

func TestReminderService_CancelFor_Missing(t *testing.T) {
	svc, reminders, _, _ := newReminderService(t, 24*time.Hour)

	reminders.EXPECT().Delete(mock.Anything, "r1").Return("", domain.ErrReminderNotFound)

	err := svc.CancelFor(context.Background(), "r1")

	require.NoError(t, err)
}

func TestReminderService_CancelFor_RepoError(t *testing.T) {
	svc, reminders, _, _ := newReminderService(t, 24*time.Hour)

	reminders.EXPECT().Delete(mock.Anything, "r1").Return("", errors.New("db down"))

	err := svc.CancelFor(context.Background(), "r1")

	require.Error(t, err)
}

func TestReminderService_Reconcile(t *testing.T) {
	svc, reminders, scheduler, notifier := newReminderService(t, 24*time.Hour)

	future := time.Now().Add(48 * time.Hour)
	past := time.Now().Add(-time.Hour)
	slotDate := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	states := []*domain.ReminderState{
		{
			ReservationID: "r1",
			FireAt:        future,
			JobID:         "reminder_r1",
			Status:        domain.ReservationStatusActive,
			ClientChatID:  42,
			Date:          slotDate,
			Time:          "14:00",
		},
		{
			ReservationID: "r2",
			FireAt:        future,
			JobID:         "reminder_r2",
			Status:        domain.ReservationStatusCancelled,
		},
		{
			ReservationID: "r3",
			FireAt:        past,
			JobID:         "reminder_r3",
			Status:        domain.ReservationStatusActive,
		},
	}

	var job func(context.Context)
	reminders.EXPECT().List(mock.Anything).Return(states, nil)
	scheduler.EXPECT().Schedule("reminder_r1", mock.Anything, mock.Anything).
		Run(func(jobID string, fireAt time.Time, j func(context.Context)) {
			job = j
		}).
		Return()
	reminders.EXPECT().Delete(mock.Anything, "r2").Return("reminder_r2", nil)
	reminders.EXPECT().Delete(mock.Anything, "r3").Return("reminder_r3", nil)

	err := svc.Reconcile(context.Background())

	require.NoError(t, err)

	// перевзведённое напоминание уходит с сохранённой датой слота
	require.NotNil(t, job)
	notifier.EXPECT().SendReminder(mock.Anything, int64(42), slotDate, "14:00").Return()
	reminders.EXPECT().Delete(mock.Anything, "r1").Return("reminder_r1", nil)
	job(context.Background())
}

func TestReminderService_Reconcile_PurgeErrorDoesNotStop(t *testing.T) {
	svc, reminders, scheduler, _ := newReminderService(t, 24*time.Hour)

	future := time.Now().Add(48 * time.Hour)

	states := []*domain.ReminderState{
		{
			ReservationID: "r1",
			FireAt:        time.Now().Add(-time.Hour),
			JobID:         "reminder_r1",
			Status:        domain.ReservationStatusActive,
		},
		{
			ReservationID: "r2",
			FireAt:        future,
			JobID:         "reminder_r2",
			Status:        domain.ReservationStatusActive,
			ClientChatID:  42,
			Time:          "14:00",
		},
	}

	reminders.EXPECT().List(mock.Anything).Return(states, nil)
	reminders.EXPECT().Delete(mock.Anything, "r1").Return("", errors.New("db down"))
	scheduler.EXPECT().Schedule("reminder_r2", mock.Anything, mock.Anything).Return()

	err := svc.Reconcile(context.Background())

	require.NoError(t, err)
}

func TestReminderService_Reconcile_ListError(t *testing.T) {
	svc, reminders, _, _ := newReminderService(t, 24*time.Hour)

	reminders.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	err := svc.Reconcile(context.Background())

	require.Error(t, err)
}
