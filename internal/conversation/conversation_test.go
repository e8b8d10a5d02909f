package conversation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_DefaultsToIdle(t *testing.T) {
	s := NewStore()

	assert.Equal(t, StateIdle, s.State(42))
	assert.Equal(t, Data{}, s.Data(42))
}

func TestStore_SetAndGet(t *testing.T) {
	s := NewStore()

	s.Set(42, StateChoosingDate)
	assert.Equal(t, StateChoosingDate, s.State(42))

	s.Set(42, StateChoosingTime)
	assert.Equal(t, StateChoosingTime, s.State(42))

	// другой чат не затронут
	assert.Equal(t, StateIdle, s.State(43))
}

func TestStore_SetIdleDropsEntry(t *testing.T) {
	s := NewStore()

	s.Set(42, StateEnteringName)
	s.Update(42, func(d *Data) { d.Name = "Анна" })

	s.Set(42, StateIdle)

	assert.Equal(t, StateIdle, s.State(42))
	assert.Equal(t, Data{}, s.Data(42))
}

func TestStore_Update(t *testing.T) {
	s := NewStore()

	s.Set(42, StateEnteringPhone)
	s.Update(42, func(d *Data) {
		d.ChosenDate = "2026-09-14"
		d.ChosenSlotID = "s1"
	})
	s.Update(42, func(d *Data) { d.Phone = "+79990001122" })

	got := s.Data(42)
	assert.Equal(t, "2026-09-14", got.ChosenDate)
	assert.Equal(t, "s1", got.ChosenSlotID)
	assert.Equal(t, "+79990001122", got.Phone)

	// Update не трогает состояние
	assert.Equal(t, StateEnteringPhone, s.State(42))
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()

	s.Set(42, StateAdminAddingDay)
	s.Update(42, func(d *Data) { d.AdminDay = "2026-09-14" })

	s.Clear(42)

	assert.Equal(t, StateIdle, s.State(42))
	assert.Equal(t, Data{}, s.Data(42))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		chatID := int64(i % 5)
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Set(chatID, StateChoosingDate)
			s.Update(chatID, func(d *Data) { d.ChosenSlotID = "s1" })
			_ = s.State(chatID)
			_ = s.Data(chatID)
		}()
	}
	wg.Wait()
}
