package conversation

import "sync"

// Шаг диалога. Состояние живёт в памяти на время одной попытки
// записи и не попадает в durable-модель.
type State string

// Клиентский сценарий записи.
const (
	StateIdle          State = "idle"
	StateChoosingDate  State = "choosing_date"
	StateChoosingTime  State = "choosing_time"
	StateEnteringName  State = "entering_name"
	StateEnteringPhone State = "entering_phone"
	StateConfirming    State = "confirming"
)

// Параллельный админский сценарий.
const (
	StateAdminChoosingAction      State = "admin_choosing_action"
	StateAdminAddingDay           State = "admin_adding_day"
	StateAdminAddingTimesForDay   State = "admin_adding_times_for_day"
	StateAdminClosingDay          State = "admin_closing_day"
	StateAdminViewingDay          State = "admin_viewing_day"
	StateAdminCancelChooseDay     State = "admin_cancel_choose_day"
	StateAdminCancelChooseBooking State = "admin_cancel_choose_booking"
)

// Временные поля диалога; сбрасываются вместе с состоянием.
type Data struct {
	ChosenDate   string
	ChosenSlotID string
	Name         string
	Phone        string
	AdminDay     string
}

type entry struct {
	state State
	data  Data
}

// Store хранит состояния диалогов по chat id. Принадлежит фронтенду;
// ядро получает уже извлечённые значения аргументами.
type Store struct {
	mu    sync.RWMutex
	chats map[int64]*entry
}

func NewStore() *Store {
	return &Store{chats: make(map[int64]*entry)}
}

func (s *Store) State(chatID int64) State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.chats[chatID]
	if !ok {
		return StateIdle
	}
	return e.state
}

func (s *Store) Set(chatID int64, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st == StateIdle {
		delete(s.chats, chatID)
		return
	}

	e, ok := s.chats[chatID]
	if !ok {
		e = &entry{}
		s.chats[chatID] = e
	}
	e.state = st
}

// Update меняет временные поля диалога, не трогая состояние.
func (s *Store) Update(chatID int64, fn func(*Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.chats[chatID]
	if !ok {
		e = &entry{state: StateIdle}
		s.chats[chatID] = e
	}
	fn(&e.data)
}

func (s *Store) Data(chatID int64) Data {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.chats[chatID]
	if !ok {
		return Data{}
	}
	return e.data
}

// Clear возвращает диалог в Idle и сбрасывает временные поля.
func (s *Store) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.chats, chatID)
}
