package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/glhf52/zapis-bot/internal/domain"
)

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Reserve атомарно занимает слот для клиента: проверка "нет активной записи",
// проверка доступности слота, пометка слота занятым и вставка записи идут
// в одной транзакции под блокировками строк клиента и слота.
func (r *ReservationRepository) Reserve(ctx context.Context, clientID, slotID string) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем строку клиента: конкурентные Reserve того же клиента выполняются по очереди
	var lockedClientID string
	if err = tx.QueryRowContext(ctx,
		`SELECT id FROM clients WHERE id = $1 FOR UPDATE`, clientID,
	).Scan(&lockedClientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("lock client: %w", err)
	}

	var existing string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM reservations WHERE client_id = $1 AND status = $2 LIMIT 1`,
		clientID, domain.ReservationStatusActive,
	).Scan(&existing)
	if err == nil {
		return nil, domain.ErrAlreadyBooked
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check active reservation: %w", err)
	}

	var available bool
	if err = tx.QueryRowContext(ctx,
		`SELECT is_available FROM slots WHERE id = $1 FOR UPDATE`, slotID,
	).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotUnavailable
		}
		return nil, fmt.Errorf("lock slot: %w", err)
	}
	if !available {
		return nil, domain.ErrSlotUnavailable
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE slots SET is_available = FALSE WHERE id = $1`, slotID,
	); err != nil {
		return nil, fmt.Errorf("take slot: %w", err)
	}

	res := &domain.Reservation{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		SlotID:    slotID,
		Status:    domain.ReservationStatusActive,
		CreatedAt: time.Now().UTC(),
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO reservations (id, client_id, slot_id, status, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		res.ID, res.ClientID, res.SlotID, res.Status, res.CreatedAt,
	)
	if err != nil {
		// Нарушение частичного уникального индекса мапим на те же типизированные ошибки
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.Constraint, "client") {
				return nil, domain.ErrAlreadyBooked
			}
			return nil, domain.ErrSlotUnavailable
		}
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reserve: %w", err)
	}

	return res, nil
}

// Cancel атомарно переводит активную запись в cancelled и вновь открывает её слот.
// Возвращает слот для текста уведомлений.
func (r *ReservationRepository) Cancel(ctx context.Context, reservationID string) (*domain.Slot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var slotID string
	err = tx.QueryRowContext(ctx,
		`SELECT slot_id FROM reservations WHERE id = $1 AND status = $2 FOR UPDATE`,
		reservationID, domain.ReservationStatusActive,
	).Scan(&slotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("lock reservation: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE reservations SET status = $2 WHERE id = $1`,
		reservationID, domain.ReservationStatusCancelled,
	); err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE slots SET is_available = TRUE WHERE id = $1`, slotID,
	); err != nil {
		return nil, fmt.Errorf("release slot: %w", err)
	}

	var slot domain.Slot
	if err = tx.QueryRowContext(ctx,
		`SELECT id, slot_date, slot_time, is_available, created_at FROM slots WHERE id = $1`,
		slotID,
	).Scan(&slot.ID, &slot.Date, &slot.Time, &slot.Available, &slot.CreatedAt); err != nil {
		return nil, fmt.Errorf("get released slot: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancel: %w", err)
	}

	return &slot, nil
}

// ActiveByExternalID возвращает активную запись клиента по его chat id.
func (r *ReservationRepository) ActiveByExternalID(ctx context.Context, externalID int64) (*domain.ActiveReservation, error) {
	query := `SELECT b.id, b.client_id, b.slot_id, b.status, b.created_at,
					 s.id, s.slot_date, s.slot_time, s.is_available, s.created_at
			  FROM reservations b
			  JOIN clients c ON c.id = b.client_id
			  JOIN slots s ON s.id = b.slot_id
			  WHERE c.external_id = $1 AND b.status = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, externalID, domain.ReservationStatusActive)
	if err != nil {
		return nil, fmt.Errorf("get active reservation: %w", err)
	}

	var a domain.ActiveReservation
	if err = row.Scan(
		&a.Reservation.ID, &a.Reservation.ClientID, &a.Reservation.SlotID,
		&a.Reservation.Status, &a.Reservation.CreatedAt,
		&a.Slot.ID, &a.Slot.Date, &a.Slot.Time, &a.Slot.Available, &a.Slot.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan active reservation: %w", err)
	}

	return &a, nil
}

// ListByDay возвращает активные записи даты с контактами клиентов, по возрастанию времени.
func (r *ReservationRepository) ListByDay(ctx context.Context, date time.Time) ([]*domain.DayReservation, error) {
	query := `SELECT b.id, s.slot_time, c.name, c.phone, c.external_id
			  FROM reservations b
			  JOIN slots s ON s.id = b.slot_id
			  JOIN clients c ON c.id = b.client_id
			  WHERE s.slot_date = $1 AND b.status = $2
			  ORDER BY s.slot_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, domain.ReservationStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list reservations by day: %w", err)
	}
	defer rows.Close()

	var res []*domain.DayReservation
	for rows.Next() {
		var d domain.DayReservation
		if err = rows.Scan(&d.ReservationID, &d.Time, &d.Name, &d.Phone, &d.ExternalID); err != nil {
			return nil, fmt.Errorf("scan day reservation: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

// GetDetail возвращает полный срез запись+клиент+слот.
func (r *ReservationRepository) GetDetail(ctx context.Context, reservationID string) (*domain.ReservationDetail, error) {
	query := `SELECT b.id, b.client_id, b.slot_id, b.status, b.created_at,
					 c.id, c.external_id, c.name, c.phone, c.created_at,
					 s.id, s.slot_date, s.slot_time, s.is_available, s.created_at
			  FROM reservations b
			  JOIN clients c ON c.id = b.client_id
			  JOIN slots s ON s.id = b.slot_id
			  WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation detail: %w", err)
	}

	var d domain.ReservationDetail
	if err = row.Scan(
		&d.Reservation.ID, &d.Reservation.ClientID, &d.Reservation.SlotID,
		&d.Reservation.Status, &d.Reservation.CreatedAt,
		&d.Client.ID, &d.Client.ExternalID, &d.Client.Name, &d.Client.Phone, &d.Client.CreatedAt,
		&d.Slot.ID, &d.Slot.Date, &d.Slot.Time, &d.Slot.Available, &d.Slot.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation detail: %w", err)
	}

	return &d, nil
}
