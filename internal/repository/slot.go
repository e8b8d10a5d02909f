package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/glhf52/zapis-bot/internal/domain"
)

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create добавляет один свободный слот. Дубликаты (date, time) допустимы:
// админ может открыть несколько одинаковых окон.
func (r *SlotRepository) Create(ctx context.Context, date time.Time, timeOfDay string) (*domain.Slot, error) {
	slot := &domain.Slot{
		ID:        uuid.New().String(),
		Date:      date,
		Time:      timeOfDay,
		Available: true,
		CreatedAt: time.Now().UTC(),
	}

	query := `INSERT INTO slots (id, slot_date, slot_time, is_available, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		slot.ID, slot.Date, slot.Time, slot.Available, slot.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert slot: %w", err)
	}

	return slot, nil
}

// Delete удаляет слот. За отсутствие активных записей по нему отвечает вызывающий.
func (r *SlotRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM slots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("slot rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSlotNotFound
	}

	return nil
}

// CloseDay закрывает все слоты даты независимо от их состояния. Идемпотентна.
func (r *SlotRepository) CloseDay(ctx context.Context, date time.Time) error {
	query := `UPDATE slots SET is_available = FALSE WHERE slot_date = $1`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, date); err != nil {
		return fmt.Errorf("close day: %w", err)
	}

	return nil
}

// AvailableDays возвращает даты со свободными слотами от from до from+horizonDays,
// по возрастанию; выходные отбрасываются, если excludeWeekends.
func (r *SlotRepository) AvailableDays(ctx context.Context, from time.Time, horizonDays int, excludeWeekends bool) ([]time.Time, error) {
	query := `SELECT DISTINCT slot_date
			  FROM slots
			  WHERE is_available = TRUE
			  ORDER BY slot_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list available days: %w", err)
	}
	defer rows.Close()

	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	limit := fromDay.AddDate(0, 0, horizonDays)

	var res []time.Time
	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		if d.Before(fromDay) || d.After(limit) {
			continue
		}
		if excludeWeekends && (d.Weekday() == time.Saturday || d.Weekday() == time.Sunday) {
			continue
		}
		res = append(res, d)
	}

	return res, rows.Err()
}

// AvailableTimes возвращает свободные слоты даты по возрастанию времени.
func (r *SlotRepository) AvailableTimes(ctx context.Context, date time.Time) ([]*domain.Slot, error) {
	query := `SELECT id, slot_date, slot_time, is_available, created_at
			  FROM slots
			  WHERE slot_date = $1 AND is_available = TRUE
			  ORDER BY slot_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date)
	if err != nil {
		return nil, fmt.Errorf("list available times: %w", err)
	}
	defer rows.Close()

	var res []*domain.Slot
	for rows.Next() {
		var s domain.Slot
		if err = rows.Scan(&s.ID, &s.Date, &s.Time, &s.Available, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := `SELECT id, slot_date, slot_time, is_available, created_at
			  FROM slots
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	var s domain.Slot
	if err = row.Scan(&s.ID, &s.Date, &s.Time, &s.Available, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return &s, nil
}
