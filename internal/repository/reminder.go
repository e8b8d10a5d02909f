package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/glhf52/zapis-bot/internal/domain"
)

// ReminderRepository хранит durable-записи о запланированных напоминаниях.
// Живой планировщик в памяти; после рестарта состояние восстанавливается отсюда.
type ReminderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReminderRepo(db *dbpg.DB) *ReminderRepository {
	return &ReminderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Save сохраняет напоминание; повторная постановка по той же записи замещает старую.
func (r *ReminderRepository) Save(ctx context.Context, rem *domain.Reminder) error {
	query := `INSERT INTO reminders (reservation_id, fire_at, job_id)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (reservation_id) DO UPDATE
			  SET fire_at = EXCLUDED.fire_at, job_id = EXCLUDED.job_id`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, rem.ReservationID, rem.FireAt, rem.JobID); err != nil {
		return fmt.Errorf("save reminder: %w", err)
	}

	return nil
}

// Delete удаляет напоминание и возвращает job id для снятия живой задачи.
func (r *ReminderRepository) Delete(ctx context.Context, reservationID string) (string, error) {
	query := `DELETE FROM reminders WHERE reservation_id = $1 RETURNING job_id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, reservationID)
	if err != nil {
		return "", fmt.Errorf("delete reminder: %w", err)
	}

	var jobID string
	if err = row.Scan(&jobID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrReminderNotFound
		}
		return "", fmt.Errorf("scan reminder job id: %w", err)
	}

	return jobID, nil
}

// List возвращает все напоминания вместе с состоянием родительской записи
// для сверки при старте.
func (r *ReminderRepository) List(ctx context.Context) ([]*domain.ReminderState, error) {
	query := `SELECT rm.reservation_id, rm.fire_at, rm.job_id,
					 b.status, c.external_id, s.slot_date, s.slot_time
			  FROM reminders rm
			  JOIN reservations b ON b.id = rm.reservation_id
			  JOIN clients c ON c.id = b.client_id
			  JOIN slots s ON s.id = b.slot_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	var res []*domain.ReminderState
	for rows.Next() {
		var st domain.ReminderState
		if err = rows.Scan(
			&st.ReservationID, &st.FireAt, &st.JobID,
			&st.Status, &st.ClientChatID, &st.Date, &st.Time,
		); err != nil {
			return nil, fmt.Errorf("scan reminder state: %w", err)
		}
		res = append(res, &st)
	}

	return res, rows.Err()
}
