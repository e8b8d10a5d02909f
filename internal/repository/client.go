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

type ClientRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClientRepo(db *dbpg.DB) *ClientRepository {
	return &ClientRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// GetOrCreate возвращает клиента по chat id, создавая запись при первом обращении.
func (r *ClientRepository) GetOrCreate(ctx context.Context, externalID int64) (*domain.Client, error) {
	query := `INSERT INTO clients (id, external_id, created_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (external_id) DO UPDATE SET external_id = EXCLUDED.external_id
			  RETURNING id, external_id, name, phone, last_menu_message_id, created_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, uuid.New().String(), externalID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("get or create client: %w", err)
	}

	var c domain.Client
	if err = row.Scan(&c.ID, &c.ExternalID, &c.Name, &c.Phone, &c.LastMenuMessageID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("scan client: %w", err)
	}

	return &c, nil
}

func (r *ClientRepository) GetByExternalID(ctx context.Context, externalID int64) (*domain.Client, error) {
	query := `SELECT id, external_id, name, phone, last_menu_message_id, created_at
			  FROM clients
			  WHERE external_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, externalID)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	var c domain.Client
	if err = row.Scan(&c.ID, &c.ExternalID, &c.Name, &c.Phone, &c.LastMenuMessageID, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("scan client: %w", err)
	}

	return &c, nil
}

func (r *ClientRepository) UpdateContact(ctx context.Context, externalID int64, name, phone string) error {
	query := `UPDATE clients SET name = $2, phone = $3 WHERE external_id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, externalID, name, phone)
	if err != nil {
		return fmt.Errorf("update client contact: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("client rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

// SetLastMenuMessage хранит id последнего сообщения с меню (служебное поле фронтенда).
func (r *ClientRepository) SetLastMenuMessage(ctx context.Context, externalID, messageID int64) error {
	query := `UPDATE clients SET last_menu_message_id = $2 WHERE external_id = $1`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, externalID, messageID); err != nil {
		return fmt.Errorf("set last menu message: %w", err)
	}

	return nil
}

func (r *ClientRepository) LastMenuMessage(ctx context.Context, externalID int64) (*int64, error) {
	query := `SELECT last_menu_message_id FROM clients WHERE external_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, externalID)
	if err != nil {
		return nil, fmt.Errorf("get last menu message: %w", err)
	}

	var messageID *int64
	if err = row.Scan(&messageID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("scan last menu message: %w", err)
	}

	return messageID, nil
}
