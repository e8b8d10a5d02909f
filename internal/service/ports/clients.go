package ports

import (
	"context"

	"github.com/glhf52/zapis-bot/internal/domain"
)

type ClientRepo interface {
	GetOrCreate(ctx context.Context, externalID int64) (*domain.Client, error)
	GetByExternalID(ctx context.Context, externalID int64) (*domain.Client, error)
	UpdateContact(ctx context.Context, externalID int64, name, phone string) error
	SetLastMenuMessage(ctx context.Context, externalID, messageID int64) error
	LastMenuMessage(ctx context.Context, externalID int64) (*int64, error)
}
