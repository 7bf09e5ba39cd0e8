package repository

import (
	"context"

	"depositflow/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, room *entity.ChatRoom) error
	GetByOrderID(ctx context.Context, orderID string) (*entity.ChatRoom, error)
	Update(ctx context.Context, room *entity.ChatRoom) error
	Delete(ctx context.Context, orderID string) error
}
