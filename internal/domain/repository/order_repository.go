package repository

import (
	"context"

	"depositflow/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id string) error

	// Secondary-index equality lookups.
	FindByCreatedBy(ctx context.Context, email string) ([]*entity.Order, error)
	FindByRenterEmail(ctx context.Context, email string) ([]*entity.Order, error)
	FindByLandlordEmail(ctx context.Context, email string) ([]*entity.Order, error)

	FindAll(ctx context.Context) ([]*entity.Order, error)
}
