package repository

import (
	"context"

	"depositflow/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmailAndRole(ctx context.Context, email string, role entity.Role) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) ([]*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error)
}
