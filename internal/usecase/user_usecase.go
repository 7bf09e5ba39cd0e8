package usecase

import (
	"context"
	"strings"

	"depositflow/internal/domain/entity"
	"depositflow/internal/domain/repository"
	"depositflow/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// deriveDisplayName synthesizes a readable name from the email local-part:
// "john.doe@x.com" -> "John Doe".
func deriveDisplayName(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	local = strings.NewReplacer(".", " ", "_", " ").Replace(local)

	words := strings.Fields(local)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// LoginOrCreate resolves the (email, role) identity, creating the user on
// first login. Idempotent apart from the timestamps of a fresh record.
func (uc *UserUseCase) LoginOrCreate(ctx context.Context, email string, role entity.Role) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmailAndRole(ctx, email, role)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	now := entity.NowTimestamp()
	user = &entity.User{
		Email:     email,
		Role:      role,
		Name:      deriveDisplayName(email),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// LoginByEmail finds any role-variant for the email. When several roles
// exist the first record in storage order is returned; there is no notion
// of a primary role.
func (uc *UserUseCase) LoginByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, errors.NotFound("User", nil)
	}
	return users[0], nil
}

func (uc *UserUseCase) Register(ctx context.Context, email string, role entity.Role, name string) (*entity.User, error) {
	if _, err := uc.userRepo.GetByEmailAndRole(ctx, email, role); err == nil {
		return nil, errors.Conflict("User already exists")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	now := entity.NowTimestamp()
	user := &entity.User{
		Email:     email,
		Role:      role,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) GetByEmailAndRole(ctx context.Context, email string, role entity.Role) (*entity.User, error) {
	return uc.userRepo.GetByEmailAndRole(ctx, email, role)
}

func (uc *UserUseCase) FindByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	return uc.userRepo.FindByEmail(ctx, email)
}

func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, limit, offset)
}
