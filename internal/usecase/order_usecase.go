package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"depositflow/internal/domain/entity"
	"depositflow/internal/domain/repository"
	"depositflow/internal/domain/service"
	"depositflow/pkg/errors"
	"depositflow/pkg/logger"
)

const orderIDLength = 6

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	chatUseCase *ChatUseCase
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	chatUseCase *ChatUseCase,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		chatUseCase: chatUseCase,
	}
}

type CreateOrderInput struct {
	Title           string
	RenterEmail     string
	LandlordEmail   string
	PropertyAddress string
	DepositAmount   decimal.Decimal
	Description     string
	CreatedBy       string
}

type UpdateOrderInput struct {
	Title           *string
	RenterEmail     *string
	LandlordEmail   *string
	PropertyAddress *string
	DepositAmount   *decimal.Decimal
	Description     *string
	Status          *entity.OrderStatus
	ProgressStages  []entity.ProgressStage
}

// Create persists a new order and materializes its companion chat room. If
// the room creation fails after the order committed, the error is surfaced
// as-is; there is no compensating rollback.
func (uc *OrderUseCase) Create(ctx context.Context, input CreateOrderInput) (*entity.Order, error) {
	if input.DepositAmount.IsNegative() {
		return nil, errors.BadRequest("deposit amount must not be negative", nil)
	}

	creator, err := uc.agentByEmail(ctx, input.CreatedBy)
	if err != nil {
		return nil, err
	}
	if !service.CanCreateOrder(creator) {
		return nil, errors.Forbidden("Only agents can create orders", nil)
	}

	orderID, err := uc.generateOrderID(ctx)
	if err != nil {
		return nil, err
	}

	now := entity.NowTimestamp()
	order := &entity.Order{
		ID:              orderID,
		Title:           input.Title,
		RenterEmail:     input.RenterEmail,
		LandlordEmail:   input.LandlordEmail,
		PropertyAddress: input.PropertyAddress,
		DepositAmount:   input.DepositAmount,
		Description:     input.Description,
		Status:          entity.OrderStatusPending,
		CreatedBy:       input.CreatedBy,
		ProgressStages:  entity.DefaultProgressStages(now),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	room, err := uc.chatUseCase.CreateRoomForOrder(ctx, orderID, input.CreatedBy, input.RenterEmail, input.LandlordEmail)
	if err != nil {
		return nil, err
	}

	order.ChatRoom = room
	return order, nil
}

// agentByEmail returns the agent role-variant for the email, or nil when the
// email holds no agent record.
func (uc *OrderUseCase) agentByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.Role == entity.RoleAgent {
			return user, nil
		}
	}
	return nil, nil
}

// generateOrderID allocates a short id and verifies non-existence before
// committing to it. Collisions are vanishingly rare; the retry bound keeps
// the loop from masking a broken store.
func (uc *OrderUseCase) generateOrderID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")[:orderIDLength]

		_, err := uc.orderRepo.GetByID(ctx, id)
		if errors.Is(err, "NOT_FOUND") {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.Internal("Failed to allocate a unique order id", nil)
}

// GetByID reads the order and joins in its chat room. A missing room leaves
// the field empty rather than failing the read.
func (uc *OrderUseCase) GetByID(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := uc.attachChatRoom(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (uc *OrderUseCase) attachChatRoom(ctx context.Context, order *entity.Order) error {
	room, err := uc.chatUseCase.RoomByOrderID(ctx, order.ID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil
		}
		return err
	}
	order.ChatRoom = room
	return nil
}

// ListForRole dispatches to the secondary index matching the role. An
// unrecognized role string yields an empty list, not an error. Results are
// sorted by created_at descending; the fixed-width timestamp format makes
// plain string comparison chronological.
func (uc *OrderUseCase) ListForRole(ctx context.Context, email, role string) ([]*entity.Order, error) {
	parsed, err := entity.ParseRole(role)
	if err != nil {
		return []*entity.Order{}, nil
	}

	var orders []*entity.Order
	switch parsed {
	case entity.RoleAgent:
		orders, err = uc.orderRepo.FindByCreatedBy(ctx, email)
	case entity.RoleRenter:
		orders, err = uc.orderRepo.FindByRenterEmail(ctx, email)
	case entity.RoleLandlord:
		orders, err = uc.orderRepo.FindByLandlordEmail(ctx, email)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt > orders[j].CreatedAt
	})
	return orders, nil
}

// List serves the order listing endpoint: role-scoped when both filter
// values are present, otherwise an unfiltered scan in storage order. Chat
// rooms are joined into every returned order before slicing.
func (uc *OrderUseCase) List(ctx context.Context, userEmail, userRole string, skip, limit int) ([]*entity.Order, error) {
	var (
		orders []*entity.Order
		err    error
	)
	if userEmail != "" && userRole != "" {
		orders, err = uc.ListForRole(ctx, userEmail, userRole)
	} else {
		orders, err = uc.orderRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		if err := uc.attachChatRoom(ctx, order); err != nil {
			return nil, err
		}
	}

	if skip > len(orders) {
		skip = len(orders)
	}
	end := skip + limit
	if limit <= 0 || end > len(orders) {
		end = len(orders)
	}
	return orders[skip:end], nil
}

// Update shallow-merges the provided fields. A provided progress_stages list
// replaces the stored one wholesale; there is no per-stage merge. Status
// transitions are not restricted.
func (uc *OrderUseCase) Update(ctx context.Context, orderID string, input UpdateOrderInput) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		order.Title = *input.Title
	}
	if input.RenterEmail != nil {
		order.RenterEmail = *input.RenterEmail
	}
	if input.LandlordEmail != nil {
		order.LandlordEmail = *input.LandlordEmail
	}
	if input.PropertyAddress != nil {
		order.PropertyAddress = *input.PropertyAddress
	}
	if input.DepositAmount != nil {
		if input.DepositAmount.IsNegative() {
			return nil, errors.BadRequest("deposit amount must not be negative", nil)
		}
		order.DepositAmount = *input.DepositAmount
	}
	if input.Description != nil {
		order.Description = *input.Description
	}
	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.ProgressStages != nil {
		order.ProgressStages = input.ProgressStages
	}

	order.UpdatedAt = entity.NowTimestamp()

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes the order and best-effort deletes the companion chat room.
// Only the agent who created the order may delete it.
func (uc *OrderUseCase) Delete(ctx context.Context, orderID, requestedBy string) error {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	agent, err := uc.agentByEmail(ctx, requestedBy)
	if err != nil {
		return err
	}
	if agent == nil {
		return errors.Forbidden("Only agents can delete orders", nil)
	}
	if !service.CanDeleteOrder(agent, order) {
		return errors.Forbidden("You can only delete orders you created", nil)
	}

	if err := uc.orderRepo.Delete(ctx, orderID); err != nil {
		return err
	}

	// Orphaned rooms are harmless; a failed cleanup is logged and swallowed.
	if err := uc.chatUseCase.DeleteRoom(ctx, orderID); err != nil {
		logger.Warn("Failed to delete chat room for order %s: %v", orderID, err)
	}

	return nil
}
