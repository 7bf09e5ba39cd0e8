package usecase

import (
	"context"

	"depositflow/internal/domain/entity"
	"depositflow/internal/domain/repository"
	"depositflow/internal/domain/service"
	"depositflow/pkg/errors"
)

// ChatUseCase owns the chat room aggregate: one document per order holding
// the participant list and the append-only message log.
type ChatUseCase struct {
	chatRepo  repository.ChatRepository
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:  chatRepo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

type AddMessageInput struct {
	OrderID     string
	SenderEmail string
	SenderRole  entity.Role
	SenderName  string
	Text        string
}

// CreateRoomForOrder materializes the companion room for a freshly created
// order with the three canonical role-holders as participants. Names are
// denormalized from the user directory at this point.
func (uc *ChatUseCase) CreateRoomForOrder(ctx context.Context, orderID, createdBy, renterEmail, landlordEmail string) (*entity.ChatRoom, error) {
	now := entity.NowTimestamp()

	room := &entity.ChatRoom{
		OrderID: orderID,
		Participants: []entity.ChatParticipant{
			{Email: createdBy, Role: entity.RoleAgent, Name: uc.participantName(ctx, createdBy, entity.RoleAgent)},
			{Email: renterEmail, Role: entity.RoleRenter, Name: uc.participantName(ctx, renterEmail, entity.RoleRenter)},
			{Email: landlordEmail, Role: entity.RoleLandlord, Name: uc.participantName(ctx, landlordEmail, entity.RoleLandlord)},
		},
		Messages:  []entity.ChatMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.chatRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

func (uc *ChatUseCase) participantName(ctx context.Context, email string, role entity.Role) string {
	user, err := uc.userRepo.GetByEmailAndRole(ctx, email, role)
	if err != nil {
		return deriveDisplayName(email)
	}
	return user.Name
}

// RoomByOrderID fetches the room without touching the orders collection.
// Used for read-time joins where a missing room is not an error.
func (uc *ChatUseCase) RoomByOrderID(ctx context.Context, orderID string) (*entity.ChatRoom, error) {
	return uc.chatRepo.GetByOrderID(ctx, orderID)
}

// GetRoomForOrder is the external read path: the order is checked first so a
// dangling order id surfaces as a missing order, not a missing room.
func (uc *ChatUseCase) GetRoomForOrder(ctx context.Context, orderID string) (*entity.ChatRoom, error) {
	if _, err := uc.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return uc.chatRepo.GetByOrderID(ctx, orderID)
}

// AddMessage appends one message to the room and persists the whole
// document. Two concurrent appends race with last-writer-wins; accepted for
// low-contention usage.
func (uc *ChatUseCase) AddMessage(ctx context.Context, input AddMessageInput) (*entity.ChatMessage, error) {
	if _, err := uc.orderRepo.GetByID(ctx, input.OrderID); err != nil {
		return nil, err
	}

	room, err := uc.chatRepo.GetByOrderID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if !service.CanPostMessage(input.SenderEmail, room) {
		return nil, errors.BadRequest("User is not a participant in this chat room", nil)
	}

	message := entity.ChatMessage{
		SenderEmail: input.SenderEmail,
		SenderRole:  input.SenderRole,
		SenderName:  input.SenderName,
		Text:        input.Text,
		Timestamp:   entity.NowTimestamp(),
	}

	room.Messages = append(room.Messages, message)
	room.UpdatedAt = entity.NowTimestamp()

	if err := uc.chatRepo.Update(ctx, room); err != nil {
		return nil, err
	}

	return &message, nil
}

// Messages returns the full log in append order, which is chronological
// under the single-writer-per-room assumption.
func (uc *ChatUseCase) Messages(ctx context.Context, orderID string) ([]entity.ChatMessage, error) {
	room, err := uc.chatRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return room.Messages, nil
}

// RoomsForUser unions the three order indexes (creator, renter, landlord),
// de-duplicates by order id and fetches each room. Iteration order of the
// set is unspecified.
func (uc *ChatUseCase) RoomsForUser(ctx context.Context, email string) ([]*entity.ChatRoom, error) {
	orderIDs := make(map[string]struct{})

	lookups := []func(context.Context, string) ([]*entity.Order, error){
		uc.orderRepo.FindByCreatedBy,
		uc.orderRepo.FindByRenterEmail,
		uc.orderRepo.FindByLandlordEmail,
	}
	for _, lookup := range lookups {
		orders, err := lookup(ctx, email)
		if err != nil {
			return nil, err
		}
		for _, order := range orders {
			orderIDs[order.ID] = struct{}{}
		}
	}

	rooms := make([]*entity.ChatRoom, 0, len(orderIDs))
	for orderID := range orderIDs {
		room, err := uc.chatRepo.GetByOrderID(ctx, orderID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				continue
			}
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

func (uc *ChatUseCase) DeleteRoom(ctx context.Context, orderID string) error {
	return uc.chatRepo.Delete(ctx, orderID)
}
