package usecase

import (
	"context"

	"depositflow/internal/domain/entity"
	"depositflow/pkg/errors"
)

// In-memory repository fakes. Reads hand out copies so use-case mutations
// only become visible through an explicit write, matching store behavior.

type memUserRepo struct {
	users []*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email && u.Role == user.Role {
			return errors.Conflict("User already exists")
		}
	}
	clone := *user
	r.users = append(r.users, &clone)
	return nil
}

func (r *memUserRepo) GetByEmailAndRole(_ context.Context, email string, role entity.Role) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.Role == role {
			clone := *u
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) ([]*entity.User, error) {
	var found []*entity.User
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			found = append(found, &clone)
		}
	}
	return found, nil
}

func (r *memUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, int64, error) {
	total := int64(len(r.users))
	if offset > len(r.users) {
		offset = len(r.users)
	}
	end := offset + limit
	if limit <= 0 || end > len(r.users) {
		end = len(r.users)
	}

	var out []*entity.User
	for _, u := range r.users[offset:end] {
		clone := *u
		out = append(out, &clone)
	}
	return out, total, nil
}

type memOrderRepo struct {
	orders map[string]*entity.Order
	ids    []string
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*entity.Order)}
}

func cloneOrder(o *entity.Order) *entity.Order {
	clone := *o
	clone.ProgressStages = append([]entity.ProgressStage(nil), o.ProgressStages...)
	clone.ChatRoom = nil
	return &clone
}

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		r.ids = append(r.ids, order.ID)
	}
	r.orders[order.ID] = cloneOrder(order)
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return cloneOrder(order), nil
}

func (r *memOrderRepo) Update(_ context.Context, order *entity.Order) error {
	r.orders[order.ID] = cloneOrder(order)
	return nil
}

func (r *memOrderRepo) Delete(_ context.Context, id string) error {
	delete(r.orders, id)
	for i, known := range r.ids {
		if known == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memOrderRepo) findBy(match func(*entity.Order) bool) []*entity.Order {
	var found []*entity.Order
	for _, id := range r.ids {
		if order := r.orders[id]; match(order) {
			found = append(found, cloneOrder(order))
		}
	}
	return found
}

func (r *memOrderRepo) FindByCreatedBy(_ context.Context, email string) ([]*entity.Order, error) {
	return r.findBy(func(o *entity.Order) bool { return o.CreatedBy == email }), nil
}

func (r *memOrderRepo) FindByRenterEmail(_ context.Context, email string) ([]*entity.Order, error) {
	return r.findBy(func(o *entity.Order) bool { return o.RenterEmail == email }), nil
}

func (r *memOrderRepo) FindByLandlordEmail(_ context.Context, email string) ([]*entity.Order, error) {
	return r.findBy(func(o *entity.Order) bool { return o.LandlordEmail == email }), nil
}

func (r *memOrderRepo) FindAll(_ context.Context) ([]*entity.Order, error) {
	return r.findBy(func(*entity.Order) bool { return true }), nil
}

type memChatRepo struct {
	rooms map[string]*entity.ChatRoom
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{rooms: make(map[string]*entity.ChatRoom)}
}

func cloneRoom(room *entity.ChatRoom) *entity.ChatRoom {
	clone := *room
	clone.Participants = append([]entity.ChatParticipant(nil), room.Participants...)
	clone.Messages = append([]entity.ChatMessage(nil), room.Messages...)
	return &clone
}

func (r *memChatRepo) Create(_ context.Context, room *entity.ChatRoom) error {
	r.rooms[room.OrderID] = cloneRoom(room)
	return nil
}

func (r *memChatRepo) GetByOrderID(_ context.Context, orderID string) (*entity.ChatRoom, error) {
	room, ok := r.rooms[orderID]
	if !ok {
		return nil, errors.NotFound("Chat room", nil)
	}
	return cloneRoom(room), nil
}

func (r *memChatRepo) Update(_ context.Context, room *entity.ChatRoom) error {
	r.rooms[room.OrderID] = cloneRoom(room)
	return nil
}

func (r *memChatRepo) Delete(_ context.Context, orderID string) error {
	delete(r.rooms, orderID)
	return nil
}

// testStack wires the three use cases over fresh in-memory repositories.
type testStack struct {
	userRepo  *memUserRepo
	orderRepo *memOrderRepo
	chatRepo  *memChatRepo

	users  *UserUseCase
	orders *OrderUseCase
	chat   *ChatUseCase
}

func newTestStack() *testStack {
	userRepo := newMemUserRepo()
	orderRepo := newMemOrderRepo()
	chatRepo := newMemChatRepo()

	chat := NewChatUseCase(chatRepo, orderRepo, userRepo)

	return &testStack{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		chatRepo:  chatRepo,
		users:     NewUserUseCase(userRepo),
		orders:    NewOrderUseCase(orderRepo, userRepo, chat),
		chat:      chat,
	}
}
