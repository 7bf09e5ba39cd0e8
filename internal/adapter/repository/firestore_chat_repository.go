package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"depositflow/internal/domain/entity"
	"depositflow/internal/domain/repository"
	"depositflow/pkg/errors"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) Create(ctx context.Context, room *entity.ChatRoom) error {
	_, err := r.client.Collection("chat_rooms").Doc(room.OrderID).Set(ctx, room)
	if err != nil {
		return errors.Internal("Failed to create chat room", err)
	}
	return nil
}

func (r *firestoreChatRepository) GetByOrderID(ctx context.Context, orderID string) (*entity.ChatRoom, error) {
	doc, err := r.client.Collection("chat_rooms").Doc(orderID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Chat room", err)
		}
		return nil, errors.Internal("Failed to get chat room", err)
	}

	var room entity.ChatRoom
	if err := doc.DataTo(&room); err != nil {
		return nil, errors.Internal("Failed to parse chat room data", err)
	}

	return &room, nil
}

// Update persists the whole room document. Messages are appended by the use
// case before calling this; there is no delta write, so two concurrent
// writers race with last-writer-wins.
func (r *firestoreChatRepository) Update(ctx context.Context, room *entity.ChatRoom) error {
	_, err := r.client.Collection("chat_rooms").Doc(room.OrderID).Set(ctx, room)
	if err != nil {
		return errors.Internal("Failed to update chat room", err)
	}
	return nil
}

func (r *firestoreChatRepository) Delete(ctx context.Context, orderID string) error {
	_, err := r.client.Collection("chat_rooms").Doc(orderID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete chat room", err)
	}
	return nil
}
