package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"depositflow/internal/domain/entity"
	"depositflow/internal/domain/repository"
	"depositflow/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

// orderDoc is the persisted shape of an order. The deposit amount crosses the
// storage boundary as a decimal string, never as a binary float, and the chat
// room is not part of the document at all.
type orderDoc struct {
	ID              string                 `firestore:"id"`
	Title           string                 `firestore:"title"`
	RenterEmail     string                 `firestore:"renterEmail"`
	LandlordEmail   string                 `firestore:"landlordEmail"`
	PropertyAddress string                 `firestore:"propertyAddress"`
	DepositAmount   string                 `firestore:"depositAmount"`
	Description     string                 `firestore:"description,omitempty"`
	Status          entity.OrderStatus     `firestore:"status"`
	CreatedBy       string                 `firestore:"createdBy"`
	ProgressStages  []entity.ProgressStage `firestore:"progressStages"`
	CreatedAt       string                 `firestore:"createdAt"`
	UpdatedAt       string                 `firestore:"updatedAt"`
}

func toOrderDoc(order *entity.Order) *orderDoc {
	return &orderDoc{
		ID:              order.ID,
		Title:           order.Title,
		RenterEmail:     order.RenterEmail,
		LandlordEmail:   order.LandlordEmail,
		PropertyAddress: order.PropertyAddress,
		DepositAmount:   order.DepositAmount.String(),
		Description:     order.Description,
		Status:          order.Status,
		CreatedBy:       order.CreatedBy,
		ProgressStages:  order.ProgressStages,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func (d *orderDoc) toEntity() (*entity.Order, error) {
	amount, err := decimal.NewFromString(d.DepositAmount)
	if err != nil {
		return nil, errors.Internal("Failed to parse deposit amount", err)
	}

	return &entity.Order{
		ID:              d.ID,
		Title:           d.Title,
		RenterEmail:     d.RenterEmail,
		LandlordEmail:   d.LandlordEmail,
		PropertyAddress: d.PropertyAddress,
		DepositAmount:   amount,
		Description:     d.Description,
		Status:          d.Status,
		CreatedBy:       d.CreatedBy,
		ProgressStages:  d.ProgressStages,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}, nil
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, toOrderDoc(order))
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}
	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var stored orderDoc
	if err := doc.DataTo(&stored); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return stored.toEntity()
}

func (r *firestoreOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, toOrderDoc(order))
	if err != nil {
		return errors.Internal("Failed to update order", err)
	}
	return nil
}

func (r *firestoreOrderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("orders").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete order", err)
	}
	return nil
}

func (r *firestoreOrderRepository) FindByCreatedBy(ctx context.Context, email string) ([]*entity.Order, error) {
	return r.findByField(ctx, "createdBy", email)
}

func (r *firestoreOrderRepository) FindByRenterEmail(ctx context.Context, email string) ([]*entity.Order, error) {
	return r.findByField(ctx, "renterEmail", email)
}

func (r *firestoreOrderRepository) FindByLandlordEmail(ctx context.Context, email string) ([]*entity.Order, error) {
	return r.findByField(ctx, "landlordEmail", email)
}

func (r *firestoreOrderRepository) findByField(ctx context.Context, field, value string) ([]*entity.Order, error) {
	iter := r.client.Collection("orders").Where(field, "==", value).Documents(ctx)
	return collectOrders(iter)
}

func (r *firestoreOrderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	iter := r.client.Collection("orders").Documents(ctx)
	return collectOrders(iter)
}

func collectOrders(iter *firestore.DocumentIterator) ([]*entity.Order, error) {
	var orders []*entity.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate orders", err)
		}

		var stored orderDoc
		if err := doc.DataTo(&stored); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}

		order, err := stored.toEntity()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
