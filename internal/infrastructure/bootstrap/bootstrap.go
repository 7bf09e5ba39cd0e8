package bootstrap

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"

	"depositflow/internal/domain/entity"
	"depositflow/internal/domain/repository"
	"depositflow/pkg/errors"
	"depositflow/pkg/logger"
)

const (
	probeAttempts = 5
	probeDelay    = 2 * time.Second
)

// Provisioner runs the startup phase: a bounded connectivity probe against
// the store followed by idempotent static seed data. It is meant to run in
// the background; request serving never blocks on it, so early requests
// against an unreachable store surface as internal errors instead of
// hanging.
type Provisioner struct {
	client    *firestore.Client
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	chatRepo  repository.ChatRepository
	seedData  bool
}

func NewProvisioner(
	client *firestore.Client,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	chatRepo repository.ChatRepository,
	seedData bool,
) *Provisioner {
	return &Provisioner{
		client:    client,
		userRepo:  userRepo,
		orderRepo: orderRepo,
		chatRepo:  chatRepo,
		seedData:  seedData,
	}
}

func (p *Provisioner) Run(ctx context.Context) {
	if err := p.waitForStore(ctx); err != nil {
		logger.Error("Store unreachable after %d attempts, serving in degraded state: %v", probeAttempts, err)
		return
	}

	if !p.seedData {
		return
	}
	if err := p.seedStaticData(ctx); err != nil {
		logger.Warn("Error initializing static data (data may already exist): %v", err)
	}
}

func (p *Provisioner) waitForStore(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= probeAttempts; attempt++ {
		_, lastErr = p.client.Collection("users").Limit(1).Documents(ctx).GetAll()
		if lastErr == nil {
			return nil
		}
		logger.Warn("Store not ready, retrying in %s... (attempt %d/%d)", probeDelay, attempt, probeAttempts)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(probeDelay):
		}
	}
	return lastErr
}

// seedStaticData provisions the demo agent/renter/landlord trio and one
// sample order with its chat room, skipping anything already present.
func (p *Provisioner) seedStaticData(ctx context.Context) error {
	now := entity.NowTimestamp()

	users := []*entity.User{
		{Email: "Alice@gmail.com", Role: entity.RoleAgent, Name: "Alice", CreatedAt: now, UpdatedAt: now},
		{Email: "Bob@gmail.com", Role: entity.RoleRenter, Name: "Bob", CreatedAt: now, UpdatedAt: now},
		{Email: "Charlie@gmail.com", Role: entity.RoleLandlord, Name: "Charlie", CreatedAt: now, UpdatedAt: now},
	}

	for _, user := range users {
		_, err := p.userRepo.GetByEmailAndRole(ctx, user.Email, user.Role)
		if err == nil {
			continue
		}
		if !errors.Is(err, "NOT_FOUND") {
			return err
		}
		if err := p.userRepo.Create(ctx, user); err != nil && !errors.Is(err, "CONFLICT") {
			return err
		}
		logger.Info("Created seed user: %s (%s)", user.Email, user.Role)
	}

	const orderID = "STATIC001"

	if _, err := p.orderRepo.GetByID(ctx, orderID); err == nil {
		return nil
	} else if !errors.Is(err, "NOT_FOUND") {
		return err
	}

	order := &entity.Order{
		ID:              orderID,
		Title:           "Deposit for Apartment 2A - Main Street",
		RenterEmail:     "Bob@gmail.com",
		LandlordEmail:   "Charlie@gmail.com",
		PropertyAddress: "456 Main Street, Apartment 2A, Berlin 10115",
		DepositAmount:   decimal.RequireFromString("3000"),
		Description:     "Security deposit for 3-bedroom apartment. Lease period: 24 months.",
		Status:          entity.OrderStatusPending,
		CreatedBy:       "Alice@gmail.com",
		ProgressStages:  entity.DefaultProgressStages(now),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := p.orderRepo.Create(ctx, order); err != nil {
		return err
	}
	logger.Info("Created seed order: %s", orderID)

	room := &entity.ChatRoom{
		OrderID: orderID,
		Participants: []entity.ChatParticipant{
			{Email: "Alice@gmail.com", Role: entity.RoleAgent, Name: "Alice"},
			{Email: "Bob@gmail.com", Role: entity.RoleRenter, Name: "Bob"},
			{Email: "Charlie@gmail.com", Role: entity.RoleLandlord, Name: "Charlie"},
		},
		Messages:  []entity.ChatMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := p.chatRepo.Create(ctx, room); err != nil {
		return err
	}
	logger.Info("Created seed chat room for order: %s", orderID)

	return nil
}
