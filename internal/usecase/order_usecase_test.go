package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depositflow/internal/domain/entity"
	"depositflow/pkg/errors"
)

func seedTrio(t *testing.T, stack *testStack) {
	t.Helper()
	ctx := context.Background()

	_, err := stack.users.LoginOrCreate(ctx, "alice@x.com", entity.RoleAgent)
	require.NoError(t, err)
	_, err = stack.users.LoginOrCreate(ctx, "bob@x.com", entity.RoleRenter)
	require.NoError(t, err)
	_, err = stack.users.LoginOrCreate(ctx, "carl@x.com", entity.RoleLandlord)
	require.NoError(t, err)
}

func depositOrderInput(createdBy string) CreateOrderInput {
	return CreateOrderInput{
		Title:           "Deposit A",
		RenterEmail:     "bob@x.com",
		LandlordEmail:   "carl@x.com",
		PropertyAddress: "12 Test Lane",
		DepositAmount:   decimal.RequireFromString("1500.00"),
		CreatedBy:       createdBy,
	}
}

func TestCreateOrderRequiresAgent(t *testing.T) {
	stack := newTestStack()
	ctx := context.Background()
	seedTrio(t, stack)

	_, err := stack.orders.Create(ctx, depositOrderInput("bob@x.com"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	// Nothing persisted on the denied path.
	all, err := stack.orderRepo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, stack.chatRepo.rooms)
}

func TestCreateOrderBuildsStageTemplateAndRoom(t *testing.T) {
	stack := newTestStack()
	ctx := context.Background()
	seedTrio(t, stack)

	order, err := stack.orders.Create(ctx, depositOrderInput("alice@x.com"))
	require.NoError(t, err)

	assert.Len(t, order.ID, 6)
	assert.Equal(t, entity.OrderStatusPending, order.Status)

	require.Len(t, order.ProgressStages, 5)
	assert.Equal(t, entity.StageOrderCreated, order.ProgressStages[0].Stage)
	assert.True(t, order.ProgressStages[0].Completed)
	assert.NotEmpty(t, order.ProgressStages[0].Date)
	for _, stage := range order.ProgressStages[1:] {
		assert.False(t, stage.Completed)
		assert.Empty(t, stage.Date)
	}

	// The returned order carries the materialized room.
	require.NotNil(t, order.ChatRoom)
	require.Len(t, order.ChatRoom.Participants, 3)

	// The room is not embedded in the persisted order document; a fresh
	// read joins it back from its own collection.
	stored := stack.orderRepo.orders[order.ID]
	assert.Nil(t, stored.ChatRoom)

	fetched, err := stack.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.ChatRoom)

	emails := make(map[string]entity.Role)
	for _, p := range fetched.ChatRoom.Participants {
		emails[p.Email] = p.Role
	}
	assert.Equal(t, entity.RoleAgent, emails["alice@x.com"])
	assert.Equal(t, entity.RoleRenter, emails["bob@x.com"])
	assert.Equal(t, entity.RoleLandlord, emails["carl@x.com"])

	assert.True(t, fetched.DepositAmount.Equal(decimal.RequireFromString("1500.00")))
}

func TestCreateOrderRejectsNegativeDeposit(t *testing.T) {
	stack := newTestStack()
	ctx := context.Background()
	seedTrio(t, stack)

	input := depositOrderInput("alice@x.com")
	input.DepositAmount = decimal.RequireFromString("-1")

	_, err := stack.orders.Create(ctx, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestListForRole(t *testing.T) {
	stack := newTestStack()
	ctx := context.Background()

	seed := []*entity.Order{
		{ID: "aaa111", RenterEmail: "bob@x.com", LandlordEmail: "carl@x.com", CreatedBy: "alice@x.com", CreatedAt: "2026-08-01T10:00:00.000000Z"},
		{ID: "bbb222", RenterEmail: "bob@x.com", LandlordEmail: "dora@x.com", CreatedBy: "alice@x.com", CreatedAt: "2026-08-03T10:00:00.000000Z"},
		{ID: "ccc333", RenterEmail: "zoe@x.com", LandlordEmail: "carl@x.com", CreatedBy: "alice@x.com", CreatedAt: "2026-08-02T10:00:00.000000Z"},
	}
	for _, order := range seed {
		order.DepositAmount = decimal.Zero
		require.NoError(t, stack.orderRepo.Create(ctx, order))
	}

	orders, err := stack.orders.ListForRole(ctx, "bob@x.com", "renter")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	// created_at descending.
	assert.Equal(t, "bbb222", orders[0].ID)
	assert.Equal(t, "aaa111", orders[1].ID)

	orders, err = stack.orders.ListForRole(ctx, "carl@x.com", "landlord")
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	orders, err = stack.orders.ListForRole(ctx, "alice@x.com", "agent")
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	orders, err = stack.orders.ListForRole(ctx, "bob@x.com", "wizard")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestListSlices(t *testing.T) {
	stack := newTestStack()
	ctx := context.Background()

	for _, id := range []string{"o1", "o2", "o3", "o4"} {
		require.NoError(t, stack.orderRepo.Create(ctx, &entity.Order{ID: id, DepositAmount: decimal.Zero}))
	}

	orders, err := stack.orders.List(ctx, "", "", 1, 2)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	orders, err = stack.orders.List(ctx, "", "", 10, 2)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUpdateOrder(t *testing.T) {
	stack := newTestStack()
	ctx := context.Background()
	seedTrio(t, stack)

	order, err := stack.orders.Create(ctx, depositOrderInput("alice@x.com"))
	require.NoError(t, err)

	newTitle := "Deposit A (amended)"
	newStatus := entity.OrderStatusInProgress
	updated, err := stack.orders.Update(ctx, order.ID, UpdateOrderInput{
		Title:  &newTitle,
		Status: &newStatus,
	})
	require.NoError(t, err)

	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, entity.OrderStatusInProgress, updated.Status)
	// Untouched fields survive the shallow merge.
	assert.Equal(t, order.RenterEmail, updated.RenterEmail)
	assert.True(t, updated.DepositAmount.Equal(order.DepositAmount))
	assert.GreaterOrEqual(t, updated.UpdatedAt, order.UpdatedAt)

	// A provided stage list replaces the stored one wholesale.
	stages := updated.ProgressStages
	stages[1].Completed = true
	stages[1].Date = entity.NowTimestamp()
	stages[1].CompletedBy = "bob@x.com"

	updated, err = stack.orders.Update(ctx, order.ID, UpdateOrderInput{ProgressStages: stages})
	require.NoError(t, err)
	assert.True(t, updated.ProgressStages[1].Completed)
	assert.Equal(t, "bob@x.com", updated.ProgressStages[1].CompletedBy)

	_, err = stack.orders.Update(ctx, "zzz999", UpdateOrderInput{Title: &newTitle})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDeleteOrderAuthorization(t *testing.T) {
	stack := newTestStack()
	ctx := context.Background()
	seedTrio(t, stack)

	_, err := stack.users.LoginOrCreate(ctx, "mallory@x.com", entity.RoleAgent)
	require.NoError(t, err)

	order, err := stack.orders.Create(ctx, depositOrderInput("alice@x.com"))
	require.NoError(t, err)

	// Not an agent.
	err = stack.orders.Delete(ctx, order.ID, "bob@x.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	// An agent, but not the creator.
	err = stack.orders.Delete(ctx, order.ID, "mallory@x.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	// Order and room untouched by the denied attempts.
	_, err = stack.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	_, err = stack.chat.RoomByOrderID(ctx, order.ID)
	require.NoError(t, err)

	// The creating agent removes both.
	require.NoError(t, stack.orders.Delete(ctx, order.ID, "alice@x.com"))

	_, err = stack.orders.GetByID(ctx, order.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	_, err = stack.chat.RoomByOrderID(ctx, order.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDepositLifecycleEndToEnd(t *testing.T) {
	stack := newTestStack()
	ctx := context.Background()
	seedTrio(t, stack)

	order, err := stack.orders.Create(ctx, depositOrderInput("alice@x.com"))
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.StageOrderCreated, order.ProgressStages[0].Stage)
	assert.True(t, order.ProgressStages[0].Completed)

	message, err := stack.chat.AddMessage(ctx, AddMessageInput{
		OrderID:     order.ID,
		SenderEmail: "bob@x.com",
		SenderRole:  entity.RoleRenter,
		SenderName:  "Bob",
		Text:        "Hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hi", message.Text)

	messages, err := stack.chat.Messages(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "bob@x.com", messages[0].SenderEmail)

	err = stack.orders.Delete(ctx, order.ID, "bob@x.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, stack.orders.Delete(ctx, order.ID, "alice@x.com"))

	_, err = stack.orders.GetByID(ctx, order.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
