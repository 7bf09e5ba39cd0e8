package entity

import (
	"fmt"
	"strings"

	"depositflow/pkg/errors"
)

type Role string

const (
	RoleAgent    Role = "agent"
	RoleRenter   Role = "renter"
	RoleLandlord Role = "landlord"
)

// ParseRole is the single place role strings from the outside world are
// folded and checked. Unknown values are rejected instead of stored.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAgent:
		return RoleAgent, nil
	case RoleRenter:
		return RoleRenter, nil
	case RoleLandlord:
		return RoleLandlord, nil
	}
	return "", errors.BadRequest(fmt.Sprintf("invalid role: %q", s), nil)
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(strings.TrimSpace(s))) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusInProgress:
		return OrderStatusInProgress, nil
	case OrderStatusCompleted:
		return OrderStatusCompleted, nil
	}
	return "", errors.BadRequest(fmt.Sprintf("invalid order status: %q", s), nil)
}

type StageType string

const (
	StageOrderCreated   StageType = "order_created"
	StageRenterReview   StageType = "renter_review"
	StageLandlordReview StageType = "landlord_review"
	StageDepositHeld    StageType = "deposit_held"
	StageCompleted      StageType = "completed"
)

func ParseStageType(s string) (StageType, error) {
	switch StageType(strings.ToLower(strings.TrimSpace(s))) {
	case StageOrderCreated:
		return StageOrderCreated, nil
	case StageRenterReview:
		return StageRenterReview, nil
	case StageLandlordReview:
		return StageLandlordReview, nil
	case StageDepositHeld:
		return StageDepositHeld, nil
	case StageCompleted:
		return StageCompleted, nil
	}
	return "", errors.BadRequest(fmt.Sprintf("invalid progress stage: %q", s), nil)
}
