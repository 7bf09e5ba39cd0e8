package service

import "depositflow/internal/domain/entity"

// Access rules shared by the order and chat use cases. Pure predicates;
// callers decide how a denial is surfaced.

func CanCreateOrder(user *entity.User) bool {
	return user != nil && user.Role == entity.RoleAgent
}

func CanDeleteOrder(user *entity.User, order *entity.Order) bool {
	return user != nil && order != nil &&
		user.Role == entity.RoleAgent &&
		user.Email == order.CreatedBy
}

func CanPostMessage(email string, room *entity.ChatRoom) bool {
	if room == nil {
		return false
	}
	for _, p := range room.Participants {
		if p.Email == email {
			return true
		}
	}
	return false
}
