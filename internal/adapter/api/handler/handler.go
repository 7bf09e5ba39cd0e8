package handler

import (
	"depositflow/internal/usecase"
)

var (
	authHandler  *AuthHandler
	orderHandler *OrderHandler
	chatHandler  *ChatHandler
)

func Setup(
	userUseCase *usecase.UserUseCase,
	orderUseCase *usecase.OrderUseCase,
	chatUseCase *usecase.ChatUseCase,
) {
	authHandler = NewAuthHandler(userUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	chatHandler = NewChatHandler(chatUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}
