package router

import (
	"github.com/labstack/echo/v4"

	"depositflow/internal/adapter/api/handler"
)

// SetupChatRouter sets up the chat endpoints. Delivery is poll-based; there
// is no push channel.
func SetupChatRouter(e *echo.Echo) {
	chatHandler := handler.GetChatHandler()

	chatGroup := e.Group("/v1/chat")
	chatGroup.GET("/rooms", chatHandler.GetUserChatRooms)          // GET /v1/chat/rooms?user_email=
	chatGroup.GET("/rooms/:orderId", chatHandler.GetChatRoom)      // GET /v1/chat/rooms/:orderId
	chatGroup.POST("/rooms/:orderId/messages", chatHandler.SendMessage)
	chatGroup.GET("/rooms/:orderId/messages", chatHandler.GetMessages)
}
