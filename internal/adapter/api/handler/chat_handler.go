package handler

import (
	"github.com/labstack/echo/v4"

	"depositflow/internal/domain/entity"
	"depositflow/internal/usecase"
	"depositflow/pkg/errors"
	"depositflow/pkg/response"
	"depositflow/pkg/utils"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *ChatHandler) GetChatRoom(c echo.Context) error {
	room, err := h.chatUseCase.GetRoomForOrder(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, room)
}

func (h *ChatHandler) GetUserChatRooms(c echo.Context) error {
	userEmail := c.QueryParam("user_email")
	if userEmail == "" {
		return response.Error(c, errors.BadRequest("user_email parameter is required", nil))
	}

	rooms, err := h.chatUseCase.RoomsForUser(c.Request().Context(), userEmail)
	if err != nil {
		return response.Error(c, err)
	}

	params := utils.GetSliceParams(c)
	start, end := params.Slice(len(rooms))
	return response.Success(c, rooms[start:end])
}

// SendMessage posts into a room on behalf of the caller-asserted sender
// identity carried in the query string.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	senderEmail := c.QueryParam("sender_email")
	senderName := c.QueryParam("sender_name")
	if senderEmail == "" || senderName == "" {
		return response.Error(c, errors.BadRequest("sender_email and sender_name parameters are required", nil))
	}

	senderRole, err := entity.ParseRole(c.QueryParam("sender_role"))
	if err != nil {
		return response.Error(c, err)
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.AddMessage(c.Request().Context(), usecase.AddMessageInput{
		OrderID:     c.Param("orderId"),
		SenderEmail: senderEmail,
		SenderRole:  senderRole,
		SenderName:  senderName,
		Text:        req.Text,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) GetMessages(c echo.Context) error {
	messages, err := h.chatUseCase.Messages(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}
