package handler

import (
	"github.com/labstack/echo/v4"

	"depositflow/internal/domain/entity"
	"depositflow/internal/usecase"
	"depositflow/pkg/errors"
	"depositflow/pkg/response"
	"depositflow/pkg/utils"
)

type AuthHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewAuthHandler(userUseCase *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{
		userUseCase: userUseCase,
	}
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty"`
}

type createUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
	Name  string `json:"name" validate:"required"`
}

// Login resolves identity by email. With a role the user is created on first
// login; without one an unknown email is a 404.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if req.Role != "" {
		role, err := entity.ParseRole(req.Role)
		if err != nil {
			return response.Error(c, err)
		}

		user, err := h.userUseCase.LoginOrCreate(c.Request().Context(), req.Email, role)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, user)
	}

	user, err := h.userUseCase.LoginByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *AuthHandler) ListUsers(c echo.Context) error {
	params := utils.GetSliceParams(c)

	users, _, err := h.userUseCase.List(c.Request().Context(), params.Limit, params.Skip)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

func (h *AuthHandler) GetUser(c echo.Context) error {
	email := c.Param("email")

	if roleStr := c.QueryParam("role"); roleStr != "" {
		role, err := entity.ParseRole(roleStr)
		if err != nil {
			return response.Error(c, err)
		}

		user, err := h.userUseCase.GetByEmailAndRole(c.Request().Context(), email, role)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, user)
	}

	users, err := h.userUseCase.FindByEmail(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}
	if len(users) == 0 {
		return response.Error(c, errors.NotFound("User", nil))
	}
	return response.Success(c, users[0])
}

func (h *AuthHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	role, err := entity.ParseRole(req.Role)
	if err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.Register(c.Request().Context(), req.Email, role, req.Name)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, user)
}
