package router

import (
	"github.com/labstack/echo/v4"

	"depositflow/internal/adapter/api/handler"
)

// SetupAuthRouter initializes identity routes. Identity is caller-asserted
// email+role; there is no token middleware.
func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	e.POST("/v1/auth/login", authHandler.Login)
	e.GET("/v1/auth/users", authHandler.ListUsers)
	e.GET("/v1/auth/users/:email", authHandler.GetUser)
	e.POST("/v1/auth/users", authHandler.CreateUser)
}
