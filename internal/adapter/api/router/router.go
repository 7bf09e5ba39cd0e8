package router

import (
	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo) {
	SetupAuthRouter(e)
	SetupOrderRouter(e)
	SetupChatRouter(e)
	SetupHealthRouter(e)
}
