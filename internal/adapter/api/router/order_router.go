package router

import (
	"github.com/labstack/echo/v4"

	"depositflow/internal/adapter/api/handler"
)

func SetupOrderRouter(e *echo.Echo) {
	orderHandler := handler.GetOrderHandler()

	orderGroup := e.Group("/v1/orders")
	orderGroup.POST("", orderHandler.CreateOrder)   // POST /v1/orders?created_by= - Create order (agents only)
	orderGroup.GET("", orderHandler.ListOrders)     // GET /v1/orders?user_email&user_role&skip&limit
	orderGroup.GET("/:id", orderHandler.GetOrder)   // GET /v1/orders/:id
	orderGroup.PUT("/:id", orderHandler.UpdateOrder)
	orderGroup.DELETE("/:id", orderHandler.DeleteOrder) // DELETE /v1/orders/:id?created_by=
}
