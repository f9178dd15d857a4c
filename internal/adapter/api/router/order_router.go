package router

import (
	"github.com/labstack/echo/v4"

	"furnimarket/internal/adapter/api/handler"
	"furnimarket/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.POST("", orderHandler.Checkout)
	orders.GET("", orderHandler.ListMyOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.POST("/:id/cancel", orderHandler.Cancel)
}
