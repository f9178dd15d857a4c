package router

import (
	"github.com/labstack/echo/v4"

	"furnimarket/internal/adapter/api/handler"
	"furnimarket/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	products := admin.Group("/products")
	products.GET("", adminHandler.ListProducts)
	products.POST("/search", adminHandler.TypeProductSearch)
	products.POST("/:id/status", adminHandler.TransitionProduct)
	products.POST("/:id/select", adminHandler.ToggleProductSelection)
	products.DELETE("/selection", adminHandler.ClearProductSelection)
	products.GET("/bulk/summary", adminHandler.ProductBulkSummary)
	products.POST("/bulk", adminHandler.ApplyProductBulk)

	orders := admin.Group("/orders")
	orders.GET("", adminHandler.ListOrders)
	orders.POST("/:id/status", adminHandler.TransitionOrder)
	orders.POST("/:id/select", adminHandler.ToggleOrderSelection)
	orders.DELETE("/selection", adminHandler.ClearOrderSelection)
	orders.GET("/bulk/summary", adminHandler.OrderBulkSummary)
	orders.POST("/bulk", adminHandler.ApplyOrderBulk)

	users := admin.Group("/users")
	users.GET("", adminHandler.ListUsers)
	users.POST("/:id/status", adminHandler.TransitionUser)
	users.POST("/:id/select", adminHandler.ToggleUserSelection)
	users.DELETE("/selection", adminHandler.ClearUserSelection)
	users.GET("/bulk/summary", adminHandler.UserBulkSummary)
	users.POST("/bulk", adminHandler.ApplyUserBulk)
}
