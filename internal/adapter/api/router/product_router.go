package router

import (
	"github.com/labstack/echo/v4"

	"furnimarket/internal/adapter/api/handler"
	"furnimarket/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()

	// Public catalog
	e.GET("/v1/products", productHandler.Browse)
	e.GET("/v1/products/:id", productHandler.GetProduct)

	// Seller surface
	myListings := e.Group("/v1/my-listings")
	myListings.Use(authMiddleware.Authenticate)
	myListings.GET("", productHandler.ListMyListings)
	myListings.POST("", productHandler.CreateListing)
	myListings.POST("/autofill", productHandler.AutofillDraft)
	myListings.PUT("/:id", productHandler.UpdateListing)
	myListings.DELETE("/:id", productHandler.DeleteListing)
	myListings.POST("/:id/sold", productHandler.MarkSold)
}
