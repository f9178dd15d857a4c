package router

import (
	"github.com/labstack/echo/v4"

	"furnimarket/internal/adapter/api/handler"
	"furnimarket/internal/adapter/api/middleware"
)

// SetupDevRouter mounts the custom-token endpoint outside production.
func SetupDevRouter(e *echo.Echo, environment string) {
	if environment == "production" {
		return
	}

	devTokenHandler := handler.GetDevTokenHandler()

	e.POST("/v1/dev/token", devTokenHandler.MintToken, middleware.DevTokenRateLimit())
}
