package router

import (
	"github.com/labstack/echo/v4"

	"furnimarket/internal/adapter/api/handler"
	"furnimarket/internal/adapter/api/middleware"
)

// Suggestions are public and fired on every keystroke, so the route carries
// its own limiter.
func SetupSuggestionRouter(e *echo.Echo) {
	suggestionHandler := handler.GetSuggestionHandler()

	e.GET("/v1/suggestions", suggestionHandler.Suggest, middleware.SuggestionRateLimit())
}
