package router

import (
	"github.com/labstack/echo/v4"

	"furnimarket/internal/adapter/api/handler"
	"furnimarket/internal/infrastructure/firebase"
)

// Favorites are served to guests and accounts through the same routes;
// OptionalAuth decides which backing the handler picks per request.
func SetupFavoritesRouter(e *echo.Echo, authClient *firebase.AuthClient) {
	favoritesHandler := handler.GetFavoritesHandler()

	favorites := e.Group("/v1/favorites")
	favorites.Use(OptionalAuth(authClient))
	favorites.GET("", favoritesHandler.ListFavorites)
	favorites.POST("/:productId", favoritesHandler.Toggle)
	favorites.GET("/:productId", favoritesHandler.CheckStatus)
}
