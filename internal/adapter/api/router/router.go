package router

import (
	"github.com/labstack/echo/v4"

	"furnimarket/internal/adapter/api/middleware"
	"furnimarket/internal/infrastructure/firebase"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, authClient *firebase.AuthClient) {
	SetupUserRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupFavoritesRouter(e, authClient)
	SetupMessageRouter(e, authMiddleware)
	SetupSuggestionRouter(e)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
