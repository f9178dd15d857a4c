package handler

import (
	"github.com/labstack/echo/v4"

	"furnimarket/internal/usecase"
	"furnimarket/pkg/errors"
	"furnimarket/pkg/response"
	"furnimarket/pkg/utils"
)

// FavoritesHandler serves both guests and signed-in users through the same
// endpoints. The port picked per request decides where the set lives.
type FavoritesHandler struct {
	favoritesService *usecase.FavoritesService
}

func NewFavoritesHandler(favoritesService *usecase.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesService: favoritesService,
	}
}

// currentUserID returns the authenticated UID or "" for guests.
func currentUserID(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}

func (h *FavoritesHandler) Toggle(c echo.Context) error {
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	port := h.favoritesService.PortFor(currentUserID(c))
	favorited, err := port.Toggle(c.Request().Context(), productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"product_id": productID,
		"favorited":  favorited,
	})
}

func (h *FavoritesHandler) CheckStatus(c echo.Context) error {
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	port := h.favoritesService.PortFor(currentUserID(c))
	favorited, err := port.Contains(c.Request().Context(), productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"product_id": productID,
		"favorited":  favorited,
	})
}

func (h *FavoritesHandler) ListFavorites(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	items, total, err := h.favoritesService.ListProducts(
		c.Request().Context(),
		currentUserID(c),
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.PageSize)
}
