package handler

import (
	"github.com/labstack/echo/v4"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/usecase"
	"furnimarket/pkg/response"
)

type SuggestionHandler struct {
	suggestionService *usecase.SuggestionService
}

func NewSuggestionHandler(suggestionService *usecase.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
	}
}

// Suggest answers the search overlay. An empty or whitespace query yields an
// empty list, never an error; the overlay calls this on every keystroke.
func (h *SuggestionHandler) Suggest(c echo.Context) error {
	suggestions, err := h.suggestionService.Suggest(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.Error(c, err)
	}

	if suggestions == nil {
		suggestions = []entity.TitleRef{}
	}

	return response.Success(c, map[string]interface{}{
		"suggestions": suggestions,
	})
}
