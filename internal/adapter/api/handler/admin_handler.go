package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/query"
	"furnimarket/internal/usecase"
	"furnimarket/pkg/errors"
	"furnimarket/pkg/response"
)

// AdminHandler exposes the three console tables. Each table endpoint replaces
// the query state wholesale from the request parameters; stale in-flight
// fetches are discarded by the session, not the handler.
type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

type tableResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
	Selected   []string    `json:"selected"`
}

// tableState builds a query state from the request, starting from the
// session's current state so untouched dimensions carry over.
func tableState(c echo.Context, current query.State) query.State {
	state := current

	if status := c.QueryParam("status"); status != "" {
		state = state.WithStatus(filterOrAll(status))
	}
	if category := c.QueryParam("category"); category != "" {
		state = state.WithCategory(filterOrAll(category))
	}
	if role := c.QueryParam("role"); role != "" {
		state = state.WithRole(filterOrAll(role))
	}
	if q := c.QueryParam("q"); q != "" {
		state = state.WithSearch(q)
	}
	if sizeStr := c.QueryParam("limit"); sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil && size > 0 {
			state = state.WithPageSize(size)
		}
	}
	if pageStr := c.QueryParam("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			state = state.WithPage(page)
		}
	}
	if sortBy := c.QueryParam("sort"); sortBy != "" {
		dir := query.Desc
		if c.QueryParam("dir") == "asc" {
			dir = query.Asc
		}
		state = state.WithSort(sortBy, dir)
	}

	return state.Normalize()
}

// filterOrAll maps the explicit "all" parameter to the unset sentinel.
func filterOrAll(v string) string {
	if v == "all" {
		return query.All
	}
	return v
}

type transitionRequest struct {
	Status string `json:"status" validate:"required"`
}

type bulkRequest struct {
	Status string `json:"status" validate:"required"`
}

type searchRequest struct {
	Text string `json:"text"`
}

// Products table

func (h *AdminHandler) ListProducts(c echo.Context) error {
	session := h.adminUseCase.Products()

	state := tableState(c, session.State())
	if err := session.Apply(c.Request().Context(), state); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tableResponse{
		Items:      session.Rows(),
		Total:      session.Total(),
		Page:       state.Page,
		PageSize:   state.PageSize,
		TotalPages: session.TotalPages(),
		Selected:   session.Selected(),
	})
}

// TypeProductSearch records one keystroke of the table search box. The query
// itself dispatches only after the input goes quiet, so this always returns
// immediately.
func (h *AdminHandler) TypeProductSearch(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	h.adminUseCase.TypeProductSearch(req.Text)

	return response.Success(c, map[string]string{
		"message": "Search scheduled",
	})
}

func (h *AdminHandler) TransitionProduct(c echo.Context) error {
	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	target := entity.ProductStatus(req.Status)
	if !target.Valid() {
		return response.Error(c, errors.BadRequest("Unknown product status", nil))
	}

	if err := h.adminUseCase.TransitionProduct(c.Request().Context(), c.Param("id"), target); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"id":     c.Param("id"),
		"status": req.Status,
	})
}

func (h *AdminHandler) ToggleProductSelection(c echo.Context) error {
	return h.toggleSelection(c, h.adminUseCase.Products().ToggleSelect)
}

func (h *AdminHandler) ClearProductSelection(c echo.Context) error {
	if err := h.adminUseCase.Products().ClearSelection(); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Selection cleared"})
}

func (h *AdminHandler) ProductBulkSummary(c echo.Context) error {
	return h.bulkSummary(c, h.adminUseCase.ProductsBulk())
}

func (h *AdminHandler) ApplyProductBulk(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	target := entity.ProductStatus(req.Status)
	if !target.Valid() {
		return response.Error(c, errors.BadRequest("Unknown product status", nil))
	}

	if err := h.adminUseCase.ProductsBulk().Apply(c.Request().Context(), req.Status); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Bulk update applied",
	})
}

// Orders table

func (h *AdminHandler) ListOrders(c echo.Context) error {
	session := h.adminUseCase.Orders()

	state := tableState(c, session.State())
	if err := session.Apply(c.Request().Context(), state); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tableResponse{
		Items:      session.Rows(),
		Total:      session.Total(),
		Page:       state.Page,
		PageSize:   state.PageSize,
		TotalPages: session.TotalPages(),
		Selected:   session.Selected(),
	})
}

func (h *AdminHandler) TransitionOrder(c echo.Context) error {
	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	target := entity.OrderStatus(req.Status)
	if !target.Valid() {
		return response.Error(c, errors.BadRequest("Unknown order status", nil))
	}

	if err := h.adminUseCase.TransitionOrder(c.Request().Context(), c.Param("id"), target); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"id":     c.Param("id"),
		"status": req.Status,
	})
}

func (h *AdminHandler) ToggleOrderSelection(c echo.Context) error {
	return h.toggleSelection(c, h.adminUseCase.Orders().ToggleSelect)
}

func (h *AdminHandler) ClearOrderSelection(c echo.Context) error {
	if err := h.adminUseCase.Orders().ClearSelection(); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Selection cleared"})
}

func (h *AdminHandler) OrderBulkSummary(c echo.Context) error {
	return h.bulkSummary(c, h.adminUseCase.OrdersBulk())
}

func (h *AdminHandler) ApplyOrderBulk(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	target := entity.OrderStatus(req.Status)
	if !target.Valid() {
		return response.Error(c, errors.BadRequest("Unknown order status", nil))
	}

	if err := h.adminUseCase.OrdersBulk().Apply(c.Request().Context(), req.Status); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Bulk update applied",
	})
}

// Users table

func (h *AdminHandler) ListUsers(c echo.Context) error {
	session := h.adminUseCase.Users()

	state := tableState(c, session.State())
	if err := session.Apply(c.Request().Context(), state); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tableResponse{
		Items:      session.Rows(),
		Total:      session.Total(),
		Page:       state.Page,
		PageSize:   state.PageSize,
		TotalPages: session.TotalPages(),
		Selected:   session.Selected(),
	})
}

func (h *AdminHandler) TransitionUser(c echo.Context) error {
	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	target := entity.UserStatus(req.Status)
	if !target.Valid() {
		return response.Error(c, errors.BadRequest("Unknown user status", nil))
	}

	if err := h.adminUseCase.TransitionUser(c.Request().Context(), c.Param("id"), target); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"id":     c.Param("id"),
		"status": req.Status,
	})
}

func (h *AdminHandler) ToggleUserSelection(c echo.Context) error {
	return h.toggleSelection(c, h.adminUseCase.Users().ToggleSelect)
}

func (h *AdminHandler) ClearUserSelection(c echo.Context) error {
	if err := h.adminUseCase.Users().ClearSelection(); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Selection cleared"})
}

func (h *AdminHandler) UserBulkSummary(c echo.Context) error {
	return h.bulkSummary(c, h.adminUseCase.UsersBulk())
}

func (h *AdminHandler) ApplyUserBulk(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	target := entity.UserStatus(req.Status)
	if !target.Valid() {
		return response.Error(c, errors.BadRequest("Unknown user status", nil))
	}

	if err := h.adminUseCase.UsersBulk().Apply(c.Request().Context(), req.Status); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Bulk update applied",
	})
}

func (h *AdminHandler) toggleSelection(c echo.Context, toggle func(string) error) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Row ID is required", nil))
	}
	if err := toggle(id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": id})
}

// bulkPrompt is the confirmation surface of a bulk coordinator.
type bulkPrompt interface {
	ConfirmationRequired() bool
	Summary(target string) (string, error)
}

func (h *AdminHandler) bulkSummary(c echo.Context, prompt bulkPrompt) error {
	target := c.QueryParam("status")
	if target == "" {
		return response.Error(c, errors.BadRequest("Target status is required", nil))
	}

	text, err := prompt.Summary(target)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"confirmation_required": prompt.ConfirmationRequired(),
		"summary":               text,
	})
}
