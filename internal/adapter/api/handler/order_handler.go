package handler

import (
	"github.com/labstack/echo/v4"

	"furnimarket/internal/usecase"
	"furnimarket/pkg/response"
	"furnimarket/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
	userUseCase  *usecase.UserUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase, userUseCase *usecase.UserUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		userUseCase:  userUseCase,
	}
}

type checkoutRequest struct {
	ProductID      string `json:"product_id" validate:"required"`
	PaymentMethod  string `json:"payment_method" validate:"required,oneof=card transfer cash"`
	DeliveryMethod string `json:"delivery_method" validate:"required,oneof=pickup courier"`
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerID := c.Get("uid").(string)

	order, err := h.orderUseCase.Checkout(c.Request().Context(), buyerID, usecase.CheckoutInput{
		ProductID:      req.ProductID,
		PaymentMethod:  req.PaymentMethod,
		DeliveryMethod: req.DeliveryMethod,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	requesterID := c.Get("uid").(string)

	isAdmin, err := h.userUseCase.IsAdmin(c.Request().Context(), requesterID)
	if err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), c.Param("id"), requesterID, isAdmin)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	buyerID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.MyOrders(
		c.Request().Context(),
		buyerID,
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	buyerID := c.Get("uid").(string)

	order, err := h.orderUseCase.Cancel(c.Request().Context(), c.Param("id"), buyerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
