package handler

import (
	"github.com/labstack/echo/v4"

	"furnimarket/internal/usecase"
	"furnimarket/pkg/response"
	"furnimarket/pkg/utils"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type sendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	ProductID   string `json:"product_id"`
	Body        string `json:"body" validate:"required"`
}

func (h *MessageHandler) Send(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	senderID := c.Get("uid").(string)

	message, err := h.messageUseCase.Send(c.Request().Context(), senderID, usecase.SendMessageInput{
		RecipientID: req.RecipientID,
		ProductID:   req.ProductID,
		Body:        req.Body,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *MessageHandler) Thread(c echo.Context) error {
	requesterID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	messages, total, err := h.messageUseCase.Thread(
		c.Request().Context(),
		requesterID,
		c.Param("userId"),
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, messages, total, pagination.Page, pagination.PageSize)
}

func (h *MessageHandler) Inbox(c echo.Context) error {
	userID := c.Get("uid").(string)

	messages, err := h.messageUseCase.Inbox(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}
