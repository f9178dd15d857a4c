package usecase

import (
	"context"
	"strings"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/repository"
	"furnimarket/pkg/errors"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

type SendMessageInput struct {
	RecipientID string `json:"recipient_id"`
	ProductID   string `json:"product_id"`
	Body        string `json:"body"`
}

func (uc *MessageUseCase) Send(ctx context.Context, senderID string, input SendMessageInput) (*entity.Message, error) {
	if strings.TrimSpace(input.Body) == "" {
		return nil, errors.Validation("message body is required", nil)
	}
	if input.RecipientID == "" || input.RecipientID == senderID {
		return nil, errors.Validation("a valid recipient is required", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, input.RecipientID); err != nil {
		return nil, errors.NotFound("Recipient", err)
	}

	message := &entity.Message{
		ThreadID:    entity.ThreadID(senderID, input.RecipientID),
		SenderID:    senderID,
		RecipientID: input.RecipientID,
		ProductID:   input.ProductID,
		Body:        input.Body,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (uc *MessageUseCase) Thread(ctx context.Context, requesterID, otherID string, limit, offset int) ([]*entity.Message, int64, error) {
	threadID := entity.ThreadID(requesterID, otherID)
	return uc.messageRepo.ListThread(ctx, threadID, limit, offset)
}

func (uc *MessageUseCase) Inbox(ctx context.Context, userID string) ([]*entity.Message, error) {
	return uc.messageRepo.ListInbox(ctx, userID)
}
