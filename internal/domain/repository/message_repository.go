package repository

import (
	"context"

	"furnimarket/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	ListThread(ctx context.Context, threadID string, limit, offset int) ([]*entity.Message, int64, error)
	// ListInbox returns the latest message of each thread the user
	// participates in, newest first.
	ListInbox(ctx context.Context, userID string) ([]*entity.Message, error)
}
