package repository

import (
	"context"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/query"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)
	List(ctx context.Context, state query.State) (query.Result[*entity.User], error)
	Update(ctx context.Context, user *entity.User) error
	UpdateStatus(ctx context.Context, id string, status entity.UserStatus) error
	BulkUpdateStatus(ctx context.Context, ids []string, status entity.UserStatus) error
}
