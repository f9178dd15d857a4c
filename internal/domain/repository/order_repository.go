package repository

import (
	"context"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/query"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// List applies SearchText as an order-ID substring match. Buyer-name
	// search is intentionally not supported here.
	List(ctx context.Context, state query.State) (query.Result[*entity.Order], error)
	ListByBuyerID(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
	BulkUpdateStatus(ctx context.Context, ids []string, status entity.OrderStatus) error
}
