package repository

import (
	"context"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/query"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDs resolves a set of products in one batched lookup. Missing IDs
	// are skipped, not errors.
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error)
	List(ctx context.Context, state query.State) (query.Result[*entity.Product], error)
	ListBySellerID(ctx context.Context, sellerID string, status entity.ProductStatus, limit, offset int) ([]*entity.Product, int64, error)
	// ActiveTitles returns up to limit {id,title} pairs of active listings for
	// the in-memory suggestion candidate list.
	ActiveTitles(ctx context.Context, limit int) ([]entity.TitleRef, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateStatus(ctx context.Context, id string, status entity.ProductStatus) error
	// BulkUpdateStatus applies one status to the whole id set in a single
	// store round trip; all rows observe the same nominal timestamp.
	BulkUpdateStatus(ctx context.Context, ids []string, status entity.ProductStatus) error
	Delete(ctx context.Context, id string) error
}
