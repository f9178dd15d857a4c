package repository

import (
	"context"

	"furnimarket/internal/domain/entity"
)

type FavoriteRepository interface {
	// Ensure has create-if-absent semantics: it never duplicates and never
	// fails on an already-present relation. Used both by the toggle path and
	// by guest-set reconciliation on sign-in.
	Ensure(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
	Exists(ctx context.Context, userID, productID string) (bool, error)
	ListProductIDs(ctx context.Context, userID string) ([]string, error)
	ListWithProducts(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteWithProduct, int64, error)
}
