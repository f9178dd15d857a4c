package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/repository"
	"furnimarket/pkg/logger"
)

type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{client: client}
}

// Ensure writes the relation under its composite key. Set on a fixed doc ID
// is naturally create-if-absent: re-ensuring an existing favorite rewrites
// the same document instead of duplicating it.
func (r *firestoreFavoriteRepository) Ensure(ctx context.Context, userID, productID string) error {
	id := entity.FavoriteID(userID, productID)

	doc, err := r.client.Collection("favorites").Doc(id).Get(ctx)
	if err == nil && doc.Exists() {
		return nil
	}
	if err != nil && !isNotFound(err) {
		return classifyStoreError("check favorite", err)
	}

	favorite := entity.Favorite{
		ID:        id,
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}

	if _, err := r.client.Collection("favorites").Doc(id).Set(ctx, favorite); err != nil {
		return classifyStoreError("create favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) Remove(ctx context.Context, userID, productID string) error {
	id := entity.FavoriteID(userID, productID)

	if _, err := r.client.Collection("favorites").Doc(id).Delete(ctx); err != nil {
		return classifyStoreError("remove favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) Exists(ctx context.Context, userID, productID string) (bool, error) {
	id := entity.FavoriteID(userID, productID)

	doc, err := r.client.Collection("favorites").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, classifyStoreError("check favorite", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreFavoriteRepository) ListProductIDs(ctx context.Context, userID string) ([]string, error) {
	docs, err := r.client.Collection("favorites").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, classifyStoreError("list favorites", err)
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		var favorite entity.Favorite
		if err := doc.DataTo(&favorite); err != nil {
			continue
		}
		ids = append(ids, favorite.ProductID)
	}

	return ids, nil
}

// ListWithProducts joins favorites to products with one batched product
// lookup per page of IDs, never a read per row.
func (r *firestoreFavoriteRepository) ListWithProducts(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteWithProduct, int64, error) {
	docs, err := r.client.Collection("favorites").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, classifyStoreError("list favorites", err)
	}

	var favorites []entity.Favorite
	productIDs := make([]string, 0, len(docs))
	for _, doc := range docs {
		var favorite entity.Favorite
		if err := doc.DataTo(&favorite); err != nil {
			logger.Warn("Skipping unreadable favorite %s: %v", doc.Ref.ID, err)
			continue
		}
		favorites = append(favorites, favorite)
		productIDs = append(productIDs, favorite.ProductID)
	}

	if len(productIDs) == 0 {
		return []entity.FavoriteWithProduct{}, 0, nil
	}

	productMap := make(map[string]*entity.Product)
	for i := 0; i < len(productIDs); i += productBatchSize {
		end := i + productBatchSize
		if end > len(productIDs) {
			end = len(productIDs)
		}

		refs := make([]*firestore.DocumentRef, 0, end-i)
		for _, id := range productIDs[i:end] {
			refs = append(refs, r.client.Collection("products").Doc(id))
		}

		productDocs, err := r.client.GetAll(ctx, refs)
		if err != nil {
			logger.Warn("Batch product fetch failed: %v", err)
			continue
		}

		for _, doc := range productDocs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var product entity.Product
			if err := doc.DataTo(&product); err != nil {
				continue
			}
			productMap[doc.Ref.ID] = &product
		}
	}

	var result []entity.FavoriteWithProduct
	var total int64
	for _, favorite := range favorites {
		product, ok := productMap[favorite.ProductID]
		if !ok {
			continue
		}
		total++

		if int(total) > offset && (limit <= 0 || len(result) < limit) {
			result = append(result, entity.FavoriteWithProduct{
				ID:        favorite.ID,
				UserID:    favorite.UserID,
				ProductID: favorite.ProductID,
				Product:   product,
				CreatedAt: favorite.CreatedAt,
			})
		}
	}

	return result, total, nil
}
