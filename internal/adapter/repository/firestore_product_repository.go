package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/query"
	"furnimarket/internal/domain/repository"
)

const productBatchSize = 30

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return classifyStoreError("create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		return nil, classifyStoreError("product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, classifyStoreError("parse product", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	result := make(map[string]*entity.Product, len(ids))

	// One batched GetAll per chunk, never a read per row.
	for i := 0; i < len(ids); i += productBatchSize {
		end := i + productBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		refs := make([]*firestore.DocumentRef, 0, end-i)
		for _, id := range ids[i:end] {
			refs = append(refs, r.client.Collection("products").Doc(id))
		}

		docs, err := r.client.GetAll(ctx, refs)
		if err != nil {
			return nil, classifyStoreError("batch get products", err)
		}

		for _, doc := range docs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var product entity.Product
			if err := doc.DataTo(&product); err != nil {
				continue
			}
			result[doc.Ref.ID] = &product
		}
	}

	return result, nil
}

// List executes one query.State in a single logical round trip: filters and
// ordering go to the store, free-text title search is matched in memory
// because Firestore has no substring operator, and total is computed over
// the full filtered set so the caller never needs a second count query.
func (r *firestoreProductRepository) List(ctx context.Context, state query.State) (query.Result[*entity.Product], error) {
	state = state.Normalize()

	q := r.client.Collection("products").Query
	for field, value := range state.Filters() {
		q = q.Where(field, "==", value)
	}

	dir := firestore.Desc
	if state.SortDir == query.Asc {
		dir = firestore.Asc
	}
	sortBy := state.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	q = q.OrderBy(sortBy, dir)

	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return query.Result[*entity.Product]{}, classifyStoreError("list products", err)
	}

	search := strings.ToLower(strings.TrimSpace(state.SearchText))
	var matched []*entity.Product
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(product.Title), search) {
			continue
		}
		matched = append(matched, &product)
	}

	total := int64(len(matched))
	start := state.Offset()
	if start >= len(matched) {
		return query.Result[*entity.Product]{Rows: []*entity.Product{}, Total: total}, nil
	}
	end := start + state.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return query.Result[*entity.Product]{Rows: matched[start:end], Total: total}, nil
}

func (r *firestoreProductRepository) ListBySellerID(ctx context.Context, sellerID string, status entity.ProductStatus, limit, offset int) ([]*entity.Product, int64, error) {
	q := r.client.Collection("products").Query.Where("sellerId", "==", sellerID)
	if status != "" {
		q = q.Where("status", "==", string(status))
	}
	q = q.OrderBy("createdAt", firestore.Desc)

	allDocs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, classifyStoreError("list seller products", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	iter := q.Documents(ctx)
	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, classifyStoreError("iterate seller products", err)
		}
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, 0, classifyStoreError("parse product", err)
		}
		products = append(products, &product)
	}

	return products, total, nil
}

func (r *firestoreProductRepository) ActiveTitles(ctx context.Context, limit int) ([]entity.TitleRef, error) {
	q := r.client.Collection("products").Query.
		Where("status", "==", string(entity.ProductActive)).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, classifyStoreError("list product titles", err)
	}

	titles := make([]entity.TitleRef, 0, len(docs))
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			continue
		}
		titles = append(titles, entity.TitleRef{ID: product.ID, Title: product.Title})
	}

	return titles, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return classifyStoreError("update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) UpdateStatus(ctx context.Context, id string, status entity.ProductStatus) error {
	_, err := r.client.Collection("products").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(status)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return classifyStoreError("update product status", err)
	}

	return nil
}

// BulkUpdateStatus writes the whole id set in one transaction: either every
// row carries the new status and the same timestamp, or none does.
func (r *firestoreProductRepository) BulkUpdateStatus(ctx context.Context, ids []string, status entity.ProductStatus) error {
	now := time.Now()
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, id := range ids {
			ref := r.client.Collection("products").Doc(id)
			if err := tx.Update(ref, []firestore.Update{
				{Path: "status", Value: string(status)},
				{Path: "updatedAt", Value: now},
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return classifyStoreError("bulk update product status", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return classifyStoreError("delete product", err)
	}

	return nil
}
