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

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		doc := r.client.Collection("orders").NewDoc()
		order.ID = doc.ID
	}

	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return classifyStoreError("create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		return nil, classifyStoreError("order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, classifyStoreError("parse order", err)
	}

	return &order, nil
}

// List matches SearchText against the order ID only. Buyer-name search is a
// separate feature, not implemented here.
func (r *firestoreOrderRepository) List(ctx context.Context, state query.State) (query.Result[*entity.Order], error) {
	state = state.Normalize()

	q := r.client.Collection("orders").Query
	if state.StatusFilter != query.All {
		q = q.Where("status", "==", state.StatusFilter)
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
		return query.Result[*entity.Order]{}, classifyStoreError("list orders", err)
	}

	search := strings.ToLower(strings.TrimSpace(state.SearchText))
	var matched []*entity.Order
	for _, doc := range docs {
		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(order.ID), search) {
			continue
		}
		matched = append(matched, &order)
	}

	total := int64(len(matched))
	start := state.Offset()
	if start >= len(matched) {
		return query.Result[*entity.Order]{Rows: []*entity.Order{}, Total: total}, nil
	}
	end := start + state.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return query.Result[*entity.Order]{Rows: matched[start:end], Total: total}, nil
}

func (r *firestoreOrderRepository) ListByBuyerID(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error) {
	q := r.client.Collection("orders").Query.
		Where("buyerId", "==", buyerID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, classifyStoreError("list buyer orders", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	iter := q.Documents(ctx)
	var orders []*entity.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, classifyStoreError("iterate buyer orders", err)
		}
		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, 0, classifyStoreError("parse order", err)
		}
		orders = append(orders, &order)
	}

	return orders, total, nil
}

func (r *firestoreOrderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	_, err := r.client.Collection("orders").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(status)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return classifyStoreError("update order status", err)
	}

	return nil
}

func (r *firestoreOrderRepository) BulkUpdateStatus(ctx context.Context, ids []string, status entity.OrderStatus) error {
	now := time.Now()
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, id := range ids {
			ref := r.client.Collection("orders").Doc(id)
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
		return classifyStoreError("bulk update order status", err)
	}

	return nil
}
