package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/query"
	"furnimarket/internal/domain/repository"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := r.client.Collection("profiles").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return classifyStoreError("create profile", err)
	}

	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("profiles").Doc(id).Get(ctx)
	if err != nil {
		return nil, classifyStoreError("profile", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, classifyStoreError("parse profile", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	iter := r.client.Collection("profiles").Where("email", "==", email).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		return nil, classifyStoreError("profile by email", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, classifyStoreError("parse profile", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	result := make(map[string]*entity.User, len(ids))

	for i := 0; i < len(ids); i += productBatchSize {
		end := i + productBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		refs := make([]*firestore.DocumentRef, 0, end-i)
		for _, id := range ids[i:end] {
			refs = append(refs, r.client.Collection("profiles").Doc(id))
		}

		docs, err := r.client.GetAll(ctx, refs)
		if err != nil {
			return nil, classifyStoreError("batch get profiles", err)
		}

		for _, doc := range docs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var user entity.User
			if err := doc.DataTo(&user); err != nil {
				continue
			}
			result[doc.Ref.ID] = &user
		}
	}

	return result, nil
}

// List searches username and email by case-insensitive substring; filters on
// role and status go to the store as equality predicates.
func (r *firestoreUserRepository) List(ctx context.Context, state query.State) (query.Result[*entity.User], error) {
	state = state.Normalize()

	q := r.client.Collection("profiles").Query
	if state.StatusFilter != query.All {
		q = q.Where("status", "==", state.StatusFilter)
	}
	if state.RoleFilter != query.All {
		q = q.Where("role", "==", state.RoleFilter)
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
		return query.Result[*entity.User]{}, classifyStoreError("list profiles", err)
	}

	search := strings.ToLower(strings.TrimSpace(state.SearchText))
	var matched []*entity.User
	for _, doc := range docs {
		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(user.Username), search) &&
			!strings.Contains(strings.ToLower(user.Email), search) {
			continue
		}
		matched = append(matched, &user)
	}

	total := int64(len(matched))
	start := state.Offset()
	if start >= len(matched) {
		return query.Result[*entity.User]{Rows: []*entity.User{}, Total: total}, nil
	}
	end := start + state.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return query.Result[*entity.User]{Rows: matched[start:end], Total: total}, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	_, err := r.client.Collection("profiles").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return classifyStoreError("update profile", err)
	}

	return nil
}

func (r *firestoreUserRepository) UpdateStatus(ctx context.Context, id string, status entity.UserStatus) error {
	_, err := r.client.Collection("profiles").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(status)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return classifyStoreError("update profile status", err)
	}

	return nil
}

func (r *firestoreUserRepository) BulkUpdateStatus(ctx context.Context, ids []string, status entity.UserStatus) error {
	now := time.Now()
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, id := range ids {
			ref := r.client.Collection("profiles").Doc(id)
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
		return classifyStoreError("bulk update profile status", err)
	}

	return nil
}
