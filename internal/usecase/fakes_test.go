package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/query"
	"furnimarket/pkg/errors"
)

// In-memory doubles for the store-backed repositories. They implement the
// same contract the Firestore adapters do: equality filters, substring
// search, totals computed with the page.

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	seq      int
	failAll  bool
	listCall func(state query.State)
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return errors.Transport("store down", nil)
	}
	if p.ID == "" {
		r.seq++
		p.ID = fmt.Sprintf("prod-%d", r.seq)
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make(map[string]*entity.Product)
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			clone := *p
			result[id] = &clone
		}
	}
	return result, nil
}

func (r *fakeProductRepo) List(ctx context.Context, state query.State) (query.Result[*entity.Product], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listCall != nil {
		r.listCall(state)
	}
	if r.failAll {
		return query.Result[*entity.Product]{}, errors.Transport("store down", nil)
	}

	state = state.Normalize()
	search := strings.ToLower(state.SearchText)

	var all []*entity.Product
	for _, p := range r.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	var matched []*entity.Product
	for _, p := range all {
		if state.StatusFilter != query.All && string(p.Status) != state.StatusFilter {
			continue
		}
		if state.CategoryFilter != query.All && string(p.Category) != state.CategoryFilter {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
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

func (r *fakeProductRepo) ListBySellerID(ctx context.Context, sellerID string, st entity.ProductStatus, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Product
	for _, p := range r.products {
		if p.SellerID != sellerID {
			continue
		}
		if st != "" && p.Status != st {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, int64(len(matched)), nil
}

func (r *fakeProductRepo) ActiveTitles(ctx context.Context, limit int) ([]entity.TitleRef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return nil, errors.Transport("store down", nil)
	}
	var titles []entity.TitleRef
	var all []*entity.Product
	for _, p := range r.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	for _, p := range all {
		if p.Status != entity.ProductActive {
			continue
		}
		titles = append(titles, entity.TitleRef{ID: p.ID, Title: p.Title})
		if limit > 0 && len(titles) == limit {
			break
		}
	}
	return titles, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return errors.Transport("store down", nil)
	}
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *fakeProductRepo) UpdateStatus(ctx context.Context, id string, st entity.ProductStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return errors.Transport("store down", nil)
	}
	p, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	p.Status = st
	return nil
}

func (r *fakeProductRepo) BulkUpdateStatus(ctx context.Context, ids []string, st entity.ProductStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return errors.Transport("store down", nil)
	}
	for _, id := range ids {
		if _, ok := r.products[id]; !ok {
			return errors.NotFound("Product", nil)
		}
	}
	for _, id := range ids {
		r.products[id].Status = st
	}
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make(map[string]*entity.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			clone := *u
			result[id] = &clone
		}
	}
	return result, nil
}

func (r *fakeUserRepo) List(ctx context.Context, state query.State) (query.Result[*entity.User], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state = state.Normalize()
	search := strings.ToLower(state.SearchText)

	var all []*entity.User
	for _, u := range r.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	var matched []*entity.User
	for _, u := range all {
		if state.StatusFilter != query.All && string(u.Status) != state.StatusFilter {
			continue
		}
		if state.RoleFilter != query.All && string(u.Role) != state.RoleFilter {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Username), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		clone := *u
		matched = append(matched, &clone)
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

func (r *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) UpdateStatus(ctx context.Context, id string, st entity.UserStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	u.Status = st
	return nil
}

func (r *fakeUserRepo) BulkUpdateStatus(ctx context.Context, ids []string, st entity.UserStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			u.Status = st
		}
	}
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID == "" {
		r.seq++
		o.ID = fmt.Sprintf("order-%d", r.seq)
	}
	clone := *o
	r.orders[o.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	clone := *o
	return &clone, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, state query.State) (query.Result[*entity.Order], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state = state.Normalize()
	search := strings.ToLower(state.SearchText)

	var all []*entity.Order
	for _, o := range r.orders {
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	var matched []*entity.Order
	for _, o := range all {
		if state.StatusFilter != query.All && string(o.Status) != state.StatusFilter {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(o.ID), search) {
			continue
		}
		clone := *o
		matched = append(matched, &clone)
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

func (r *fakeOrderRepo) ListByBuyerID(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Order
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			clone := *o
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, int64(len(matched)), nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, st entity.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return errors.NotFound("Order", nil)
	}
	o.Status = st
	return nil
}

func (r *fakeOrderRepo) BulkUpdateStatus(ctx context.Context, ids []string, st entity.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if o, ok := r.orders[id]; ok {
			o.Status = st
		}
	}
	return nil
}

type fakeFavoriteRepo struct {
	mu        sync.Mutex
	favorites map[string]entity.Favorite
	ensures   int
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[string]entity.Favorite)}
}

func (r *fakeFavoriteRepo) Ensure(ctx context.Context, userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensures++
	id := entity.FavoriteID(userID, productID)
	if _, ok := r.favorites[id]; ok {
		return nil
	}
	r.favorites[id] = entity.Favorite{ID: id, UserID: userID, ProductID: productID}
	return nil
}

func (r *fakeFavoriteRepo) Remove(ctx context.Context, userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.favorites, entity.FavoriteID(userID, productID))
	return nil
}

func (r *fakeFavoriteRepo) Exists(ctx context.Context, userID, productID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.favorites[entity.FavoriteID(userID, productID)]
	return ok, nil
}

func (r *fakeFavoriteRepo) ListProductIDs(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, f := range r.favorites {
		if f.UserID == userID {
			ids = append(ids, f.ProductID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeFavoriteRepo) ListWithProducts(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteWithProduct, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.FavoriteWithProduct
	for _, f := range r.favorites {
		if f.UserID == userID {
			result = append(result, entity.FavoriteWithProduct{
				ID:        f.ID,
				UserID:    f.UserID,
				ProductID: f.ProductID,
			})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ProductID < result[j].ProductID })
	return result, int64(len(result)), nil
}
