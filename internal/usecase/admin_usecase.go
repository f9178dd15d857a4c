package usecase

import (
	"context"
	"time"

	"furnimarket/internal/console"
	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/query"
	"furnimarket/internal/domain/repository"
	"furnimarket/internal/domain/status"
	"furnimarket/pkg/debounce"
	"furnimarket/pkg/logger"
)

// AdminProductRow is a product joined with its seller's username for the
// console table.
type AdminProductRow struct {
	Product        *entity.Product `json:"product"`
	SellerUsername string          `json:"seller_username"`
}

// AdminUseCase owns the three console tables (products, orders, users),
// their bulk coordinators, and the type-ahead debouncing for table search.
type AdminUseCase struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository

	products *console.Session[AdminProductRow]
	orders   *console.Session[*entity.Order]
	users    *console.Session[*entity.User]

	productsBulk *console.Coordinator[AdminProductRow]
	ordersBulk   *console.Coordinator[*entity.Order]
	usersBulk    *console.Coordinator[*entity.User]

	searchDebounce *debounce.Debouncer
}

func NewAdminUseCase(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	searchDebounceInterval time.Duration,
) *AdminUseCase {
	uc := &AdminUseCase{
		productRepo:    productRepo,
		orderRepo:      orderRepo,
		userRepo:       userRepo,
		searchDebounce: debounce.New(searchDebounceInterval),
	}

	uc.products = console.NewSession(
		func(row AdminProductRow) string { return row.Product.ID },
		uc.fetchProductRows,
	)
	uc.orders = console.NewSession(
		func(o *entity.Order) string { return o.ID },
		uc.orderRepo.List,
	)
	uc.users = console.NewSession(
		func(u *entity.User) string { return u.ID },
		uc.userRepo.List,
	)

	uc.productsBulk = console.NewCoordinator(uc.products,
		func(row AdminProductRow, target string) error {
			_, err := status.ForProduct().Transition(string(row.Product.Status), target)
			return err
		},
		func(ctx context.Context, ids []string, target string) error {
			return uc.productRepo.BulkUpdateStatus(ctx, ids, entity.ProductStatus(target))
		},
	)
	uc.ordersBulk = console.NewCoordinator(uc.orders,
		func(o *entity.Order, target string) error {
			_, err := status.ForOrder().Transition(string(o.Status), target)
			return err
		},
		func(ctx context.Context, ids []string, target string) error {
			return uc.orderRepo.BulkUpdateStatus(ctx, ids, entity.OrderStatus(target))
		},
	)
	uc.usersBulk = console.NewCoordinator(uc.users,
		func(u *entity.User, target string) error {
			_, err := status.ForUser().Transition(string(u.Status), target)
			return err
		},
		func(ctx context.Context, ids []string, target string) error {
			return uc.userRepo.BulkUpdateStatus(ctx, ids, entity.UserStatus(target))
		},
	)

	return uc
}

// fetchProductRows executes the table query and resolves seller usernames
// with one batched profile lookup over the distinct seller IDs of the page.
func (uc *AdminUseCase) fetchProductRows(ctx context.Context, state query.State) (query.Result[AdminProductRow], error) {
	result, err := uc.productRepo.List(ctx, state)
	if err != nil {
		return query.Result[AdminProductRow]{}, err
	}

	distinct := make(map[string]struct{})
	var sellerIDs []string
	for _, p := range result.Rows {
		if _, ok := distinct[p.SellerID]; ok {
			continue
		}
		distinct[p.SellerID] = struct{}{}
		sellerIDs = append(sellerIDs, p.SellerID)
	}

	sellers := map[string]*entity.User{}
	if len(sellerIDs) > 0 {
		sellers, err = uc.userRepo.GetByIDs(ctx, sellerIDs)
		if err != nil {
			// The table is still useful without usernames.
			logger.Warn("Seller lookup failed for product table: %v", err)
			sellers = map[string]*entity.User{}
		}
	}

	rows := make([]AdminProductRow, 0, len(result.Rows))
	for _, p := range result.Rows {
		row := AdminProductRow{Product: p}
		if seller, ok := sellers[p.SellerID]; ok {
			row.SellerUsername = seller.Username
		}
		rows = append(rows, row)
	}

	return query.Result[AdminProductRow]{Rows: rows, Total: result.Total}, nil
}

func (uc *AdminUseCase) Products() *console.Session[AdminProductRow] { return uc.products }

func (uc *AdminUseCase) Orders() *console.Session[*entity.Order] { return uc.orders }

func (uc *AdminUseCase) Users() *console.Session[*entity.User] { return uc.users }

func (uc *AdminUseCase) ProductsBulk() *console.Coordinator[AdminProductRow] { return uc.productsBulk }

func (uc *AdminUseCase) OrdersBulk() *console.Coordinator[*entity.Order] { return uc.ordersBulk }

func (uc *AdminUseCase) UsersBulk() *console.Coordinator[*entity.User] { return uc.usersBulk }

// TypeProductSearch coalesces rapid keystrokes; the query dispatches only
// after the input has been quiescent for the configured interval.
func (uc *AdminUseCase) TypeProductSearch(text string) {
	next := uc.products.State().WithSearch(text)
	uc.searchDebounce.Schedule(func() {
		if err := uc.products.Apply(context.Background(), next); err != nil && err != console.ErrSuperseded {
			logger.Warn("Debounced product search failed: %v", err)
		}
	})
}

// TransitionProduct performs a single-row optimistic transition on the
// products table.
func (uc *AdminUseCase) TransitionProduct(ctx context.Context, id string, target entity.ProductStatus) error {
	return uc.products.TransitionRow(ctx, id,
		func(row AdminProductRow) (AdminProductRow, error) {
			updated := *row.Product
			if err := status.TransitionProduct(&updated, target); err != nil {
				return AdminProductRow{}, err
			}
			return AdminProductRow{Product: &updated, SellerUsername: row.SellerUsername}, nil
		},
		func(ctx context.Context) error {
			return uc.productRepo.UpdateStatus(ctx, id, target)
		},
	)
}

func (uc *AdminUseCase) TransitionOrder(ctx context.Context, id string, target entity.OrderStatus) error {
	return uc.orders.TransitionRow(ctx, id,
		func(o *entity.Order) (*entity.Order, error) {
			updated := *o
			if err := status.TransitionOrder(&updated, target); err != nil {
				return nil, err
			}
			return &updated, nil
		},
		func(ctx context.Context) error {
			return uc.orderRepo.UpdateStatus(ctx, id, target)
		},
	)
}

func (uc *AdminUseCase) TransitionUser(ctx context.Context, id string, target entity.UserStatus) error {
	return uc.users.TransitionRow(ctx, id,
		func(u *entity.User) (*entity.User, error) {
			updated := *u
			if err := status.TransitionUser(&updated, target); err != nil {
				return nil, err
			}
			return &updated, nil
		},
		func(ctx context.Context) error {
			return uc.userRepo.UpdateStatus(ctx, id, target)
		},
	)
}
