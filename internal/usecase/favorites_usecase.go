package usecase

import (
	"context"
	"sync"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/repository"
	"furnimarket/internal/infrastructure/localstore"
	"furnimarket/pkg/logger"
)

// FavoritesPort is the single seam between "who is favoriting" and "where
// favorites live". The guest implementation is backed by the local slot, the
// account implementation by the store; call sites never branch on identity.
type FavoritesPort interface {
	Toggle(ctx context.Context, productID string) (bool, error)
	Contains(ctx context.Context, productID string) (bool, error)
	ProductIDs(ctx context.Context) ([]string, error)
}

type FavoritesService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
	local        *localstore.Store

	// guards read-modify-write cycles on the guest set so concurrent toggles
	// always apply against the latest value, not a stale snapshot.
	mu sync.Mutex
}

func NewFavoritesService(
	favoriteRepo repository.FavoriteRepository,
	productRepo repository.ProductRepository,
	local *localstore.Store,
) *FavoritesService {
	return &FavoritesService{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
		local:        local,
	}
}

// PortFor selects the implementation by identity. An empty userID means
// guest.
func (s *FavoritesService) PortFor(userID string) FavoritesPort {
	if userID == "" {
		return &guestFavorites{service: s}
	}
	return &accountFavorites{service: s, userID: userID}
}

// Reconcile runs exactly once per guest-to-authenticated transition: every
// locally cached favorite is ensured on the account (create-if-absent, no
// duplicates, no failure on already-present), then the local set is
// discarded.
func (s *FavoritesService) Reconcile(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.readLocal()
	if err != nil {
		return err
	}

	for _, productID := range ids {
		if err := s.favoriteRepo.Ensure(ctx, userID, productID); err != nil {
			return err
		}
	}

	if len(ids) > 0 {
		logger.Info("Merged %d guest favorite(s) into account %s", len(ids), userID)
	}
	return s.local.Reset()
}

// HandleSignOut resets the local set. Account favorites are account-scoped
// state; they are not copied back onto the device.
func (s *FavoritesService) HandleSignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.local.Reset()
}

// ListProducts resolves the current favorite collection to products: a
// favorites-to-products join for accounts, a batched ID lookup for guests.
func (s *FavoritesService) ListProducts(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteWithProduct, int64, error) {
	if userID != "" {
		return s.favoriteRepo.ListWithProducts(ctx, userID, limit, offset)
	}

	ids, err := s.PortFor("").ProductIDs(ctx)
	if err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return []entity.FavoriteWithProduct{}, 0, nil
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	var result []entity.FavoriteWithProduct
	var total int64
	for _, id := range ids {
		product, ok := products[id]
		if !ok {
			continue
		}
		total++
		if int(total) > offset && (limit <= 0 || len(result) < limit) {
			result = append(result, entity.FavoriteWithProduct{
				ID:        id,
				ProductID: id,
				Product:   product,
			})
		}
	}

	return result, total, nil
}

func (s *FavoritesService) readLocal() ([]string, error) {
	var ids []string
	if _, err := s.local.Read(&ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// guestFavorites keeps the set in the local slot and rewrites the slot
// wholesale, synchronously with every toggle.
type guestFavorites struct {
	service *FavoritesService
}

func (g *guestFavorites) Toggle(ctx context.Context, productID string) (bool, error) {
	s := g.service
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.readLocal()
	if err != nil {
		return false, err
	}

	next := make([]string, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == productID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, productID)
	}

	if err := s.local.Write(next); err != nil {
		return false, err
	}
	return !removed, nil
}

func (g *guestFavorites) Contains(ctx context.Context, productID string) (bool, error) {
	g.service.mu.Lock()
	defer g.service.mu.Unlock()

	ids, err := g.service.readLocal()
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

func (g *guestFavorites) ProductIDs(ctx context.Context) ([]string, error) {
	g.service.mu.Lock()
	defer g.service.mu.Unlock()
	return g.service.readLocal()
}

// accountFavorites talks to the store directly; no local cache is consulted
// or updated while signed in.
type accountFavorites struct {
	service *FavoritesService
	userID  string
}

func (a *accountFavorites) Toggle(ctx context.Context, productID string) (bool, error) {
	repo := a.service.favoriteRepo

	exists, err := repo.Exists(ctx, a.userID, productID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := repo.Remove(ctx, a.userID, productID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := repo.Ensure(ctx, a.userID, productID); err != nil {
		return false, err
	}
	return true, nil
}

func (a *accountFavorites) Contains(ctx context.Context, productID string) (bool, error) {
	return a.service.favoriteRepo.Exists(ctx, a.userID, productID)
}

func (a *accountFavorites) ProductIDs(ctx context.Context) ([]string, error) {
	return a.service.favoriteRepo.ListProductIDs(ctx, a.userID)
}
