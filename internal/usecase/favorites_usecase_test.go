package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/infrastructure/localstore"
)

func newFavoritesFixture(t *testing.T) (*FavoritesService, *fakeFavoriteRepo, *fakeProductRepo, *localstore.Store) {
	t.Helper()
	favRepo := newFakeFavoriteRepo()
	prodRepo := newFakeProductRepo(
		&entity.Product{ID: "1", Title: "Industrial Lamp", Status: entity.ProductActive},
		&entity.Product{ID: "3", Title: "Oak Table", Status: entity.ProductActive},
		&entity.Product{ID: "5", Title: "Velvet Sofa", Status: entity.ProductActive},
	)
	local := localstore.New(filepath.Join(t.TempDir(), "favorites.json"))
	return NewFavoritesService(favRepo, prodRepo, local), favRepo, prodRepo, local
}

func TestGuestToggleMutatesLocalSlotOnly(t *testing.T) {
	svc, favRepo, _, local := newFavoritesFixture(t)
	guest := svc.PortFor("")

	on, err := guest.Toggle(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = guest.Toggle(context.Background(), "3")
	require.NoError(t, err)
	assert.True(t, on)

	// Toggle off removes.
	on, err = guest.Toggle(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, on)

	var ids []string
	_, err = local.Read(&ids)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids, "slot is rewritten synchronously with each toggle")

	assert.Empty(t, favRepo.favorites, "guest toggles never reach the store")
}

func TestReconcileMergesWithoutDuplicates(t *testing.T) {
	svc, favRepo, _, local := newFavoritesFixture(t)

	require.NoError(t, local.Write([]string{"1", "3", "5"}))
	// The server already knows favorite 3 for this user.
	require.NoError(t, favRepo.Ensure(context.Background(), "user-a", "3"))

	require.NoError(t, svc.Reconcile(context.Background(), "user-a"))

	ids, err := favRepo.ListProductIDs(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "5"}, ids, "server holds exactly {1,3,5}, no duplicate 3")

	var localIDs []string
	ok, err := local.Read(&localIDs)
	require.NoError(t, err)
	assert.False(t, ok, "local set is discarded after the merge")
}

func TestSignOutResetsLocalWithoutCopyBack(t *testing.T) {
	svc, favRepo, _, local := newFavoritesFixture(t)

	require.NoError(t, favRepo.Ensure(context.Background(), "user-a", "1"))
	require.NoError(t, local.Write([]string{"5"}))

	require.NoError(t, svc.HandleSignOut())

	var ids []string
	ok, err := local.Read(&ids)
	require.NoError(t, err)
	assert.False(t, ok, "local set is emptied on sign-out")

	serverIDs, err := favRepo.ListProductIDs(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, serverIDs, "account favorites stay on the account")
}

func TestAccountToggleHitsStoreDirectly(t *testing.T) {
	svc, favRepo, _, local := newFavoritesFixture(t)
	port := svc.PortFor("user-a")

	on, err := port.Toggle(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, on)

	exists, err := favRepo.Exists(context.Background(), "user-a", "1")
	require.NoError(t, err)
	assert.True(t, exists)

	var ids []string
	ok, _ := local.Read(&ids)
	assert.False(t, ok, "authenticated toggles do not touch the local slot")

	on, err = port.Toggle(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, on)

	exists, _ = favRepo.Exists(context.Background(), "user-a", "1")
	assert.False(t, exists)
}

func TestListProductsGuestResolvesByBatchLookup(t *testing.T) {
	svc, _, _, local := newFavoritesFixture(t)

	require.NoError(t, local.Write([]string{"5", "1", "missing"}))

	items, total, err := svc.ListProducts(context.Background(), "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "5", items[0].ProductID, "local ordering is preserved")
	assert.Equal(t, "1", items[1].ProductID)
	assert.Equal(t, "Velvet Sofa", items[0].Product.Title)
}

func TestListProductsAccountJoinsStore(t *testing.T) {
	svc, favRepo, _, _ := newFavoritesFixture(t)
	require.NoError(t, favRepo.Ensure(context.Background(), "user-a", "1"))

	items, total, err := svc.ListProducts(context.Background(), "user-a", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ProductID)
}
