package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furnimarket/internal/domain/entity"
	"furnimarket/pkg/errors"
)

func checkoutFixture() (*OrderUseCase, *fakeOrderRepo, *fakeProductRepo) {
	productRepo := newFakeProductRepo(&entity.Product{
		ID:       "p1",
		SellerID: "seller-1",
		Title:    "Oak Table",
		Price:    320.50,
		Status:   entity.ProductActive,
		Images:   []entity.ProductImage{{ID: "img1", URL: "https://img/oak.jpg"}},
	})
	orderRepo := newFakeOrderRepo()
	return NewOrderUseCase(orderRepo, productRepo), orderRepo, productRepo
}

func TestCheckoutCapturesSnapshotAndMarksSold(t *testing.T) {
	uc, _, productRepo := checkoutFixture()

	order, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{
		ProductID:      "p1",
		PaymentMethod:  "card",
		DeliveryMethod: "pickup",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, "Oak Table", order.ProductTitle)
	assert.Equal(t, 320.50, order.ProductPrice)
	assert.Equal(t, "https://img/oak.jpg", order.ProductImage)
	assert.Equal(t, 320.50, order.Amount)

	product, _ := productRepo.GetByID(context.Background(), "p1")
	assert.Equal(t, entity.ProductSold, product.Status)
}

func TestCheckoutSnapshotSurvivesProductEdit(t *testing.T) {
	uc, orderRepo, productRepo := checkoutFixture()

	order, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{
		ProductID: "p1", PaymentMethod: "card", DeliveryMethod: "pickup",
	})
	require.NoError(t, err)

	// Seller edits the product after the sale.
	product, _ := productRepo.GetByID(context.Background(), "p1")
	product.Title = "Renamed Table"
	product.Price = 1.00
	require.NoError(t, productRepo.Update(context.Background(), product))

	stored, err := orderRepo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oak Table", stored.ProductTitle)
	assert.Equal(t, 320.50, stored.ProductPrice)
}

func TestCheckoutRejectsNonActiveProduct(t *testing.T) {
	uc, _, productRepo := checkoutFixture()
	require.NoError(t, productRepo.UpdateStatus(context.Background(), "p1", entity.ProductSold))

	_, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{
		ProductID: "p1", PaymentMethod: "card", DeliveryMethod: "pickup",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCheckoutRejectsOwnListing(t *testing.T) {
	uc, _, _ := checkoutFixture()

	_, err := uc.Checkout(context.Background(), "seller-1", CheckoutInput{
		ProductID: "p1", PaymentMethod: "card", DeliveryMethod: "pickup",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCancelOnlyByBuyerAndOnlyWhileLegal(t *testing.T) {
	uc, orderRepo, _ := checkoutFixture()

	order, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{
		ProductID: "p1", PaymentMethod: "card", DeliveryMethod: "pickup",
	})
	require.NoError(t, err)

	_, err = uc.Cancel(context.Background(), order.ID, "stranger")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	cancelled, err := uc.Cancel(context.Background(), order.ID, "buyer-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, cancelled.Status)

	// Cancelled is terminal: no way back to paid.
	_, err = uc.Advance(context.Background(), order.ID, entity.OrderPaid)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_TRANSITION"))

	stored, _ := orderRepo.GetByID(context.Background(), order.ID)
	assert.Equal(t, entity.OrderCancelled, stored.Status)
}

func TestAdvanceWalksForward(t *testing.T) {
	uc, _, _ := checkoutFixture()

	order, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{
		ProductID: "p1", PaymentMethod: "card", DeliveryMethod: "courier",
	})
	require.NoError(t, err)

	for _, target := range []entity.OrderStatus{entity.OrderPaid, entity.OrderShipped, entity.OrderDelivered} {
		advanced, err := uc.Advance(context.Background(), order.ID, target)
		require.NoError(t, err)
		assert.Equal(t, target, advanced.Status)
	}

	// Delivered orders cannot be cancelled.
	_, err = uc.Advance(context.Background(), order.ID, entity.OrderCancelled)
	require.Error(t, err)
}
