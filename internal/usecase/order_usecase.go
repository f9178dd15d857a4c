package usecase

import (
	"context"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/repository"
	"furnimarket/internal/domain/status"
	"furnimarket/pkg/errors"
	"furnimarket/pkg/logger"
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

type CheckoutInput struct {
	ProductID      string `json:"product_id"`
	PaymentMethod  string `json:"payment_method"`
	DeliveryMethod string `json:"delivery_method"`
}

// Checkout creates the order with a snapshot of the product as sold, then
// moves the listing itself out of the active pool. Payment itself is handled
// elsewhere; the method tag is only recorded.
func (uc *OrderUseCase) Checkout(ctx context.Context, buyerID string, input CheckoutInput) (*entity.Order, error) {
	if input.ProductID == "" {
		return nil, errors.Validation("product_id is required", nil)
	}
	if input.PaymentMethod == "" || input.DeliveryMethod == "" {
		return nil, errors.Validation("payment and delivery methods are required", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product.SellerID == buyerID {
		return nil, errors.BadRequest("You cannot buy your own listing", nil)
	}
	if product.Status != entity.ProductActive {
		return nil, errors.BadRequest("This listing is no longer available", nil)
	}

	var image string
	if len(product.Images) > 0 {
		image = product.Images[0].URL
	}

	order := &entity.Order{
		BuyerID:        buyerID,
		ProductID:      product.ID,
		ProductTitle:   product.Title,
		ProductPrice:   product.Price,
		ProductImage:   image,
		Amount:         product.Price,
		PaymentMethod:  input.PaymentMethod,
		DeliveryMethod: input.DeliveryMethod,
		Status:         entity.OrderPending,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	// The listing leaves the marketplace through the machine like every other
	// status change.
	if err := status.TransitionProduct(product, entity.ProductSold); err != nil {
		return nil, err
	}
	if err := uc.productRepo.UpdateStatus(ctx, product.ID, entity.ProductSold); err != nil {
		logger.Error("Order %s created but product %s could not be marked sold: %v", order.ID, product.ID, err)
		return nil, err
	}

	return order, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, id, requesterID string, isAdmin bool) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != requesterID && !isAdmin {
		return nil, errors.Forbidden("You don't have permission to view this order", nil)
	}
	return order, nil
}

func (uc *OrderUseCase) MyOrders(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.ListByBuyerID(ctx, buyerID, limit, offset)
}

// Cancel is the buyer-side transition; everything after shipped is final for
// the buyer, which the machine enforces.
func (uc *OrderUseCase) Cancel(ctx context.Context, id, buyerID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != buyerID {
		return nil, errors.Forbidden("You don't have permission to cancel this order", nil)
	}

	return uc.transition(ctx, order, entity.OrderCancelled)
}

// Advance moves an order one step forward (paid, shipped, delivered). Used by
// the admin console.
func (uc *OrderUseCase) Advance(ctx context.Context, id string, target entity.OrderStatus) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.transition(ctx, order, target)
}

func (uc *OrderUseCase) transition(ctx context.Context, order *entity.Order, target entity.OrderStatus) (*entity.Order, error) {
	if err := status.TransitionOrder(order, target); err != nil {
		return nil, err
	}
	if err := uc.orderRepo.UpdateStatus(ctx, order.ID, target); err != nil {
		return nil, err
	}
	return order, nil
}
