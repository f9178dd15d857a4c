package entity

import (
	"time"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPaid, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order captures a product snapshot at purchase time. Title, price and image
// are copied in, never live-joined, so later product edits do not rewrite
// order history.
type Order struct {
	ID        string `json:"id" firestore:"id"`
	BuyerID   string `json:"buyer_id" firestore:"buyerId"`
	ProductID string `json:"product_id" firestore:"productId"`

	ProductTitle string  `json:"product_title" firestore:"productTitle"`
	ProductPrice float64 `json:"product_price" firestore:"productPrice"`
	ProductImage string  `json:"product_image,omitempty" firestore:"productImage,omitempty"`

	Amount         float64     `json:"amount" firestore:"amount"`
	PaymentMethod  string      `json:"payment_method" firestore:"paymentMethod"`
	DeliveryMethod string      `json:"delivery_method" firestore:"deliveryMethod"`
	Status         OrderStatus `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
