package entity

import (
	"time"
)

// Favorite is a pure membership relation. The document ID is the composite
// "userID_productID" so create-if-absent is a single Set on a known key.
type Favorite struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	ProductID string    `json:"product_id" firestore:"productId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

func FavoriteID(userID, productID string) string {
	return userID + "_" + productID
}

type FavoriteWithProduct struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Product   *Product  `json:"product"`
	CreatedAt time.Time `json:"created_at"`
}
