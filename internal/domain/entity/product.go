package entity

import (
	"time"
)

// ProductStatus is a closed set. A missing status is never interpreted on the
// fly; NewProduct assigns the explicit default.
type ProductStatus string

const (
	ProductActive  ProductStatus = "active"
	ProductPending ProductStatus = "pending"
	ProductSold    ProductStatus = "sold"
	ProductBlocked ProductStatus = "blocked"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductPending, ProductSold, ProductBlocked:
		return true
	}
	return false
}

type ProductCategory string

const (
	CategorySofa     ProductCategory = "sofa"
	CategoryTable    ProductCategory = "table"
	CategoryChair    ProductCategory = "chair"
	CategoryBed      ProductCategory = "bed"
	CategoryStorage  ProductCategory = "storage"
	CategoryLighting ProductCategory = "lighting"
	CategoryDecor    ProductCategory = "decor"
	CategoryOther    ProductCategory = "other"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case CategorySofa, CategoryTable, CategoryChair, CategoryBed,
		CategoryStorage, CategoryLighting, CategoryDecor, CategoryOther:
		return true
	}
	return false
}

type ProductCondition string

const (
	ConditionNew     ProductCondition = "new"
	ConditionLikeNew ProductCondition = "like_new"
	ConditionGood    ProductCondition = "good"
	ConditionFair    ProductCondition = "fair"
)

func (c ProductCondition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair:
		return true
	}
	return false
}

// Dimensions are in centimeters; a nil field means "not specified".
type Dimensions struct {
	Height *float64 `json:"height,omitempty" firestore:"height,omitempty"`
	Width  *float64 `json:"width,omitempty" firestore:"width,omitempty"`
	Depth  *float64 `json:"depth,omitempty" firestore:"depth,omitempty"`
}

type ProductImage struct {
	ID           string `json:"id" firestore:"id"`
	URL          string `json:"url" firestore:"url"`
	DisplayOrder int    `json:"display_order" firestore:"displayOrder"`
}

type Product struct {
	ID          string           `json:"id" firestore:"id"`
	SellerID    string           `json:"seller_id" firestore:"sellerId"`
	Title       string           `json:"title" firestore:"title"`
	Description string           `json:"description" firestore:"description"`
	Price       float64          `json:"price" firestore:"price"`
	Category    ProductCategory  `json:"category" firestore:"category"`
	Condition   ProductCondition `json:"condition" firestore:"condition"`
	Color       string           `json:"color,omitempty" firestore:"color,omitempty"`
	Dimensions  *Dimensions      `json:"dimensions,omitempty" firestore:"dimensions,omitempty"`
	Images      []ProductImage   `json:"images" firestore:"images"`
	Tags        []string         `json:"tags" firestore:"tags"`
	Status      ProductStatus    `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// TitleRef is the id/title pair the search overlay keeps in memory for
// suggestion matching.
type TitleRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// NewProduct builds a listing with the default status applied.
func NewProduct(sellerID string) *Product {
	now := time.Now()
	return &Product{
		SellerID:  sellerID,
		Status:    ProductActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
