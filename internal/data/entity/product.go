package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductCategory string

const (
	CategoryElectronics ProductCategory = "electronics"
	CategoryClothing    ProductCategory = "clothing"
	CategoryBooks       ProductCategory = "books"
	CategoryHome        ProductCategory = "home"
	CategorySports      ProductCategory = "sports"
	CategoryBeauty      ProductCategory = "beauty"
	CategoryToys        ProductCategory = "toys"
	CategoryAutomotive  ProductCategory = "automotive"
	CategoryOther       ProductCategory = "other"
)

type ProductCondition string

const (
	ConditionNew         ProductCondition = "new"
	ConditionUsed        ProductCondition = "used"
	ConditionRefurbished ProductCondition = "refurbished"
)

// Rating is stored as a JSONB column on products.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type Product struct {
	Base
	Name        string           `db:"name"`
	Description string           `db:"description"`
	Price       decimal.Decimal  `db:"price"`
	Category    ProductCategory  `db:"category"`
	Images      []string         `db:"images"`
	Stock       int              `db:"stock"`
	SellerID    uuid.UUID        `db:"seller_id"`
	IsActive    bool             `db:"is_active"`
	Rating      Rating           `db:"rating"`
	Tags        []string         `db:"tags"`
	Weight      *decimal.Decimal `db:"weight"`
	Dimensions  map[string]any   `db:"dimensions"`
	Condition   ProductCondition `db:"condition"`
}

// SellerSummary is the seller projection joined onto product reads.
// Avatar is only populated on single-product fetches.
type SellerSummary struct {
	ID     uuid.UUID `db:"id"`
	Name   string    `db:"name"`
	Email  string    `db:"email"`
	Avatar string    `db:"avatar"`
}

// ProductWithSeller pairs a product with its owning seller's summary.
type ProductWithSeller struct {
	Product
	Seller SellerSummary
}
