package request

import (
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=100"`
	Description string           `json:"description" validate:"required,min=1,max=1000"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Category    string           `json:"category" validate:"required,oneof=electronics clothing books home sports beauty toys automotive other"`
	Images      []string         `json:"images,omitempty"`
	Stock       int              `json:"stock" validate:"gte=0"`
	Tags        []string         `json:"tags,omitempty"`
	Weight      *decimal.Decimal `json:"weight,omitempty"`
	Dimensions  map[string]any   `json:"dimensions,omitempty"`
	Condition   string           `json:"condition,omitempty" validate:"omitempty,oneof=new used refurbished"`
}

type ProductUpdateRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description,omitempty" validate:"omitempty,min=1,max=1000"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,oneof=electronics clothing books home sports beauty toys automotive other"`
	Images      *[]string        `json:"images,omitempty"`
	Stock       *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	IsActive    *bool            `json:"isActive,omitempty"`
	Tags        *[]string        `json:"tags,omitempty"`
	Weight      *decimal.Decimal `json:"weight,omitempty"`
	Dimensions  *map[string]any  `json:"dimensions,omitempty"`
	Condition   *string          `json:"condition,omitempty" validate:"omitempty,oneof=new used refurbished"`
}

// ProductListQuery carries the listing filters parsed from query
// parameters. Unrecognized sort fields and orders are rejected rather
// than silently falling back.
type ProductListQuery struct {
	Category string           `validate:"omitempty,oneof=electronics clothing books home sports beauty toys automotive other"`
	MinPrice *decimal.Decimal `validate:"-"`
	MaxPrice *decimal.Decimal `validate:"-"`
	Search   string           `validate:"omitempty,max=100"`
	Sort     string           `validate:"omitempty,oneof=createdAt updatedAt price name stock"`
	Order    string           `validate:"omitempty,oneof=ASC DESC asc desc"`
	Page     int              `validate:"min=1"`
	Limit    int              `validate:"min=1,max=100"`
}
