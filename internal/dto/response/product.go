package response

import (
	"time"

	"marketplace-api/internal/data/entity"

	"github.com/shopspring/decimal"
)

type SellerResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

type ProductResponse struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Price       decimal.Decimal         `json:"price"`
	Category    entity.ProductCategory  `json:"category"`
	Images      []string                `json:"images"`
	Stock       int                     `json:"stock"`
	SellerID    string                  `json:"seller_id"`
	IsActive    bool                    `json:"is_active"`
	Rating      entity.Rating           `json:"rating"`
	Tags        []string                `json:"tags"`
	Weight      *decimal.Decimal        `json:"weight,omitempty"`
	Dimensions  map[string]any          `json:"dimensions,omitempty"`
	Condition   entity.ProductCondition `json:"condition"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
	Seller      *SellerResponse         `json:"seller,omitempty"`
}

// Helper converters

func ProductToResponse(p *entity.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Images:      images,
		Stock:       p.Stock,
		SellerID:    p.SellerID.String(),
		IsActive:    p.IsActive,
		Rating:      p.Rating,
		Tags:        tags,
		Weight:      p.Weight,
		Dimensions:  p.Dimensions,
		Condition:   p.Condition,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProductWithSellerToResponse enriches the product with the seller
// summary. Avatar only comes back on single-product fetches.
func ProductWithSellerToResponse(p *entity.ProductWithSeller, includeAvatar bool) ProductResponse {
	resp := ProductToResponse(&p.Product)

	seller := &SellerResponse{
		ID:    p.Seller.ID.String(),
		Name:  p.Seller.Name,
		Email: p.Seller.Email,
	}
	if includeAvatar {
		seller.Avatar = p.Seller.Avatar
	}
	resp.Seller = seller

	return resp
}
