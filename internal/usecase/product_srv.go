package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/dto/response"
	"marketplace-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sortColumns maps API sort field names onto real columns. Doubles as the
// whitelist guarding ORDER BY interpolation.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"price":     "price",
	"name":      "name",
	"stock":     "stock",
}

type ProductService interface {
	List(ctx context.Context, query *request.ProductListQuery) (*response.PaginatedResponse[response.ProductResponse], error)
	Get(ctx context.Context, productID string) (*response.ProductResponse, error)
	Create(ctx context.Context, sellerID uuid.UUID, req *request.ProductRequest) (*response.ProductResponse, error)
	Update(ctx context.Context, productID string, requesterID uuid.UUID, requesterRole entity.UserRole, req *request.ProductUpdateRequest) (*response.ProductResponse, error)
	Delete(ctx context.Context, productID string, requesterID uuid.UUID, requesterRole entity.UserRole) error
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]response.ProductResponse, error)
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) List(ctx context.Context, query *request.ProductListQuery) (*response.PaginatedResponse[response.ProductResponse], error) {
	errs := utils.ValidateStruct(query)
	if errs == nil {
		errs = map[string]string{}
	}
	if query.MinPrice != nil && query.MinPrice.IsNegative() {
		errs["MinPrice"] = "Must not be negative"
	}
	if query.MaxPrice != nil && query.MaxPrice.IsNegative() {
		errs["MaxPrice"] = "Must not be negative"
	}
	if len(errs) > 0 {
		s.log.Warn("List products validation failed", zap.Any("errors", errs))
		return nil, entity.NewValidationError(errs)
	}

	filter := repository.ProductFilter{
		MinPrice: query.MinPrice,
		MaxPrice: query.MaxPrice,
		Search:   query.Search,
		Limit:    query.Limit,
		Offset:   utils.CalculateOffset(query.Page, query.Limit),
	}
	if query.Category != "" {
		filter.Category = &query.Category
	}
	if query.Sort != "" {
		filter.SortCol = sortColumns[query.Sort]
	}
	if query.Order != "" {
		filter.Order = strings.ToUpper(query.Order)
	}

	products, err := s.repo.Product.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	total, err := s.repo.Product.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	items := make([]response.ProductResponse, len(products))
	for i, p := range products {
		items[i] = response.ProductWithSellerToResponse(p, false)
	}

	s.log.Debug("Products listed",
		zap.Int("count", len(items)),
		zap.Int64("total", total),
		zap.Int("page", query.Page),
		zap.Int("limit", query.Limit),
	)

	return response.NewPaginatedResponse(items, query.Page, query.Limit, total), nil
}

func (s *productService) Get(ctx context.Context, productID string) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, entity.FieldError("id", "Must be a valid UUID")
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, entity.ErrNotFound)
	}

	// The route is public and carries no identity, so hidden listings
	// are indistinguishable from absent ones. Owners reach their
	// inactive products through the my-products listing.
	if !product.IsActive {
		return nil, fmt.Errorf("product %s: %w", productID, entity.ErrNotFound)
	}

	resp := response.ProductWithSellerToResponse(product, true)
	return &resp, nil
}

func (s *productService) Create(ctx context.Context, sellerID uuid.UUID, req *request.ProductRequest) (*response.ProductResponse, error) {
	errs := utils.ValidateStruct(req)
	if errs == nil {
		errs = map[string]string{}
	}
	if req.Price != nil && req.Price.IsNegative() {
		errs["Price"] = "Must not be negative"
	}
	if req.Weight != nil && req.Weight.IsNegative() {
		errs["Weight"] = "Must not be negative"
	}
	if len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, entity.NewValidationError(errs)
	}

	condition := entity.ConditionNew
	if req.Condition != "" {
		condition = entity.ProductCondition(req.Condition)
	}

	// The owning seller always comes from the authenticated identity,
	// never from the request body.
	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    entity.ProductCategory(req.Category),
		Images:      req.Images,
		Stock:       req.Stock,
		SellerID:    sellerID,
		IsActive:    true,
		Rating:      entity.Rating{},
		Tags:        req.Tags,
		Weight:      req.Weight,
		Dimensions:  req.Dimensions,
		Condition:   condition,
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	if product.Tags == nil {
		product.Tags = []string{}
	}
	if product.Dimensions == nil {
		product.Dimensions = map[string]any{}
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		return nil, err
	}

	// Re-fetch so the response carries the seller summary.
	created, err := s.repo.Product.FindByID(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch created product: %w", err)
	}
	if created == nil {
		return nil, fmt.Errorf("product %s vanished after create: %w", product.ID.String(), entity.ErrNotFound)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("seller_id", sellerID.String()),
		zap.String("name", product.Name),
	)

	resp := response.ProductWithSellerToResponse(created, false)
	return &resp, nil
}

func (s *productService) Update(ctx context.Context, productID string, requesterID uuid.UUID, requesterRole entity.UserRole, req *request.ProductUpdateRequest) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, entity.FieldError("id", "Must be a valid UUID")
	}

	errs := utils.ValidateStruct(req)
	if errs == nil {
		errs = map[string]string{}
	}
	if req.Price != nil && req.Price.IsNegative() {
		errs["Price"] = "Must not be negative"
	}
	if req.Weight != nil && req.Weight.IsNegative() {
		errs["Weight"] = "Must not be negative"
	}
	if len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, entity.NewValidationError(errs)
	}

	existing, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("product %s: %w", productID, entity.ErrNotFound)
	}

	if err := checkOwnership(&existing.Product, requesterID, requesterRole); err != nil {
		s.log.Warn("Update denied",
			zap.String("product_id", productID),
			zap.String("requester_id", requesterID.String()),
			zap.String("role", string(requesterRole)),
		)
		return nil, err
	}

	product := existing.Product
	applyProductUpdate(&product, req)
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, &product); err != nil {
		return nil, err
	}

	updated, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch updated product: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("product %s: %w", productID, entity.ErrNotFound)
	}

	s.log.Info("Product updated",
		zap.String("product_id", productID),
		zap.String("requester_id", requesterID.String()),
	)

	resp := response.ProductWithSellerToResponse(updated, false)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, productID string, requesterID uuid.UUID, requesterRole entity.UserRole) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return entity.FieldError("id", "Must be a valid UUID")
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return fmt.Errorf("product %s: %w", productID, entity.ErrNotFound)
	}

	if err := checkOwnership(&product.Product, requesterID, requesterRole); err != nil {
		s.log.Warn("Delete denied",
			zap.String("product_id", productID),
			zap.String("requester_id", requesterID.String()),
			zap.String("role", string(requesterRole)),
		)
		return err
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Product deleted",
		zap.String("product_id", productID),
		zap.String("requester_id", requesterID.String()),
	)

	return nil
}

func (s *productService) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list seller products: %w", err)
	}

	items := make([]response.ProductResponse, len(products))
	for i, p := range products {
		items[i] = response.ProductToResponse(p)
	}

	return items, nil
}

// checkOwnership enforces the owner-or-admin rule on product mutations.
func checkOwnership(product *entity.Product, requesterID uuid.UUID, requesterRole entity.UserRole) error {
	if product.SellerID != requesterID && requesterRole != entity.RoleAdmin {
		return fmt.Errorf("not the product owner: %w", entity.ErrForbidden)
	}
	return nil
}

// applyProductUpdate copies provided fields onto the product; absent
// fields keep prior values.
func applyProductUpdate(product *entity.Product, req *request.ProductUpdateRequest) {
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = entity.ProductCategory(*req.Category)
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.Tags != nil {
		product.Tags = *req.Tags
	}
	if req.Weight != nil {
		product.Weight = req.Weight
	}
	if req.Dimensions != nil {
		product.Dimensions = *req.Dimensions
	}
	if req.Condition != nil {
		product.Condition = entity.ProductCondition(*req.Condition)
	}
}
