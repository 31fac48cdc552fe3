package repository

import (
	"context"
	"fmt"
	"strings"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductFilter narrows the active-product listing. Sort column and order
// must already be validated against the whitelist; the repository
// interpolates them into ORDER BY.
type ProductFilter struct {
	Category *string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
	SortCol  string
	Order    string
	Limit    int
	Offset   int
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductWithSeller, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]*entity.ProductWithSeller, error)
	Count(ctx context.Context, filter ProductFilter) (int64, error)
	FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, category, images,
		                      stock, seller_id, is_active, rating, tags,
		                      weight, dimensions, condition, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price.String(),
		product.Category,
		product.Images,
		product.Stock,
		product.SellerID,
		product.IsActive,
		product.Rating,
		product.Tags,
		decimalPtrToString(product.Weight),
		product.Dimensions,
		product.Condition,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
			zap.String("seller_id", product.SellerID.String()),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

// FindByID fetches a product regardless of is_active, joined with the
// fuller seller summary (including avatar). Visibility is the service's
// call.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductWithSeller, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price::text, p.category, p.images,
		       p.stock, p.seller_id, p.is_active, p.rating, p.tags,
		       p.weight::text, p.dimensions, p.condition, p.created_at, p.updated_at,
		       u.id, u.name, u.email, u.avatar
		FROM products p
		JOIN users u ON u.id = p.seller_id
		WHERE p.id = $1
	`

	var (
		p         entity.ProductWithSeller
		priceStr  string
		weightStr *string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&priceStr,
		&p.Category,
		&p.Images,
		&p.Stock,
		&p.SellerID,
		&p.IsActive,
		&p.Rating,
		&p.Tags,
		&weightStr,
		&p.Dimensions,
		&p.Condition,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.Seller.ID,
		&p.Seller.Name,
		&p.Seller.Email,
		&p.Seller.Avatar,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	if err := parseDecimals(&p.Product, priceStr, weightStr); err != nil {
		return nil, err
	}

	return &p, nil
}

// FindAll returns a page of active products matching the filter, each
// joined with its seller summary (id, name, email).
func (r *productRepository) FindAll(ctx context.Context, filter ProductFilter) ([]*entity.ProductWithSeller, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT p.id, p.name, p.description, p.price::text, p.category, p.images,
		       p.stock, p.seller_id, p.is_active, p.rating, p.tags,
		       p.weight::text, p.dimensions, p.condition, p.created_at, p.updated_at,
		       u.id, u.name, u.email
		FROM products p
		JOIN users u ON u.id = p.seller_id
	`)

	where, args := buildProductWhere(filter)
	queryBuilder.WriteString(where)

	sortCol := filter.SortCol
	if sortCol == "" {
		sortCol = "created_at"
	}
	order := filter.Order
	if order != "ASC" {
		order = "DESC"
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY p.%s %s LIMIT $%d OFFSET $%d",
		sortCol, order, len(args)+1, len(args)+2))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find products",
			zap.Error(err),
			zap.Int("limit", filter.Limit),
			zap.Int("offset", filter.Offset),
		)
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer rows.Close()

	var products []*entity.ProductWithSeller
	for rows.Next() {
		var (
			p         entity.ProductWithSeller
			priceStr  string
			weightStr *string
		)
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&priceStr,
			&p.Category,
			&p.Images,
			&p.Stock,
			&p.SellerID,
			&p.IsActive,
			&p.Rating,
			&p.Tags,
			&weightStr,
			&p.Dimensions,
			&p.Condition,
			&p.CreatedAt,
			&p.UpdatedAt,
			&p.Seller.ID,
			&p.Seller.Name,
			&p.Seller.Email,
		)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		if err := parseDecimals(&p.Product, priceStr, weightStr); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

// Count returns the total number of active products matching the filter,
// ignoring pagination.
func (r *productRepository) Count(ctx context.Context, filter ProductFilter) (int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT COUNT(*) FROM products p`)

	where, args := buildProductWhere(filter)
	queryBuilder.WriteString(where)

	var total int64
	err := r.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return total, nil
}

// FindBySeller returns every product owned by the seller, active or not,
// newest first.
func (r *productRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	query := `
		SELECT id, name, description, price::text, category, images,
		       stock, seller_id, is_active, rating, tags,
		       weight::text, dimensions, condition, created_at, updated_at
		FROM products
		WHERE seller_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		r.log.Error("Failed to find products by seller",
			zap.Error(err),
			zap.String("seller_id", sellerID.String()),
		)
		return nil, fmt.Errorf("find products by seller %s: %w", sellerID.String(), err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var (
			p         entity.Product
			priceStr  string
			weightStr *string
		)
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&priceStr,
			&p.Category,
			&p.Images,
			&p.Stock,
			&p.SellerID,
			&p.IsActive,
			&p.Rating,
			&p.Tags,
			&weightStr,
			&p.Dimensions,
			&p.Condition,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		if err := parseDecimals(&p, priceStr, weightStr); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category = $5,
		    images = $6, stock = $7, is_active = $8, rating = $9, tags = $10,
		    weight = $11, dimensions = $12, condition = $13, updated_at = $14
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price.String(),
		product.Category,
		product.Images,
		product.Stock,
		product.IsActive,
		product.Rating,
		product.Tags,
		decimalPtrToString(product.Weight),
		product.Dimensions,
		product.Condition,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return fmt.Errorf("update product %s: %w", product.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", product.ID.String(), entity.ErrNotFound)
	}

	return nil
}

// Delete removes the row permanently. Soft-hide goes through Update with
// is_active = false instead.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", id.String(), entity.ErrNotFound)
	}

	r.log.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}

// buildProductWhere assembles the WHERE clause shared by FindAll and
// Count. Only active products are ever eligible for listing; both price
// bounds are inclusive and search matches name or description
// case-insensitively.
func buildProductWhere(filter ProductFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(" WHERE p.is_active = TRUE")

	args := []any{}
	argCount := 1

	if filter.Category != nil && *filter.Category != "" {
		sb.WriteString(fmt.Sprintf(" AND p.category = $%d", argCount))
		args = append(args, *filter.Category)
		argCount++
	}

	if filter.MinPrice != nil {
		sb.WriteString(fmt.Sprintf(" AND p.price >= $%d", argCount))
		args = append(args, filter.MinPrice.String())
		argCount++
	}

	if filter.MaxPrice != nil {
		sb.WriteString(fmt.Sprintf(" AND p.price <= $%d", argCount))
		args = append(args, filter.MaxPrice.String())
		argCount++
	}

	if filter.Search != "" {
		sb.WriteString(fmt.Sprintf(" AND (p.name ILIKE $%d OR p.description ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+filter.Search+"%")
		argCount++
	}

	return sb.String(), args
}

func decimalPtrToString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

// parseDecimals converts the text-scanned numeric columns into decimals.
func parseDecimals(p *entity.Product, priceStr string, weightStr *string) error {
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return fmt.Errorf("parse product price %q: %w", priceStr, err)
	}
	p.Price = price

	if weightStr != nil {
		weight, err := decimal.NewFromString(*weightStr)
		if err != nil {
			return fmt.Errorf("parse product weight %q: %w", *weightStr, err)
		}
		p.Weight = &weight
	}

	return nil
}
