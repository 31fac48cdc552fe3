package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	resp, err := h.service.List(r.Context(), query)
	if err != nil {
		respondServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved", resp)
}

// Get handles GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	resp, err := h.service.Get(r.Context(), productID)
	if err != nil {
		respondServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved", resp)
}

// Create handles POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created successfully", resp)
}

// Update handles PUT /api/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := requesterFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	productID := chi.URLParam(r, "id")
	resp, err := h.service.Update(r.Context(), productID, userID, role, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated successfully", resp)
}

// Delete handles DELETE /api/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := requesterFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	productID := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), productID, userID, role); err != nil {
		respondServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Product deleted successfully", nil)
}

// MyProducts handles GET /api/products/user/my-products
func (h *ProductHandler) MyProducts(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.ListBySeller(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.log, err, "list own products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved", resp)
}

func requesterFromContext(r *http.Request) (userID uuid.UUID, role entity.UserRole, ok bool) {
	userID, ok = utils.GetUserIDFromContext(r.Context())
	if !ok {
		return userID, "", false
	}
	roleStr, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		return userID, "", false
	}
	return userID, entity.UserRole(roleStr), true
}

// parseListQuery maps query parameters onto the listing filter with the
// documented defaults (sort=createdAt, order=DESC, page=1, limit=10).
func parseListQuery(r *http.Request) (*request.ProductListQuery, error) {
	q := r.URL.Query()

	query := &request.ProductListQuery{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Sort:     q.Get("sort"),
		Order:    q.Get("order"),
		Page:     utils.ParseInt(q.Get("page"), 1),
		Limit:    utils.ParseInt(q.Get("limit"), 10),
	}
	if query.Sort == "" {
		query.Sort = "createdAt"
	}
	if query.Order == "" {
		query.Order = "DESC"
	}

	if raw := q.Get("minPrice"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid minPrice: %s", raw)
		}
		query.MinPrice = &min
	}
	if raw := q.Get("maxPrice"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid maxPrice: %s", raw)
		}
		query.MaxPrice = &max
	}

	return query, nil
}
