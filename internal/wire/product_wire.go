package wire

import (
	"marketplace-api/internal/adaptor"
	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/pkg/middleware"
	"marketplace-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	authenticate := middleware.Authenticate(tokens, repo.User, log)

	// Public routes
	r.Get("/api/products", productHandler.List)
	r.Get("/api/products/{id}", productHandler.Get)

	// Creating listings requires a seller or admin role
	r.With(authenticate, middleware.Authorize(log, entity.RoleSeller, entity.RoleAdmin)).
		Post("/api/products", productHandler.Create)

	// Any authenticated user can list their own products
	r.With(authenticate).Get("/api/products/user/my-products", productHandler.MyProducts)

	// Ownership (owner-or-admin) is enforced in the service layer
	r.With(authenticate).Put("/api/products/{id}", productHandler.Update)
	r.With(authenticate).Delete("/api/products/{id}", productHandler.Delete)
}
