package wire

import (
	"net/http"
	"time"

	"marketplace-api/internal/adaptor"
	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/middleware"
	"marketplace-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	tokens := utils.NewTokenManager(
		config.JWT.Secret,
		time.Duration(config.JWT.ExpiryHours)*time.Hour,
	)

	service := usecase.NewService(repo, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, tokens, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, tokens, logger)
	wireProduct(r, handler.Product, repo, tokens, logger)

	// API index
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "Marketplace API is running", map[string]any{
			"name":    config.App.Name,
			"version": "1.0.0",
			"endpoints": map[string]any{
				"auth": map[string]string{
					"register":      "POST /api/auth/register",
					"login":         "POST /api/auth/login",
					"profile":       "GET /api/auth/profile (protected)",
					"updateProfile": "PUT /api/auth/profile (protected)",
				},
				"products": map[string]string{
					"getAll":     "GET /api/products",
					"getOne":     "GET /api/products/{id}",
					"create":     "POST /api/products (protected - seller/admin)",
					"myProducts": "GET /api/products/user/my-products (protected)",
					"update":     "PUT /api/products/{id} (protected - owner/admin)",
					"delete":     "DELETE /api/products/{id} (protected - owner/admin)",
				},
			},
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Unmatched routes get the JSON envelope, not chi's plain 404
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route "+r.URL.Path+" not found")
	})

	return r
}
