package wire

import (
	"marketplace-api/internal/adaptor"
	"marketplace-api/internal/data/repository"
	"marketplace-api/pkg/middleware"
	"marketplace-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// Protected routes
	r.Route("/api/auth/profile", func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, repo.User, log))

		r.Get("/", authHandler.GetProfile)
		r.Put("/", authHandler.UpdateProfile)
	})
}
