package usecase

import (
	"marketplace-api/internal/data/repository"
	"marketplace-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Product ProductService
}

func NewService(repo *repository.Repository, tokens *utils.TokenManager, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, tokens, log),
		Product: NewProductService(repo, log),
	}
}
