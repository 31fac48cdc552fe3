package usecase

import (
	"context"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"

	"github.com/google/uuid"
)

// Hand-rolled repository mocks: each method delegates to an optional
// function field so tests only stub what they exercise.

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *entity.User) error
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	updateFn      func(ctx context.Context, user *entity.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return nil
}

type mockProductRepo struct {
	createFn       func(ctx context.Context, product *entity.Product) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.ProductWithSeller, error)
	findAllFn      func(ctx context.Context, filter repository.ProductFilter) ([]*entity.ProductWithSeller, error)
	countFn        func(ctx context.Context, filter repository.ProductFilter) (int64, error)
	findBySellerFn func(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)
	updateFn       func(ctx context.Context, product *entity.Product) error
	deleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if m.createFn != nil {
		return m.createFn(ctx, product)
	}
	return nil
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductWithSeller, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockProductRepo) FindAll(ctx context.Context, filter repository.ProductFilter) ([]*entity.ProductWithSeller, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockProductRepo) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, filter)
	}
	return 0, nil
}

func (m *mockProductRepo) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	if m.findBySellerFn != nil {
		return m.findBySellerFn(ctx, sellerID)
	}
	return nil, nil
}

func (m *mockProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, product)
	}
	return nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func newTestRepo(users *mockUserRepo, products *mockProductRepo) *repository.Repository {
	if users == nil {
		users = &mockUserRepo{}
	}
	if products == nil {
		products = &mockProductRepo{}
	}
	return &repository.Repository{
		User:    users,
		Product: products,
	}
}
