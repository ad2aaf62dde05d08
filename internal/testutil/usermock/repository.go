package usermock

import (
	"context"

	domain "expenseflow-backend/internal/domain/user"
)

// Repo is a function-backed mock that satisfies user.Repository.
// Only fill in the methods a test needs.
type Repo struct {
	CreateFn        func(ctx context.Context, u *domain.User) error
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.User, error)
	GetByUserIDFn   func(ctx context.Context, userID string) (*domain.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	ListByCompanyFn func(ctx context.Context, companyID uint64) ([]domain.User, error)
	ListManagersFn  func(ctx context.Context, companyID uint64) ([]domain.User, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByCompany(ctx context.Context, companyID uint64) ([]domain.User, error) {
	if m.ListByCompanyFn != nil {
		return m.ListByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (m *Repo) ListManagers(ctx context.Context, companyID uint64) ([]domain.User, error) {
	if m.ListManagersFn != nil {
		return m.ListManagersFn(ctx, companyID)
	}
	return nil, nil
}
