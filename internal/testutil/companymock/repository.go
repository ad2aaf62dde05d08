package companymock

import (
	"context"

	domain "expenseflow-backend/internal/domain/company"
)

// Repo is a function-backed mock that satisfies company.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, c *domain.Company) error
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.Company, error)
	GetByCompanyIDFn func(ctx context.Context, companyID string) (*domain.Company, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, c *domain.Company) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Company, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByCompanyID(ctx context.Context, companyID string) (*domain.Company, error) {
	if m.GetByCompanyIDFn != nil {
		return m.GetByCompanyIDFn(ctx, companyID)
	}
	return nil, context.Canceled
}
