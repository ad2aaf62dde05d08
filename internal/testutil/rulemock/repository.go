package rulemock

import (
	"context"

	domain "expenseflow-backend/internal/domain/rule"
)

// Repo is a function-backed mock that satisfies rule.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, r *domain.ApprovalRule) error
	ListByCompanyFn func(ctx context.Context, companyID uint64) ([]domain.ApprovalRule, error)
	MaxPriorityFn   func(ctx context.Context, companyID uint64) (int, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, r *domain.ApprovalRule) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) ListByCompany(ctx context.Context, companyID uint64) ([]domain.ApprovalRule, error) {
	if m.ListByCompanyFn != nil {
		return m.ListByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (m *Repo) MaxPriority(ctx context.Context, companyID uint64) (int, error) {
	if m.MaxPriorityFn != nil {
		return m.MaxPriorityFn(ctx, companyID)
	}
	return 0, nil
}
