package expensemock

import (
	"context"

	domain "expenseflow-backend/internal/domain/expense"
)

// Repo is a function-backed mock that satisfies expense.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, e *domain.Expense) error
	SaveFn                    func(ctx context.Context, e *domain.Expense) error
	GetByExpenseIDFn          func(ctx context.Context, expenseID string) (*domain.Expense, error)
	GetByExpenseIDForUpdateFn func(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListByEmployeeFn          func(ctx context.Context, employeeID uint64) ([]domain.Expense, error)
	ListWithPendingStepForFn  func(ctx context.Context, approverID uint64) ([]domain.Expense, error)
	ListStepsFn               func(ctx context.Context, expenseNumericID uint64) ([]domain.ApprovalStep, error)
	SaveStepFn                func(ctx context.Context, s *domain.ApprovalStep) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, e *domain.Expense) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, e *domain.Expense) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByExpenseID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	if m.GetByExpenseIDFn != nil {
		return m.GetByExpenseIDFn(ctx, expenseID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByExpenseIDForUpdate(ctx context.Context, expenseID string) (*domain.Expense, error) {
	if m.GetByExpenseIDForUpdateFn != nil {
		return m.GetByExpenseIDForUpdateFn(ctx, expenseID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByEmployee(ctx context.Context, employeeID uint64) ([]domain.Expense, error) {
	if m.ListByEmployeeFn != nil {
		return m.ListByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (m *Repo) ListWithPendingStepFor(ctx context.Context, approverID uint64) ([]domain.Expense, error) {
	if m.ListWithPendingStepForFn != nil {
		return m.ListWithPendingStepForFn(ctx, approverID)
	}
	return nil, nil
}

func (m *Repo) ListSteps(ctx context.Context, expenseNumericID uint64) ([]domain.ApprovalStep, error) {
	if m.ListStepsFn != nil {
		return m.ListStepsFn(ctx, expenseNumericID)
	}
	return nil, nil
}

func (m *Repo) SaveStep(ctx context.Context, s *domain.ApprovalStep) error {
	if m.SaveStepFn != nil {
		return m.SaveStepFn(ctx, s)
	}
	return nil
}
