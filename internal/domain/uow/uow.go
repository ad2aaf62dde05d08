package uow

import (
	"context"

	"expenseflow-backend/internal/domain/company"
	"expenseflow-backend/internal/domain/expense"
	"expenseflow-backend/internal/domain/rule"
	"expenseflow-backend/internal/domain/user"
)

type Repos struct {
	Companies company.Repository
	Users     user.Repository
	Expenses  expense.Repository
	Rules     rule.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the expense row first, then pass it in; decisions on
	// one expense serialize through this lock.
	WithinExpenseTx(ctx context.Context, expenseID string, fn func(r Repos, e *expense.Expense) error) error
}
