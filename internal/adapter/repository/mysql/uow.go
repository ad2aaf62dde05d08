package mysql

import (
	"context"

	"expenseflow-backend/internal/domain/expense"
	"expenseflow-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Companies: &CompanyRepository{db: tx},
		Users:     &UserRepository{db: tx},
		Expenses:  &ExpenseRepository{db: tx},
		Rules:     &RuleRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinExpenseTx(ctx context.Context, expenseID string, fn func(r uow.Repos, e *expense.Expense) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the expense row up-front so a second approver's action waits
		e, err := r.Expenses.GetByExpenseIDForUpdate(ctx, expenseID)
		if err != nil {
			return err
		}
		return fn(r, e)
	})
}
