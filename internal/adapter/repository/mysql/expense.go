package mysql

import (
	"context"

	expenseDomain "expenseflow-backend/internal/domain/expense"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExpenseRepository struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository { return &ExpenseRepository{db: db} }

// Create persists the expense and, through the association, its steps.
func (r *ExpenseRepository) Create(ctx context.Context, e *expenseDomain.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// Save updates the expense row only; steps are written through SaveStep.
func (r *ExpenseRepository) Save(ctx context.Context, e *expenseDomain.Expense) error {
	return r.db.WithContext(ctx).Omit("Steps").Save(e).Error
}

func (r *ExpenseRepository) GetByExpenseID(ctx context.Context, expenseID string) (*expenseDomain.Expense, error) {
	var out expenseDomain.Expense
	res := r.db.WithContext(ctx).Where("expense_id = ?", expenseID).First(&out)
	return &out, res.Error
}

// GetByExpenseIDForUpdate acquires a row lock so concurrent decisions on the
// same expense serialize; only meaningful inside a transaction. SQLite (used
// by the tests) has no FOR UPDATE; its writes serialize on the database lock.
func (r *ExpenseRepository) GetByExpenseIDForUpdate(ctx context.Context, expenseID string) (*expenseDomain.Expense, error) {
	tx := r.db.WithContext(ctx)
	if tx.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out expenseDomain.Expense
	res := tx.Where("expense_id = ?", expenseID).First(&out)
	return &out, res.Error
}

func (r *ExpenseRepository) ListByEmployee(ctx context.Context, employeeID uint64) ([]expenseDomain.Expense, error) {
	var out []expenseDomain.Expense
	res := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ExpenseRepository) ListWithPendingStepFor(ctx context.Context, approverID uint64) ([]expenseDomain.Expense, error) {
	var out []expenseDomain.Expense
	res := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.
			Model(&expenseDomain.ApprovalStep{}).
			Select("expense_id").
			Where("approver_user_id = ? AND decision = ?", approverID, expenseDomain.DecisionPending)).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ExpenseRepository) ListSteps(ctx context.Context, expenseNumericID uint64) ([]expenseDomain.ApprovalStep, error) {
	var out []expenseDomain.ApprovalStep
	res := r.db.WithContext(ctx).
		Where("expense_id = ?", expenseNumericID).
		Order("sequence ASC").
		Find(&out)
	return out, res.Error
}

func (r *ExpenseRepository) SaveStep(ctx context.Context, s *expenseDomain.ApprovalStep) error {
	return r.db.WithContext(ctx).Save(s).Error
}
