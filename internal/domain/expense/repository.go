package expense

import "context"

type Repository interface {
	// Create persists the expense together with any attached steps.
	Create(ctx context.Context, e *Expense) error
	Save(ctx context.Context, e *Expense) error
	GetByExpenseID(ctx context.Context, expenseID string) (*Expense, error)
	// GetByExpenseIDForUpdate locks the expense row for the enclosing transaction.
	GetByExpenseIDForUpdate(ctx context.Context, expenseID string) (*Expense, error)
	ListByEmployee(ctx context.Context, employeeID uint64) ([]Expense, error)
	// ListWithPendingStepFor returns expenses having at least one pending step
	// assigned to the approver, regardless of earlier steps still pending.
	ListWithPendingStepFor(ctx context.Context, approverID uint64) ([]Expense, error)

	ListSteps(ctx context.Context, expenseNumericID uint64) ([]ApprovalStep, error)
	SaveStep(ctx context.Context, s *ApprovalStep) error
}
