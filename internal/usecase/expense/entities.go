package expense

import (
	"time"

	domainExpense "expenseflow-backend/internal/domain/expense"
)

type ExpenseDTO struct {
	ExpenseID        string    `json:"expense_id"`
	Amount           float64   `json:"amount"`
	CurrencyCode     string    `json:"currency_code"`
	NormalizedAmount float64   `json:"normalized_amount"`
	Category         string    `json:"category"`
	Description      string    `json:"description,omitempty"`
	Date             string    `json:"date"`
	Status           string    `json:"status"`
	CurrentStepIndex int       `json:"current_step_index"`
	CreatedAt        time.Time `json:"created_at"`
}

type StepDTO struct {
	ApproverUserID string     `json:"approver_user_id"`
	Sequence       int        `json:"sequence"`
	Decision       string     `json:"decision"`
	Comment        string     `json:"comment,omitempty"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
}

func toExpenseDTO(e *domainExpense.Expense) *ExpenseDTO {
	return &ExpenseDTO{
		ExpenseID:        e.ExpenseID,
		Amount:           e.Amount,
		CurrencyCode:     e.CurrencyCode,
		NormalizedAmount: e.NormalizedAmount,
		Category:         e.Category,
		Description:      e.Description,
		Date:             e.Date.Format("2006-01-02"),
		Status:           string(e.Status),
		CurrentStepIndex: e.CurrentStepIndex,
		CreatedAt:        e.CreatedAt,
	}
}

// approvers maps internal approver ids to public user ids; unknown entries
// render as an empty string rather than leaking numeric keys.
func toStepDTO(s *domainExpense.ApprovalStep, approvers map[uint64]string) StepDTO {
	return StepDTO{
		ApproverUserID: approvers[s.ApproverUserID],
		Sequence:       s.Sequence,
		Decision:       string(s.Decision),
		Comment:        s.Comment,
		DecidedAt:      s.DecidedAt,
	}
}
