package expense

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("expense not found")
	ErrNoPendingStep = errors.New("no pending approval step for this user")
	ErrForbidden     = errors.New("expense belongs to another company")
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal reports whether no further step decisions may be recorded.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

type Expense struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	ExpenseID  string `gorm:"size:32;uniqueIndex:ux_expenses_expense_id_active" json:"expense_id"`
	EmployeeID uint64 `gorm:"not null;index:idx_expenses_employee" json:"-"`
	CompanyID  uint64 `gorm:"not null;index:idx_expenses_company" json:"-"`
	Amount     float64 `gorm:"type:decimal(18,2);not null" json:"amount"`
	// Currency the expense was submitted in.
	CurrencyCode string `gorm:"size:3;not null" json:"currency_code"`
	// Amount in the company currency, converted once at submission.
	NormalizedAmount float64   `gorm:"type:decimal(18,2);default:0" json:"normalized_amount"`
	Category         string    `gorm:"size:100;not null" json:"category"`
	Description      string    `gorm:"type:text" json:"description"`
	Date             time.Time `gorm:"type:date;not null" json:"date"`
	Status           Status    `gorm:"type:enum('draft','pending','approved','rejected');default:'pending'" json:"status"`
	// 0-based index of the first pending step, or step count when none remain.
	// Stored for clients; always recomputed from the ledger, never read back.
	CurrentStepIndex int            `gorm:"default:0" json:"current_step_index"`
	Steps            []ApprovalStep `gorm:"foreignKey:ExpenseID;references:ID" json:"steps,omitempty"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Expense) TableName() string { return "expenses" }

type ApprovalStep struct {
	ID             uint64 `gorm:"primaryKey;column:id" json:"-"`
	ExpenseID      uint64 `gorm:"not null;uniqueIndex:ux_steps_expense_sequence,priority:1" json:"-"`
	ApproverUserID uint64 `gorm:"not null;index:idx_steps_approver" json:"-"`
	// 1-based, contiguous within an expense in creation order.
	Sequence int      `gorm:"not null;uniqueIndex:ux_steps_expense_sequence,priority:2" json:"sequence"`
	Decision Decision `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"decision"`
	Comment  string   `gorm:"type:text" json:"comment,omitempty"`
	// Set exactly once, when the decision leaves pending.
	DecidedAt *time.Time     `json:"decided_at,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ApprovalStep) TableName() string { return "expense_approval_steps" }
