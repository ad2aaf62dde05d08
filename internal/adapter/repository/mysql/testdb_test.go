package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type companySQLite struct {
	ID           uint64 `gorm:"primaryKey;column:id"`
	CompanyID    string `gorm:"size:32;column:company_id"`
	Name         string `gorm:"column:name"`
	CountryCode  string `gorm:"column:country_code"`
	CurrencyCode string `gorm:"column:currency_code"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt
}

func (companySQLite) TableName() string { return "companies" }

type userSQLite struct {
	ID                uint64 `gorm:"primaryKey;column:id"`
	UserID            string `gorm:"size:32;column:user_id"`
	Email             string `gorm:"column:email"`
	FullName          string `gorm:"column:full_name"`
	PasswordHash      string `gorm:"column:password_hash"`
	Role              string `gorm:"type:text;column:role"` // ← no enum
	CompanyID         uint64 `gorm:"column:company_id"`
	ManagerID         *uint64 `gorm:"column:manager_id"`
	IsManagerApprover bool    `gorm:"column:is_manager_approver"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt
}

func (userSQLite) TableName() string { return "users" }

type expenseSQLite struct {
	ID               uint64  `gorm:"primaryKey;column:id"`
	ExpenseID        string  `gorm:"size:32;column:expense_id"`
	EmployeeID       uint64  `gorm:"column:employee_id"`
	CompanyID        uint64  `gorm:"column:company_id"`
	Amount           float64 `gorm:"column:amount"`
	CurrencyCode     string  `gorm:"column:currency_code"`
	NormalizedAmount float64 `gorm:"column:normalized_amount"`
	Category         string  `gorm:"column:category"`
	Description      string  `gorm:"column:description"`
	Date             time.Time `gorm:"column:date"`
	Status           string    `gorm:"type:text;column:status"` // ← no enum
	CurrentStepIndex int       `gorm:"column:current_step_index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt
}

func (expenseSQLite) TableName() string { return "expenses" }

type stepSQLite struct {
	ID             uint64 `gorm:"primaryKey;column:id"`
	ExpenseID      uint64 `gorm:"column:expense_id"`
	ApproverUserID uint64 `gorm:"column:approver_user_id"`
	Sequence       int    `gorm:"column:sequence"`
	Decision       string `gorm:"type:text;column:decision"` // ← no enum
	Comment        string `gorm:"column:comment"`
	DecidedAt      *time.Time `gorm:"column:decided_at"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt
}

func (stepSQLite) TableName() string { return "expense_approval_steps" }

type ruleSQLite struct {
	ID               uint64  `gorm:"primaryKey;column:id"`
	RuleID           string  `gorm:"size:32;column:rule_id"`
	CompanyID        uint64  `gorm:"column:company_id"`
	Type             string  `gorm:"type:text;column:type"` // ← no enum
	ThresholdPercent *int    `gorm:"column:threshold_percent"`
	SpecificUserID   *uint64 `gorm:"column:specific_user_id"`
	Priority         int     `gorm:"column:priority"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt
}

func (ruleSQLite) TableName() string { return "approval_rules" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// shadow schemas, not the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&companySQLite{}, &userSQLite{}, &expenseSQLite{}, &stepSQLite{}, &ruleSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
