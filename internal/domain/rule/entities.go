package rule

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("approval rule not found")
	ErrInvalidRuleConfig = errors.New("invalid approval rule configuration")
)

type Type string

const (
	// TypePercentage approves once approved/total steps crosses the threshold.
	TypePercentage Type = "percentage"
	// TypeSpecific approves as soon as the named approver approves their step.
	TypeSpecific Type = "specific"
	// TypeHybrid approves when either condition holds.
	TypeHybrid Type = "hybrid"
)

func (t Type) Valid() bool {
	switch t {
	case TypePercentage, TypeSpecific, TypeHybrid:
		return true
	}
	return false
}

// ApprovalRule is a company policy that can finalize an expense early,
// without waiting for every approver in the chain.
type ApprovalRule struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	RuleID    string `gorm:"size:32;uniqueIndex:ux_rules_rule_id_active" json:"rule_id"`
	CompanyID uint64 `gorm:"not null;index:idx_rules_company" json:"-"`
	Type      Type   `gorm:"type:enum('percentage','specific','hybrid');not null" json:"type"`
	// 1..100; set for percentage and hybrid rules.
	ThresholdPercent *int `gorm:"" json:"threshold_percent,omitempty"`
	// Set for specific and hybrid rules.
	SpecificUserID *uint64 `gorm:"index" json:"-"`
	// Evaluation order: ascending priority, ties broken by id.
	Priority  int            `gorm:"not null;default:0;index:idx_rules_priority" json:"priority"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ApprovalRule) TableName() string { return "approval_rules" }
