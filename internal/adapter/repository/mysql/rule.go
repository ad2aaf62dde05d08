package mysql

import (
	"context"

	ruleDomain "expenseflow-backend/internal/domain/rule"

	"gorm.io/gorm"
)

type RuleRepository struct{ db *gorm.DB }

func NewRuleRepository(db *gorm.DB) *RuleRepository { return &RuleRepository{db: db} }

func (r *RuleRepository) Create(ctx context.Context, rl *ruleDomain.ApprovalRule) error {
	return r.db.WithContext(ctx).Create(rl).Error
}

func (r *RuleRepository) ListByCompany(ctx context.Context, companyID uint64) ([]ruleDomain.ApprovalRule, error) {
	var out []ruleDomain.ApprovalRule
	res := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("priority ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *RuleRepository) MaxPriority(ctx context.Context, companyID uint64) (int, error) {
	var max *int
	res := r.db.WithContext(ctx).
		Model(&ruleDomain.ApprovalRule{}).
		Where("company_id = ?", companyID).
		Select("MAX(priority)").
		Scan(&max)
	if res.Error != nil {
		return 0, res.Error
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}
