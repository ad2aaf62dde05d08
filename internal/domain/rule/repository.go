package rule

import "context"

type Repository interface {
	Create(ctx context.Context, r *ApprovalRule) error
	// ListByCompany returns rules in evaluation order (priority asc, id asc).
	ListByCompany(ctx context.Context, companyID uint64) ([]ApprovalRule, error)
	// MaxPriority returns the highest priority currently assigned, 0 when none.
	MaxPriority(ctx context.Context, companyID uint64) (int, error)
}
