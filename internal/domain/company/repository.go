package company

import "context"

type Repository interface {
	Create(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, id uint64) (*Company, error)
	GetByCompanyID(ctx context.Context, companyID string) (*Company, error)
}
