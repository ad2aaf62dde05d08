package mysql

import (
	"context"

	companyDomain "expenseflow-backend/internal/domain/company"

	"gorm.io/gorm"
)

type CompanyRepository struct{ db *gorm.DB }

func NewCompanyRepository(db *gorm.DB) *CompanyRepository { return &CompanyRepository{db: db} }

func (r *CompanyRepository) Create(ctx context.Context, c *companyDomain.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uint64) (*companyDomain.Company, error) {
	var out companyDomain.Company
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *CompanyRepository) GetByCompanyID(ctx context.Context, companyID string) (*companyDomain.Company, error) {
	var out companyDomain.Company
	res := r.db.WithContext(ctx).Where("company_id = ?", companyID).First(&out)
	return &out, res.Error
}
