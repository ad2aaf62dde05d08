package company

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("company not found")

type Company struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	CompanyID   string `gorm:"size:32;uniqueIndex:ux_companies_company_id_active" json:"company_id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	CountryCode string `gorm:"size:2;not null" json:"country_code"`
	// Base currency, resolved from the country at signup and fixed afterward.
	CurrencyCode string         `gorm:"size:3;not null" json:"currency_code"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Company) TableName() string { return "companies" }
