package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint64) (*User, error)
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListByCompany(ctx context.Context, companyID uint64) ([]User, error)
	// ListManagers returns company users with the manager role, ascending by id.
	ListManagers(ctx context.Context, companyID uint64) ([]User, error)
}
