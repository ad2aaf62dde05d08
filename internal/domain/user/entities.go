package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrManagerCycle = errors.New("manager chain would form a cycle")
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	UserID       string `gorm:"size:32;uniqueIndex:ux_users_user_id_active" json:"user_id"`
	Email        string `gorm:"size:255;uniqueIndex:ux_users_email_active" json:"email"`
	FullName     string `gorm:"size:255;not null" json:"full_name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         Role   `gorm:"type:enum('admin','manager','employee');default:'employee'" json:"role"`
	CompanyID    uint64 `gorm:"not null;index:idx_users_company" json:"-"`
	// Line manager inside the same company; nil for top-level users.
	ManagerID *uint64 `gorm:"index" json:"manager_id,omitempty"`
	// When true, this user's reports get the manager as their first approval step.
	IsManagerApprover bool           `gorm:"default:false" json:"is_manager_approver"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
