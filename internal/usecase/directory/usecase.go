package directory

import (
	"context"
	"errors"

	"expenseflow-backend/internal/domain/uow"
	domainUser "expenseflow-backend/internal/domain/user"
	"expenseflow-backend/pkg/id"
	"expenseflow-backend/pkg/password"

	"gorm.io/gorm"
)

// maxManagerDepth bounds the reporting-chain walk used by the cycle guard.
const maxManagerDepth = 64

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type CreateUserInput struct {
	Email             string
	FullName          string
	Password          string
	Role              domainUser.Role
	ManagerUserID     string // public id, optional
	IsManagerApprover bool
}

type UserDTO struct {
	UserID            string  `json:"user_id"`
	Email             string  `json:"email"`
	FullName          string  `json:"full_name"`
	Role              string  `json:"role"`
	ManagerUserID     *string `json:"manager_user_id,omitempty"`
	IsManagerApprover bool    `json:"is_manager_approver"`
}

// CreateUser adds a user to the admin's company. The manager reference must
// resolve inside the same company, and the resulting reporting chain must
// stay acyclic.
func (u *Usecase) CreateUser(ctx context.Context, adminID uint64, in CreateUserInput) (*UserDTO, error) {
	if !in.Role.Valid() {
		return nil, errors.New("invalid role")
	}
	if len(in.Password) < password.MinLength {
		return nil, errors.New("password too short")
	}

	var dto *UserDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		admin, err := r.Users.GetByID(ctx, adminID)
		if err != nil {
			return domainUser.ErrNotFound
		}
		adminCompanyID := admin.CompanyID

		if _, err := r.Users.GetByEmail(ctx, in.Email); err == nil {
			return domainUser.ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var managerID *uint64
		var managerPublicID *string
		if in.ManagerUserID != "" {
			mgr, err := r.Users.GetByUserID(ctx, in.ManagerUserID)
			if err != nil || mgr.CompanyID != adminCompanyID {
				return domainUser.ErrNotFound
			}
			if err := checkAcyclic(ctx, r, mgr); err != nil {
				return err
			}
			managerID = &mgr.ID
			managerPublicID = &mgr.UserID
		}

		hash, err := password.Hash(in.Password)
		if err != nil {
			return err
		}
		usr := &domainUser.User{
			UserID:            id.NewID32(),
			Email:             in.Email,
			FullName:          in.FullName,
			PasswordHash:      hash,
			Role:              in.Role,
			CompanyID:         adminCompanyID,
			ManagerID:         managerID,
			IsManagerApprover: in.IsManagerApprover,
		}
		if err := r.Users.Create(ctx, usr); err != nil {
			return err
		}
		dto = &UserDTO{
			UserID:            usr.UserID,
			Email:             usr.Email,
			FullName:          usr.FullName,
			Role:              string(usr.Role),
			ManagerUserID:     managerPublicID,
			IsManagerApprover: usr.IsManagerApprover,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// checkAcyclic walks up from the proposed manager. The chain must terminate;
// a repeated node or an over-deep chain means the roster already contains a
// loop and attaching more reports to it is refused.
func checkAcyclic(ctx context.Context, r uow.Repos, start *domainUser.User) error {
	seen := map[uint64]struct{}{start.ID: {}}
	cur := start
	for depth := 0; cur.ManagerID != nil; depth++ {
		if depth >= maxManagerDepth {
			return domainUser.ErrManagerCycle
		}
		next, err := r.Users.GetByID(ctx, *cur.ManagerID)
		if err != nil {
			return nil // dangling reference, nothing to loop through
		}
		if _, ok := seen[next.ID]; ok {
			return domainUser.ErrManagerCycle
		}
		seen[next.ID] = struct{}{}
		cur = next
	}
	return nil
}

func (u *Usecase) ListUsers(ctx context.Context, callerID uint64) ([]UserDTO, error) {
	var out []UserDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		caller, err := r.Users.GetByID(ctx, callerID)
		if err != nil {
			return domainUser.ErrNotFound
		}
		users, err := r.Users.ListByCompany(ctx, caller.CompanyID)
		if err != nil {
			return err
		}
		publicByID := make(map[uint64]string, len(users))
		for i := range users {
			publicByID[users[i].ID] = users[i].UserID
		}
		out = make([]UserDTO, 0, len(users))
		for i := range users {
			usr := &users[i]
			dto := UserDTO{
				UserID:            usr.UserID,
				Email:             usr.Email,
				FullName:          usr.FullName,
				Role:              string(usr.Role),
				IsManagerApprover: usr.IsManagerApprover,
			}
			if usr.ManagerID != nil {
				if pub, ok := publicByID[*usr.ManagerID]; ok {
					dto.ManagerUserID = &pub
				}
			}
			out = append(out, dto)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
