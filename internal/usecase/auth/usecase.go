package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"expenseflow-backend/internal/domain/company"
	"expenseflow-backend/internal/domain/uow"
	domainUser "expenseflow-backend/internal/domain/user"
	"expenseflow-backend/pkg/id"
	"expenseflow-backend/pkg/password"
	"expenseflow-backend/pkg/token"

	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCountryUnknown     = errors.New("could not determine currency for country")
	ErrWeakPassword       = errors.New("password too short")
)

// CountryResolver maps an ISO-3166 alpha-2 country code to its currency.
type CountryResolver interface {
	CurrencyForCountry(ctx context.Context, countryCode string) (string, error)
}

type Usecase struct {
	uow       uow.UnitOfWork
	countries CountryResolver
	jwtSecret string
	jwtExpiry time.Duration
}

func NewUsecase(tx uow.UnitOfWork, countries CountryResolver, jwtSecret string, jwtExpiry time.Duration) *Usecase {
	return &Usecase{uow: tx, countries: countries, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

type SignupInput struct {
	Email       string
	FullName    string
	Password    string
	CompanyName string
	CountryCode string
}

type TokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserDTO struct {
	UserID            string  `json:"user_id"`
	Email             string  `json:"email"`
	FullName          string  `json:"full_name"`
	Role              string  `json:"role"`
	ManagerUserID     *string `json:"manager_user_id,omitempty"`
	IsManagerApprover bool    `json:"is_manager_approver"`
}

// Signup bootstraps a tenant: resolves the company currency from the country,
// then creates the company and its first admin in one transaction. The admin
// is flagged is_manager_approver so their reports escalate to them.
func (u *Usecase) Signup(ctx context.Context, in SignupInput) (*TokenDTO, error) {
	if len(in.Password) < password.MinLength {
		return nil, ErrWeakPassword
	}
	currency, err := u.countries.CurrencyForCountry(ctx, in.CountryCode)
	if err != nil {
		return nil, ErrCountryUnknown
	}

	var admin *domainUser.User
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Users.GetByEmail(ctx, in.Email); err == nil {
			return domainUser.ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		c := &company.Company{
			CompanyID:    id.NewID32(),
			Name:         in.CompanyName,
			CountryCode:  strings.ToUpper(in.CountryCode),
			CurrencyCode: currency,
		}
		if err := r.Companies.Create(ctx, c); err != nil {
			return err
		}

		hash, err := password.Hash(in.Password)
		if err != nil {
			return err
		}
		admin = &domainUser.User{
			UserID:            id.NewID32(),
			Email:             in.Email,
			FullName:          in.FullName,
			PasswordHash:      hash,
			Role:              domainUser.RoleAdmin,
			CompanyID:         c.ID,
			IsManagerApprover: true,
		}
		return r.Users.Create(ctx, admin)
	})
	if err != nil {
		return nil, err
	}
	return u.issue(admin)
}

func (u *Usecase) Login(ctx context.Context, email, plain string) (*TokenDTO, error) {
	var usr *domainUser.User
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		found, err := r.Users.GetByEmail(ctx, email)
		if err != nil {
			return ErrInvalidCredentials
		}
		usr = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !password.Verify(plain, usr.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u.issue(usr)
}

func (u *Usecase) Me(ctx context.Context, userID uint64) (*UserDTO, error) {
	var dto *UserDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByID(ctx, userID)
		if err != nil {
			return domainUser.ErrNotFound
		}
		dto = &UserDTO{
			UserID:            usr.UserID,
			Email:             usr.Email,
			FullName:          usr.FullName,
			Role:              string(usr.Role),
			IsManagerApprover: usr.IsManagerApprover,
		}
		if usr.ManagerID != nil {
			if mgr, err := r.Users.GetByID(ctx, *usr.ManagerID); err == nil {
				dto.ManagerUserID = &mgr.UserID
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) issue(usr *domainUser.User) (*TokenDTO, error) {
	tok, err := token.Generate(usr.ID, usr.UserID, string(usr.Role), u.jwtSecret, u.jwtExpiry)
	if err != nil {
		return nil, err
	}
	return &TokenDTO{AccessToken: tok, TokenType: "bearer"}, nil
}
