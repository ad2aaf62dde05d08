package directory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"expenseflow-backend/internal/domain/uow"
	domainUser "expenseflow-backend/internal/domain/user"
	"expenseflow-backend/internal/testutil/uowmock"
	"expenseflow-backend/internal/testutil/usermock"

	"gorm.io/gorm"
)

func pub(c byte) string { return strings.Repeat(string(c), 32) }

// rosterRepo serves GetByID/GetByUserID/GetByEmail from an in-memory roster.
func rosterRepo(users ...*domainUser.User) *usermock.Repo {
	byID := map[uint64]*domainUser.User{}
	byPub := map[string]*domainUser.User{}
	byEmail := map[string]*domainUser.User{}
	for _, u := range users {
		byID[u.ID] = u
		byPub[u.UserID] = u
		byEmail[u.Email] = u
	}
	return &usermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domainUser.User, error) {
			if u, ok := byID[id]; ok {
				return u, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetByUserIDFn: func(ctx context.Context, userID string) (*domainUser.User, error) {
			if u, ok := byPub[userID]; ok {
				return u, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetByEmailFn: func(ctx context.Context, email string) (*domainUser.User, error) {
			if u, ok := byEmail[email]; ok {
				return u, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, u *domainUser.User) error {
			u.ID = uint64(len(byID) + 1)
			return nil
		},
	}
}

func TestCreateUserResolvesManager(t *testing.T) {
	admin := &domainUser.User{ID: 1, UserID: pub('a'), Email: "admin@acme.test", Role: domainUser.RoleAdmin, CompanyID: 1}
	mgr := &domainUser.User{ID: 2, UserID: pub('m'), Email: "mgr@acme.test", Role: domainUser.RoleManager, CompanyID: 1}

	u := NewUsecase(uowmock.Passthrough(uow.Repos{Users: rosterRepo(admin, mgr)}))

	dto, err := u.CreateUser(context.Background(), 1, CreateUserInput{
		Email:         "new@acme.test",
		FullName:      "New Person",
		Password:      "supersecret",
		Role:          domainUser.RoleEmployee,
		ManagerUserID: pub('m'),
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if dto.ManagerUserID == nil || *dto.ManagerUserID != pub('m') {
		t.Fatalf("manager_user_id = %v, want %s", dto.ManagerUserID, pub('m'))
	}
	if dto.Role != "employee" {
		t.Fatalf("role = %q, want employee", dto.Role)
	}
}

func TestCreateUserManagerOutsideCompany(t *testing.T) {
	admin := &domainUser.User{ID: 1, UserID: pub('a'), Email: "admin@acme.test", Role: domainUser.RoleAdmin, CompanyID: 1}
	outsider := &domainUser.User{ID: 9, UserID: pub('x'), Email: "x@other.test", Role: domainUser.RoleManager, CompanyID: 2}

	u := NewUsecase(uowmock.Passthrough(uow.Repos{Users: rosterRepo(admin, outsider)}))

	_, err := u.CreateUser(context.Background(), 1, CreateUserInput{
		Email: "new@acme.test", FullName: "N", Password: "supersecret",
		Role: domainUser.RoleEmployee, ManagerUserID: pub('x'),
	})
	if !errors.Is(err, domainUser.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateUserEmailTaken(t *testing.T) {
	admin := &domainUser.User{ID: 1, UserID: pub('a'), Email: "admin@acme.test", Role: domainUser.RoleAdmin, CompanyID: 1}

	u := NewUsecase(uowmock.Passthrough(uow.Repos{Users: rosterRepo(admin)}))

	_, err := u.CreateUser(context.Background(), 1, CreateUserInput{
		Email: "admin@acme.test", FullName: "Dup", Password: "supersecret",
		Role: domainUser.RoleEmployee,
	})
	if !errors.Is(err, domainUser.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestCreateUserDetectsManagerCycle(t *testing.T) {
	// b reports to c, c reports to b: attaching anyone under either must fail
	admin := &domainUser.User{ID: 1, UserID: pub('a'), Email: "admin@acme.test", Role: domainUser.RoleAdmin, CompanyID: 1}
	bID, cID := uint64(2), uint64(3)
	b := &domainUser.User{ID: bID, UserID: pub('b'), Email: "b@acme.test", Role: domainUser.RoleManager, CompanyID: 1, ManagerID: &cID}
	cMgr := &domainUser.User{ID: cID, UserID: pub('c'), Email: "c@acme.test", Role: domainUser.RoleManager, CompanyID: 1, ManagerID: &bID}

	u := NewUsecase(uowmock.Passthrough(uow.Repos{Users: rosterRepo(admin, b, cMgr)}))

	_, err := u.CreateUser(context.Background(), 1, CreateUserInput{
		Email: "new@acme.test", FullName: "N", Password: "supersecret",
		Role: domainUser.RoleEmployee, ManagerUserID: pub('b'),
	})
	if !errors.Is(err, domainUser.ErrManagerCycle) {
		t.Fatalf("err = %v, want ErrManagerCycle", err)
	}
}

func TestListUsersResolvesManagerPublicIDs(t *testing.T) {
	mgrID := uint64(2)
	caller := &domainUser.User{ID: 1, UserID: pub('a'), Email: "admin@acme.test", CompanyID: 1}
	repo := rosterRepo(caller)
	repo.ListByCompanyFn = func(ctx context.Context, companyID uint64) ([]domainUser.User, error) {
		return []domainUser.User{
			{ID: 2, UserID: pub('m'), Email: "mgr@acme.test", Role: domainUser.RoleManager, CompanyID: 1},
			{ID: 3, UserID: pub('e'), Email: "emp@acme.test", Role: domainUser.RoleEmployee, CompanyID: 1, ManagerID: &mgrID},
		}, nil
	}
	u := NewUsecase(uowmock.Passthrough(uow.Repos{Users: repo}))

	dtos, err := u.ListUsers(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(dtos) != 2 {
		t.Fatalf("len = %d, want 2", len(dtos))
	}
	if dtos[0].ManagerUserID != nil {
		t.Fatalf("manager of top user = %v, want nil", dtos[0].ManagerUserID)
	}
	if dtos[1].ManagerUserID == nil || *dtos[1].ManagerUserID != pub('m') {
		t.Fatalf("manager of employee = %v, want %s", dtos[1].ManagerUserID, pub('m'))
	}
}
