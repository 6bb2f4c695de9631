package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/campuslink/internal/app/models"
	"github.com/yigit/campuslink/internal/app/repositories/user"
	"github.com/yigit/campuslink/internal/db"
)

// AccountReader loads committed accounts
type AccountReader interface {
	GetAccount(ctx context.Context, userID string) (*models.Account, error)
}

// AccountRepository reads users joined with their role profile
type AccountRepository struct {
	db          db.Querier
	users       *user.Repository
	students    *user.StudentRepository
	departments *user.DepartmentRepository
	companies   *user.CompanyRepository
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(q db.Querier) *AccountRepository {
	return &AccountRepository{
		db:          q,
		users:       user.NewRepository(),
		students:    user.NewStudentRepository(),
		departments: user.NewDepartmentRepository(),
		companies:   user.NewCompanyRepository(),
	}
}

// GetAccount returns the user and the profile selected by its role.
// apperrors.ErrUserNotFound when the user does not exist.
func (r *AccountRepository) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	u, err := r.users.GetUserByID(ctx, r.db, userID)
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	switch u.Role {
	case models.RoleStudent:
		profile, err = r.students.GetStudentByUserID(ctx, r.db, u.ID)
	case models.RoleDepartment:
		profile, err = r.departments.GetDepartmentByID(ctx, r.db, u.ID)
	case models.RoleCompany:
		profile, err = r.companies.GetCompanyByID(ctx, r.db, u.ID)
	default:
		return nil, fmt.Errorf("user %s has unknown role %q", u.ID, u.Role)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s profile: %w", u.Role, err)
	}

	return &models.Account{User: u, Profile: profile}, nil
}
