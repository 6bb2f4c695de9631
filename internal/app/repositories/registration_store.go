package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/campuslink/internal/app/models"
	"github.com/yigit/campuslink/internal/app/repositories/user"
	"github.com/yigit/campuslink/internal/db"
	"github.com/yigit/campuslink/internal/pkg/apperrors"
	"github.com/yigit/campuslink/internal/pkg/dberrors"
)

// RegistrationTx is one registration unit of work.
// Rollback after a successful Commit is a no-op.
type RegistrationTx interface {
	// FindUserByEmailOrUsername returns nil, nil when no user holds either identity
	FindUserByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	// InsertUser returns the persisted user_id. A lost uniqueness race yields
	// an error wrapping apperrors.ErrDuplicateIdentity.
	InsertUser(ctx context.Context, u *models.User) (string, error)
	InsertProfile(ctx context.Context, profile models.Profile) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// RegistrationStore opens registration transactions
type RegistrationStore interface {
	BeginRegistration(ctx context.Context) (RegistrationTx, error)
}

// PgRegistrationStore implements RegistrationStore over pgx
type PgRegistrationStore struct {
	db          db.TxBeginner
	users       *user.Repository
	students    *user.StudentRepository
	departments *user.DepartmentRepository
	companies   *user.CompanyRepository
}

// NewPgRegistrationStore creates a new PgRegistrationStore
func NewPgRegistrationStore(pool db.TxBeginner) *PgRegistrationStore {
	return &PgRegistrationStore{
		db:          pool,
		users:       user.NewRepository(),
		students:    user.NewStudentRepository(),
		departments: user.NewDepartmentRepository(),
		companies:   user.NewCompanyRepository(),
	}
}

// BeginRegistration starts a transaction on the pool
func (s *PgRegistrationStore) BeginRegistration(ctx context.Context) (RegistrationTx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin registration transaction: %w", err)
	}
	return &pgRegistrationTx{tx: tx, store: s}, nil
}

type pgRegistrationTx struct {
	tx    pgx.Tx
	store *PgRegistrationStore
	done  bool
}

func (t *pgRegistrationTx) FindUserByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	return t.store.users.FindByEmailOrUsername(ctx, t.tx, email, username)
}

func (t *pgRegistrationTx) InsertUser(ctx context.Context, u *models.User) (string, error) {
	return t.store.users.CreateUser(ctx, t.tx, u)
}

func (t *pgRegistrationTx) InsertProfile(ctx context.Context, profile models.Profile) error {
	switch p := profile.(type) {
	case *models.StudentProfile:
		return t.store.students.CreateStudent(ctx, t.tx, p)
	case *models.DepartmentProfile:
		return t.store.departments.CreateDepartment(ctx, t.tx, p)
	case *models.CompanyProfile:
		return t.store.companies.CreateCompany(ctx, t.tx, p)
	default:
		return fmt.Errorf("unsupported profile type %T", profile)
	}
}

func (t *pgRegistrationTx) Commit(ctx context.Context) error {
	t.done = true
	if err := t.tx.Commit(ctx); err != nil {
		if dberrors.IsIdentityConflict(err) {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateIdentity, dberrors.ConstraintName(err))
		}
		return fmt.Errorf("failed to commit registration: %w", err)
	}
	return nil
}

func (t *pgRegistrationTx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback registration: %w", err)
	}
	return nil
}
