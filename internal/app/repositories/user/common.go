package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/campuslink/internal/app/models"
	"github.com/yigit/campuslink/internal/db"
	"github.com/yigit/campuslink/internal/pkg/apperrors"
	"github.com/yigit/campuslink/internal/pkg/dberrors"
	"github.com/yigit/campuslink/internal/pkg/logger"
)

var userColumns = []string{"user_id", "real_name", "email", "username", "password", "nickname", "role", "created_at"}

// statementBuilder is shared by every table repository in this package
var statementBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repository handles operations on the 'users' table.
// Every method takes the Querier so callers choose between the pool and a transaction.
type Repository struct {
	sb squirrel.StatementBuilderType
}

// NewRepository creates a new Repository
func NewRepository() *Repository {
	return &Repository{sb: statementBuilder}
}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.RealName, &u.Email, &u.Username, &u.Password, &u.Nickname, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// FindByEmailOrUsername returns the first user matching either identity, or nil when none does.
// Both columns are checked in one statement.
func (r *Repository) FindByEmailOrUsername(ctx context.Context, q db.Querier, email, username string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Or{
			squirrel.Eq{"email": email},
			squirrel.Eq{"username": username},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build identity lookup query: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error looking up user identity: %w", err)
	}

	return u, nil
}

// CreateUser inserts the user and returns the stored user_id
func (r *Repository) CreateUser(ctx context.Context, q db.Querier, u *models.User) (string, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("user_id", "real_name", "email", "username", "password", "nickname", "role").
		Values(u.ID, u.RealName, u.Email, u.Username, u.Password, u.Nickname, string(u.Role)).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build create user query: %w", err)
	}

	var id string
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsIdentityConflict(err) {
			logger.Warn().Str("constraint", dberrors.ConstraintName(err)).Msg("Concurrent registration lost the identity race")
			return "", fmt.Errorf("%w: %s", apperrors.ErrDuplicateIdentity, dberrors.ConstraintName(err))
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetUserByID retrieves a user by ID
func (r *Repository) GetUserByID(ctx context.Context, q db.Querier, id string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"user_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return u, nil
}

