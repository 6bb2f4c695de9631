package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// CodeUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const CodeUniqueViolation = "23505"

// Constraint names created by migrations/001_init.sql.
const (
	UsersEmailKey    = "users_email_key"
	UsersUsernameKey = "users_username_key"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == CodeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsIdentityConflict reports whether err is a unique violation on users.email or users.username.
func IsIdentityConflict(err error) bool {
	return IsDuplicateConstraintError(err, UsersEmailKey) || IsDuplicateConstraintError(err, UsersUsernameKey)
}

// ConstraintName returns the violated constraint, or "" when err is not a PgError.
func ConstraintName(err error) string {
	if pgErr, ok := pgError(err); ok {
		return pgErr.ConstraintName
	}
	return ""
}
