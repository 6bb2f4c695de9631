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
	"github.com/yigit/campuslink/internal/pkg/logger"
)

// DepartmentRepository handles 'department_profile' operations
type DepartmentRepository struct {
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository() *DepartmentRepository {
	return &DepartmentRepository{sb: statementBuilder}
}

// CreateDepartment inserts a department profile
func (r *DepartmentRepository) CreateDepartment(ctx context.Context, q db.Querier, dept *models.DepartmentProfile) error {
	sql, args, err := r.sb.Insert("department_profile").
		Columns("department_id", "department_name", "contact_person").
		Values(dept.DepartmentID, dept.DepartmentName, dept.ContactPerson).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create department query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("departmentID", dept.DepartmentID).Msg("Error executing create department query")
		return fmt.Errorf("error creating department profile: %w", err)
	}

	return nil
}

// GetDepartmentByID retrieves a department profile; the id is the owning user's id
func (r *DepartmentRepository) GetDepartmentByID(ctx context.Context, q db.Querier, departmentID string) (*models.DepartmentProfile, error) {
	sql, args, err := r.sb.Select("department_id", "department_name", "contact_person").
		From("department_profile").
		Where(squirrel.Eq{"department_id": departmentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	var p models.DepartmentProfile
	if err := q.QueryRow(ctx, sql, args...).Scan(&p.DepartmentID, &p.DepartmentName, &p.ContactPerson); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving department profile: %w", err)
	}

	return &p, nil
}
