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

// StudentRepository handles 'student_profile' operations
type StudentRepository struct {
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{sb: statementBuilder}
}

// CreateStudent inserts a student profile
func (r *StudentRepository) CreateStudent(ctx context.Context, q db.Querier, student *models.StudentProfile) error {
	sql, args, err := r.sb.Insert("student_profile").
		Columns("user_id", "student_id", "department_id", "entry_year", "grade", "is_poor").
		Values(student.UserID, student.StudentID, student.DepartmentID, student.EntryYear, student.Grade, student.IsPoor).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("userID", student.UserID).Str("studentID", student.StudentID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student profile: %w", err)
	}

	return nil
}

// GetStudentByUserID retrieves a student profile by user ID
func (r *StudentRepository) GetStudentByUserID(ctx context.Context, q db.Querier, userID string) (*models.StudentProfile, error) {
	sql, args, err := r.sb.Select("user_id", "student_id", "department_id", "entry_year", "grade", "is_poor").
		From("student_profile").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var p models.StudentProfile
	err = q.QueryRow(ctx, sql, args...).Scan(&p.UserID, &p.StudentID, &p.DepartmentID, &p.EntryYear, &p.Grade, &p.IsPoor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}

	return &p, nil
}
