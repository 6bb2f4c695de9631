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

// CompanyRepository handles 'company_profile' operations
type CompanyRepository struct {
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{sb: statementBuilder}
}

// CreateCompany inserts a company profile
func (r *CompanyRepository) CreateCompany(ctx context.Context, q db.Querier, company *models.CompanyProfile) error {
	sql, args, err := r.sb.Insert("company_profile").
		Columns("company_id", "company_name", "industry", "contact_person").
		Values(company.CompanyID, company.CompanyName, company.Industry, company.ContactPerson).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create company query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("companyID", company.CompanyID).Msg("Error executing create company query")
		return fmt.Errorf("error creating company profile: %w", err)
	}

	return nil
}

// GetCompanyByID retrieves a company profile by its id
func (r *CompanyRepository) GetCompanyByID(ctx context.Context, q db.Querier, companyID string) (*models.CompanyProfile, error) {
	sql, args, err := r.sb.Select("company_id", "company_name", "industry", "contact_person").
		From("company_profile").
		Where(squirrel.Eq{"company_id": companyID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get company query: %w", err)
	}

	var p models.CompanyProfile
	if err := q.QueryRow(ctx, sql, args...).Scan(&p.CompanyID, &p.CompanyName, &p.Industry, &p.ContactPerson); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving company profile: %w", err)
	}

	return &p, nil
}
