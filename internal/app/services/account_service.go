package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/campuslink/internal/app/models/dto"
	"github.com/yigit/campuslink/internal/app/repositories"
	"github.com/yigit/campuslink/internal/pkg/apperrors"
)

// AccountService exposes registered accounts
type AccountService interface {
	GetAccount(ctx context.Context, userID string) (*dto.AccountResponse, error)
}

type accountService struct {
	accounts repositories.AccountReader
	logger   zerolog.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(accounts repositories.AccountReader, logger zerolog.Logger) AccountService {
	return &accountService{accounts: accounts, logger: logger}
}

// GetAccount returns the account with its profile
func (s *accountService) GetAccount(ctx context.Context, userID string) (*dto.AccountResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperrors.NewBadRequestError("user id must be a UUID")
	}

	account, err := s.accounts.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("userID", userID).Msg("Failed to load account")
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return dto.NewAccountResponse(account), nil
}
