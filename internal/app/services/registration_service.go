package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/campuslink/internal/app/models"
	"github.com/yigit/campuslink/internal/app/models/dto"
	"github.com/yigit/campuslink/internal/app/repositories"
	"github.com/yigit/campuslink/internal/pkg/apperrors"
)

// FailureReason classifies a failed registration
type FailureReason string

const (
	ReasonDuplicate   FailureReason = "duplicate"
	ReasonInvalidRole FailureReason = "invalid_role"
	ReasonInternal    FailureReason = "internal"
)

// RegistrationError is the only error type Register returns
type RegistrationError struct {
	Reason FailureReason
	Err    error
}

func (e *RegistrationError) Error() string {
	switch e.Reason {
	case ReasonDuplicate:
		return apperrors.ErrDuplicateIdentity.Error()
	case ReasonInvalidRole:
		return apperrors.ErrInvalidRole.Error()
	}
	if e.Err != nil {
		return "registration failed: " + e.Err.Error()
	}
	return "registration failed"
}

func (e *RegistrationError) Unwrap() []error {
	var sentinel error
	switch e.Reason {
	case ReasonDuplicate:
		sentinel = apperrors.ErrDuplicateIdentity
	case ReasonInvalidRole:
		sentinel = apperrors.ErrInvalidRole
	default:
		sentinel = apperrors.ErrInternal
	}
	if e.Err == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Err}
}

// ReasonOf extracts the failure reason from an error returned by Register
func ReasonOf(err error) (FailureReason, bool) {
	var regErr *RegistrationError
	if errors.As(err, &regErr) {
		return regErr.Reason, true
	}
	return "", false
}

// PasswordHasher turns a plaintext password into its stored form
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// RegistrationService registers base accounts together with their role profile
type RegistrationService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
}

type registrationService struct {
	store           repositories.RegistrationStore
	hasher          PasswordHasher
	studentDefaults StudentDefaults
	newID           func() string
	logger          zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(
	store repositories.RegistrationStore,
	hasher PasswordHasher,
	studentDefaults StudentDefaults,
	logger zerolog.Logger,
) RegistrationService {
	return &registrationService{
		store:           store,
		hasher:          hasher,
		studentDefaults: studentDefaults,
		newID:           func() string { return uuid.NewString() },
		logger:          logger.With().Str("component", "registration").Logger(),
	}
}

func fail(reason FailureReason, err error) error {
	return &RegistrationError{Reason: reason, Err: err}
}

// classify maps store errors; a lost uniqueness race is a duplicate, anything else is internal
func classify(err error) error {
	if errors.Is(err, apperrors.ErrDuplicateIdentity) {
		return fail(ReasonDuplicate, err)
	}
	return fail(ReasonInternal, err)
}

// Register creates the user and its profile in one transaction.
// Every non-nil error is a *RegistrationError.
func (s *registrationService) Register(ctx context.Context, req *dto.RegisterRequest) (resp *dto.RegisterResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Msg("Registration panicked")
			resp, err = nil, fail(ReasonInternal, fmt.Errorf("panic: %v", r))
		}
	}()

	log := s.logger.With().Str("username", req.Username).Str("role", string(req.Role)).Logger()

	tx, err := s.store.BeginRegistration(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open registration transaction")
		return nil, fail(ReasonInternal, err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			log.Error().Err(rbErr).Msg("Failed to rollback registration")
		}
	}()

	existing, err := tx.FindUserByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		log.Error().Err(err).Msg("Identity lookup failed")
		return nil, fail(ReasonInternal, err)
	}
	if existing != nil {
		log.Warn().Str("email", req.Email).Msg("Registration rejected, username or email already exists")
		return nil, fail(ReasonDuplicate, apperrors.ErrDuplicateIdentity)
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("Password hashing failed")
		return nil, fail(ReasonInternal, fmt.Errorf("error hashing password: %w", err))
	}

	user := &models.User{
		ID:       s.newID(),
		RealName: req.RealName,
		Email:    req.Email,
		Username: req.Username,
		Password: hashedPassword,
		Nickname: req.Nickname,
		Role:     req.Role,
	}

	userID, err := tx.InsertUser(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("User insert failed")
		return nil, classify(err)
	}
	user.ID = userID

	builder, ok := profileBuilderFor(req.Role, s.studentDefaults)
	if !ok {
		log.Warn().Msg("Registration rejected, invalid role")
		return nil, fail(ReasonInvalidRole, fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, req.Role))
	}

	if err := tx.InsertProfile(ctx, builder.buildProfile(userID, req)); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Profile insert failed")
		return nil, classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Registration commit failed")
		return nil, classify(err)
	}

	log.Info().Str("userID", userID).Msg("User registered")
	return &dto.RegisterResponse{UserID: userID}, nil
}
