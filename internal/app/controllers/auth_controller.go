// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/campuslink/internal/app/models/dto"
	"github.com/yigit/campuslink/internal/app/services"
	"github.com/yigit/campuslink/internal/middleware"
)

// AuthController handles account registration
type AuthController struct {
	registrationService services.RegistrationService
	logger              zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(registrationService services.RegistrationService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		registrationService: registrationService,
		logger:              logger,
	}
}

// Register handles user registration
// @Summary Register a new account
// @Description Creates a user together with its student, department or company profile in one transaction.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse} "Account registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or invalid role"
// @Failure 409 {object} dto.ErrorResponse "Username or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	registerResponse, err := c.registrationService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(registerResponse, "Account registered"))
}
