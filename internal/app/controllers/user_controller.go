package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/campuslink/internal/app/models/dto"
	"github.com/yigit/campuslink/internal/app/services"
	"github.com/yigit/campuslink/internal/middleware"
)

// UserController serves registered accounts
type UserController struct {
	accountService services.AccountService
	logger         zerolog.Logger
}

// NewUserController creates a new user controller
func NewUserController(accountService services.AccountService, logger zerolog.Logger) *UserController {
	return &UserController{
		accountService: accountService,
		logger:         logger,
	}
}

// GetAccount retrieves a user with its role profile
// @Summary Get account by ID
// @Description Returns the base account and its single role profile. The password hash is never returned.
// @Tags users
// @Produce json
// @Param id path string true "User ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.AccountResponse} "Account retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID format"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (c *UserController) GetAccount(ctx *gin.Context) {
	id := ctx.Param("id")

	account, err := c.accountService.GetAccount(ctx.Request.Context(), id)
	if err != nil {
		c.logger.Debug().Err(err).Str("userID", id).Msg("Account lookup failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(account, ""))
}
