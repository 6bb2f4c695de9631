package middleware

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campuslink/internal/app/models"
	"github.com/yigit/campuslink/internal/app/models/dto"
)

func validRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		RealName: "Alice Lin",
		Email:    "alice@example.edu",
		Username: "alice01",
		Password: "secret123",
		Nickname: "Ally",
		Role:     models.RoleStudent,
	}
}

func TestRegisterValidators(t *testing.T) {
	RegisterValidators()

	req := validRequest()
	req.Email = "not-an-email"
	err := binding.Validator.ValidateStruct(&req)
	require.Error(t, err)

	detail := dto.HandleValidationError(err)
	assert.Equal(t, dto.ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "email", detail.Field)
}

func TestRegisterRequestBinding(t *testing.T) {
	RegisterValidators()

	t.Run("valid", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, binding.Validator.ValidateStruct(&req))
	})

	t.Run("missing fields", func(t *testing.T) {
		req := validRequest()
		req.RealName = ""
		req.Nickname = ""
		err := binding.Validator.ValidateStruct(&req)
		require.Error(t, err)

		detail := dto.HandleValidationError(err)
		fields, ok := detail.Details.([]dto.FieldError)
		require.True(t, ok)
		assert.Len(t, fields, 2)
		assert.Equal(t, "real_name", fields[0].Field)
		assert.Equal(t, "real_name is required", fields[0].Message)
	})

	t.Run("unknown role", func(t *testing.T) {
		req := validRequest()
		req.Role = "admin"
		err := binding.Validator.ValidateStruct(&req)
		require.Error(t, err)

		detail := dto.HandleValidationError(err)
		assert.Equal(t, dto.ErrorCodeInvalidRole, detail.Code)
		assert.Equal(t, "invalid_role", detail.Reason)
		assert.Equal(t, "role", detail.Field)
	})

	t.Run("password byte length", func(t *testing.T) {
		tests := []struct {
			name     string
			password string
			ok       bool
		}{
			{"72 ascii bytes", strings.Repeat("p", 72), true},
			{"73 ascii bytes", strings.Repeat("p", 73), false},
			{"36 two-byte runes", strings.Repeat("é", 36), true},
			{"37 two-byte runes", strings.Repeat("é", 37), false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validRequest()
				req.Password = tt.password
				err := binding.Validator.ValidateStruct(&req)
				if tt.ok {
					assert.NoError(t, err)
					return
				}
				require.Error(t, err)
				detail := dto.HandleValidationError(err)
				assert.Equal(t, dto.ErrorCodeValidationFailed, detail.Code)
				assert.Equal(t, "password", detail.Field)
				fields, ok := detail.Details.([]dto.FieldError)
				require.True(t, ok)
				require.Len(t, fields, 1)
				assert.Equal(t, "password must be at most 72 bytes", fields[0].Message)
			})
		}
	})
}
