package dto

import "github.com/yigit/campuslink/internal/app/models"

// RegisterRequest represents a registration request for any role.
// Shape is enforced by gin binding before it reaches the service.
type RegisterRequest struct {
	RealName string      `json:"real_name" binding:"required" example:"Alice Lin"`
	Email    string      `json:"email" binding:"required,email" example:"alice@example.edu"`
	Username string      `json:"username" binding:"required" example:"alice01"`
	Password string      `json:"password" binding:"required,bcrypt_len" example:"secret123"`
	Nickname string      `json:"nickname" binding:"required" example:"Ally"`
	Role     models.Role `json:"role" binding:"required,oneof=student department company" example:"student" enums:"student,department,company"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	UserID string `json:"user_id" example:"5f0c3c1e-8a5b-4c49-9f7e-2b1d8a0c6e11"`
}
