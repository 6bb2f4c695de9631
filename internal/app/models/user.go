package models

import (
	"time"
)

// User defines the base account stored in the 'users' table
type User struct {
	ID        string    `json:"userId" db:"user_id" example:"5f0c3c1e-8a5b-4c49-9f7e-2b1d8a0c6e11"`
	RealName  string    `json:"realName" db:"real_name" example:"Alice Lin"`
	Email     string    `json:"email" db:"email" example:"alice@example.edu"`
	Username  string    `json:"username" db:"username" example:"alice01"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, never serialized
	Nickname  string    `json:"nickname" db:"nickname" example:"Ally"`
	Role      Role      `json:"role" db:"role" example:"student"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
