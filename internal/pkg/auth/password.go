package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the default work factor for password hashes
	BcryptCost = 12
	// MaxPasswordBytes is the longest input bcrypt accepts
	MaxPasswordBytes = 72
)

// BcryptHasher hashes credentials with bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost; zero means BcryptCost
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost == 0 {
		cost = BcryptCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Hash returns the bcrypt hash of the plaintext password
func (h *BcryptHasher) Hash(password string) (string, error) {
	return HashPasswordWithCost(password, h.cost)
}

// FitsBcrypt reports whether password is short enough to hash
func FitsBcrypt(password string) bool {
	return len(password) <= MaxPasswordBytes
}

// HashPasswordWithCost hashes a password with an explicit cost
func HashPasswordWithCost(password string, cost int) (string, error) {
	if !FitsBcrypt(password) {
		return "", fmt.Errorf("password is %d bytes: %w", len(password), bcrypt.ErrPasswordTooLong)
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
