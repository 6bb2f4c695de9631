package repositories

import (
	"github.com/yigit/campuslink/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	RegistrationStore *PgRegistrationStore
	AccountRepository *AccountRepository
}

// NewRepositories initializes all repositories
func NewRepositories(pool db.Pool) *Repositories {
	return &Repositories{
		RegistrationStore: NewPgRegistrationStore(pool),
		AccountRepository: NewAccountRepository(pool),
	}
}
