package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/yigit/campuslink/internal/app/models"
	"github.com/yigit/campuslink/internal/app/repositories"
	"github.com/yigit/campuslink/internal/pkg/apperrors"
)

// memStore is a RegistrationStore whose transactions stage writes and apply them on Commit.
// Commit enforces unique email and username like the users table indexes do.
type memStore struct {
	mu       sync.Mutex
	users    map[string]*models.User
	profiles map[string]models.Profile

	beginErr   error
	findErr    error
	profileErr error
	commitErr  error
	// afterFind runs once the identity lookup has read committed state
	afterFind func()

	begun    int
	released int
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*models.User),
		profiles: make(map[string]models.Profile),
	}
}

func (m *memStore) BeginRegistration(ctx context.Context) (repositories.RegistrationTx, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	m.begun++
	return &memTx{store: m}, nil
}

// seed commits a user directly
func (m *memStore) seed(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.users[u.ID] = &cp
}

func (m *memStore) counts() (users, profiles int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users), len(m.profiles)
}

func (m *memStore) profile(ownerID string) models.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profiles[ownerID]
}

func (m *memStore) user(id string) *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id]
}

func (m *memStore) allReleased() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.begun == m.released
}

// conflictLocked must be called with mu held
func (m *memStore) conflictLocked(u *models.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return fmt.Errorf("%w: users_email_key", apperrors.ErrDuplicateIdentity)
		}
		if existing.Username == u.Username {
			return fmt.Errorf("%w: users_username_key", apperrors.ErrDuplicateIdentity)
		}
	}
	return nil
}

type memTx struct {
	store    *memStore
	users    []*models.User
	profiles []models.Profile
	done     bool
}

var errTxDone = errors.New("transaction already closed")

func (t *memTx) FindUserByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	if t.done {
		return nil, errTxDone
	}
	if t.store.findErr != nil {
		return nil, t.store.findErr
	}

	t.store.mu.Lock()
	var found *models.User
	for _, u := range t.store.users {
		if u.Email == email || u.Username == username {
			cp := *u
			found = &cp
			break
		}
	}
	t.store.mu.Unlock()

	if t.store.afterFind != nil {
		t.store.afterFind()
	}
	return found, nil
}

func (t *memTx) InsertUser(ctx context.Context, u *models.User) (string, error) {
	if t.done {
		return "", errTxDone
	}
	t.store.mu.Lock()
	err := t.store.conflictLocked(u)
	t.store.mu.Unlock()
	if err != nil {
		return "", err
	}

	cp := *u
	t.users = append(t.users, &cp)
	return u.ID, nil
}

func (t *memTx) InsertProfile(ctx context.Context, profile models.Profile) error {
	if t.done {
		return errTxDone
	}
	if t.store.profileErr != nil {
		return t.store.profileErr
	}
	t.profiles = append(t.profiles, profile)
	return nil
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.done {
		return errTxDone
	}
	t.done = true

	m := t.store
	m.mu.Lock()
	defer m.mu.Unlock()
	m.released++

	if m.commitErr != nil {
		return m.commitErr
	}
	for _, u := range t.users {
		if err := m.conflictLocked(u); err != nil {
			return err
		}
	}
	for _, u := range t.users {
		m.users[u.ID] = u
	}
	for _, p := range t.profiles {
		m.profiles[p.OwnerID()] = p
	}
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.users, t.profiles = nil, nil

	t.store.mu.Lock()
	t.store.released++
	t.store.mu.Unlock()
	return nil
}
