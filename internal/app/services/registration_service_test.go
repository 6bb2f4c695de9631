package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campuslink/internal/app/models"
	"github.com/yigit/campuslink/internal/app/models/dto"
	"github.com/yigit/campuslink/internal/pkg/apperrors"
	"github.com/yigit/campuslink/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

type hasherFunc func(string) (string, error)

func (f hasherFunc) Hash(password string) (string, error) { return f(password) }

var prefixHasher = hasherFunc(func(pw string) (string, error) { return "hashed:" + pw, nil })

func newTestService(store *memStore) RegistrationService {
	return NewRegistrationService(store, prefixHasher, DefaultStudentDefaults(), zerolog.Nop())
}

func aliceRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		RealName: "Alice Lin",
		Email:    "alice@example.edu",
		Username: "alice01",
		Password: "secret123",
		Nickname: "Ally",
		Role:     models.RoleStudent,
	}
}

func requireReason(t *testing.T, err error, want FailureReason) {
	t.Helper()
	require.Error(t, err)
	reason, ok := ReasonOf(err)
	require.True(t, ok, "expected *RegistrationError, got %T", err)
	assert.Equal(t, want, reason)
}

func TestRegister_StudentExample(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	resp, err := svc.Register(context.Background(), aliceRequest())
	require.NoError(t, err)
	require.NotEmpty(t, resp.UserID)

	_, err = uuid.Parse(resp.UserID)
	require.NoError(t, err)

	users, profiles := store.counts()
	assert.Equal(t, 1, users)
	assert.Equal(t, 1, profiles)

	u := store.user(resp.UserID)
	require.NotNil(t, u)
	assert.Equal(t, "hashed:secret123", u.Password)
	assert.Equal(t, models.RoleStudent, u.Role)
	assert.Equal(t, "Ally", u.Nickname)

	student, ok := store.profile(resp.UserID).(*models.StudentProfile)
	require.True(t, ok)
	assert.Equal(t, resp.UserID, student.UserID)
	assert.Equal(t, "S"+resp.UserID[:8], student.StudentID)
	assert.Nil(t, student.DepartmentID)
	assert.Equal(t, 2024, student.EntryYear)
	assert.Equal(t, 1, student.Grade)
	assert.False(t, student.IsPoor)
	assert.True(t, store.allReleased())
}

func TestRegister_RoleDispatch(t *testing.T) {
	tests := []struct {
		role  models.Role
		check func(t *testing.T, userID string, p models.Profile)
	}{
		{
			role: models.RoleDepartment,
			check: func(t *testing.T, userID string, p models.Profile) {
				dept, ok := p.(*models.DepartmentProfile)
				require.True(t, ok)
				assert.Equal(t, userID, dept.DepartmentID)
				assert.Equal(t, userID, dept.ContactPerson)
				assert.Equal(t, "Dept-Ally", dept.DepartmentName)
			},
		},
		{
			role: models.RoleCompany,
			check: func(t *testing.T, userID string, p models.Profile) {
				company, ok := p.(*models.CompanyProfile)
				require.True(t, ok)
				assert.Equal(t, userID, company.CompanyID)
				assert.Equal(t, userID, company.ContactPerson)
				assert.Equal(t, "Unknown", company.Industry)
				assert.Equal(t, "Ally", company.CompanyName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			store := newMemStore()
			req := aliceRequest()
			req.Role = tt.role

			resp, err := newTestService(store).Register(context.Background(), req)
			require.NoError(t, err)

			users, profiles := store.counts()
			assert.Equal(t, 1, users)
			assert.Equal(t, 1, profiles)

			p := store.profile(resp.UserID)
			require.NotNil(t, p)
			assert.Equal(t, tt.role, p.Role())
			tt.check(t, resp.UserID, p)
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	existing := &models.User{
		ID: uuid.NewString(), Email: "alice@example.edu", Username: "alice01", Role: models.RoleStudent,
	}

	tests := map[string]func(r *dto.RegisterRequest){
		"same email":    func(r *dto.RegisterRequest) { r.Username = "someone-else" },
		"same username": func(r *dto.RegisterRequest) { r.Email = "other@example.edu" },
		"both":          func(r *dto.RegisterRequest) {},
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			store := newMemStore()
			store.seed(existing)
			svc := newTestService(store)

			req := aliceRequest()
			mutate(req)

			// the second attempt must fail the same way and leave storage untouched
			for i := 0; i < 2; i++ {
				_, err := svc.Register(context.Background(), req)
				requireReason(t, err, ReasonDuplicate)
				assert.ErrorIs(t, err, apperrors.ErrDuplicateIdentity)
				assert.Equal(t, "username or email already exists", err.Error())

				users, profiles := store.counts()
				assert.Equal(t, 1, users)
				assert.Equal(t, 0, profiles)
			}
			assert.True(t, store.allReleased())
		})
	}
}

func TestRegister_ProfileFailureRollsBackUser(t *testing.T) {
	store := newMemStore()
	store.profileErr = errors.New("student_profile: disk full")

	_, err := newTestService(store).Register(context.Background(), aliceRequest())
	requireReason(t, err, ReasonInternal)
	assert.ErrorIs(t, err, apperrors.ErrInternal)

	users, profiles := store.counts()
	assert.Equal(t, 0, users)
	assert.Equal(t, 0, profiles)
	assert.True(t, store.allReleased())
}

func TestRegister_UnsupportedProfileIsInternal(t *testing.T) {
	store := newMemStore()
	store.profileErr = fmt.Errorf("unsupported profile type %T", nil)

	_, err := newTestService(store).Register(context.Background(), aliceRequest())
	requireReason(t, err, ReasonInternal)
	assert.False(t, errors.Is(err, apperrors.ErrInvalidRole))
	assert.True(t, store.allReleased())
}

func TestRegister_CommitFailureLeavesNoState(t *testing.T) {
	store := newMemStore()
	store.commitErr = errors.New("connection lost during commit")

	_, err := newTestService(store).Register(context.Background(), aliceRequest())
	requireReason(t, err, ReasonInternal)
	assert.Contains(t, err.Error(), "connection lost during commit")

	users, profiles := store.counts()
	assert.Zero(t, users)
	assert.Zero(t, profiles)
}

func TestRegister_StoreFailures(t *testing.T) {
	t.Run("begin", func(t *testing.T) {
		store := newMemStore()
		store.beginErr = errors.New("pool closed")
		_, err := newTestService(store).Register(context.Background(), aliceRequest())
		requireReason(t, err, ReasonInternal)
	})

	t.Run("lookup", func(t *testing.T) {
		store := newMemStore()
		store.findErr = errors.New("timeout")
		_, err := newTestService(store).Register(context.Background(), aliceRequest())
		requireReason(t, err, ReasonInternal)
		assert.True(t, store.allReleased())
	})

	t.Run("hasher", func(t *testing.T) {
		store := newMemStore()
		failing := hasherFunc(func(string) (string, error) { return "", errors.New("entropy exhausted") })
		svc := NewRegistrationService(store, failing, DefaultStudentDefaults(), zerolog.Nop())

		_, err := svc.Register(context.Background(), aliceRequest())
		requireReason(t, err, ReasonInternal)
		users, _ := store.counts()
		assert.Zero(t, users)
		assert.True(t, store.allReleased())
	})

	t.Run("hasher panic", func(t *testing.T) {
		store := newMemStore()
		panicking := hasherFunc(func(string) (string, error) { panic("bad cost") })
		svc := NewRegistrationService(store, panicking, DefaultStudentDefaults(), zerolog.Nop())

		_, err := svc.Register(context.Background(), aliceRequest())
		requireReason(t, err, ReasonInternal)
		assert.True(t, store.allReleased())
	})
}

func TestRegister_InvalidRole(t *testing.T) {
	store := newMemStore()
	req := aliceRequest()
	req.Role = models.Role("admin")

	resp, err := newTestService(store).Register(context.Background(), req)
	assert.Nil(t, resp)
	requireReason(t, err, ReasonInvalidRole)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)

	users, profiles := store.counts()
	assert.Zero(t, users)
	assert.Zero(t, profiles)
	assert.True(t, store.allReleased())
}

func TestRegister_ConcurrentSameUsername(t *testing.T) {
	store := newMemStore()

	// both transactions finish the lookup before either inserts
	var lookups sync.WaitGroup
	lookups.Add(2)
	store.afterFind = func() {
		lookups.Done()
		lookups.Wait()
	}

	svc := newTestService(store)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := aliceRequest()
			req.Email = fmt.Sprintf("alice%d@example.edu", i)
			_, errs[i] = svc.Register(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var successes, duplicates int
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		if reason, _ := ReasonOf(err); reason == ReasonDuplicate {
			duplicates++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, duplicates)

	users, profiles := store.counts()
	assert.Equal(t, 1, users)
	assert.Equal(t, 1, profiles)
	assert.True(t, store.allReleased())
}

func TestRegister_ManyConcurrentSameEmail(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	const n = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		failures  []FailureReason
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := aliceRequest()
			req.Username = fmt.Sprintf("alice%02d", i)
			_, err := svc.Register(context.Background(), req)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
				return
			}
			reason, _ := ReasonOf(err)
			failures = append(failures, reason)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	require.Len(t, failures, n-1)
	for _, r := range failures {
		assert.Equal(t, ReasonDuplicate, r)
	}
}

func TestStudentIDFor(t *testing.T) {
	assert.Equal(t, "S5f0c3c1e", studentIDFor("5f0c3c1e-8a5b-4c49-9f7e-2b1d8a0c6e11"))
	assert.Equal(t, "Sabc", studentIDFor("abc"))
	assert.True(t, strings.HasPrefix(studentIDFor(uuid.NewString()), "S"))
	assert.Len(t, studentIDFor(uuid.NewString()), 9)
}

func TestProfileBuilderFor_ClosedSet(t *testing.T) {
	for _, role := range models.Roles {
		_, ok := profileBuilderFor(role, DefaultStudentDefaults())
		assert.True(t, ok, role)
	}
	_, ok := profileBuilderFor("", DefaultStudentDefaults())
	assert.False(t, ok)
}

func TestRegister_UsesConfiguredStudentDefaults(t *testing.T) {
	store := newMemStore()
	svc := NewRegistrationService(store, prefixHasher, StudentDefaults{EntryYear: 2025, Grade: 2}, zerolog.Nop())

	resp, err := svc.Register(context.Background(), aliceRequest())
	require.NoError(t, err)

	student := store.profile(resp.UserID).(*models.StudentProfile)
	assert.Equal(t, 2025, student.EntryYear)
	assert.Equal(t, 2, student.Grade)
}

func TestRegister_PasswordTooLongForBcrypt(t *testing.T) {
	store := newMemStore()
	hasher, err := auth.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewRegistrationService(store, hasher, DefaultStudentDefaults(), zerolog.Nop())

	req := aliceRequest()
	req.Password = strings.Repeat("p", 73)
	_, err = svc.Register(context.Background(), req)
	requireReason(t, err, ReasonInternal)
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)

	users, _ := store.counts()
	assert.Zero(t, users)
	assert.True(t, store.allReleased())
}
