package auth_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimsng/crims-api/internal/application/auth"
	"github.com/crimsng/crims-api/internal/application/dto"
	"github.com/crimsng/crims-api/internal/domain"
	"github.com/crimsng/crims-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory user repository
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	var all []*entity.User
	for _, u := range r.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Username < all[j].Username })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memUserRepo) Count(_ context.Context) (int, error) {
	return len(r.users), nil
}

func (r *memUserRepo) UpdateRole(_ context.Context, id string, role entity.Role) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

const adminSecret = "station-admin-code"

func newTestUseCase() (*auth.AuthUseCase, *memUserRepo) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "unit-test-secret",
		ExpMinutes: 60,
		Issuer:     "crims-test",
	}, adminSecret)
	return uc, repo
}

func registerOfficer(t *testing.T, uc *auth.AuthUseCase, username string) *dto.AuthResponse {
	t.Helper()
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: username,
		Password: "patrol#42",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_DefaultsToOfficer(t *testing.T) {
	uc, _ := newTestUseCase()

	out := registerOfficer(t, uc, "adamu")

	assert.Equal(t, "officer", out.Role)
	assert.Equal(t, "adamu", out.Username)
	assert.NotEmpty(t, out.Token)
}

func TestRegister_NormalizesUsername(t *testing.T) {
	uc, repo := newTestUseCase()

	out := registerOfficer(t, uc, "  AdAmU ")

	assert.Equal(t, "adamu", out.Username)
	stored, err := repo.GetByUsername(context.Background(), "adamu")
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	uc, _ := newTestUseCase()
	registerOfficer(t, uc, "adamu")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "ADAMU",
		Password: "patrol#42",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegister_AdminRequiresCode(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "chief",
		Password: "patrol#42",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, domain.ErrBadAdminCode)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		Username:  "chief",
		Password:  "patrol#42",
		Role:      "admin",
		AdminCode: "wrong-code",
	})
	assert.ErrorIs(t, err, domain.ErrBadAdminCode)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username:  "chief",
		Password:  "patrol#42",
		Role:      "admin",
		AdminCode: adminSecret,
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Role)
}

func TestRegister_PasswordPolicy(t *testing.T) {
	uc, _ := newTestUseCase()

	cases := []struct {
		name     string
		password string
	}{
		{"too short", "a#1"},
		{"no digit", "patrol#pass"},
		{"no letter", "123456#"},
		{"no special", "patrol42"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), dto.RegisterRequest{
				Username: "adamu",
				Password: tc.password,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegister_UsernameLength(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "ab",
		Password: "patrol#42",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Succeeds(t *testing.T) {
	uc, _ := newTestUseCase()
	registerOfficer(t, uc, "adamu")

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "Adamu",
		Password: "patrol#42",
	})
	require.NoError(t, err)
	assert.Equal(t, "adamu", out.Username)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_WrongPasswordAndUnknownUserLookTheSame(t *testing.T) {
	uc, _ := newTestUseCase()
	registerOfficer(t, uc, "adamu")

	_, errWrongPass := uc.Login(context.Background(), dto.LoginRequest{
		Username: "adamu",
		Password: "not-the-password#1",
	})
	_, errNoUser := uc.Login(context.Background(), dto.LoginRequest{
		Username: "nobody",
		Password: "patrol#42",
	})

	assert.ErrorIs(t, errWrongPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// User management
// ──────────────────────────────────────────────────────────────────────────────

func TestListUsers_Paginates(t *testing.T) {
	uc, _ := newTestUseCase()
	registerOfficer(t, uc, "adamu")
	registerOfficer(t, uc, "bello")
	registerOfficer(t, uc, "chidi")

	out, err := uc.ListUsers(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 2, out.Pages)
	assert.Len(t, out.Users, 2)

	out, err = uc.ListUsers(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Len(t, out.Users, 1)
}

func TestDeleteUser_SelfDeleteBlocked(t *testing.T) {
	uc, _ := newTestUseCase()
	me := registerOfficer(t, uc, "adamu")

	_, err := uc.DeleteUser(context.Background(), me.ID, me.ID)
	assert.ErrorIs(t, err, domain.ErrSelfDelete)
}

func TestDeleteUser_ReturnsDeletedIdentity(t *testing.T) {
	uc, repo := newTestUseCase()
	victim := registerOfficer(t, uc, "bello")

	out, err := uc.DeleteUser(context.Background(), victim.ID, "someone-else")
	require.NoError(t, err)
	assert.Equal(t, victim.ID, out.DeletedUser.ID)
	assert.Equal(t, "bello", out.DeletedUser.Username)

	gone, err := repo.GetByID(context.Background(), victim.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDeleteUser_MissingUser(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.DeleteUser(context.Background(), "no-such-id", "actor")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPromote_OfficerBecomesAdmin(t *testing.T) {
	uc, repo := newTestUseCase()
	officer := registerOfficer(t, uc, "adamu")

	out, err := uc.Promote(context.Background(), officer.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", out.User.Role)

	stored, _ := repo.GetByID(context.Background(), officer.ID)
	assert.Equal(t, entity.RoleAdmin, stored.Role)
}

func TestPromote_AlreadyAdmin(t *testing.T) {
	uc, _ := newTestUseCase()
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username:  "chief",
		Password:  "patrol#42",
		Role:      "admin",
		AdminCode: adminSecret,
	})
	require.NoError(t, err)

	_, err = uc.Promote(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyAdmin)
}

func TestPromote_MissingUser(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Promote(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
