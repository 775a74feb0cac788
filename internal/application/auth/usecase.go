package auth

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"

	"github.com/crimsng/crims-api/internal/application/dto"
	"github.com/crimsng/crims-api/internal/domain"
	"github.com/crimsng/crims-api/internal/domain/entity"
	"github.com/crimsng/crims-api/internal/domain/repository"
	"github.com/crimsng/crims-api/pkg/jwt"
)

// JWTConfig token issuance settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authentication and account management: register, login,
// list/delete/promote users.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	jwtCfg      JWTConfig
	adminSecret string
}

// NewAuthUseCase builds the auth use case. adminSecret is the out-of-band
// code required to register an admin account.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, adminSecret string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, adminSecret: adminSecret}
}

// folder performs Unicode case folding for username normalization.
var folder = cases.Fold()

// NormalizeUsername trims and case-folds a username. Applied before every
// store write and lookup so "Adamu " and "adamu" are the same account.
func NormalizeUsername(username string) string {
	return folder.String(strings.TrimSpace(username))
}

// Register creates an account and returns the profile plus a session token.
// Registering an admin requires the matching admin code (domain.ErrBadAdminCode
// otherwise). A taken username returns domain.ErrUsernameTaken.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	username := NormalizeUsername(in.Username)
	if len(username) < 3 || len(username) > 30 {
		return nil, fmt.Errorf("%w: username must be 3-30 characters", domain.ErrInvalidInput)
	}
	if err := checkPassword(in.Password); err != nil {
		return nil, err
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: role must be admin or officer", domain.ErrInvalidInput)
	}
	if role == entity.RoleAdmin {
		if uc.adminSecret == "" || in.AdminCode != uc.adminSecret {
			return nil, domain.ErrBadAdminCode
		}
	}

	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.authResponse(user)
}

// Login verifies credentials and returns the profile plus a session token.
// Unknown usernames and wrong passwords both map to domain.ErrUnauthorized so
// the response does not reveal which one it was.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByUsername(ctx, NormalizeUsername(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.authResponse(user)
}

// ListUsers returns a page of accounts, newest first.
func (uc *AuthUseCase) ListUsers(ctx context.Context, page, limit int) (*dto.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	users, err := uc.userRepo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{
		Users: make([]dto.UserResponse, 0, len(users)),
		Page:  page,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
		Total: total,
	}
	for _, u := range users {
		out.Users = append(out.Users, toUserResponse(u))
	}
	return out, nil
}

// DeleteUser removes an account. Deleting your own account is rejected with
// domain.ErrSelfDelete; a missing account returns domain.ErrUserNotFound.
func (uc *AuthUseCase) DeleteUser(ctx context.Context, id, actorID string) (*dto.DeleteUserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.ID == actorID {
		return nil, domain.ErrSelfDelete
	}
	if err := uc.userRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeleteUserResponse{
		Message:     "User deleted successfully",
		DeletedUser: dto.DeletedUser{ID: user.ID, Username: user.Username},
	}, nil
}

// Promote raises an officer to admin. Promoting an admin again returns
// domain.ErrAlreadyAdmin.
func (uc *AuthUseCase) Promote(ctx context.Context, id string) (*dto.PromoteResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role == entity.RoleAdmin {
		return nil, domain.ErrAlreadyAdmin
	}
	if err := uc.userRepo.UpdateRole(ctx, id, entity.RoleAdmin); err != nil {
		return nil, err
	}
	user.Role = entity.RoleAdmin
	return &dto.PromoteResponse{
		Message: fmt.Sprintf("%s has been promoted to admin", user.Username),
		User:    toUserResponse(user),
	}, nil
}

func (uc *AuthUseCase) authResponse(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role.String(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role.String(),
		Token:    token,
	}, nil
}

// checkPassword enforces the registration password policy: 6-128 characters
// with at least one letter, one digit and one special character.
func checkPassword(password string) error {
	if len(password) < 6 || len(password) > 128 {
		return fmt.Errorf("%w: password must be 6-128 characters", domain.ErrInvalidInput)
	}
	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasLetter || !hasDigit || !hasSpecial {
		return fmt.Errorf("%w: password must contain letters, numbers and special characters", domain.ErrInvalidInput)
	}
	return nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
