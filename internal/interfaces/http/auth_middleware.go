package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/crimsng/crims-api/internal/application/dto"
	"github.com/crimsng/crims-api/internal/domain/entity"
	"github.com/crimsng/crims-api/pkg/jwt"
)

// Locals keys for the authenticated caller.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// UserFinder is the minimal contract the middleware needs to resolve the
// token's subject to a live account. Implemented by *postgres.UserRepo; the
// interface avoids a circular import and keeps tests store-free.
type UserFinder interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// AuthMiddleware validates the Bearer token and resolves the embedded user id
// to a live account, loading id, username and role into c.Locals. The role
// used downstream is the account's current role, not the token claim, and the
// middleware fails closed: missing/invalid/expired token or a deleted account
// all answer 401.
func AuthMiddleware(jwtSecret string, users UserFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		user, err := users.GetByID(c.Context(), claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "could not resolve user"})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "user no longer exists"})
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUsername, user.Username)
		c.Locals(LocalRole, user.Role.String())
		return c.Next()
	}
}

// RequireRole authorizes the caller against the route's allow-list. Must run
// after AuthMiddleware; a caller with no resolved role gets 401, a role
// outside the list gets 403.
func RequireRole(allowed ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "no role resolved for caller"})
		}
		for _, a := range allowed {
			if role == a.String() {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "role not allowed for this route"})
	}
}

// GetUserID returns the caller's id (after AuthMiddleware).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetUsername returns the caller's username (after AuthMiddleware).
func GetUsername(c *fiber.Ctx) string { return localString(c, LocalUsername) }

// GetRole returns the caller's live role (after AuthMiddleware).
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
