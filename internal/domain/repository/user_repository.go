package repository

import (
	"context"

	"github.com/crimsng/crims-api/internal/domain/entity"
)

// UserRepository is the persistence port for accounts.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Count(ctx context.Context) (int, error)
	UpdateRole(ctx context.Context, id string, role entity.Role) error
	// Delete returns domain.ErrUserNotFound when no row was removed.
	Delete(ctx context.Context, id string) error
}
