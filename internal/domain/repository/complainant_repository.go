package repository

import (
	"context"

	"github.com/crimsng/crims-api/internal/domain/entity"
)

// ComplainantRepository is the persistence port for complainant records.
// Complainants carry a photo but no thumbprint.
type ComplainantRepository interface {
	Create(ctx context.Context, c *entity.Complainant) error
	List(ctx context.Context) ([]*entity.Complainant, error)
	GetByID(ctx context.Context, id string) (*entity.Complainant, error)
	GetPhoto(ctx context.Context, id string) (*entity.Attachment, error)
	Update(ctx context.Context, c *entity.Complainant) error
	Delete(ctx context.Context, id string) error
}
