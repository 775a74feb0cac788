package repository

import (
	"context"

	"github.com/crimsng/crims-api/internal/domain/entity"
)

// CriminalRepository is the persistence port for criminal records.
// List and GetByID never load the binary columns; attachments go through
// GetPhoto/GetThumbprint.
type CriminalRepository interface {
	Create(ctx context.Context, c *entity.Criminal) error
	List(ctx context.Context) ([]*entity.Criminal, error)
	GetByID(ctx context.Context, id string) (*entity.Criminal, error)
	GetPhoto(ctx context.Context, id string) (*entity.Attachment, error)
	GetThumbprint(ctx context.Context, id string) (*entity.Attachment, error)
	// Update persists all scalar fields; nil attachments keep the stored blobs.
	Update(ctx context.Context, c *entity.Criminal) error
	// Delete returns domain.ErrNotFound when no row was removed.
	Delete(ctx context.Context, id string) error
}
