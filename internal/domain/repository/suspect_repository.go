package repository

import (
	"context"

	"github.com/crimsng/crims-api/internal/domain/entity"
)

// SuspectRepository is the persistence port for suspect records.
// Same contract as CriminalRepository.
type SuspectRepository interface {
	Create(ctx context.Context, s *entity.Suspect) error
	List(ctx context.Context) ([]*entity.Suspect, error)
	GetByID(ctx context.Context, id string) (*entity.Suspect, error)
	GetPhoto(ctx context.Context, id string) (*entity.Attachment, error)
	GetThumbprint(ctx context.Context, id string) (*entity.Attachment, error)
	Update(ctx context.Context, s *entity.Suspect) error
	Delete(ctx context.Context, id string) error
}
