package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crimsng/crims-api/internal/domain"
	"github.com/crimsng/crims-api/internal/domain/entity"
	"github.com/crimsng/crims-api/internal/domain/repository"
)

var _ repository.SuspectRepository = (*SuspectRepo)(nil)

// SuspectRepo implements the SuspectRepository port over PostgreSQL.
type SuspectRepo struct {
	pool *pgxpool.Pool
}

// NewSuspectRepository builds the persistence adapter for suspect records.
func NewSuspectRepository(pool *pgxpool.Pool) *SuspectRepo {
	return &SuspectRepo{pool: pool}
}

const suspectScalarColumns = `
	id, name, crime_code, arrest_date, address, state, lga,
	gender, age, complexion, height, weight, remarks, officer_in_charge,
	photo_content_type, thumbprint_content_type,
	created_by, updated_by, created_at, updated_at`

// Create persists a new record with its attachments.
func (r *SuspectRepo) Create(ctx context.Context, s *entity.Suspect) error {
	query := `
		INSERT INTO suspects (
			id, name, crime_code, arrest_date, address, state, lga,
			gender, age, complexion, height, weight, remarks, officer_in_charge,
			photo, photo_content_type, thumbprint, thumbprint_content_type,
			created_by, updated_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22
		)`
	photo, photoCT := attachmentArgs(s.Photo)
	thumb, thumbCT := attachmentArgs(s.Thumbprint)
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Name, s.CrimeCode, s.ArrestDate, s.Address, s.State, s.LGA,
		s.Gender, s.Age, s.Complexion, s.Height, s.Weight, s.Remarks, s.OfficerInCharge,
		photo, photoCT, thumb, thumbCT,
		s.CreatedBy, s.UpdatedBy, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert suspect: %w", err)
	}
	return nil
}

// List returns all records, newest first, blobs excluded.
func (r *SuspectRepo) List(ctx context.Context) ([]*entity.Suspect, error) {
	query := `SELECT ` + suspectScalarColumns + ` FROM suspects ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list suspects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Suspect
	for rows.Next() {
		s, err := scanSuspect(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByID fetches one record, blobs excluded; (nil, nil) when missing.
func (r *SuspectRepo) GetByID(ctx context.Context, id string) (*entity.Suspect, error) {
	query := `SELECT ` + suspectScalarColumns + ` FROM suspects WHERE id = $1`
	s, err := scanSuspect(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// GetPhoto loads the photo blob; (nil, nil) when the record is missing.
func (r *SuspectRepo) GetPhoto(ctx context.Context, id string) (*entity.Attachment, error) {
	return r.blob(ctx, `SELECT photo, photo_content_type FROM suspects WHERE id = $1`, id)
}

// GetThumbprint loads the thumbprint blob; (nil, nil) when the record is missing.
func (r *SuspectRepo) GetThumbprint(ctx context.Context, id string) (*entity.Attachment, error) {
	return r.blob(ctx, `SELECT thumbprint, thumbprint_content_type FROM suspects WHERE id = $1`, id)
}

func (r *SuspectRepo) blob(ctx context.Context, query, id string) (*entity.Attachment, error) {
	var data []byte
	var contentType *string
	err := r.pool.QueryRow(ctx, query, id).Scan(&data, &contentType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get suspect blob: %w", err)
	}
	a := &entity.Attachment{Data: data}
	if contentType != nil {
		a.ContentType = *contentType
	}
	return a, nil
}

// Update persists all scalar fields; blob columns only change when the
// entity carries new bytes.
func (r *SuspectRepo) Update(ctx context.Context, s *entity.Suspect) error {
	query := `
		UPDATE suspects SET
			name = $2, crime_code = $3, arrest_date = $4,
			address = $5, state = $6, lga = $7, gender = $8, age = $9,
			complexion = $10, height = $11, weight = $12, remarks = $13,
			officer_in_charge = $14,
			photo = COALESCE($15, photo),
			photo_content_type = COALESCE($16, photo_content_type),
			thumbprint = COALESCE($17, thumbprint),
			thumbprint_content_type = COALESCE($18, thumbprint_content_type),
			updated_by = $19, updated_at = $20
		WHERE id = $1`
	photo, photoCT := attachmentArgs(s.Photo)
	thumb, thumbCT := attachmentArgs(s.Thumbprint)
	tag, err := r.pool.Exec(ctx, query,
		s.ID, s.Name, s.CrimeCode, s.ArrestDate,
		s.Address, s.State, s.LGA, s.Gender, s.Age,
		s.Complexion, s.Height, s.Weight, s.Remarks,
		s.OfficerInCharge,
		photo, photoCT, thumb, thumbCT,
		s.UpdatedBy, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update suspect: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a record; domain.ErrNotFound when no row matched.
func (r *SuspectRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM suspects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete suspect: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSuspect(row pgx.Row) (*entity.Suspect, error) {
	var s entity.Suspect
	var photoCT, thumbCT *string
	err := row.Scan(
		&s.ID, &s.Name, &s.CrimeCode, &s.ArrestDate,
		&s.Address, &s.State, &s.LGA,
		&s.Gender, &s.Age, &s.Complexion, &s.Height, &s.Weight,
		&s.Remarks, &s.OfficerInCharge,
		&photoCT, &thumbCT,
		&s.CreatedBy, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan suspect: %w", err)
	}
	s.Photo = presentAttachment(photoCT)
	s.Thumbprint = presentAttachment(thumbCT)
	return &s, nil
}
