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

var _ repository.CriminalRepository = (*CriminalRepo)(nil)

// CriminalRepo implements the CriminalRepository port over PostgreSQL.
// Photo and thumbprint live inline as BYTEA; scalar reads never touch the
// blob columns, only the content-type markers.
type CriminalRepo struct {
	pool *pgxpool.Pool
}

// NewCriminalRepository builds the persistence adapter for criminal records.
func NewCriminalRepository(pool *pgxpool.Pool) *CriminalRepo {
	return &CriminalRepo{pool: pool}
}

const criminalScalarColumns = `
	id, name, crime_code, arrest_date, convict_date, address, state, lga,
	gender, age, complexion, height, weight, remarks, officer_in_charge,
	photo_content_type, thumbprint_content_type,
	created_by, updated_by, created_at, updated_at`

// Create persists a new record with its attachments.
func (r *CriminalRepo) Create(ctx context.Context, c *entity.Criminal) error {
	query := `
		INSERT INTO criminals (
			id, name, crime_code, arrest_date, convict_date, address, state, lga,
			gender, age, complexion, height, weight, remarks, officer_in_charge,
			photo, photo_content_type, thumbprint, thumbprint_content_type,
			created_by, updated_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23
		)`
	photo, photoCT := attachmentArgs(c.Photo)
	thumb, thumbCT := attachmentArgs(c.Thumbprint)
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.CrimeCode, c.ArrestDate, c.ConvictDate, c.Address, c.State, c.LGA,
		c.Gender, c.Age, c.Complexion, c.Height, c.Weight, c.Remarks, c.OfficerInCharge,
		photo, photoCT, thumb, thumbCT,
		c.CreatedBy, c.UpdatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert criminal: %w", err)
	}
	return nil
}

// List returns all records, newest first, blobs excluded.
func (r *CriminalRepo) List(ctx context.Context) ([]*entity.Criminal, error) {
	query := `SELECT ` + criminalScalarColumns + ` FROM criminals ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list criminals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Criminal
	for rows.Next() {
		c, err := scanCriminal(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID fetches one record, blobs excluded; (nil, nil) when missing.
func (r *CriminalRepo) GetByID(ctx context.Context, id string) (*entity.Criminal, error) {
	query := `SELECT ` + criminalScalarColumns + ` FROM criminals WHERE id = $1`
	c, err := scanCriminal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// GetPhoto loads the photo blob; (nil, nil) when the record is missing.
func (r *CriminalRepo) GetPhoto(ctx context.Context, id string) (*entity.Attachment, error) {
	return r.blob(ctx, `SELECT photo, photo_content_type FROM criminals WHERE id = $1`, id)
}

// GetThumbprint loads the thumbprint blob; (nil, nil) when the record is missing.
func (r *CriminalRepo) GetThumbprint(ctx context.Context, id string) (*entity.Attachment, error) {
	return r.blob(ctx, `SELECT thumbprint, thumbprint_content_type FROM criminals WHERE id = $1`, id)
}

func (r *CriminalRepo) blob(ctx context.Context, query, id string) (*entity.Attachment, error) {
	var data []byte
	var contentType *string
	err := r.pool.QueryRow(ctx, query, id).Scan(&data, &contentType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get criminal blob: %w", err)
	}
	a := &entity.Attachment{Data: data}
	if contentType != nil {
		a.ContentType = *contentType
	}
	return a, nil
}

// Update persists all scalar fields; blob columns only change when the
// entity carries new bytes (COALESCE keeps stored values otherwise).
func (r *CriminalRepo) Update(ctx context.Context, c *entity.Criminal) error {
	query := `
		UPDATE criminals SET
			name = $2, crime_code = $3, arrest_date = $4, convict_date = $5,
			address = $6, state = $7, lga = $8, gender = $9, age = $10,
			complexion = $11, height = $12, weight = $13, remarks = $14,
			officer_in_charge = $15,
			photo = COALESCE($16, photo),
			photo_content_type = COALESCE($17, photo_content_type),
			thumbprint = COALESCE($18, thumbprint),
			thumbprint_content_type = COALESCE($19, thumbprint_content_type),
			updated_by = $20, updated_at = $21
		WHERE id = $1`
	photo, photoCT := attachmentArgs(c.Photo)
	thumb, thumbCT := attachmentArgs(c.Thumbprint)
	tag, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.CrimeCode, c.ArrestDate, c.ConvictDate,
		c.Address, c.State, c.LGA, c.Gender, c.Age,
		c.Complexion, c.Height, c.Weight, c.Remarks,
		c.OfficerInCharge,
		photo, photoCT, thumb, thumbCT,
		c.UpdatedBy, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update criminal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a record; domain.ErrNotFound when no row matched.
func (r *CriminalRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM criminals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete criminal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCriminal(row pgx.Row) (*entity.Criminal, error) {
	var c entity.Criminal
	var photoCT, thumbCT *string
	err := row.Scan(
		&c.ID, &c.Name, &c.CrimeCode, &c.ArrestDate, &c.ConvictDate,
		&c.Address, &c.State, &c.LGA,
		&c.Gender, &c.Age, &c.Complexion, &c.Height, &c.Weight,
		&c.Remarks, &c.OfficerInCharge,
		&photoCT, &thumbCT,
		&c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan criminal: %w", err)
	}
	c.Photo = presentAttachment(photoCT)
	c.Thumbprint = presentAttachment(thumbCT)
	return &c, nil
}
