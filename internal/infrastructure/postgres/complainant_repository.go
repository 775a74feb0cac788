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

var _ repository.ComplainantRepository = (*ComplainantRepo)(nil)

// ComplainantRepo implements the ComplainantRepository port over PostgreSQL.
type ComplainantRepo struct {
	pool *pgxpool.Pool
}

// NewComplainantRepository builds the persistence adapter for complainant records.
func NewComplainantRepository(pool *pgxpool.Pool) *ComplainantRepo {
	return &ComplainantRepo{pool: pool}
}

const complainantScalarColumns = `
	id, name, address, state, lga, gender, complexion, eye_color, hair_color,
	occupation, phone, report_date, report_time, remarks, officer_in_charge,
	photo_content_type, created_by, updated_by, created_at, updated_at`

// Create persists a new record with its photo.
func (r *ComplainantRepo) Create(ctx context.Context, c *entity.Complainant) error {
	query := `
		INSERT INTO complainants (
			id, name, address, state, lga, gender, complexion, eye_color, hair_color,
			occupation, phone, report_date, report_time, remarks, officer_in_charge,
			photo, photo_content_type, created_by, updated_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21
		)`
	photo, photoCT := attachmentArgs(c.Photo)
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.Address, c.State, c.LGA, c.Gender, c.Complexion,
		c.EyeColor, c.HairColor, c.Occupation, c.Phone, c.ReportDate, c.ReportTime,
		c.Remarks, c.OfficerInCharge,
		photo, photoCT,
		c.CreatedBy, c.UpdatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert complainant: %w", err)
	}
	return nil
}

// List returns all records, newest first, photo bytes excluded.
func (r *ComplainantRepo) List(ctx context.Context) ([]*entity.Complainant, error) {
	query := `SELECT ` + complainantScalarColumns + ` FROM complainants ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list complainants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Complainant
	for rows.Next() {
		c, err := scanComplainant(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID fetches one record, photo bytes excluded; (nil, nil) when missing.
func (r *ComplainantRepo) GetByID(ctx context.Context, id string) (*entity.Complainant, error) {
	query := `SELECT ` + complainantScalarColumns + ` FROM complainants WHERE id = $1`
	c, err := scanComplainant(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// GetPhoto loads the photo blob; (nil, nil) when the record is missing.
func (r *ComplainantRepo) GetPhoto(ctx context.Context, id string) (*entity.Attachment, error) {
	var data []byte
	var contentType *string
	err := r.pool.QueryRow(ctx,
		`SELECT photo, photo_content_type FROM complainants WHERE id = $1`, id,
	).Scan(&data, &contentType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get complainant photo: %w", err)
	}
	a := &entity.Attachment{Data: data}
	if contentType != nil {
		a.ContentType = *contentType
	}
	return a, nil
}

// Update persists all scalar fields; the photo only changes when the entity
// carries new bytes.
func (r *ComplainantRepo) Update(ctx context.Context, c *entity.Complainant) error {
	query := `
		UPDATE complainants SET
			name = $2, address = $3, state = $4, lga = $5, gender = $6,
			complexion = $7, eye_color = $8, hair_color = $9, occupation = $10,
			phone = $11, report_date = $12, report_time = $13, remarks = $14,
			officer_in_charge = $15,
			photo = COALESCE($16, photo),
			photo_content_type = COALESCE($17, photo_content_type),
			updated_by = $18, updated_at = $19
		WHERE id = $1`
	photo, photoCT := attachmentArgs(c.Photo)
	tag, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.Address, c.State, c.LGA, c.Gender,
		c.Complexion, c.EyeColor, c.HairColor, c.Occupation,
		c.Phone, c.ReportDate, c.ReportTime, c.Remarks,
		c.OfficerInCharge,
		photo, photoCT,
		c.UpdatedBy, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update complainant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a record; domain.ErrNotFound when no row matched.
func (r *ComplainantRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM complainants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete complainant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanComplainant(row pgx.Row) (*entity.Complainant, error) {
	var c entity.Complainant
	var photoCT *string
	err := row.Scan(
		&c.ID, &c.Name, &c.Address, &c.State, &c.LGA, &c.Gender,
		&c.Complexion, &c.EyeColor, &c.HairColor, &c.Occupation,
		&c.Phone, &c.ReportDate, &c.ReportTime, &c.Remarks, &c.OfficerInCharge,
		&photoCT,
		&c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan complainant: %w", err)
	}
	c.Photo = presentAttachment(photoCT)
	return &c, nil
}
