package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimsng/crims-api/internal/application/dto"
	"github.com/crimsng/crims-api/internal/application/usecase"
	"github.com/crimsng/crims-api/internal/domain"
	"github.com/crimsng/crims-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory criminal repository
// ──────────────────────────────────────────────────────────────────────────────

type memCriminalRepo struct {
	records map[string]*entity.Criminal
}

func newMemCriminalRepo() *memCriminalRepo {
	return &memCriminalRepo{records: map[string]*entity.Criminal{}}
}

func (r *memCriminalRepo) Create(_ context.Context, c *entity.Criminal) error {
	cp := *c
	r.records[c.ID] = &cp
	return nil
}

func (r *memCriminalRepo) List(_ context.Context) ([]*entity.Criminal, error) {
	var out []*entity.Criminal
	for _, c := range r.records {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCriminalRepo) GetByID(_ context.Context, id string) (*entity.Criminal, error) {
	c, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCriminalRepo) GetPhoto(_ context.Context, id string) (*entity.Attachment, error) {
	c, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	return c.Photo, nil
}

func (r *memCriminalRepo) GetThumbprint(_ context.Context, id string) (*entity.Attachment, error) {
	c, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	return c.Thumbprint, nil
}

func (r *memCriminalRepo) Update(_ context.Context, c *entity.Criminal) error {
	stored, ok := r.records[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *c
	if cp.Photo == nil {
		cp.Photo = stored.Photo
	}
	if cp.Thumbprint == nil {
		cp.Thumbprint = stored.Thumbprint
	}
	r.records[c.ID] = &cp
	return nil
}

func (r *memCriminalRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

// stubRoster returns fixed bytes so export can be asserted without a PDF
// library in the loop.
type stubRoster struct{ out []byte }

func (s stubRoster) GenerateRoster(_ context.Context, _ []*entity.Criminal) ([]byte, error) {
	return s.out, nil
}

func minimalForm() dto.FormValues {
	return dto.FormValues{
		"name":            "Musa Ibrahim",
		"crimeCode":       "ROB-004",
		"officerInCharge": "Sgt. Bello",
	}
}

func jpeg(data string) *entity.Attachment {
	return &entity.Attachment{Data: []byte(data), ContentType: "image/jpeg"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCriminalCreate_StampsProvenance(t *testing.T) {
	repo := newMemCriminalRepo()
	uc := usecase.NewCriminalUseCase(repo, nil)

	out, err := uc.Create(context.Background(), minimalForm(), nil, nil, "desk2")
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Musa Ibrahim", out.Name)
	assert.Equal(t, "desk2", out.CreatedBy)
	assert.Equal(t, "desk2", out.UpdatedBy)
	assert.False(t, out.HasPhoto)
}

func TestCriminalCreate_RequiredFields(t *testing.T) {
	uc := usecase.NewCriminalUseCase(newMemCriminalRepo(), nil)

	for _, missing := range []string{"name", "crimeCode", "officerInCharge"} {
		f := minimalForm()
		delete(f, missing)
		_, err := uc.Create(context.Background(), f, nil, nil, "desk2")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing %s must fail", missing)
	}
}

func TestCriminalCreate_NormalizesGender(t *testing.T) {
	repo := newMemCriminalRepo()
	uc := usecase.NewCriminalUseCase(repo, nil)

	f := minimalForm()
	f["gender"] = " FEMAL "
	out, err := uc.Create(context.Background(), f, nil, nil, "desk2")
	require.NoError(t, err)
	assert.Equal(t, "female", out.Gender)

	f["gender"] = "unknownvalue"
	_, err = uc.Create(context.Background(), f, nil, nil, "desk2")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCriminalCreate_AgeRange(t *testing.T) {
	uc := usecase.NewCriminalUseCase(newMemCriminalRepo(), nil)

	f := minimalForm()
	f["age"] = "151"
	_, err := uc.Create(context.Background(), f, nil, nil, "desk2")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	f["age"] = "34"
	out, err := uc.Create(context.Background(), f, nil, nil, "desk2")
	require.NoError(t, err)
	require.NotNil(t, out.Age)
	assert.Equal(t, 34, *out.Age)
}

// ──────────────────────────────────────────────────────────────────────────────
// Attachments
// ──────────────────────────────────────────────────────────────────────────────

func TestCriminalPhoto_MissingRecordOrBlobIs404(t *testing.T) {
	repo := newMemCriminalRepo()
	uc := usecase.NewCriminalUseCase(repo, nil)

	_, err := uc.Photo(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := uc.Create(context.Background(), minimalForm(), nil, nil, "desk2")
	require.NoError(t, err)

	_, err = uc.Photo(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "record without photo")
}

func TestCriminalPhoto_RoundTripsContentType(t *testing.T) {
	repo := newMemCriminalRepo()
	uc := usecase.NewCriminalUseCase(repo, nil)

	out, err := uc.Create(context.Background(), minimalForm(), jpeg("photo-bytes"), jpeg("thumb-bytes"), "desk2")
	require.NoError(t, err)
	assert.True(t, out.HasPhoto)
	assert.True(t, out.HasThumbprint)

	photo, err := uc.Photo(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", photo.ContentType)
	assert.Equal(t, []byte("photo-bytes"), photo.Data)

	thumb, err := uc.Thumbprint(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("thumb-bytes"), thumb.Data)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCriminalUpdate_MergesSubmittedFieldsOnly(t *testing.T) {
	repo := newMemCriminalRepo()
	uc := usecase.NewCriminalUseCase(repo, nil)

	f := minimalForm()
	f["state"] = "Kano"
	created, err := uc.Create(context.Background(), f, jpeg("photo"), nil, "desk2")
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), created.ID,
		dto.FormValues{"state": "Lagos"}, nil, nil, "sgt1")
	require.NoError(t, err)

	assert.Equal(t, "Lagos", updated.State)
	assert.Equal(t, "Musa Ibrahim", updated.Name, "unsubmitted fields keep their values")
	assert.Equal(t, "desk2", updated.CreatedBy)
	assert.Equal(t, "sgt1", updated.UpdatedBy)

	photo, err := uc.Photo(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("photo"), photo.Data, "stored photo survives a scalar update")
}

func TestCriminalUpdate_RevalidatesMergedRecord(t *testing.T) {
	repo := newMemCriminalRepo()
	uc := usecase.NewCriminalUseCase(repo, nil)

	created, err := uc.Create(context.Background(), minimalForm(), nil, nil, "desk2")
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID,
		dto.FormValues{"name": "  "}, nil, nil, "desk2")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCriminalUpdate_MissingRecord(t *testing.T) {
	uc := usecase.NewCriminalUseCase(newMemCriminalRepo(), nil)

	_, err := uc.Update(context.Background(), "no-such-id", minimalForm(), nil, nil, "desk2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / export
// ──────────────────────────────────────────────────────────────────────────────

func TestCriminalDelete_MissingRecord(t *testing.T) {
	uc := usecase.NewCriminalUseCase(newMemCriminalRepo(), nil)

	err := uc.Delete(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCriminalExportPDF_UsesGenerator(t *testing.T) {
	repo := newMemCriminalRepo()
	uc := usecase.NewCriminalUseCase(repo, stubRoster{out: []byte("%PDF-stub")})

	_, err := uc.Create(context.Background(), minimalForm(), nil, nil, "desk2")
	require.NoError(t, err)

	pdf, err := uc.ExportPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), pdf)
}
