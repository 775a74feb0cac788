package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crimsng/crims-api/internal/application/dto"
	"github.com/crimsng/crims-api/internal/domain"
	"github.com/crimsng/crims-api/internal/domain/entity"
	"github.com/crimsng/crims-api/internal/domain/repository"
)

// RosterPDFGenerator renders the printable criminal roster. Implemented by
// the Maroto adapter; an interface here keeps the PDF toolkit out of the
// application layer.
type RosterPDFGenerator interface {
	GenerateRoster(ctx context.Context, criminals []*entity.Criminal) ([]byte, error)
}

// CriminalUseCase record lifecycle for criminals: validate, stamp provenance,
// persist, merge updates, stream attachments, export the roster.
type CriminalUseCase struct {
	repo repository.CriminalRepository
	pdf  RosterPDFGenerator
}

// NewCriminalUseCase builds the use case. pdf may be nil when export is not
// wired (tests).
func NewCriminalUseCase(repo repository.CriminalRepository, pdf RosterPDFGenerator) *CriminalUseCase {
	return &CriminalUseCase{repo: repo, pdf: pdf}
}

// Create validates the submitted fields, stamps createdBy/updatedBy with the
// acting username and persists the record with its attachments.
func (uc *CriminalUseCase) Create(ctx context.Context, f dto.FormValues, photo, thumbprint *entity.Attachment, actor string) (*dto.CriminalResponse, error) {
	now := time.Now()
	c := &entity.Criminal{
		ID:        uuid.New().String(),
		CreatedBy: actor,
		UpdatedBy: actor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyCriminalFields(c, f); err != nil {
		return nil, err
	}
	if err := validateCriminal(c); err != nil {
		return nil, err
	}
	c.Photo = photo
	c.Thumbprint = thumbprint
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := dto.NewCriminalResponse(c)
	return &out, nil
}

// List returns every criminal record, binary fields excluded.
func (uc *CriminalUseCase) List(ctx context.Context) ([]dto.CriminalResponse, error) {
	criminals, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CriminalResponse, 0, len(criminals))
	for _, c := range criminals {
		out = append(out, dto.NewCriminalResponse(c))
	}
	return out, nil
}

// Photo returns the stored photo, or domain.ErrNotFound when the record or
// the blob is absent.
func (uc *CriminalUseCase) Photo(ctx context.Context, id string) (*entity.Attachment, error) {
	return attachmentOrNotFound(uc.repo.GetPhoto(ctx, id))
}

// Thumbprint returns the stored thumbprint, or domain.ErrNotFound when the
// record or the blob is absent.
func (uc *CriminalUseCase) Thumbprint(ctx context.Context, id string) (*entity.Attachment, error) {
	return attachmentOrNotFound(uc.repo.GetThumbprint(ctx, id))
}

// Update merges the submitted fields into the stored record, re-validates the
// merged result and stamps updatedBy. Nil attachments keep the stored blobs.
func (uc *CriminalUseCase) Update(ctx context.Context, id string, f dto.FormValues, photo, thumbprint *entity.Attachment, actor string) (*dto.CriminalResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if err := applyCriminalFields(c, f); err != nil {
		return nil, err
	}
	if err := validateCriminal(c); err != nil {
		return nil, err
	}
	c.UpdatedBy = actor
	c.UpdatedAt = time.Now()
	if photo != nil {
		c.Photo = photo
	}
	if thumbprint != nil {
		c.Thumbprint = thumbprint
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := dto.NewCriminalResponse(c)
	return &out, nil
}

// Delete removes the record; domain.ErrNotFound when the id does not exist.
func (uc *CriminalUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// ExportPDF renders the full roster as a PDF document.
func (uc *CriminalUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	criminals, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateRoster(ctx, criminals)
}

// applyCriminalFields copies only the submitted form fields onto the record,
// parsing and normalizing as it goes. Unsubmitted fields are left untouched
// so updates behave as document merges.
func applyCriminalFields(c *entity.Criminal, f dto.FormValues) error {
	var err error
	if f.Has("name") {
		c.Name = strings.TrimSpace(f.Get("name"))
	}
	if f.Has("crimeCode") {
		c.CrimeCode = strings.TrimSpace(f.Get("crimeCode"))
	}
	if f.Has("arrestDate") {
		if c.ArrestDate, err = parseDate("arrestDate", f.Get("arrestDate")); err != nil {
			return err
		}
	}
	if f.Has("convictDate") {
		if c.ConvictDate, err = parseDate("convictDate", f.Get("convictDate")); err != nil {
			return err
		}
	}
	if f.Has("address") {
		c.Address = f.Get("address")
	}
	if f.Has("state") {
		c.State = f.Get("state")
	}
	if f.Has("lga") {
		c.LGA = f.Get("lga")
	}
	if f.Has("gender") {
		g, ok := entity.NormalizeGender(f.Get("gender"))
		if !ok {
			return fmt.Errorf("%w: gender must be male, female or other", domain.ErrInvalidInput)
		}
		c.Gender = g
	}
	if f.Has("age") {
		if c.Age, err = parseAge(f.Get("age")); err != nil {
			return err
		}
	}
	if f.Has("complexion") {
		c.Complexion = f.Get("complexion")
	}
	if f.Has("height") {
		if c.Height, err = parseMeasure("height", f.Get("height")); err != nil {
			return err
		}
	}
	if f.Has("weight") {
		if c.Weight, err = parseMeasure("weight", f.Get("weight")); err != nil {
			return err
		}
	}
	if f.Has("remarks") {
		c.Remarks = f.Get("remarks")
	}
	if f.Has("officerInCharge") {
		c.OfficerInCharge = strings.TrimSpace(f.Get("officerInCharge"))
	}
	return nil
}

// validateCriminal enforces the required fields on the merged record.
func validateCriminal(c *entity.Criminal) error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if c.CrimeCode == "" {
		return fmt.Errorf("%w: crime code is required", domain.ErrInvalidInput)
	}
	if c.OfficerInCharge == "" {
		return fmt.Errorf("%w: officer in charge is required", domain.ErrInvalidInput)
	}
	return nil
}

// attachmentOrNotFound maps an absent blob onto domain.ErrNotFound.
func attachmentOrNotFound(a *entity.Attachment, err error) (*entity.Attachment, error) {
	if err != nil {
		return nil, err
	}
	if !a.HasData() {
		return nil, domain.ErrNotFound
	}
	return a, nil
}
