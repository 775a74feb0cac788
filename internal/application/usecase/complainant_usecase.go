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

// ComplainantUseCase record lifecycle for complainants: no crime fields,
// mandatory report date/time, 11-digit phone check, photo only.
type ComplainantUseCase struct {
	repo repository.ComplainantRepository
}

// NewComplainantUseCase builds the use case.
func NewComplainantUseCase(repo repository.ComplainantRepository) *ComplainantUseCase {
	return &ComplainantUseCase{repo: repo}
}

// Create validates, stamps provenance and persists the complainant record.
func (uc *ComplainantUseCase) Create(ctx context.Context, f dto.FormValues, photo *entity.Attachment, actor string) (*dto.ComplainantResponse, error) {
	now := time.Now()
	c := &entity.Complainant{
		ID:        uuid.New().String(),
		CreatedBy: actor,
		UpdatedBy: actor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyComplainantFields(c, f); err != nil {
		return nil, err
	}
	if err := validateComplainant(c); err != nil {
		return nil, err
	}
	c.Photo = photo
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := dto.NewComplainantResponse(c)
	return &out, nil
}

// List returns every complainant record, photo bytes excluded.
func (uc *ComplainantUseCase) List(ctx context.Context) ([]dto.ComplainantResponse, error) {
	complainants, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ComplainantResponse, 0, len(complainants))
	for _, c := range complainants {
		out = append(out, dto.NewComplainantResponse(c))
	}
	return out, nil
}

// Photo returns the stored photo, or domain.ErrNotFound when absent.
func (uc *ComplainantUseCase) Photo(ctx context.Context, id string) (*entity.Attachment, error) {
	return attachmentOrNotFound(uc.repo.GetPhoto(ctx, id))
}

// Update merges the submitted fields, re-validates and stamps updatedBy.
func (uc *ComplainantUseCase) Update(ctx context.Context, id string, f dto.FormValues, photo *entity.Attachment, actor string) (*dto.ComplainantResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if err := applyComplainantFields(c, f); err != nil {
		return nil, err
	}
	if err := validateComplainant(c); err != nil {
		return nil, err
	}
	c.UpdatedBy = actor
	c.UpdatedAt = time.Now()
	if photo != nil {
		c.Photo = photo
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := dto.NewComplainantResponse(c)
	return &out, nil
}

// Delete removes the record; domain.ErrNotFound when the id does not exist.
func (uc *ComplainantUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func applyComplainantFields(c *entity.Complainant, f dto.FormValues) error {
	var err error
	if f.Has("name") {
		c.Name = strings.TrimSpace(f.Get("name"))
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
	if f.Has("complexion") {
		c.Complexion = f.Get("complexion")
	}
	if f.Has("eyeColor") {
		c.EyeColor = f.Get("eyeColor")
	}
	if f.Has("hairColor") {
		c.HairColor = f.Get("hairColor")
	}
	if f.Has("occupation") {
		c.Occupation = f.Get("occupation")
	}
	if f.Has("phone") {
		phone := strings.TrimSpace(f.Get("phone"))
		if err := checkPhone(phone); err != nil {
			return err
		}
		c.Phone = phone
	}
	if f.Has("reportDate") {
		if c.ReportDate, err = parseDate("reportDate", f.Get("reportDate")); err != nil {
			return err
		}
	}
	if f.Has("reportTime") {
		c.ReportTime = strings.TrimSpace(f.Get("reportTime"))
	}
	if f.Has("remarks") {
		c.Remarks = f.Get("remarks")
	}
	if f.Has("officerInCharge") {
		c.OfficerInCharge = strings.TrimSpace(f.Get("officerInCharge"))
	}
	return nil
}

func validateComplainant(c *entity.Complainant) error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if c.ReportDate == nil {
		return fmt.Errorf("%w: report date is required", domain.ErrInvalidInput)
	}
	if c.ReportTime == "" {
		return fmt.Errorf("%w: report time is required", domain.ErrInvalidInput)
	}
	if c.OfficerInCharge == "" {
		return fmt.Errorf("%w: officer in charge is required", domain.ErrInvalidInput)
	}
	return nil
}
