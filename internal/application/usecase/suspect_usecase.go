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

// SuspectUseCase record lifecycle for suspects. Same contract as
// CriminalUseCase minus the conviction date and the roster export.
type SuspectUseCase struct {
	repo repository.SuspectRepository
}

// NewSuspectUseCase builds the use case.
func NewSuspectUseCase(repo repository.SuspectRepository) *SuspectUseCase {
	return &SuspectUseCase{repo: repo}
}

// Create validates, stamps provenance and persists the suspect record.
func (uc *SuspectUseCase) Create(ctx context.Context, f dto.FormValues, photo, thumbprint *entity.Attachment, actor string) (*dto.SuspectResponse, error) {
	now := time.Now()
	s := &entity.Suspect{
		ID:        uuid.New().String(),
		CreatedBy: actor,
		UpdatedBy: actor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applySuspectFields(s, f); err != nil {
		return nil, err
	}
	if err := validateSuspect(s); err != nil {
		return nil, err
	}
	s.Photo = photo
	s.Thumbprint = thumbprint
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	out := dto.NewSuspectResponse(s)
	return &out, nil
}

// List returns every suspect record, binary fields excluded.
func (uc *SuspectUseCase) List(ctx context.Context) ([]dto.SuspectResponse, error) {
	suspects, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SuspectResponse, 0, len(suspects))
	for _, s := range suspects {
		out = append(out, dto.NewSuspectResponse(s))
	}
	return out, nil
}

// Photo returns the stored photo, or domain.ErrNotFound when absent.
func (uc *SuspectUseCase) Photo(ctx context.Context, id string) (*entity.Attachment, error) {
	return attachmentOrNotFound(uc.repo.GetPhoto(ctx, id))
}

// Thumbprint returns the stored thumbprint, or domain.ErrNotFound when absent.
func (uc *SuspectUseCase) Thumbprint(ctx context.Context, id string) (*entity.Attachment, error) {
	return attachmentOrNotFound(uc.repo.GetThumbprint(ctx, id))
}

// Update merges the submitted fields, re-validates and stamps updatedBy.
func (uc *SuspectUseCase) Update(ctx context.Context, id string, f dto.FormValues, photo, thumbprint *entity.Attachment, actor string) (*dto.SuspectResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if err := applySuspectFields(s, f); err != nil {
		return nil, err
	}
	if err := validateSuspect(s); err != nil {
		return nil, err
	}
	s.UpdatedBy = actor
	s.UpdatedAt = time.Now()
	if photo != nil {
		s.Photo = photo
	}
	if thumbprint != nil {
		s.Thumbprint = thumbprint
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	out := dto.NewSuspectResponse(s)
	return &out, nil
}

// Delete removes the record; domain.ErrNotFound when the id does not exist.
func (uc *SuspectUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func applySuspectFields(s *entity.Suspect, f dto.FormValues) error {
	var err error
	if f.Has("name") {
		s.Name = strings.TrimSpace(f.Get("name"))
	}
	if f.Has("crimeCode") {
		s.CrimeCode = strings.TrimSpace(f.Get("crimeCode"))
	}
	if f.Has("arrestDate") {
		if s.ArrestDate, err = parseDate("arrestDate", f.Get("arrestDate")); err != nil {
			return err
		}
	}
	if f.Has("address") {
		s.Address = f.Get("address")
	}
	if f.Has("state") {
		s.State = f.Get("state")
	}
	if f.Has("lga") {
		s.LGA = f.Get("lga")
	}
	if f.Has("gender") {
		g, ok := entity.NormalizeGender(f.Get("gender"))
		if !ok {
			return fmt.Errorf("%w: gender must be male, female or other", domain.ErrInvalidInput)
		}
		s.Gender = g
	}
	if f.Has("age") {
		if s.Age, err = parseAge(f.Get("age")); err != nil {
			return err
		}
	}
	if f.Has("complexion") {
		s.Complexion = f.Get("complexion")
	}
	if f.Has("height") {
		if s.Height, err = parseMeasure("height", f.Get("height")); err != nil {
			return err
		}
	}
	if f.Has("weight") {
		if s.Weight, err = parseMeasure("weight", f.Get("weight")); err != nil {
			return err
		}
	}
	if f.Has("remarks") {
		s.Remarks = f.Get("remarks")
	}
	if f.Has("officerInCharge") {
		s.OfficerInCharge = strings.TrimSpace(f.Get("officerInCharge"))
	}
	return nil
}

// validateSuspect: like criminals but age stays optional by contract.
func validateSuspect(s *entity.Suspect) error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if s.CrimeCode == "" {
		return fmt.Errorf("%w: crime code is required", domain.ErrInvalidInput)
	}
	if s.OfficerInCharge == "" {
		return fmt.Errorf("%w: officer in charge is required", domain.ErrInvalidInput)
	}
	return nil
}
