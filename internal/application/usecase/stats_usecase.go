package usecase

import (
	"context"

	"github.com/crimsng/crims-api/internal/application/dto"
	"github.com/crimsng/crims-api/internal/domain/repository"
)

// StatsUseCase read-only dashboard aggregates, recomputed from the store on
// every call.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase builds the use case.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Summary returns totals per entity plus the criminal gender and state
// breakdowns (states sorted by count, descending).
func (uc *StatsUseCase) Summary(ctx context.Context) (*dto.StatsResponse, error) {
	criminals, err := uc.repo.CountCriminals(ctx)
	if err != nil {
		return nil, err
	}
	suspects, err := uc.repo.CountSuspects(ctx)
	if err != nil {
		return nil, err
	}
	complainants, err := uc.repo.CountComplainants(ctx)
	if err != nil {
		return nil, err
	}
	byGender, err := uc.repo.CriminalsByGender(ctx)
	if err != nil {
		return nil, err
	}
	byState, err := uc.repo.CriminalsByState(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.StatsResponse{
		TotalCriminals:    criminals,
		TotalSuspects:     suspects,
		TotalComplainants: complainants,
		GenderStats:       make([]dto.GenderStat, 0, len(byGender)),
		StateStats:        make([]dto.StateStat, 0, len(byState)),
	}
	for _, g := range byGender {
		out.GenderStats = append(out.GenderStats, dto.GenderStat{Gender: g.Gender, Count: g.Count})
	}
	for _, s := range byState {
		out.StateStats = append(out.StateStats, dto.StateStat{State: s.State, Count: s.Count})
	}
	return out, nil
}
