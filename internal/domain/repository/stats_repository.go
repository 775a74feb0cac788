package repository

import "context"

// GenderCount is one row of the criminals-by-gender aggregate.
type GenderCount struct {
	Gender string
	Count  int64
}

// StateCount is one row of the criminals-by-state aggregate.
type StateCount struct {
	State string
	Count int64
}

// StatsRepository exposes the read-only aggregates for the dashboard.
// Everything is recomputed from the store on each call; nothing is cached.
type StatsRepository interface {
	CountCriminals(ctx context.Context) (int64, error)
	CountSuspects(ctx context.Context) (int64, error)
	CountComplainants(ctx context.Context) (int64, error)
	CriminalsByGender(ctx context.Context) ([]GenderCount, error)
	// CriminalsByState returns rows sorted by count, descending.
	CriminalsByState(ctx context.Context) ([]StateCount, error)
}
