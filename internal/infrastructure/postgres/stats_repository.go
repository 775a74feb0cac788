package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crimsng/crims-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo read-only dashboard aggregates over the three record tables.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository builds the stats adapter.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountCriminals returns the total number of criminal records.
func (r *StatsRepo) CountCriminals(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM criminals`)
}

// CountSuspects returns the total number of suspect records.
func (r *StatsRepo) CountSuspects(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM suspects`)
}

// CountComplainants returns the total number of complainant records.
func (r *StatsRepo) CountComplainants(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM complainants`)
}

func (r *StatsRepo) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats count: %w", err)
	}
	return n, nil
}

// CriminalsByGender groups criminal records by gender. Records without a
// gender fall into the "" bucket so the buckets always sum to the total.
func (r *StatsRepo) CriminalsByGender(ctx context.Context) ([]repository.GenderCount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT gender, COUNT(*) FROM criminals GROUP BY gender ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("stats by gender: %w", err)
	}
	defer rows.Close()
	var out []repository.GenderCount
	for rows.Next() {
		var g repository.GenderCount
		if err := rows.Scan(&g.Gender, &g.Count); err != nil {
			return nil, fmt.Errorf("stats by gender scan: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// CriminalsByState groups criminal records by state, sorted by count
// descending.
func (r *StatsRepo) CriminalsByState(ctx context.Context) ([]repository.StateCount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT state, COUNT(*) FROM criminals GROUP BY state ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("stats by state: %w", err)
	}
	defer rows.Close()
	var out []repository.StateCount
	for rows.Next() {
		var s repository.StateCount
		if err := rows.Scan(&s.State, &s.Count); err != nil {
			return nil, fmt.Errorf("stats by state scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
