package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchm8/matchm8/internal/domain/result"
	qb "github.com/matchm8/matchm8/internal/platform/querybuilder"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) ListWeek(ctx context.Context, season string, week int) (result.Set, error) {
	query, args, err := qb.Select("*").
		From("results").
		Where(
			qb.Eq("season", season),
			qb.Eq("week", week),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list results query: %w", err)
	}

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	set := make(result.Set, len(rows))
	for _, row := range rows {
		set[row.FixtureID] = result.Result{
			FixtureID: row.FixtureID,
			Home:      row.HomeScore,
			Away:      row.AwayScore,
		}
	}
	return set, nil
}

func (r *ResultRepository) ListWeeksWithResults(ctx context.Context, season string) ([]int, error) {
	query, args, err := qb.Select("DISTINCT week").
		From("results").
		Where(qb.Eq("season", season)).
		OrderBy("week").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list result weeks query: %w", err)
	}

	var weeks []int
	if err := r.db.SelectContext(ctx, &weeks, query, args...); err != nil {
		return nil, fmt.Errorf("list result weeks: %w", err)
	}
	return weeks, nil
}

func (r *ResultRepository) UpsertWeek(ctx context.Context, season string, week int, set result.Set) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert results: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range set {
		insertModel := resultInsertModel{
			Season:    season,
			Week:      week,
			FixtureID: item.FixtureID,
			HomeScore: item.Home,
			AwayScore: item.Away,
		}
		query, args, err := qb.InsertModel("results", insertModel, `ON CONFLICT (season, week, fixture_id)
DO UPDATE SET
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert result query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert result %s: %w", item.FixtureID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert results: %w", err)
	}
	return nil
}
