package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchm8/matchm8/internal/domain/fixture"
	qb "github.com/matchm8/matchm8/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) ListByWeek(ctx context.Context, season string, week int) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").
		From("fixtures").
		Where(
			qb.Eq("season", season),
			qb.Eq("week", week),
		).
		OrderBy("fixture_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fixtures query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixture.Fixture{
			ID:        row.FixtureID,
			Season:    row.Season,
			Week:      row.Week,
			HomeTeam:  row.HomeTeam,
			AwayTeam:  row.AwayTeam,
			KickoffAt: row.KickoffAt,
		})
	}
	return out, nil
}

func (r *FixtureRepository) ListWeeks(ctx context.Context, season string) ([]int, error) {
	query, args, err := qb.Select("DISTINCT week").
		From("fixtures").
		Where(qb.Eq("season", season)).
		OrderBy("week").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list weeks query: %w", err)
	}

	var weeks []int
	if err := r.db.SelectContext(ctx, &weeks, query, args...); err != nil {
		return nil, fmt.Errorf("list weeks: %w", err)
	}
	return weeks, nil
}

// ReplaceWeek swaps the week wholesale. Fixtures are immutable once
// published, so re-imports delete and reinsert in one transaction.
func (r *FixtureRepository) ReplaceWeek(ctx context.Context, season string, week int, fixtures []fixture.Fixture) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace fixtures: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("fixtures").
		Where(
			qb.Eq("season", season),
			qb.Eq("week", week),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear fixtures query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear fixtures: %w", err)
	}

	for _, item := range fixtures {
		insertModel := fixtureInsertModel{
			FixtureID: item.ID,
			Season:    season,
			Week:      week,
			HomeTeam:  item.HomeTeam,
			AwayTeam:  item.AwayTeam,
			KickoffAt: item.KickoffAt,
		}
		query, args, err := qb.InsertModel("fixtures", insertModel, "")
		if err != nil {
			return fmt.Errorf("build insert fixture query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert fixture %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace fixtures: %w", err)
	}
	return nil
}
