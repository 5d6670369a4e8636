package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchm8/matchm8/internal/domain/prediction"
	qb "github.com/matchm8/matchm8/internal/platform/querybuilder"
)

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) GetWeek(ctx context.Context, season string, week int, playerID string) (prediction.Set, bool, error) {
	query, args, err := qb.Select("*").
		From("predictions").
		Where(
			qb.Eq("season", season),
			qb.Eq("week", week),
			qb.Eq("player_id", playerID),
		).
		ToSQL()
	if err != nil {
		return nil, false, fmt.Errorf("build get predictions query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, false, fmt.Errorf("get predictions: %w", err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}

	set := make(prediction.Set, len(rows))
	for _, row := range rows {
		set[row.FixtureID] = prediction.Prediction{
			PlayerID:  row.PlayerID,
			FixtureID: row.FixtureID,
			Home:      row.HomeScore,
			Away:      row.AwayScore,
		}
	}
	return set, true, nil
}

func (r *PredictionRepository) ListWeek(ctx context.Context, season string, week int) (map[string]prediction.Set, error) {
	query, args, err := qb.Select("*").
		From("predictions").
		Where(
			qb.Eq("season", season),
			qb.Eq("week", week),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list predictions query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}

	out := make(map[string]prediction.Set)
	for _, row := range rows {
		if out[row.PlayerID] == nil {
			out[row.PlayerID] = prediction.Set{}
		}
		out[row.PlayerID][row.FixtureID] = prediction.Prediction{
			PlayerID:  row.PlayerID,
			FixtureID: row.FixtureID,
			Home:      row.HomeScore,
			Away:      row.AwayScore,
		}
	}
	return out, nil
}

// SaveWeek persists the merged set. Merge never drops a fixture, so a
// per-row upsert covers the whole write.
func (r *PredictionRepository) SaveWeek(ctx context.Context, season string, week int, playerID string, set prediction.Set) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx save predictions: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range set {
		insertModel := predictionInsertModel{
			Season:    season,
			Week:      week,
			PlayerID:  playerID,
			FixtureID: item.FixtureID,
			HomeScore: item.Home,
			AwayScore: item.Away,
		}
		query, args, err := qb.InsertModel("predictions", insertModel, `ON CONFLICT (season, week, player_id, fixture_id)
DO UPDATE SET
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert prediction query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert prediction %s: %w", item.FixtureID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save predictions: %w", err)
	}
	return nil
}
