package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchm8/matchm8/internal/domain/scoring"
	qb "github.com/matchm8/matchm8/internal/platform/querybuilder"
)

type ScoringRepository struct {
	db *sqlx.DB
}

func NewScoringRepository(db *sqlx.DB) *ScoringRepository {
	return &ScoringRepository{db: db}
}

// UpsertWeekRows replaces the week's rows wholesale. The table is a derived
// cache, so a recompute that drops a player must drop their row too.
func (r *ScoringRepository) UpsertWeekRows(ctx context.Context, season string, week int, rows []scoring.WeekRow) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert week rows: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("weekly_scores").
		Where(
			qb.Eq("season", season),
			qb.Eq("week", week),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear week rows query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear week rows: %w", err)
	}

	for _, row := range rows {
		insertModel := weeklyScoreInsertModel{
			Season:       season,
			Week:         week,
			PlayerID:     row.PlayerID,
			DisplayName:  row.DisplayName,
			Points:       row.Points,
			CalculatedAt: row.CalculatedAt,
		}
		query, args, err := qb.InsertModel("weekly_scores", insertModel, "")
		if err != nil {
			return fmt.Errorf("build insert week row query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert week row for %s: %w", row.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert week rows: %w", err)
	}
	return nil
}

func (r *ScoringRepository) ListWeekRows(ctx context.Context, season string, week int) ([]scoring.WeekRow, error) {
	query, args, err := qb.Select("*").
		From("weekly_scores").
		Where(
			qb.Eq("season", season),
			qb.Eq("week", week),
		).
		OrderBy("points DESC", "display_name", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list week rows query: %w", err)
	}

	var rows []weeklyScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list week rows: %w", err)
	}

	out := make([]scoring.WeekRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoring.WeekRow{
			PlayerID:     row.PlayerID,
			DisplayName:  row.DisplayName,
			Points:       row.Points,
			CalculatedAt: row.CalculatedAt,
		})
	}
	return out, nil
}

func (r *ScoringRepository) ListAllWeekRows(ctx context.Context, season string) (map[int][]scoring.WeekRow, error) {
	query, args, err := qb.Select("*").
		From("weekly_scores").
		Where(qb.Eq("season", season)).
		OrderBy("week", "points DESC", "display_name", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list all week rows query: %w", err)
	}

	var rows []weeklyScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list all week rows: %w", err)
	}

	out := make(map[int][]scoring.WeekRow)
	for _, row := range rows {
		out[row.Week] = append(out[row.Week], scoring.WeekRow{
			PlayerID:     row.PlayerID,
			DisplayName:  row.DisplayName,
			Points:       row.Points,
			CalculatedAt: row.CalculatedAt,
		})
	}
	return out, nil
}

func (r *ScoringRepository) ReplaceSeasonTotals(ctx context.Context, season string, rows []scoring.SeasonRow) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace season totals: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("season_totals").
		Where(qb.Eq("season", season)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear season totals query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear season totals: %w", err)
	}

	for _, row := range rows {
		insertModel := seasonTotalInsertModel{
			Season:      season,
			PlayerID:    row.PlayerID,
			DisplayName: row.DisplayName,
			TotalPoints: row.TotalPoints,
			WeeksPlayed: row.WeeksPlayed,
		}
		query, args, err := qb.InsertModel("season_totals", insertModel, "")
		if err != nil {
			return fmt.Errorf("build insert season total query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert season total for %s: %w", row.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace season totals: %w", err)
	}
	return nil
}

func (r *ScoringRepository) ListSeasonTotals(ctx context.Context, season string) ([]scoring.SeasonRow, error) {
	query, args, err := qb.Select("*").
		From("season_totals").
		Where(qb.Eq("season", season)).
		OrderBy("total_points DESC", "display_name", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list season totals query: %w", err)
	}

	var rows []seasonTotalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list season totals: %w", err)
	}

	out := make([]scoring.SeasonRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoring.SeasonRow{
			PlayerID:    row.PlayerID,
			DisplayName: row.DisplayName,
			TotalPoints: row.TotalPoints,
			WeeksPlayed: row.WeeksPlayed,
		})
	}
	return out, nil
}
