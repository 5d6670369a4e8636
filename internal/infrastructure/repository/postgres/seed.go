package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchm8/matchm8/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo roster and fixture list into an empty
// database. A database with any players is left alone.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players`); err != nil {
		return fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (id, display_name)
VALUES (:id, :display_name)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":           p.ID,
			"display_name": p.DisplayName,
		})
		if err != nil {
			return fmt.Errorf("bind seed player %s query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	for _, fx := range memory.SeedFixtures() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO fixtures (fixture_id, season, week, home_team, away_team, kickoff_at)
VALUES (:fixture_id, :season, :week, :home_team, :away_team, :kickoff_at)
ON CONFLICT (season, week, fixture_id) DO NOTHING`, map[string]any{
			"fixture_id": fx.ID,
			"season":     fx.Season,
			"week":       fx.Week,
			"home_team":  fx.HomeTeam,
			"away_team":  fx.AwayTeam,
			"kickoff_at": fx.KickoffAt,
		})
		if err != nil {
			return fmt.Errorf("bind seed fixture %s query: %w", fx.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed fixture %s: %w", fx.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
