package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchm8/matchm8/internal/domain/gameconfig"
	qb "github.com/matchm8/matchm8/internal/platform/querybuilder"
)

const gameConfigRowID = 1

type GameConfigRepository struct {
	db *sqlx.DB
}

func NewGameConfigRepository(db *sqlx.DB) *GameConfigRepository {
	return &GameConfigRepository{db: db}
}

func (r *GameConfigRepository) Get(ctx context.Context) (gameconfig.Config, bool, error) {
	query, args, err := qb.Select("*").
		From("game_config").
		Where(qb.Eq("id", gameConfigRowID)).
		ToSQL()
	if err != nil {
		return gameconfig.Config{}, false, fmt.Errorf("build get game config query: %w", err)
	}

	var row gameConfigTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return gameconfig.Config{}, false, nil
		}
		return gameconfig.Config{}, false, fmt.Errorf("get game config: %w", err)
	}

	return gameconfig.Config{
		Season:            row.Season,
		DeadlineMode:      gameconfig.DeadlineMode(row.DeadlineMode),
		LockOffsetMinutes: row.LockOffsetMinutes,
		Timezone:          row.Timezone,
	}, true, nil
}

func (r *GameConfigRepository) Save(ctx context.Context, cfg gameconfig.Config) error {
	insertModel := gameConfigInsertModel{
		ID:                gameConfigRowID,
		Season:            cfg.Season,
		DeadlineMode:      string(cfg.DeadlineMode),
		LockOffsetMinutes: cfg.LockOffsetMinutes,
		Timezone:          cfg.Timezone,
	}
	query, args, err := qb.InsertModel("game_config", insertModel, `ON CONFLICT (id)
DO UPDATE SET
    season = EXCLUDED.season,
    deadline_mode = EXCLUDED.deadline_mode,
    lock_offset_minutes = EXCLUDED.lock_offset_minutes,
    timezone = EXCLUDED.timezone,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build save game config query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save game config: %w", err)
	}
	return nil
}
