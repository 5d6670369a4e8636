package httpapi

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/matchm8/matchm8/internal/domain/fixture"
	"github.com/matchm8/matchm8/internal/domain/gameconfig"
	"github.com/matchm8/matchm8/internal/domain/locks"
	"github.com/matchm8/matchm8/internal/domain/player"
	"github.com/matchm8/matchm8/internal/domain/prediction"
	"github.com/matchm8/matchm8/internal/domain/result"
	"github.com/matchm8/matchm8/internal/domain/scoring"
	"github.com/matchm8/matchm8/internal/platform/logging"
	"github.com/matchm8/matchm8/internal/usecase"
)

type Handler struct {
	configService     *usecase.ConfigService
	fixtureService    *usecase.FixtureService
	lockService       *usecase.LockService
	playerService     *usecase.PlayerService
	predictionService *usecase.PredictionService
	resultService     *usecase.ResultService
	scoringService    *usecase.ScoringService
	standingsService  *usecase.StandingsService
	recomputeService  *usecase.RecomputeService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	configService *usecase.ConfigService,
	fixtureService *usecase.FixtureService,
	lockService *usecase.LockService,
	playerService *usecase.PlayerService,
	predictionService *usecase.PredictionService,
	resultService *usecase.ResultService,
	scoringService *usecase.ScoringService,
	standingsService *usecase.StandingsService,
	recomputeService *usecase.RecomputeService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		configService:     configService,
		fixtureService:    fixtureService,
		lockService:       lockService,
		playerService:     playerService,
		predictionService: predictionService,
		resultService:     resultService,
		scoringService:    scoringService,
		standingsService:  standingsService,
		recomputeService:  recomputeService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type upsertPlayerRequest struct {
	ID          string `json:"id" validate:"omitempty,max=64"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
}

type updateGameConfigRequest struct {
	Season            string `json:"season" validate:"omitempty,max=16"`
	DeadlineMode      string `json:"deadline_mode" validate:"required"`
	LockOffsetMinutes int    `json:"lock_offset_minutes" validate:"gte=0"`
	Timezone          string `json:"timezone" validate:"omitempty,max=64"`
}

type recomputeJobRequest struct {
	Season string `json:"season" validate:"required,max=16"`
}

type fixtureDTO struct {
	ID        string     `json:"id"`
	Season    string     `json:"season"`
	Week      int        `json:"week"`
	HomeTeam  string     `json:"home_team"`
	AwayTeam  string     `json:"away_team"`
	KickoffAt *time.Time `json:"kickoff_at,omitempty"`
}

type fixtureLockDTO struct {
	FixtureID string     `json:"fixture_id"`
	Locked    bool       `json:"locked"`
	LockAt    *time.Time `json:"lock_at,omitempty"`
}

type lockStatusDTO struct {
	Mode       string           `json:"mode"`
	WeekLocked bool             `json:"week_locked"`
	WeekLockAt *time.Time       `json:"week_lock_at,omitempty"`
	Fixtures   []fixtureLockDTO `json:"fixtures"`
}

type weekFixturesDTO struct {
	Fixtures []fixtureDTO  `json:"fixtures"`
	Locks    lockStatusDTO `json:"locks"`
}

type predictionDTO struct {
	FixtureID string `json:"fixture_id"`
	Home      int    `json:"home"`
	Away      int    `json:"away"`
}

type resultDTO struct {
	FixtureID string `json:"fixture_id"`
	Home      int    `json:"home"`
	Away      int    `json:"away"`
}

type weekRowDTO struct {
	PlayerID     string    `json:"player_id"`
	DisplayName  string    `json:"display_name"`
	Points       int       `json:"points"`
	CalculatedAt time.Time `json:"calculated_at"`
}

type seasonRowDTO struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	TotalPoints int    `json:"total_points"`
	WeeksPlayed int    `json:"weeks_played"`
}

type matrixRowDTO struct {
	PlayerID     string      `json:"player_id"`
	DisplayName  string      `json:"display_name"`
	PointsByWeek map[int]int `json:"points_by_week"`
	Total        int         `json:"total"`
	Rank         int         `json:"rank"`
}

type matrixDTO struct {
	Weeks []int          `json:"weeks"`
	Rows  []matrixRowDTO `json:"rows"`
}

type playerDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type gameConfigDTO struct {
	Season            string `json:"season,omitempty"`
	DeadlineMode      string `json:"deadline_mode"`
	LockOffsetMinutes int    `json:"lock_offset_minutes"`
	Timezone          string `json:"timezone"`
}

func fixtureToDTO(f fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:        f.ID,
		Season:    f.Season,
		Week:      f.Week,
		HomeTeam:  f.HomeTeam,
		AwayTeam:  f.AwayTeam,
		KickoffAt: f.KickoffAt,
	}
}

func lockStatusToDTO(status locks.Status) lockStatusDTO {
	items := make([]fixtureLockDTO, 0, len(status.Fixtures))
	for fixtureID, lock := range status.Fixtures {
		items = append(items, fixtureLockDTO{
			FixtureID: fixtureID,
			Locked:    status.FixtureLocked(fixtureID),
			LockAt:    lock.LockAt,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].FixtureID < items[j].FixtureID })

	return lockStatusDTO{
		Mode:       string(status.Mode),
		WeekLocked: status.WeekLocked,
		WeekLockAt: status.WeekLockAt,
		Fixtures:   items,
	}
}

func predictionsToDTO(set prediction.Set) []predictionDTO {
	items := make([]predictionDTO, 0, len(set))
	for _, p := range set {
		items = append(items, predictionDTO{
			FixtureID: p.FixtureID,
			Home:      p.Home,
			Away:      p.Away,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].FixtureID < items[j].FixtureID })
	return items
}

func resultsToDTO(set result.Set) []resultDTO {
	items := make([]resultDTO, 0, len(set))
	for _, r := range set {
		items = append(items, resultDTO{
			FixtureID: r.FixtureID,
			Home:      r.Home,
			Away:      r.Away,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].FixtureID < items[j].FixtureID })
	return items
}

func weekRowsToDTO(rows []scoring.WeekRow) []weekRowDTO {
	items := make([]weekRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, weekRowDTO{
			PlayerID:     row.PlayerID,
			DisplayName:  row.DisplayName,
			Points:       row.Points,
			CalculatedAt: row.CalculatedAt,
		})
	}
	return items
}

func seasonRowsToDTO(rows []scoring.SeasonRow) []seasonRowDTO {
	items := make([]seasonRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, seasonRowDTO{
			PlayerID:    row.PlayerID,
			DisplayName: row.DisplayName,
			TotalPoints: row.TotalPoints,
			WeeksPlayed: row.WeeksPlayed,
		})
	}
	return items
}

func matrixToDTO(m scoring.Matrix) matrixDTO {
	rows := make([]matrixRowDTO, 0, len(m.Rows))
	for _, row := range m.Rows {
		// Every window week gets an explicit entry; missed weeks render as 0.
		points := make(map[int]int, len(m.Weeks))
		for _, week := range m.Weeks {
			points[week] = row.PointsByWeek[week]
		}
		rows = append(rows, matrixRowDTO{
			PlayerID:     row.PlayerID,
			DisplayName:  row.DisplayName,
			PointsByWeek: points,
			Total:        row.Total,
			Rank:         row.Rank,
		})
	}
	return matrixDTO{Weeks: m.Weeks, Rows: rows}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{ID: p.ID, DisplayName: p.DisplayName}
}

func gameConfigToDTO(cfg gameconfig.Config) gameConfigDTO {
	return gameConfigDTO{
		Season:            cfg.Season,
		DeadlineMode:      string(cfg.DeadlineMode),
		LockOffsetMinutes: cfg.LockOffsetMinutes,
		Timezone:          cfg.Timezone,
	}
}

func pathSeason(value string) (string, error) {
	season := strings.TrimSpace(value)
	if season == "" {
		return "", fmt.Errorf("%w: season is required", usecase.ErrInvalidInput)
	}
	return season, nil
}

func pathWeek(value string) (int, error) {
	week, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || week < 1 {
		return 0, fmt.Errorf("%w: week must be a positive integer", usecase.ErrInvalidInput)
	}
	return week, nil
}

func queryInt(value string, fallback int) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	out, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", usecase.ErrInvalidInput, value)
	}
	return out, nil
}
