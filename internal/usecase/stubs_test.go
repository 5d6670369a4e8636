package usecase

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/matchm8/matchm8/internal/domain/fixture"
	"github.com/matchm8/matchm8/internal/domain/gameconfig"
	"github.com/matchm8/matchm8/internal/domain/player"
	"github.com/matchm8/matchm8/internal/domain/prediction"
	"github.com/matchm8/matchm8/internal/domain/result"
	"github.com/matchm8/matchm8/internal/domain/scoring"
)

func weekKey(season string, week int) string {
	return season + ":" + strconv.Itoa(week)
}

type stubConfigRepository struct {
	cfg    gameconfig.Config
	exists bool
	err    error
}

func (r *stubConfigRepository) Get(context.Context) (gameconfig.Config, bool, error) {
	return r.cfg, r.exists, r.err
}

func (r *stubConfigRepository) Save(_ context.Context, cfg gameconfig.Config) error {
	r.cfg = cfg
	r.exists = true
	return nil
}

type stubFixtureRepository struct {
	byWeek map[string][]fixture.Fixture
	err    error
}

func (r *stubFixtureRepository) ListByWeek(_ context.Context, season string, week int) ([]fixture.Fixture, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byWeek[weekKey(season, week)], nil
}

func (r *stubFixtureRepository) ListWeeks(_ context.Context, season string) ([]int, error) {
	if r.err != nil {
		return nil, r.err
	}
	weeks := make([]int, 0)
	for _, fixtures := range r.byWeek {
		if len(fixtures) == 0 {
			continue
		}
		if fixtures[0].Season == season {
			weeks = append(weeks, fixtures[0].Week)
		}
	}
	sort.Ints(weeks)
	return weeks, nil
}

func (r *stubFixtureRepository) ReplaceWeek(_ context.Context, season string, week int, fixtures []fixture.Fixture) error {
	if r.err != nil {
		return r.err
	}
	if r.byWeek == nil {
		r.byWeek = make(map[string][]fixture.Fixture)
	}
	r.byWeek[weekKey(season, week)] = fixtures
	return nil
}

type stubPredictionRepository struct {
	mu     sync.Mutex
	byWeek map[string]map[string]prediction.Set
}

func (r *stubPredictionRepository) GetWeek(_ context.Context, season string, week int, playerID string) (prediction.Set, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.byWeek[weekKey(season, week)][playerID]
	return set, ok, nil
}

func (r *stubPredictionRepository) ListWeek(_ context.Context, season string, week int) (map[string]prediction.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]prediction.Set)
	for playerID, set := range r.byWeek[weekKey(season, week)] {
		out[playerID] = set
	}
	return out, nil
}

func (r *stubPredictionRepository) SaveWeek(_ context.Context, season string, week int, playerID string, set prediction.Set) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byWeek == nil {
		r.byWeek = make(map[string]map[string]prediction.Set)
	}
	key := weekKey(season, week)
	if r.byWeek[key] == nil {
		r.byWeek[key] = make(map[string]prediction.Set)
	}
	r.byWeek[key][playerID] = set
	return nil
}

type stubResultRepository struct {
	mu     sync.Mutex
	byWeek map[string]result.Set
	season string
}

func (r *stubResultRepository) ListWeek(_ context.Context, season string, week int) (result.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := r.byWeek[weekKey(season, week)]
	if set == nil {
		return result.Set{}, nil
	}
	return set, nil
}

func (r *stubResultRepository) ListWeeksWithResults(_ context.Context, season string) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	weeks := make([]int, 0, len(r.byWeek))
	prefix := season + ":"
	for key, set := range r.byWeek {
		if len(set) == 0 || len(key) <= len(prefix) || key[:len(prefix)] != prefix {
			continue
		}
		week, err := strconv.Atoi(key[len(prefix):])
		if err != nil {
			continue
		}
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)
	return weeks, nil
}

func (r *stubResultRepository) UpsertWeek(_ context.Context, season string, week int, set result.Set) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byWeek == nil {
		r.byWeek = make(map[string]result.Set)
	}
	key := weekKey(season, week)
	if r.byWeek[key] == nil {
		r.byWeek[key] = result.Set{}
	}
	for id, res := range set {
		r.byWeek[key][id] = res
	}
	return nil
}

type stubPlayerRepository struct {
	mu      sync.Mutex
	players []player.Player
}

func (r *stubPlayerRepository) List(context.Context) ([]player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]player.Player, len(r.players))
	copy(out, r.players)
	return out, nil
}

func (r *stubPlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		if p.ID == playerID {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *stubPlayerRepository) Upsert(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.players {
		if r.players[i].ID == p.ID {
			r.players[i] = p
			return nil
		}
	}
	r.players = append(r.players, p)
	return nil
}

type stubScoringRepository struct {
	mu      sync.Mutex
	byWeek  map[string][]scoring.WeekRow
	totals  map[string][]scoring.SeasonRow
	upserts int
}

func (r *stubScoringRepository) UpsertWeekRows(_ context.Context, season string, week int, rows []scoring.WeekRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byWeek == nil {
		r.byWeek = make(map[string][]scoring.WeekRow)
	}
	r.byWeek[weekKey(season, week)] = rows
	r.upserts++
	return nil
}

func (r *stubScoringRepository) ListWeekRows(_ context.Context, season string, week int) ([]scoring.WeekRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byWeek[weekKey(season, week)], nil
}

func (r *stubScoringRepository) ListAllWeekRows(_ context.Context, season string) (map[int][]scoring.WeekRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[int][]scoring.WeekRow)
	prefix := season + ":"
	for key, rows := range r.byWeek {
		if len(key) <= len(prefix) || key[:len(prefix)] != prefix {
			continue
		}
		week, err := strconv.Atoi(key[len(prefix):])
		if err != nil {
			continue
		}
		out[week] = rows
	}
	return out, nil
}

func (r *stubScoringRepository) ReplaceSeasonTotals(_ context.Context, season string, rows []scoring.SeasonRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.totals == nil {
		r.totals = make(map[string][]scoring.SeasonRow)
	}
	r.totals[season] = rows
	return nil
}

func (r *stubScoringRepository) ListSeasonTotals(_ context.Context, season string) ([]scoring.SeasonRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totals[season], nil
}
