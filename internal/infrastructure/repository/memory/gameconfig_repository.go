package memory

import (
	"context"
	"sync"

	"github.com/matchm8/matchm8/internal/domain/gameconfig"
)

type GameConfigRepository struct {
	mu     sync.RWMutex
	cfg    gameconfig.Config
	exists bool
}

func NewGameConfigRepository() *GameConfigRepository {
	return &GameConfigRepository{}
}

func (r *GameConfigRepository) Get(_ context.Context) (gameconfig.Config, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg, r.exists, nil
}

func (r *GameConfigRepository) Save(_ context.Context, cfg gameconfig.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cfg
	r.exists = true
	return nil
}
