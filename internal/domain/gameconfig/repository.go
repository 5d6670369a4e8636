package gameconfig

import "context"

// Repository exposes the current game configuration. Callers read it per
// request; the stored record is the source of truth for every lock decision.
type Repository interface {
	Get(ctx context.Context) (Config, bool, error)
	Save(ctx context.Context, cfg Config) error
}
