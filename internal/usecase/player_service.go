package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchm8/matchm8/internal/domain/player"
	"github.com/matchm8/matchm8/internal/platform/id"
)

type PlayerService struct {
	playerRepo player.Repository
	idGen      id.Generator
}

func NewPlayerService(playerRepo player.Repository, idGen id.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		idGen:      idGen,
	}
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *PlayerService) GetByID(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByID")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return p, nil
}

// Upsert registers a player or renames an existing one. A missing id means
// a new registration and gets a generated id.
func (s *PlayerService) Upsert(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Upsert")
	defer span.End()

	p.DisplayName = strings.TrimSpace(p.DisplayName)
	if p.DisplayName == "" {
		return player.Player{}, fmt.Errorf("%w: display name is required", ErrInvalidInput)
	}

	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		generated, err := s.idGen.NewID()
		if err != nil {
			return player.Player{}, fmt.Errorf("generate player id: %w", err)
		}
		p.ID = generated
	}

	if err := s.playerRepo.Upsert(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("upsert player: %w", err)
	}
	return p, nil
}
