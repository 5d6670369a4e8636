package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/matchm8/matchm8/internal/domain/player"
	fixturemock "github.com/matchm8/matchm8/internal/mocks/domain/fixture"
	playermock "github.com/matchm8/matchm8/internal/mocks/domain/player"
	"github.com/matchm8/matchm8/internal/platform/id"
)

func TestPlayerService_GetByID_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, id.NewRandomGenerator())

	want := player.Player{ID: "plr-alice", DisplayName: "Alice"}
	playerRepo.
		On("GetByID", mock.Anything, "plr-alice").
		Return(want, true, nil).
		Once()

	got, err := service.GetByID(context.Background(), "plr-alice")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected player: got=%+v want=%+v", got, want)
	}
}

func TestPlayerService_GetByID_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, id.NewRandomGenerator())

	playerRepo.
		On("GetByID", mock.Anything, "plr-ghost").
		Return(player.Player{}, false, nil).
		Once()

	_, err := service.GetByID(context.Background(), "plr-ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Upsert_GeneratesIDUsingMockery(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, id.NewRandomGenerator())

	playerRepo.
		On("Upsert", mock.Anything, mock.MatchedBy(func(p player.Player) bool {
			return p.ID != "" && p.DisplayName == "Bob"
		})).
		Return(nil).
		Once()

	got, err := service.Upsert(context.Background(), player.Player{DisplayName: "  Bob  "})
	if err != nil {
		t.Fatalf("upsert player: %v", err)
	}
	if got.ID == "" {
		t.Fatal("expected a generated player id")
	}
	if got.DisplayName != "Bob" {
		t.Fatalf("unexpected display name: got=%q", got.DisplayName)
	}
}

func TestFixtureService_ListWeeks_RepoErrorUsingMockery(t *testing.T) {
	t.Parallel()

	fixtureRepo := fixturemock.NewRepository(t)
	service := NewFixtureService(fixtureRepo, nil, nil)

	repoErr := errors.New("storage offline")
	fixtureRepo.
		On("ListWeeks", mock.Anything, "2025-26").
		Return(nil, repoErr).
		Once()

	_, err := service.ListWeeks(context.Background(), "2025-26")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
