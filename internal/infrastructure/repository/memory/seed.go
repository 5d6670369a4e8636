package memory

import (
	"time"

	"github.com/matchm8/matchm8/internal/domain/fixture"
	"github.com/matchm8/matchm8/internal/domain/player"
)

const SeedSeason = "2025-26"

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "plr-alice", DisplayName: "Alice"},
		{ID: "plr-bob", DisplayName: "Bob"},
		{ID: "plr-carol", DisplayName: "Carol"},
		{ID: "plr-dave", DisplayName: "Dave"},
	}
}

func SeedFixtures() []fixture.Fixture {
	week1Sat := time.Date(2025, 8, 16, 14, 0, 0, 0, time.UTC)
	week1Sun := time.Date(2025, 8, 17, 15, 30, 0, 0, time.UTC)
	week2Sat := time.Date(2025, 8, 23, 14, 0, 0, 0, time.UTC)

	return []fixture.Fixture{
		{ID: "1-1", Season: SeedSeason, Week: 1, HomeTeam: "Arsenal", AwayTeam: "Leeds United", KickoffAt: &week1Sat},
		{ID: "1-2", Season: SeedSeason, Week: 1, HomeTeam: "Everton", AwayTeam: "Brighton", KickoffAt: &week1Sat},
		{ID: "1-3", Season: SeedSeason, Week: 1, HomeTeam: "Chelsea", AwayTeam: "Crystal Palace", KickoffAt: &week1Sun},
		{ID: "2-1", Season: SeedSeason, Week: 2, HomeTeam: "Leeds United", AwayTeam: "Everton", KickoffAt: &week2Sat},
		{ID: "2-2", Season: SeedSeason, Week: 2, HomeTeam: "Brighton", AwayTeam: "Chelsea", KickoffAt: &week2Sat},
		// Kickoff to be announced: the fixture stays open until it gets one.
		{ID: "2-3", Season: SeedSeason, Week: 2, HomeTeam: "Crystal Palace", AwayTeam: "Arsenal"},
	}
}
