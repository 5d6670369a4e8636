package scoring

import (
	"sort"
	"time"

	"github.com/matchm8/matchm8/internal/domain/player"
	"github.com/matchm8/matchm8/internal/domain/prediction"
	"github.com/matchm8/matchm8/internal/domain/result"
)

// BuildWeekTable computes one row per player who submitted predictions for
// the week. Fixtures without a recorded result contribute zero points.
// Rows are ordered by points descending, then display name ascending, then
// player id ascending so identical inputs always produce identical output.
func BuildWeekTable(predsByPlayer map[string]prediction.Set, results result.Set, dir player.Directory, now time.Time) []WeekRow {
	rows := make([]WeekRow, 0, len(predsByPlayer))
	for playerID, set := range predsByPlayer {
		points := 0
		for fixtureID, pred := range set {
			var actual *result.Result
			if res, ok := results[fixtureID]; ok {
				actual = &res
			}
			points += PointsFor(pred, actual)
		}
		rows = append(rows, WeekRow{
			PlayerID:     playerID,
			DisplayName:  dir.NameFor(playerID),
			Points:       points,
			CalculatedAt: now,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].DisplayName != rows[j].DisplayName {
			return rows[i].DisplayName < rows[j].DisplayName
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})
	return rows
}
