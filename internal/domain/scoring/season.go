package scoring

import (
	"sort"

	"github.com/matchm8/matchm8/internal/domain/player"
)

// RebuildSeasonTotals folds per-week rows into cumulative standings. Every
// player in the directory gets a row even with no scored weeks, so the
// standings always show the full roster. Players that appear in week rows
// but not in the directory are still included under their row name.
func RebuildSeasonTotals(rowsByWeek map[int][]WeekRow, dir player.Directory) []SeasonRow {
	totals := make(map[string]*SeasonRow, len(dir))
	for id, name := range dir {
		totals[id] = &SeasonRow{PlayerID: id, DisplayName: name}
	}
	for _, rows := range rowsByWeek {
		// WeeksPlayed counts a player at most once per week even if the
		// week's slice carries duplicate rows for them.
		seen := make(map[string]struct{}, len(rows))
		for _, row := range rows {
			entry, ok := totals[row.PlayerID]
			if !ok {
				entry = &SeasonRow{PlayerID: row.PlayerID, DisplayName: row.DisplayName}
				totals[row.PlayerID] = entry
			}
			entry.TotalPoints += row.Points
			if _, dup := seen[row.PlayerID]; !dup {
				seen[row.PlayerID] = struct{}{}
				entry.WeeksPlayed++
			}
		}
	}
	out := make([]SeasonRow, 0, len(totals))
	for _, entry := range totals {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		if out[i].DisplayName != out[j].DisplayName {
			return out[i].DisplayName < out[j].DisplayName
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}
