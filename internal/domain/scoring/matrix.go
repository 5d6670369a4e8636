package scoring

import "sort"

// BuildMatrix assembles the per-week breakdown for the inclusive window
// [fromWeek, toWeek]. Only players with at least one row inside the window
// appear. Weeks with no rows still appear as columns so the window is
// contiguous.
func BuildMatrix(fromWeek, toWeek int, rowsByWeek map[int][]WeekRow) Matrix {
	if toWeek < fromWeek {
		return Matrix{Weeks: []int{}, Rows: []MatrixRow{}}
	}
	weeks := make([]int, 0, toWeek-fromWeek+1)
	for week := fromWeek; week <= toWeek; week++ {
		weeks = append(weeks, week)
	}

	byPlayer := make(map[string]*MatrixRow)
	for _, week := range weeks {
		for _, row := range rowsByWeek[week] {
			entry, ok := byPlayer[row.PlayerID]
			if !ok {
				entry = &MatrixRow{
					PlayerID:     row.PlayerID,
					DisplayName:  row.DisplayName,
					PointsByWeek: make(map[int]int, len(weeks)),
				}
				byPlayer[row.PlayerID] = entry
			}
			entry.PointsByWeek[week] = row.Points
			entry.Total += row.Points
		}
	}

	rows := make([]MatrixRow, 0, len(byPlayer))
	for _, entry := range byPlayer {
		rows = append(rows, *entry)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		if rows[i].DisplayName != rows[j].DisplayName {
			return rows[i].DisplayName < rows[j].DisplayName
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})

	rank := 0
	for i := range rows {
		if i == 0 || rows[i].Total != rows[i-1].Total {
			rank = i + 1
		}
		rows[i].Rank = rank
	}
	return Matrix{Weeks: weeks, Rows: rows}
}
