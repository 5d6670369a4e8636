package httpapi

import (
	"testing"

	"github.com/matchm8/matchm8/internal/domain/scoring"
)

func TestMatrixToDTOFillsMissedWeeksWithZero(t *testing.T) {
	m := scoring.Matrix{
		Weeks: []int{1, 2, 3},
		Rows: []scoring.MatrixRow{
			{PlayerID: "p1", DisplayName: "Alice", PointsByWeek: map[int]int{2: 3}, Total: 3, Rank: 1},
		},
	}

	dto := matrixToDTO(m)
	if len(dto.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(dto.Rows))
	}
	points := dto.Rows[0].PointsByWeek
	if len(points) != 3 {
		t.Fatalf("expected an entry for every window week, got %v", points)
	}
	for _, week := range m.Weeks {
		value, ok := points[week]
		if !ok {
			t.Fatalf("week %d missing from points map", week)
		}
		want := 0
		if week == 2 {
			want = 3
		}
		if value != want {
			t.Fatalf("week %d = %d, want %d", week, value, want)
		}
	}
}
