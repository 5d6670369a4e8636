package scoring

import (
	"testing"

	"github.com/matchm8/matchm8/internal/domain/prediction"
	"github.com/matchm8/matchm8/internal/domain/result"
)

func TestPointsFor(t *testing.T) {
	tests := []struct {
		name   string
		pred   prediction.Prediction
		actual *result.Result
		want   int
	}{
		{
			name:   "exact scoreline",
			pred:   prediction.Prediction{Home: 2, Away: 1},
			actual: &result.Result{Home: 2, Away: 1},
			want:   PointsExact,
		},
		{
			name:   "correct outcome wrong score",
			pred:   prediction.Prediction{Home: 3, Away: 0},
			actual: &result.Result{Home: 1, Away: 0},
			want:   PointsOutcome,
		},
		{
			name:   "draw predicted draw played",
			pred:   prediction.Prediction{Home: 1, Away: 1},
			actual: &result.Result{Home: 0, Away: 0},
			want:   PointsOutcome,
		},
		{
			name:   "exact nil nil draw",
			pred:   prediction.Prediction{Home: 0, Away: 0},
			actual: &result.Result{Home: 0, Away: 0},
			want:   PointsExact,
		},
		{
			name:   "wrong outcome",
			pred:   prediction.Prediction{Home: 0, Away: 2},
			actual: &result.Result{Home: 2, Away: 0},
			want:   0,
		},
		{
			name:   "no result yet",
			pred:   prediction.Prediction{Home: 2, Away: 1},
			actual: nil,
			want:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointsFor(tt.pred, tt.actual); got != tt.want {
				t.Fatalf("PointsFor() = %d, want %d", got, tt.want)
			}
		})
	}
}
