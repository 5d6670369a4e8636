package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/matchm8/matchm8/internal/ingest"
	"github.com/matchm8/matchm8/internal/usecase"
)

func (h *Handler) GetWeekPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeekPredictions")
	defer span.End()

	season, err := pathSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err := pathWeek(r.PathValue("week"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID := strings.TrimSpace(r.PathValue("playerID"))

	set, err := h.predictionService.GetWeek(ctx, season, week, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get week predictions failed", "season", season, "week", week, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionsToDTO(set))
}

// SubmitWeekPredictions accepts a lenient score payload: an array of
// records or an object keyed by fixture id, with synonym field names.
// Missing fixtures in the body keep their previous picks.
func (h *Handler) SubmitWeekPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitWeekPredictions")
	defer span.End()

	season, err := pathSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err := pathWeek(r.PathValue("week"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID := strings.TrimSpace(r.PathValue("playerID"))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err))
		return
	}

	incoming, err := ingest.DecodePredictions(playerID, body)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode predictions: %v", usecase.ErrInvalidInput, err))
		return
	}

	merged, err := h.predictionService.SubmitWeek(ctx, season, week, playerID, incoming)
	if err != nil {
		h.logger.WarnContext(ctx, "submit week predictions failed", "season", season, "week", week, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionsToDTO(merged))
}
