package httpapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/matchm8/matchm8/internal/ingest"
	"github.com/matchm8/matchm8/internal/usecase"
)

func (h *Handler) ListWeekResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWeekResults")
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

	set, err := h.resultService.ListWeek(ctx, season, week)
	if err != nil {
		h.logger.WarnContext(ctx, "list week results failed", "season", season, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultsToDTO(set))
}

// UpsertWeekResults ingests actual scores for a week, recomputes that
// week's table immediately, and responds with the fresh rows.
func (h *Handler) UpsertWeekResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertWeekResults")
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

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err))
		return
	}

	results, err := ingest.DecodeResults(body)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode results: %v", usecase.ErrInvalidInput, err))
		return
	}

	rows, err := h.resultService.UpsertWeek(ctx, season, week, results)
	if err != nil {
		h.logger.WarnContext(ctx, "upsert week results failed", "season", season, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weekRowsToDTO(rows))
}
