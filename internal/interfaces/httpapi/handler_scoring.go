package httpapi

import (
	"net/http"
)

func (h *Handler) GetWeekTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeekTable")
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

	rows, err := h.scoringService.WeekTable(ctx, season, week)
	if err != nil {
		h.logger.WarnContext(ctx, "week table failed", "season", season, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weekRowsToDTO(rows))
}

func (h *Handler) GetSeasonStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonStandings")
	defer span.End()

	season, err := pathSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.standingsService.SeasonTotals(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "season standings failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonRowsToDTO(rows))
}

func (h *Handler) GetStandingsMatrix(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandingsMatrix")
	defer span.End()

	season, err := pathSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	fromWeek, err := queryInt(r.URL.Query().Get("from"), 1)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	toWeek, err := queryInt(r.URL.Query().Get("to"), fromWeek)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matrix, err := h.standingsService.Matrix(ctx, season, fromWeek, toWeek)
	if err != nil {
		h.logger.WarnContext(ctx, "standings matrix failed", "season", season, "from", fromWeek, "to", toWeek, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matrixToDTO(matrix))
}
