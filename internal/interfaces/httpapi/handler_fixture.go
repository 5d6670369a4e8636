package httpapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/matchm8/matchm8/internal/ingest"
	"github.com/matchm8/matchm8/internal/usecase"
)

func (h *Handler) ListWeeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWeeks")
	defer span.End()

	season, err := pathSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	weeks, err := h.fixtureService.ListWeeks(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list weeks failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weeks)
}

func (h *Handler) ListWeekFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWeekFixtures")
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

	weekFixtures, err := h.fixtureService.ListWeek(ctx, season, week)
	if err != nil {
		h.logger.WarnContext(ctx, "list week fixtures failed", "season", season, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(weekFixtures.Fixtures))
	for _, f := range weekFixtures.Fixtures {
		items = append(items, fixtureToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, weekFixturesDTO{
		Fixtures: items,
		Locks:    lockStatusToDTO(weekFixtures.Locks),
	})
}

func (h *Handler) GetWeekLockStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeekLockStatus")
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

	status, err := h.lockService.StatusForWeek(ctx, season, week)
	if err != nil {
		h.logger.WarnContext(ctx, "lock status failed", "season", season, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lockStatusToDTO(status))
}

// ReplaceWeekFixtures ingests a published fixture list for one week. The
// body is accepted in any of the feed shapes the providers emit: an array
// of records or an object keyed by fixture id, with synonym field names.
func (h *Handler) ReplaceWeekFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReplaceWeekFixtures")
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

	fixtures, err := ingest.DecodeFixtures(season, week, body)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode fixtures: %v", usecase.ErrInvalidInput, err))
		return
	}

	saved, err := h.fixtureService.ReplaceWeek(ctx, season, week, fixtures)
	if err != nil {
		h.logger.WarnContext(ctx, "replace week fixtures failed", "season", season, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(saved))
	for _, f := range saved {
		items = append(items, fixtureToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
