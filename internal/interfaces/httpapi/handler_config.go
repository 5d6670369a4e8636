package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/matchm8/matchm8/internal/domain/gameconfig"
	"github.com/matchm8/matchm8/internal/usecase"
)

func (h *Handler) GetGameConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameConfig")
	defer span.End()

	cfg, err := h.configService.Get(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get game config failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameConfigToDTO(cfg))
}

func (h *Handler) UpdateGameConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGameConfig")
	defer span.End()

	var req updateGameConfigRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.configService.Update(ctx, gameconfig.Config{
		Season:            req.Season,
		DeadlineMode:      gameconfig.DeadlineMode(req.DeadlineMode),
		LockOffsetMinutes: req.LockOffsetMinutes,
		Timezone:          req.Timezone,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update game config failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameConfigToDTO(saved))
}
