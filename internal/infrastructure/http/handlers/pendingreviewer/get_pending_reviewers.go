package pendingreviewer

import (
	"log/slog"
	"net/http"
	"taskara-review-service/internal/infrastructure/http/handlers/dto"
	"taskara-review-service/internal/utils"

	"github.com/go-chi/chi/v5"
)

func (h *PendingReviewerHandler) GetPendingReviewers(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "task_id")

	h.log.Debug("GetPendingReviewers request", slog.String("task_id", taskID))

	res, err := h.pendingService.PendingReviewers(r.Context(), taskID)
	if err != nil {
		h.fail(w, "GetPendingReviewers", err, slog.String("task_id", taskID))
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToPendingReviewersDTO(res))
}
