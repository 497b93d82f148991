package pendingreviewer

import (
	"log/slog"
	"net/http"
	"taskara-review-service/internal/infrastructure/http/handlers/dto"
	"taskara-review-service/internal/utils"

	"github.com/go-chi/chi/v5"
)

func (h *PendingReviewerHandler) ReviewStatus(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "task_id")

	res, err := h.pendingService.ReviewStatus(r.Context(), taskID)
	if err != nil {
		h.fail(w, "ReviewStatus", err, slog.String("task_id", taskID))
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToReviewStatusDTO(res))
}
