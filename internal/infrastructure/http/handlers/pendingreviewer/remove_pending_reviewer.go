package pendingreviewer

import (
	"log/slog"
	"net/http"
	"strconv"
	app "taskara-review-service/internal/application/pendingreviewer"
	"taskara-review-service/internal/utils"

	"github.com/go-chi/chi/v5"
)

type ClearPendingReviewerResponse struct {
	TaskID  string `json:"task_id"`
	Removed int    `json:"removed"`
}

// RemovePendingReviewer drops the oldest matching entry, or every matching entry when all=true.
// Exactly one of user or agent is accepted: an entry never holds both, so passing both is a 400.
func (h *PendingReviewerHandler) RemovePendingReviewer(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "task_id")
	q := r.URL.Query()

	reviewer, err := app.ReviewerFromArgs(q.Get("user"), q.Get("agent"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), err.Error())
		return
	}
	all := false
	if raw := q.Get("all"); raw != "" {
		if all, err = strconv.ParseBool(raw); err != nil {
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "all must be a boolean")
			return
		}
	}

	h.log.Info("RemovePendingReviewer request", slog.String("task_id", taskID), slog.String("reviewer_id", reviewer.ID), slog.Bool("all", all))

	if all {
		n, err := h.pendingService.ClearPendingReviewer(r.Context(), taskID, reviewer)
		if err != nil {
			h.fail(w, "ClearPendingReviewer", err, slog.String("task_id", taskID))
			return
		}
		_ = utils.WriteJSON(w, http.StatusOK, ClearPendingReviewerResponse{TaskID: taskID, Removed: n})
		return
	}

	if err := h.pendingService.RemovePendingReviewer(r.Context(), taskID, reviewer); err != nil {
		h.fail(w, "RemovePendingReviewer", err, slog.String("task_id", taskID))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
