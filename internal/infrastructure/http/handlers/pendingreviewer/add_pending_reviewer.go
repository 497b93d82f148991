package pendingreviewer

import (
	"encoding/json"
	"log/slog"
	"net/http"
	app "taskara-review-service/internal/application/pendingreviewer"
	"taskara-review-service/internal/infrastructure/http/handlers/dto"
	"taskara-review-service/internal/utils"

	"github.com/go-chi/chi/v5"
)

type AddPendingReviewerResponse struct {
	TaskID   string          `json:"task_id"`
	Reviewer dto.ReviewerDTO `json:"reviewer"`
}

func (h *PendingReviewerHandler) AddPendingReviewer(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "task_id")

	var req dto.ReviewerDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return
	}
	reviewer, err := app.ReviewerFromArgs(req.User, req.Agent)
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), err.Error())
		return
	}

	h.log.Info("AddPendingReviewer request", slog.String("task_id", taskID), slog.String("kind", string(reviewer.Kind)), slog.String("reviewer_id", reviewer.ID))

	if err := h.pendingService.AddPendingReviewer(r.Context(), taskID, reviewer); err != nil {
		h.fail(w, "AddPendingReviewer", err, slog.String("task_id", taskID))
		return
	}
	_ = utils.WriteJSON(w, http.StatusCreated, AddPendingReviewerResponse{TaskID: taskID, Reviewer: dto.ToReviewerDTO(reviewer)})
}
