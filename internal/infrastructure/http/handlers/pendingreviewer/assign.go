package pendingreviewer

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"taskara-review-service/internal/infrastructure/http/handlers/dto"
	"taskara-review-service/internal/utils"

	"github.com/go-chi/chi/v5"
)

type AssignRequest struct {
	RequirementID string `json:"requirement_id" validate:"required"`
}

type AssignResponse struct {
	TaskID   string            `json:"task_id"`
	Assigned []dto.ReviewerDTO `json:"assigned"`
}

func (h *PendingReviewerHandler) Assign(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "task_id")

	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), err.Error())
		return
	}

	h.log.Info("Assign request", slog.String("task_id", taskID), slog.String("requirement_id", req.RequirementID))

	// the requirement has to belong to the task in the path
	requirement, err := h.requirementService.GetRequirement(r.Context(), req.RequirementID)
	if err != nil {
		h.fail(w, "Assign", err, slog.String("requirement_id", req.RequirementID))
		return
	}
	if requirement.TaskID != taskID {
		_ = utils.WriteError(w, http.StatusNotFound, utils.HTTPStatusToCode(http.StatusNotFound, utils.ErrRequirementNotFound), utils.ErrRequirementNotFound.Error())
		return
	}

	assigned, err := h.pendingService.AssignFromRequirement(r.Context(), req.RequirementID)
	if err != nil {
		h.fail(w, "Assign", err, slog.String("requirement_id", req.RequirementID))
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, AssignResponse{TaskID: taskID, Assigned: dto.ToReviewerDTOs(assigned)})
}
