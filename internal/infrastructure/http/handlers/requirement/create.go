package requirement

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"taskara-review-service/internal/domain/models"
	"taskara-review-service/internal/infrastructure/http/handlers/dto"
	"taskara-review-service/internal/utils"
)

type CreateRequirementRequest struct {
	TaskID         string   `json:"task_id" validate:"required"`
	NumberRequired *int     `json:"number_required" validate:"omitempty,min=0"`
	Users          []string `json:"users" validate:"dive,required"`
	Agents         []string `json:"agents" validate:"dive,required"`
	Groups         []string `json:"groups"`
	Types          []string `json:"types"`
}

func (h *RequirementHandler) CreateRequirement(w http.ResponseWriter, r *http.Request) {
	var req CreateRequirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), err.Error())
		return
	}

	h.log.Info("CreateRequirement request", slog.String("task_id", req.TaskID))

	created, err := h.requirementService.CreateRequirement(r.Context(), req.TaskID, models.RequirementParams{
		NumberRequired: req.NumberRequired,
		Users:          req.Users,
		Agents:         req.Agents,
		Groups:         req.Groups,
		Types:          req.Types,
	})
	if err != nil {
		h.fail(w, "CreateRequirement", err, slog.String("task_id", req.TaskID))
		return
	}
	_ = utils.WriteJSON(w, http.StatusCreated, dto.ToReviewRequirementDTO(created))
}
