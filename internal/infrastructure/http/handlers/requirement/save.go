package requirement

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"taskara-review-service/internal/infrastructure/http/handlers/dto"
	"taskara-review-service/internal/utils"

	"github.com/go-chi/chi/v5"
)

// SaveRequirement stores the body under the id in the path, creating or overwriting it.
func (h *RequirementHandler) SaveRequirement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body dto.ReviewRequirementDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return
	}
	if body.ID != "" && body.ID != id {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "id in body does not match path")
		return
	}
	body.ID = id
	if err := utils.Validate(body); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), err.Error())
		return
	}

	req, err := dto.FromReviewRequirementDTO(body)
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), err.Error())
		return
	}

	h.log.Info("SaveRequirement request", slog.String("requirement_id", id), slog.String("task_id", req.TaskID))

	if err := h.requirementService.SaveRequirement(r.Context(), req); err != nil {
		h.fail(w, "SaveRequirement", err, slog.String("requirement_id", id))
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToReviewRequirementDTO(req))
}
