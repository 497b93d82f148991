package requirement

import (
	"net/http"
	"strconv"
	"taskara-review-service/internal/domain/models"
	"taskara-review-service/internal/infrastructure/http/handlers/dto"
	"taskara-review-service/internal/utils"
)

type FindRequirementsResponse struct {
	Requirements []dto.ReviewRequirementDTO `json:"requirements"`
}

func (h *RequirementHandler) FindRequirements(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter models.RequirementFilter
	if v := q.Get("id"); v != "" {
		filter.ID = &v
	}
	if v := q.Get("task_id"); v != "" {
		filter.TaskID = &v
	}
	if v := q.Get("number_required"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "number_required must be an integer")
			return
		}
		filter.NumberRequired = &n
	}

	res, err := h.requirementService.FindRequirements(r.Context(), filter)
	if err != nil {
		h.fail(w, "FindRequirements", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, FindRequirementsResponse{Requirements: dto.ToReviewRequirementDTOs(res)})
}
