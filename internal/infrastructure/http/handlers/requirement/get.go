package requirement

import (
	"log/slog"
	"net/http"
	"taskara-review-service/internal/infrastructure/http/handlers/dto"
	"taskara-review-service/internal/utils"

	"github.com/go-chi/chi/v5"
)

func (h *RequirementHandler) GetRequirement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.requirementService.GetRequirement(r.Context(), id)
	if err != nil {
		h.fail(w, "GetRequirement", err, slog.String("requirement_id", id))
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToReviewRequirementDTO(res))
}
