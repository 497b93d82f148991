package requirement

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *RequirementHandler) DeleteRequirement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.log.Info("DeleteRequirement request", slog.String("requirement_id", id))

	if err := h.requirementService.DeleteRequirement(r.Context(), id); err != nil {
		h.fail(w, "DeleteRequirement", err, slog.String("requirement_id", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
