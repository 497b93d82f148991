package pendingreviewer

import (
	"log/slog"
	"net/http"
	"taskara-review-service/internal/domain/models"
	"taskara-review-service/internal/infrastructure/http/handlers/dto"
	"taskara-review-service/internal/utils"
)

// PendingReviews lists tasks still waiting on the given user and/or agent. With neither, every task with a pending entry.
func (h *PendingReviewerHandler) PendingReviews(w http.ResponseWriter, r *http.Request) {
	filter := models.PendingReviewFilter{
		UserID:  r.URL.Query().Get("user"),
		AgentID: r.URL.Query().Get("agent"),
	}

	h.log.Debug("PendingReviews request", slog.String("user", filter.UserID), slog.String("agent", filter.AgentID))

	res, err := h.pendingService.PendingReviews(r.Context(), filter)
	if err != nil {
		h.fail(w, "PendingReviews", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToPendingReviewsDTO(res))
}
