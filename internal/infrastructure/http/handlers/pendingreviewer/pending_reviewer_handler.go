package pendingreviewer

import (
	"log/slog"
	"net/http"
	input "taskara-review-service/internal/domain/ports/input"
	ports "taskara-review-service/internal/domain/ports/output"
	"taskara-review-service/internal/utils"
)

type PendingReviewerHandler struct {
	pendingService     input.PendingReviewerInputPort
	requirementService input.ReviewRequirementInputPort
	log                ports.Logger
}

func NewPendingReviewerHandler(p input.PendingReviewerInputPort, r input.ReviewRequirementInputPort, log ports.Logger) *PendingReviewerHandler {
	return &PendingReviewerHandler{pendingService: p, requirementService: r, log: log}
}

func (h *PendingReviewerHandler) fail(w http.ResponseWriter, op string, err error, args ...any) {
	status := utils.WriteDomainError(w, err)
	if status >= http.StatusInternalServerError {
		h.log.Error(op+" failed", append(args, slog.Any("err", err))...)
	}
}
