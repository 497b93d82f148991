package requirement

import (
	"log/slog"
	"net/http"
	input "taskara-review-service/internal/domain/ports/input"
	ports "taskara-review-service/internal/domain/ports/output"
	"taskara-review-service/internal/utils"
)

type RequirementHandler struct {
	requirementService input.ReviewRequirementInputPort
	log                ports.Logger
}

func NewRequirementHandler(s input.ReviewRequirementInputPort, log ports.Logger) *RequirementHandler {
	return &RequirementHandler{requirementService: s, log: log}
}

func (h *RequirementHandler) fail(w http.ResponseWriter, op string, err error, args ...any) {
	status := utils.WriteDomainError(w, err)
	if status >= http.StatusInternalServerError {
		h.log.Error(op+" failed", append(args, slog.Any("err", err))...)
	}
}
