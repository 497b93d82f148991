package utils

import (
	"encoding/json"
	"errors"
	"net/http"
)

type ErrorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// HTTPStatusFromError maps the domain sentinel errors onto transport statuses.
func HTTPStatusFromError(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func HTTPStatusToCode(status int, errs ...error) string {
	if status == http.StatusNotFound && len(errs) > 0 && errs[0] != nil {
		if errors.Is(errs[0], ErrRequirementNotFound) {
			return "REQUIREMENT_NOT_FOUND"
		}
	}
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusServiceUnavailable:
		return "UNAVAILABLE"
	default:
		return "INTERNAL"
	}
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := ErrorResponse{Error: ErrorDetails{Code: code, Message: message}}
	return json.NewEncoder(w).Encode(resp)
}

// WriteDomainError writes err with the status HTTPStatusFromError picks and returns that status.
// Internal failures are reported without their cause.
func WriteDomainError(w http.ResponseWriter, err error) int {
	status := HTTPStatusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = ErrInternal.Error()
	}
	_ = WriteError(w, status, HTTPStatusToCode(status, err), msg)
	return status
}
